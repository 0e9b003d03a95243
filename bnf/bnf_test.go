package bnf

import (
	"errors"
	"testing"

	"github.com/npillmayer/pwz"
	"github.com/npillmayer/pwz/forest"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const exprGrammar = `
Expr   = Term { ( "+" | "-" ) Term } .
Term   = Factor { ( "*" | "/" ) Factor } .
Factor = number | "(" Expr ")" .
number = digit { digit } .
digit  = "0" … "9" .
`

const listGrammar = `
List = item { _sep item } .
item = letter { letter } .
letter = "a" … "z" .
_sep = "," { " " } .
`

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.bnf")
	defer teardown()
	//
	for name, kind := range map[string]Kind{
		"Expr":   Syntactic,
		"number": Lexical,
		"_ws":    Ignored,
	} {
		if k := KindOf(name); k != kind {
			t.Errorf("expected %s to be of kind %d, is %d", name, kind, k)
		}
	}
}

func TestExpressionGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.bnf")
	defer teardown()
	//
	g, err := LoadString("expr.ebnf", exprGrammar, "Expr")
	if err != nil {
		t.Fatal(err)
	}
	for input, count := range map[string]int{
		"1":           1,
		"12+3":        1,
		"1+2*(3-4)/5": 1,
		"1+":          0,
		"(1":          0,
	} {
		trees, err := pwz.Parse(input, g)
		if err != nil {
			t.Fatal(err)
		}
		if len(trees) != count {
			t.Errorf("%q: expected %d parse trees, have %d", input, count, len(trees))
			continue
		}
		if count > 0 && pwz.ExprOf(trees[0]).Label != "Expr" {
			t.Errorf("%q: expected root to be labeled Expr, is %v", input, pwz.ExprOf(trees[0]))
		}
	}
}

func TestLexicalAndIgnored(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.bnf")
	defer teardown()
	//
	g, err := LoadString("list.ebnf", listGrammar, "List")
	if err != nil {
		t.Fatal(err)
	}
	trees, err := pwz.Parse("ab, cd,e", g)
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected 1 parse tree, have %d", len(trees))
	}
	if s := forest.Text(trees[0]); s != "abcde" {
		t.Errorf("expected separators to be dropped, text is %q", s)
	}
	first := trees[0].Children()[0]
	if e := pwz.ExprOf(first); e.Type != pwz.LexExpr || e.Label != "item" || e.Value != "ab" {
		t.Errorf("expected first item to be lexeme ab, is %v", e)
	}
}

func TestRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.bnf")
	defer teardown()
	//
	g, err := LoadString("range.ebnf", `S = "^" … "a" .`, "S")
	if err != nil {
		t.Fatal(err)
	}
	for input, count := range map[string]int{"^": 1, "_": 1, "a": 1, "b": 0, "]": 0} {
		trees, _ := pwz.Parse(input, g)
		if len(trees) != count {
			t.Errorf("range ^…a on %q: expected %d trees, have %d", input, count, len(trees))
		}
	}
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.bnf")
	defer teardown()
	//
	if _, err := LoadString("undef.ebnf", `S = "a" A .`, "S"); !errors.Is(err, pwz.ErrUndefinedNonTerminal) {
		t.Errorf("expected undefined non-terminal, got %v", err)
	}
	if _, err := LoadString("start.ebnf", `S = "a" .`, "T"); !errors.Is(err, pwz.ErrUndefinedNonTerminal) {
		t.Errorf("expected undefined start production, got %v", err)
	}
	if _, err := LoadString("syntax.ebnf", `S = "a" `, "S"); err == nil {
		t.Errorf("expected syntax error to be reported")
	}
	if _, err := LoadString("lexical.ebnf", "S = a .\na = S .", "S"); err == nil {
		t.Errorf("expected lexical production referencing S to be rejected")
	}
}
