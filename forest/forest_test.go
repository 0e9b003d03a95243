package forest

import (
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/pwz"
	"github.com/npillmayer/pwz/lcrs"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// We use a small unambiguous expression grammar for testing.
//
//     Sum     = Sum     '+' Product
//             | Product
//     Product = Product '*' Factor
//             | Factor
//     Factor  = '(' Sum ')'
//             | Number
//
func makeGrammar(t *testing.T) *pwz.Expression {
	b := pwz.NewGrammarBuilder("Expressions")
	b.Define("Sum", pwz.Alt(pwz.Seq(b.N("Sum"), pwz.Str("+"), b.N("Product")), b.N("Product")))
	b.Define("Product", pwz.Alt(pwz.Seq(b.N("Product"), pwz.Str("*"), b.N("Factor")), b.N("Factor")))
	b.Define("Factor", pwz.Alt(pwz.Seq(pwz.Str("("), b.N("Sum"), pwz.Str(")")), b.N("Number")))
	b.Define("Number", pwz.Lex(pwz.Plus(pwz.Tok("0-9"))))
	g, err := b.Grammar("Sum")
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func parseOne(t *testing.T, input string, g *pwz.Expression) *lcrs.Node {
	trees, err := pwz.Parse(input, g)
	if err != nil {
		t.Fatal(err)
	}
	if len(trees) != 1 {
		t.Fatalf("expected 1 parse tree for %q, have %d", input, len(trees))
	}
	return trees[0]
}

// evaluator computes the value of an arithmetic expression.
type evaluator struct{}

func (ev evaluator) EnterRule(*pwz.Expr, []*RuleNode, RuleCtxt) bool { return true }
func (ev evaluator) MakeAttrs(*pwz.Expr) interface{}                  { return nil }

func (ev evaluator) Terminal(e *pwz.Expr, ctxt RuleCtxt) interface{} {
	if e.Type == pwz.LexExpr {
		n, _ := strconv.Atoi(e.Value)
		return n
	}
	return e.Value
}

func (ev evaluator) ExitRule(e *pwz.Expr, rhs []*RuleNode, ctxt RuleCtxt) interface{} {
	switch len(rhs) {
	case 1:
		return rhs[0].Value
	case 3:
		switch rhs[1].Value {
		case "+":
			return rhs[0].Value.(int) + rhs[2].Value.(int)
		case "*":
			return rhs[0].Value.(int) * rhs[2].Value.(int)
		}
		return rhs[1].Value // ( Sum )
	}
	return nil
}

// collector collects terminal values in the order they are visited.
type collector struct {
	values []string
}

func (c *collector) EnterRule(*pwz.Expr, []*RuleNode, RuleCtxt) bool { return false }
func (c *collector) ExitRule(*pwz.Expr, []*RuleNode, RuleCtxt) interface{} {
	return nil
}
func (c *collector) MakeAttrs(*pwz.Expr) interface{} { return nil }
func (c *collector) Terminal(e *pwz.Expr, ctxt RuleCtxt) interface{} {
	c.values = append(c.values, e.Value)
	return nil
}

// --- the Tests -------------------------------------------------------------

func TestEvaluate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.forest")
	defer teardown()
	//
	g := makeGrammar(t)
	for input, expected := range map[string]int{
		"1":         1,
		"1+2*3":     7,
		"(1+2)*3":   9,
		"2*(3+4)*5": 70,
		"10+20+30":  60,
	} {
		tree := parseOne(t, input, g)
		value := NewCursor(tree).TopDown(evaluator{}, LtoR, Continue)
		if v, ok := value.(int); !ok || v != expected {
			t.Errorf("expected %s = %d, have %v", input, expected, value)
		}
	}
}

func TestDirectionAndBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.forest")
	defer teardown()
	//
	tree := parseOne(t, "1+2*3", makeGrammar(t))
	c := &collector{}
	NewCursor(tree).TopDown(c, RtoL, Continue)
	if s := strings.Join(c.values, ""); s != "3*2+1" {
		t.Errorf("expected right-to-left terminals 3*2+1, have %q", s)
	}
	c = &collector{}
	NewCursor(tree).TopDown(c, LtoR, Break)
	if len(c.values) != 0 {
		t.Errorf("expected break mode to skip all children, have %v", c.values)
	}
}

func TestCursor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.forest")
	defer teardown()
	//
	tree := parseOne(t, "1+2", makeGrammar(t))
	c := NewCursor(tree)
	if c.Current().Expr().Label != "Sum" {
		t.Errorf("expected cursor to start at Sum, is at %v", c.Current().Expr())
	}
	if _, ok := c.Up(); ok {
		t.Errorf("expected no parent at root")
	}
	if _, ok := c.Down(LtoR); !ok {
		t.Fatalf("expected to move down")
	}
	rn, ok := c.Down(RtoL)
	if !ok || rn.Expr().Label != "Product" || rn.Span() != (pwz.Span{2, 3}) {
		t.Errorf("expected rightmost child to be Product (2…3), is %v", rn.Expr())
	}
	rn, ok = c.Sibling(RtoL)
	if !ok || rn.Expr().Value != "+" {
		t.Errorf("expected left sibling +, is %v", rn.Expr())
	}
	rn, _ = c.Up()
	if len(RHS(rn.Node())) != 3 {
		t.Errorf("expected 3 children after moving up again, have %d", len(RHS(rn.Node())))
	}
}

func TestTextAndOutline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.forest")
	defer teardown()
	//
	tree := parseOne(t, "(1+2)*3", makeGrammar(t))
	if s := Text(tree); s != "(1+2)*3" {
		t.Errorf("expected text (1+2)*3, have %q", s)
	}
	g := pwz.Seq(pwz.Tok("a"), pwz.Ign(pwz.Star(pwz.Tok(" "))), pwz.Tok("b"))
	if s := Text(parseOne(t, "a   b", g)); s != "ab" {
		t.Errorf("expected ignored input to be left out, have %q", s)
	}
	items := Outline(tree)
	for _, item := range items {
		t.Logf("%s%s", strings.Repeat("  ", item.Level), item.Text)
	}
	if len(items) == 0 || items[0].Level != 0 || items[0].Text != "Sum (0…7)" {
		t.Errorf("expected outline to start with Sum (0…7), have %v", items)
	}
}

func TestSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.forest")
	defer teardown()
	//
	g := makeGrammar(t)
	h1, err := Signature(parseOne(t, "1+2*3", g))
	if err != nil {
		t.Fatal(err)
	}
	h2, _ := Signature(parseOne(t, "1+2*3", g))
	if h1 != h2 {
		t.Errorf("expected equal signatures for repeated parses")
	}
	h3, _ := Signature(parseOne(t, "1*2+3", g))
	if h1 == h3 {
		t.Errorf("expected different signatures for different inputs")
	}
	// E ➞ E + E | n
	E := pwz.Rec(func(e *pwz.Expression) *pwz.Expression {
		return pwz.Alt(pwz.Seq(e, pwz.Str("+"), e), pwz.Tok("n"))
	})
	trees, err := pwz.Parse("n+n+n", E)
	if err != nil {
		t.Fatal(err)
	}
	distinct, err := Distinct(trees)
	if err != nil {
		t.Fatal(err)
	}
	if len(distinct) != 2 {
		t.Errorf("expected 2 distinct trees, have %d", len(distinct))
	}
}
