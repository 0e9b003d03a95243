package bnf

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/pwz"
	"golang.org/x/exp/ebnf"
)

// Kind classifies productions by their name.
type Kind int

// Syntactic productions keep their structure, lexical productions produce
// lexemes, ignored productions leave no trace.
const (
	Syntactic Kind = iota
	Lexical
	Ignored
)

// KindOf returns the kind of a production name.
func KindOf(name string) Kind {
	ch, _ := utf8.DecodeRuneInString(name)
	switch {
	case ch == '_':
		return Ignored
	case unicode.IsUpper(ch):
		return Syntactic
	}
	return Lexical
}

// Load reads an EBNF grammar from r and compiles it, starting at production start.
// name is used for error messages.
//
// References to productions which are not defined result in an error wrapping
// pwz.ErrUndefinedNonTerminal. Other checks are done by ebnf.Verify, which
// rejects, among other things, productions not reachable from start.
func Load(name string, r io.Reader, start string) (*pwz.Expression, error) {
	g, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return Compile(name, g, start)
}

// LoadString is a shortcut for Load from a string.
func LoadString(name string, src string, start string) (*pwz.Expression, error) {
	return Load(name, strings.NewReader(src), start)
}

// Compile compiles a parsed EBNF grammar, starting at production start.
func Compile(name string, g ebnf.Grammar, start string) (*pwz.Expression, error) {
	if _, ok := g[start]; !ok {
		return nil, fmt.Errorf("%s: %w: start production %s", name, pwz.ErrUndefinedNonTerminal, start)
	}
	if undef := Undefined(g); len(undef) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", name, pwz.ErrUndefinedNonTerminal, strings.Join(undef, ", "))
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	b := pwz.NewGrammarBuilder(name)
	for _, prodName := range productions(g) {
		e := compile(b, g[prodName].Expr)
		switch KindOf(prodName) {
		case Lexical:
			e = pwz.Lex(e)
		case Ignored:
			e = pwz.Ign(e)
		}
		b.Define(prodName, e)
	}
	tracer().Infof("%s: compiled %d productions", name, len(g))
	return b.Grammar(start)
}

// Undefined lists the names referenced in g without a production, sorted.
func Undefined(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for _, prod := range g {
		walk(prod.Expr, func(n *ebnf.Name) {
			if _, ok := g[n.String]; !ok {
				seen[n.String] = true
			}
		})
	}
	undef := make([]string, 0, len(seen))
	for name := range seen {
		undef = append(undef, name)
	}
	sort.Strings(undef)
	return undef
}

func productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// walk calls f for every name referenced in expr.
func walk(expr ebnf.Expression, f func(*ebnf.Name)) {
	switch x := expr.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			walk(e, f)
		}
	case ebnf.Sequence:
		for _, e := range x {
			walk(e, f)
		}
	case *ebnf.Group:
		walk(x.Body, f)
	case *ebnf.Option:
		walk(x.Body, f)
	case *ebnf.Repetition:
		walk(x.Body, f)
	case *ebnf.Name:
		f(x)
	}
}

func compile(b *pwz.GrammarBuilder, expr ebnf.Expression) *pwz.Expression {
	switch x := expr.(type) {
	case nil:
		return pwz.Seq()
	case ebnf.Alternative:
		return pwz.Alt(compileAll(b, x)...)
	case ebnf.Sequence:
		return pwz.Seq(compileAll(b, x)...)
	case *ebnf.Group:
		return compile(b, x.Body)
	case *ebnf.Option:
		return pwz.Opt(compile(b, x.Body))
	case *ebnf.Repetition:
		return pwz.Star(compile(b, x.Body))
	case *ebnf.Name:
		return b.N(x.String)
	case *ebnf.Token:
		if x.String == "" {
			return pwz.Seq()
		}
		return pwz.Str(x.String)
	case *ebnf.Range:
		return compileRange(x)
	}
	panic(fmt.Sprintf("bnf: unexpected expression %T at %v", expr, expr.Pos()))
}

func compileAll(b *pwz.GrammarBuilder, list []ebnf.Expression) []*pwz.Expression {
	exprs := make([]*pwz.Expression, len(list))
	for i, e := range list {
		exprs[i] = compile(b, e)
	}
	return exprs
}

// compileRange creates a token for a character range. Ranges starting with a
// character which has a special meaning at the beginning of a label are split.
func compileRange(r *ebnf.Range) *pwz.Expression {
	from, _ := utf8.DecodeRuneInString(r.Begin.String)
	to, _ := utf8.DecodeRuneInString(r.End.String)
	return rangeTok(from, to)
}

func rangeTok(from, to rune) *pwz.Expression {
	switch {
	case from > to:
		return pwz.Alt()
	case from == to:
		return pwz.Str(string(from))
	case from == '^' || from == '\\':
		return pwz.Alt(pwz.Str(string(from)), rangeTok(from+1, to))
	}
	return pwz.Tok(fmt.Sprintf("%c-%c", from, to))
}
