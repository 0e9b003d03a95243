package pwz

import (
	"fmt"

	"github.com/npillmayer/pwz/lcrs"
)

// Expression is a grammar, or a part of one. Expressions are immutable and may
// be shared between grammars and between concurrent derivations.
type Expression struct {
	root *lcrs.Node
}

// Root returns the root node of an expression's tree.
func (e *Expression) Root() *lcrs.Node {
	return e.root
}

func (e *Expression) String() string {
	if e == nil || e.root == nil {
		return "<no expression>"
	}
	return lcrs.Dump(e.root)
}

func expression(e *Expr, children ...*Expression) *Expression {
	nodes := make([]*lcrs.Node, len(children))
	for i, ch := range children {
		if ch == nil || ch.root == nil {
			panic(fmt.Sprintf("pwz: child #%d of %v is nil", i, e.Type))
		}
		nodes[i] = ch.root
	}
	return &Expression{root: lcrs.NewNode(e, nodes...)}
}

// --- Constructors ----------------------------------------------------------

// Tok matches a single input token against a character class label.
func Tok(label string) *Expression {
	return expression(&Expr{Type: TokExpr, Label: label})
}

// Str matches a literal string, rune by rune.
func Str(s string) *Expression {
	runes := []rune(s)
	if len(runes) == 1 {
		return Tok(escape(runes[0]))
	}
	toks := make([]*Expression, len(runes))
	for i, r := range runes {
		toks[i] = Tok(escape(r))
	}
	return Seq(toks...)
}

// Seq matches its children one after the other. Seq() matches the empty input.
func Seq(children ...*Expression) *Expression {
	return expression(&Expr{Type: SeqExpr}, children...)
}

// Alt matches any of its children. All matching children contribute to the
// parse forest.
func Alt(children ...*Expression) *Expression {
	return expression(&Expr{Type: AltExpr}, children...)
}

// Star matches zero or more repetitions of e.
func Star(e *Expression) *Expression {
	return expression(&Expr{Type: RepExpr}, e)
}

// Plus matches one or more repetitions of e.
func Plus(e *Expression) *Expression {
	return Seq(e, Star(e))
}

// Opt matches e or the empty input.
func Opt(e *Expression) *Expression {
	return Alt(e, Seq())
}

// Lex matches e and collects the matched input as a single lexeme, dropping
// the structure of e.
func Lex(e *Expression) *Expression {
	return expression(&Expr{Type: LexExpr}, e)
}

// Ign matches e and drops the result. With compaction enabled, ignored input
// leaves no trace in the parse forest.
func Ign(e *Expression) *Expression {
	return expression(&Expr{Type: IgnExpr}, e)
}

// Ahead succeeds without consuming input if the next token matches label.
func Ahead(label string) *Expression {
	return expression(&Expr{Type: LookExpr, Label: label})
}

// NotAhead succeeds without consuming input if the next token does not match label.
// NotAhead("\.") matches the end of input.
func NotAhead(label string) *Expression {
	return expression(&Expr{Type: LookExpr, Label: label, Negated: true})
}

// Ord is an ordered choice between a and b, decided by the next token: a if it
// matches guard, b otherwise.
func Ord(guard string, a, b *Expression) *Expression {
	return Alt(Seq(Ahead(guard), a), Seq(NotAhead(guard), b))
}

// Named attaches a label to e. Tokens, lookaheads and references to recursive
// expressions are wrapped into a labeled sequence.
func Named(label string, e *Expression) *Expression {
	x := ExprOf(e.root)
	if e.root.IsLoop() || x == nil || x.Type == TokExpr || x.Type == LookExpr {
		return expression(&Expr{Type: SeqExpr, Label: label}, e)
	}
	relabeled := *x
	relabeled.Label = label
	return &Expression{root: lcrs.Reissue(e.root, &relabeled)}
}

// --- Recursion -------------------------------------------------------------

// Rec builds a recursive expression. cb receives a placeholder for the
// expression under construction and returns its definition:
//
//     // S ➞ ( S ) | ε
//     S := Rec(func(s *Expression) *Expression {
//         return Alt(Seq(Str("("), s, Str(")")), Seq())
//     })
//
// Rec panics if cb returns the placeholder itself.
func Rec(cb func(self *Expression) *Expression) *Expression {
	return Recs(1, func(refs []*Expression) []*Expression {
		return []*Expression{cb(refs[0])}
	})[0]
}

// Recs builds a family of n mutually recursive expressions. cb receives n
// placeholders and has to return the n definitions.
//
// Recs panics if cb returns the wrong number of definitions or if a
// definition resolves to nothing but placeholders.
func Recs(n int, cb func(refs []*Expression) []*Expression) []*Expression {
	arena := lcrs.NewArena()
	refs := make([]*Expression, n)
	for i := range refs {
		refs[i] = &Expression{root: arena.Ref(arena.Reserve())}
	}
	defs := cb(refs)
	if len(defs) != n {
		panic(fmt.Sprintf("pwz: recursive family of %d expressions got %d definitions", n, len(defs)))
	}
	for i, def := range defs {
		if def == nil || def.root == nil {
			panic(fmt.Sprintf("pwz: definition #%d of recursive family is nil", i))
		}
		if err := arena.Fill(i, def.root); err != nil {
			panic(fmt.Errorf("pwz: definition #%d: %w", i, err))
		}
	}
	tracer().Debugf("tied recursive family of %d expressions", n)
	return defs
}

// --- Statistics ------------------------------------------------------------

// CountNodes counts the distinct grammar positions of g, following loops.
// Positions are identified the same way the memo table identifies them.
func CountNodes(g *Expression) int {
	seen := make(map[uint64]bool)
	var walk func(n *lcrs.Node)
	walk = func(n *lcrs.Node) {
		for ; n != nil; n = n.Right() {
			r := n.Resolve()
			if seen[r.PrevID()] {
				continue
			}
			seen[r.PrevID()] = true
			walk(r.Down())
		}
	}
	walk(g.root)
	return len(seen)
}
