package pwz

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/pwz/lcrs"
)

// ExprType is the kind of a grammar expression. The first group are the
// expressions clients build grammars from, the second group are continuations
// the parser puts in place while it is working on an expression's children.
type ExprType int8

// Grammar expressions.
const (
	TokExpr  ExprType = iota // matches a single token
	SeqExpr                  // sequence of children; completed tokens are Seqs, too
	AltExpr                  // choice of children
	RepExpr                  // zero or more repetitions of the single child
	LexExpr                  // child's input collected as a lexeme
	IgnExpr                  // child's input matched and dropped
	LookExpr                 // zero-width one-token lookahead
)

// Continuations.
const (
	SeqCont ExprType = iota + 16
	AltCont
	RepCont
	LexCont
	IgnCont
)

var typeNames = map[ExprType]string{
	TokExpr:  "Tok",
	SeqExpr:  "Seq",
	AltExpr:  "Alt",
	RepExpr:  "Rep",
	LexExpr:  "Lex",
	IgnExpr:  "Ign",
	LookExpr: "Look",
	SeqCont:  "SeqC",
	AltCont:  "AltC",
	RepCont:  "RepC",
	LexCont:  "LexC",
	IgnCont:  "IgnC",
}

func (t ExprType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "ExprType(" + strconv.Itoa(int(t)) + ")"
}

// IsContinuation is true for the parser's intermediate types.
func (t ExprType) IsContinuation() bool {
	return t >= SeqCont
}

// Expr is the value held by grammar nodes and by nodes of result trees.
//
// For Tok and Look, Label is the character class to match. For all other types
// it is a client-defined name (possibly empty). Completed expressions have Done
// set and cover input positions [Start,End). Completed tokens are Seqs with
// the matched token as Value; completed Lex expressions carry their lexeme.
//
// Expr values are shared between many trees and must not be modified.
type Expr struct {
	Type    ExprType
	Label   string
	Negated bool // for lookaheads
	Start   int
	End     int
	Value   string
	Done    bool
	m       *Mem       // memo record of the expression a continuation stands for
	body    *lcrs.Node // repetition body template
}

// Span returns the input span covered by a completed expression.
func (e *Expr) Span() Span {
	return Span{e.Start, e.End}
}

// IsContentFree is true for completed expressions without label and value.
// Whether there are children has to be checked at the tree node.
func (e *Expr) IsContentFree() bool {
	return e.Done && e.Label == "" && e.Value == ""
}

func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	s := e.Type.String()
	if e.Negated {
		s = "!" + s
	}
	if e.Label != "" {
		s += fmt.Sprintf("%q", e.Label)
	}
	if e.Value != "" {
		s += fmt.Sprintf("=%q", e.Value)
	}
	if e.Done {
		s += Span{e.Start, e.End}.String()
	} else if e.Type.IsContinuation() {
		s += fmt.Sprintf("@%d", e.Start)
	}
	return s
}

// ExprOf returns the expression held by a node. It returns nil for nil nodes
// and for nodes not holding an expression (e.g., unresolved loop markers).
func ExprOf(n *lcrs.Node) *Expr {
	if n == nil {
		return nil
	}
	e, _ := n.Value().(*Expr)
	return e
}

func exprAt(z *lcrs.Zipper) *Expr {
	return ExprOf(z.Focus())
}

// completed derives a completed expression of type t from the continuation c,
// ending at position end.
func completed(c *Expr, t ExprType, end int) *Expr {
	return &Expr{
		Type:  t,
		Label: c.Label,
		Start: c.Start,
		End:   end,
		Done:  true,
	}
}

// continuation derives a continuation of type t from e, starting at position start.
func continuation(e *Expr, t ExprType, start int, m *Mem) *Expr {
	return &Expr{
		Type:  t,
		Label: e.Label,
		Start: start,
		m:     m,
	}
}

// contentFree checks a completed result node for label, value and children.
func contentFree(n *lcrs.Node) bool {
	e := ExprOf(n)
	return e != nil && e.IsContentFree() && n.Down() == nil
}
