package forest

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/pwz"
	"github.com/npillmayer/pwz/lcrs"
)

// --- Text ------------------------------------------------------------------

// textCollector concatenates the values of terminals, left to right.
type textCollector struct {
	b strings.Builder
}

func (tc *textCollector) EnterRule(*pwz.Expr, []*RuleNode, RuleCtxt) bool { return true }
func (tc *textCollector) ExitRule(*pwz.Expr, []*RuleNode, RuleCtxt) interface{} {
	return nil
}
func (tc *textCollector) MakeAttrs(*pwz.Expr) interface{} { return nil }

func (tc *textCollector) Terminal(e *pwz.Expr, ctxt RuleCtxt) interface{} {
	tc.b.WriteString(e.Value)
	return e.Value
}

// Text returns the input a result tree has matched, except for input which has
// been matched by Ign expressions.
func Text(root *lcrs.Node) string {
	if root == nil {
		return ""
	}
	tc := &textCollector{}
	NewCursor(root).TopDown(tc, LtoR, Continue)
	return tc.b.String()
}

// --- Outline ---------------------------------------------------------------

// OutlineItem is a line of an indented representation of a result tree.
type OutlineItem struct {
	Level int
	Text  string
}

type outliner struct {
	items []OutlineItem
}

func (o *outliner) EnterRule(e *pwz.Expr, rhs []*RuleNode, ctxt RuleCtxt) bool {
	o.items = append(o.items, OutlineItem{Level: ctxt.Level, Text: itemText(e)})
	return true
}

func (o *outliner) ExitRule(*pwz.Expr, []*RuleNode, RuleCtxt) interface{} { return nil }
func (o *outliner) MakeAttrs(*pwz.Expr) interface{}                      { return nil }

func (o *outliner) Terminal(e *pwz.Expr, ctxt RuleCtxt) interface{} {
	o.items = append(o.items, OutlineItem{Level: ctxt.Level, Text: itemText(e)})
	return nil
}

func itemText(e *pwz.Expr) string {
	var s string
	switch {
	case e.Label != "":
		s = e.Label
	case e.Value != "":
		s = fmt.Sprintf("%q", e.Value)
	default:
		s = e.Type.String()
	}
	if e.Label != "" && e.Value != "" {
		s += fmt.Sprintf(" = %q", e.Value)
	}
	return s + " " + e.Span().String()
}

// Outline flattens a result tree into a list of indented items, in pre-order.
func Outline(root *lcrs.Node) []OutlineItem {
	if root == nil {
		return nil
	}
	o := &outliner{}
	NewCursor(root).TopDown(o, LtoR, Continue)
	return o.items
}

// --- Signatures ------------------------------------------------------------

// sig is the hashable structure of a result tree. Node identities are left out.
type sig struct {
	Type     string
	Label    string
	Value    string
	From, To int
	Children []sig
}

func signatureOf(n *lcrs.Node) sig {
	e := pwz.ExprOf(n)
	s := sig{
		Type:  e.Type.String(),
		Label: e.Label,
		Value: e.Value,
		From:  e.Start,
		To:    e.End,
	}
	for _, ch := range n.Children() {
		s.Children = append(s.Children, signatureOf(ch))
	}
	return s
}

// Signature returns a hash over the structure of a result tree: types, labels,
// values and spans of all nodes. Trees from separate parses of the same input
// have equal signatures.
func Signature(root *lcrs.Node) (string, error) {
	if root == nil || pwz.ExprOf(root) == nil {
		return "", fmt.Errorf("not a result tree: %v", root)
	}
	return structhash.Hash(signatureOf(root), 1)
}

// Distinct drops trees with equal signatures from a forest, keeping the first
// occurrence of each.
func Distinct(trees []*lcrs.Node) ([]*lcrs.Node, error) {
	seen := make(map[string]bool)
	var distinct []*lcrs.Node
	for _, t := range trees {
		h, err := Signature(t)
		if err != nil {
			return nil, err
		}
		if !seen[h] {
			seen[h] = true
			distinct = append(distinct, t)
		}
	}
	return distinct, nil
}
