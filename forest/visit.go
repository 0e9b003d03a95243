package forest

import (
	"github.com/npillmayer/pwz"
	"github.com/npillmayer/pwz/lcrs"
)

// RuleNode represents a node occurring during a parse tree walk.
type RuleNode struct {
	node  *lcrs.Node
	Value interface{} // user-defined value of a node
}

// Expr returns the completed expression a RuleNode refers to.
func (rnode *RuleNode) Expr() *pwz.Expr {
	return pwz.ExprOf(rnode.node)
}

// Span returns the span of input positions this node covers.
func (rnode *RuleNode) Span() pwz.Span {
	return rnode.Expr().Span()
}

// Node returns the underlying tree node.
func (rnode *RuleNode) Node() *lcrs.Node {
	return rnode.node
}

// RHS collects the children of a node as a slice.
func RHS(n *lcrs.Node) []*RuleNode {
	children := n.Children()
	rhs := make([]*RuleNode, len(children))
	for i, ch := range children {
		rhs[i] = &RuleNode{node: ch}
	}
	return rhs
}

// A Cursor is a movable mark within a result tree, intended for navigating over
// rule nodes. It is a thin layer over a zipper.
type Cursor struct {
	z *lcrs.Zipper
}

// NewCursor sets up a cursor at the root of a result tree.
func NewCursor(root *lcrs.Node) *Cursor {
	if root == nil {
		return nil
	}
	return &Cursor{z: lcrs.NewZipper(root.Detach())}
}

// Current returns the node the cursor is positioned at.
func (c *Cursor) Current() *RuleNode {
	return &RuleNode{node: c.z.Focus()}
}

// Up moves the cursor up to the parent node of the current node, if any.
func (c *Cursor) Up() (*RuleNode, bool) {
	if c.z.UpLink() == nil {
		return c.Current(), false
	}
	c.z = c.z.Up()
	tracer().Debugf("UP Cursor @ %v", c.z.Value())
	return c.Current(), true
}

// Down moves the cursor down to the first child of the current node, if any.
// dir lets clients start at either the leftmost child (default) or the rightmost
// child.
func (c *Cursor) Down(dir Direction) (*RuleNode, bool) {
	if c.z.DownLink() == nil {
		return c.Current(), false
	}
	c.z = c.z.Down()
	if dir == RtoL {
		for c.z.RightLink() != nil {
			c.z = c.z.Right()
		}
	}
	tracer().Debugf("DOWN Cursor @ %v", c.z.Value())
	return c.Current(), true
}

// Sibling moves the cursor to the next sibling of the current node in direction
// dir, if any.
func (c *Cursor) Sibling(dir Direction) (*RuleNode, bool) {
	if dir == RtoL {
		if c.z.LeftLink() == nil {
			return c.Current(), false
		}
		c.z = c.z.Left()
	} else {
		if c.z.RightLink() == nil {
			return c.Current(), false
		}
		c.z = c.z.Right()
	}
	tracer().Debugf("SIBLING Cursor @ %v", c.z.Value())
	return c.Current(), true
}

// TopDown traverses a sub-tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func (c *Cursor) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	tracer().Debugf("TopDown starting at node %v", c.z.Value())
	return c.traverseTopDown(listener, dir, breakmode, 0)
}

func (c *Cursor) traverseTopDown(listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	expr := pwz.ExprOf(c.z.Focus())
	if c.z.DownLink() == nil {
		ctxt := makeCtxt(expr.Span(), level, attrs(listener, expr))
		return listener.Terminal(expr, ctxt)
	}
	tracer().Debugf(">>> %v", expr)
	rhsNodes := RHS(c.z.Focus())
	ctxt := makeCtxt(expr.Span(), level, attrs(listener, expr))
	doContinue := listener.EnterRule(expr, rhsNodes, ctxt)
	if doContinue || breakmode == Continue { // listener signalled us to traverse children nodes
		i := 0
		if dir == RtoL {
			i = len(rhsNodes) - 1
		}
		if _, ok := c.Down(dir); ok {
			for ; ok; _, ok = c.Sibling(dir) {
				chvalue := c.traverseTopDown(listener, dir, breakmode, level+1)
				tracer().Debugf("child value[%d] = %v", i, chvalue)
				rhsNodes[i].Value = chvalue
				i += int(dir)
			}
			c.Up()
		}
	}
	value := listener.ExitRule(expr, rhsNodes, ctxt)
	tracer().Debugf("<<< %v", expr)
	return value
}

func attrs(listener Listener, expr *pwz.Expr) interface{} {
	return listener.MakeAttrs(expr)
}

// Direction lets clients decide whether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint whether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a result tree.
//
// Arguments are:
//
//     - *pwz.Expr:   the completed expression at the current node
//     - []*RuleNode: the children of the node
//     - RuleCtxt:    contextual information for the node
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule and Terminal may return user-defined values
// to be propagated upwards of the tree. Terminal is called for all nodes without
// children, i.e. for tokens, lexemes and empty matches.
type Listener interface {
	EnterRule(*pwz.Expr, []*RuleNode, RuleCtxt) bool
	ExitRule(*pwz.Expr, []*RuleNode, RuleCtxt) interface{}
	Terminal(*pwz.Expr, RuleCtxt) interface{}
	MakeAttrs(*pwz.Expr) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span  pwz.Span    // span of input positions covered by this node
	Level int         // nesting level
	Attrs interface{} // client-defined attributes local to node
}

func makeCtxt(span pwz.Span, level int, attrs interface{}) RuleCtxt {
	return RuleCtxt{
		Span:  span,
		Level: level,
		Attrs: attrs,
	}
}

// ---------------------------------------------------------------------------
