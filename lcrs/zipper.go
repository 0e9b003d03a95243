package lcrs

import "fmt"

// NavigationError is raised (as a panic) whenever a navigation or edit operation
// is applied to a zipper which does not have the required link. These are
// programming errors, not parse failures.
type NavigationError struct {
	Op   string
	Node *Node
	Err  error
}

func (e *NavigationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lcrs: invalid %s at %v: %v", e.Op, e.Node, e.Err)
	}
	return fmt.Sprintf("lcrs: invalid %s at %v", e.Op, e.Node)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

func invalid(op string, n *Node) {
	panic(&NavigationError{Op: op, Node: n})
}

// --- Zipper ----------------------------------------------------------------

// Zipper is a focused view onto a tree. The focus node keeps its right and down
// links; the path back to the root is kept in a chain of reconstructed
// parents (up) and left siblings (left).
//
// Zippers are values: every operation returns a new zipper and leaves the
// receiver intact.
type Zipper struct {
	node *Node
	up   *Zipper // parent, with down link severed
	left *Zipper // left sibling, with right and up links severed
}

// NewZipper creates a zipper focused on n, which is treated as a root.
// A loop marker is resolved.
func NewZipper(n *Node) *Zipper {
	if n == nil {
		invalid("zipper", nil)
	}
	return &Zipper{node: resolve(n)}
}

// Focus returns the node in focus.
func (z *Zipper) Focus() *Node {
	return z.node
}

// Value returns the payload of the focus node.
func (z *Zipper) Value() interface{} {
	return z.node.value
}

// ID returns the ID of the focus node.
func (z *Zipper) ID() uint64 {
	return z.node.id
}

// PrevID returns the previous identity of the focus node.
func (z *Zipper) PrevID() uint64 {
	return z.node.prevID
}

// OriginalID returns the original identity of the focus node.
func (z *Zipper) OriginalID() uint64 {
	return z.node.originalID
}

// UpLink returns the reconstructed parent, or nil at the top.
func (z *Zipper) UpLink() *Zipper {
	return z.up
}

// LeftLink returns the reconstructed left sibling, or nil for a first child.
func (z *Zipper) LeftLink() *Zipper {
	return z.left
}

// RightLink returns the right sibling of the focus, or nil for a last child.
func (z *Zipper) RightLink() *Node {
	return z.node.right
}

// DownLink returns the first child of the focus, or nil for a leaf.
func (z *Zipper) DownLink() *Node {
	return z.node.down
}

// --- Navigation ------------------------------------------------------------

// Right moves the focus to the right sibling.
// It panics with a *NavigationError if there is none.
func (z *Zipper) Right() *Zipper {
	if z.node.right == nil {
		invalid("right", z.node)
	}
	l := z.node.clone()
	l.right = nil
	return &Zipper{
		node: resolve(z.node.right),
		up:   z.up,
		left: &Zipper{node: l, left: z.left},
	}
}

// Left moves the focus to the left sibling.
// It panics with a *NavigationError if there is none.
func (z *Zipper) Left() *Zipper {
	if z.left == nil {
		invalid("left", z.node)
	}
	n := z.left.node.clone()
	n.right = z.node
	return &Zipper{
		node: n,
		up:   z.up,
		left: z.left.left,
	}
}

// Down moves the focus to the first child.
// It panics with a *NavigationError if there is none.
func (z *Zipper) Down() *Zipper {
	if z.node.down == nil {
		invalid("down", z.node)
	}
	p := z.node.clone()
	p.down = nil
	return &Zipper{
		node: resolve(z.node.down),
		up:   &Zipper{node: p, up: z.up, left: z.left},
	}
}

// Up moves the focus to the parent. The parent's children are rebuilt from the
// left chain, the focus and the focus' right siblings.
// It panics with a *NavigationError if there is no parent.
func (z *Zipper) Up() *Zipper {
	if z.up == nil {
		invalid("up", z.node)
	}
	p := z.up.node.clone()
	p.down = z.rewind()
	return &Zipper{
		node: p,
		up:   z.up.up,
		left: z.up.left,
	}
}

// DownTo descends into n as if n were the one and only child of the focus.
// The parent's original children are dropped from the path.
func (z *Zipper) DownTo(n *Node) *Zipper {
	if n == nil {
		invalid("down-to", z.node)
	}
	p := z.node.clone()
	p.down = nil
	c := resolve(n).Detach()
	return &Zipper{
		node: c,
		up:   &Zipper{node: p, up: z.up, left: z.left},
	}
}

// Top moves up until the root is in focus.
func (z *Zipper) Top() *Zipper {
	for z.up != nil {
		z = z.Up()
	}
	return z
}

// Siblings collects the node in focus and all of its left siblings, left to right.
func (z *Zipper) Siblings() []*Node {
	var sibs []*Node
	for l := z.left; l != nil; l = l.left {
		sibs = append(sibs, l.node)
	}
	for i, j := 0, len(sibs)-1; i < j; i, j = i+1, j-1 {
		sibs[i], sibs[j] = sibs[j], sibs[i]
	}
	return append(sibs, z.node.Detach())
}

// rewind rebuilds the sibling list starting at the left-most sibling.
func (z *Zipper) rewind() *Node {
	cur := z.node
	for l := z.left; l != nil; l = l.left {
		n := l.node.clone()
		n.right = cur
		cur = n
	}
	return cur
}

// --- Rewriting -------------------------------------------------------------

// WithValue replaces the value of the focus node. The new focus node gets a fresh
// ID and keeps its previous and original identities.
func (z *Zipper) WithValue(value interface{}) *Zipper {
	n := z.node.fresh()
	n.value = value
	return &Zipper{node: n, up: z.up, left: z.left}
}

// WithDown replaces the children of the focus node by a chain of copies of
// children. The new focus node gets a fresh ID.
func (z *Zipper) WithDown(children ...*Node) *Zipper {
	n := z.node.fresh()
	n.down = Chain(children...)
	return &Zipper{node: n, up: z.up, left: z.left}
}

// Splice grafts value and children of n onto the focus. Right link, path and
// previous identity of the focus are kept, and the focus gets a fresh ID.
func (z *Zipper) Splice(n *Node) *Zipper {
	if n == nil {
		invalid("splice", z.node)
	}
	c := z.node.fresh()
	c.value = n.value
	c.down = n.down
	return &Zipper{node: c, up: z.up, left: z.left}
}

// --- List edits ------------------------------------------------------------

// InsertAfter inserts a copy of n as the right sibling of the focus.
// The focus stays where it is.
func (z *Zipper) InsertAfter(n *Node) *Zipper {
	if n == nil {
		invalid("insert-after", z.node)
	}
	ins := n.clone()
	ins.right = z.node.right
	f := z.node.clone()
	f.right = ins
	return &Zipper{node: f, up: z.up, left: z.left}
}

// InsertBefore inserts a copy of n as the left sibling of the focus.
// The focus stays where it is.
func (z *Zipper) InsertBefore(n *Node) *Zipper {
	if n == nil {
		invalid("insert-before", z.node)
	}
	ins := n.clone()
	ins.right = nil
	return &Zipper{
		node: z.node,
		up:   z.up,
		left: &Zipper{node: ins, left: z.left},
	}
}

// DeleteAfter removes the right sibling of the focus.
// It panics with a *NavigationError if there is none.
func (z *Zipper) DeleteAfter() *Zipper {
	if z.node.right == nil {
		invalid("delete-after", z.node)
	}
	f := z.node.clone()
	f.right = z.node.right.right
	return &Zipper{node: f, up: z.up, left: z.left}
}

// DeleteBefore removes the left sibling of the focus.
// It panics with a *NavigationError if there is none.
func (z *Zipper) DeleteBefore() *Zipper {
	if z.left == nil {
		invalid("delete-before", z.node)
	}
	return &Zipper{node: z.node, up: z.up, left: z.left.left}
}

func (z *Zipper) String() string {
	depth := 0
	for u := z.up; u != nil; u = u.up {
		depth++
	}
	return fmt.Sprintf("⟨%v @%d⟩", z.node, depth)
}
