package pwz

import "github.com/npillmayer/pwz/lcrs"

// CompactVertical collapses chains of unlabeled wrappers: a completed expression
// without label and with exactly one child covering the same span is replaced
// by that child, repeatedly. Spans of the surviving node are untouched.
//
// The result is detached from any right siblings n might have.
func CompactVertical(n *lcrs.Node) *lcrs.Node {
	if n == nil {
		return nil
	}
	for {
		e := ExprOf(n)
		if e == nil || !e.Done || e.Label != "" {
			break
		}
		child := n.Down()
		if child == nil || child.Right() != nil || child.IsLoop() {
			break
		}
		c := ExprOf(child)
		if c == nil || !c.Done || c.Span() != e.Span() {
			break
		}
		n = child
	}
	return n.Detach()
}

// CompactHorizontal removes content-free nodes from a list of siblings: completed
// expressions without label, value or children. It returns the compacted list.
func CompactHorizontal(siblings []*lcrs.Node) []*lcrs.Node {
	r := siblings[:0:0]
	for _, s := range siblings {
		if !contentFree(s) {
			r = append(r, s)
		}
	}
	return r
}

// Compact applies both compactions to a complete result tree, bottom up.
// Applying it to an already compacted tree does not change the tree.
func Compact(n *lcrs.Node) *lcrs.Node {
	if n == nil {
		return nil
	}
	if n.Down() == nil {
		return CompactVertical(n)
	}
	var children []*lcrs.Node
	for _, ch := range n.Children() {
		children = append(children, Compact(ch))
	}
	children = CompactHorizontal(children)
	n = lcrs.NewNode(n.Value(), children...)
	return CompactVertical(n)
}

// vertical applies vertical compaction if it is enabled for the derivation.
func (d *Derivation) vertical(n *lcrs.Node) *lcrs.Node {
	if !d.opts.vertical {
		return n
	}
	return CompactVertical(n)
}

// closeSeq moves up from the last child of a sequence. A content-free last
// child is dropped on the way if horizontal compaction is enabled.
func (d *Derivation) closeSeq(z *lcrs.Zipper) *lcrs.Zipper {
	if !d.opts.horizontal || !contentFree(z.Focus()) {
		return z.Up()
	}
	if z.LeftLink() == nil {
		return z.Up().WithDown()
	}
	return z.Left().DeleteAfter().Up()
}

// nextInSeq moves right to the next child of a sequence. A content-free
// predecessor is dropped if horizontal compaction is enabled.
func (d *Derivation) nextInSeq(z *lcrs.Zipper) *lcrs.Zipper {
	next := z.Right()
	if d.opts.horizontal && contentFree(z.Focus()) {
		next = next.DeleteBefore()
	}
	return next
}
