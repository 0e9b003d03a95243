package lcrs

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// serial is the process-wide source of node identities.
var serial uint64

func nextID() uint64 {
	return atomic.AddUint64(&serial, 1)
}

// Node is a node of a persistent left-child/right-sibling tree.
// Nodes are immutable once they have been handed out to clients.
type Node struct {
	id         uint64
	value      interface{}
	right      *Node
	down       *Node
	originalID uint64
	prevID     uint64
	loop       *loopRef // non-nil for loop markers only
}

// NewNode creates a node with a fresh identity, holding value, and with a list of
// children. Children are copied (identities kept, right links re-wired), so a
// child node may be passed to any number of calls to NewNode.
func NewNode(value interface{}, children ...*Node) *Node {
	id := nextID()
	n := &Node{
		id:         id,
		value:      value,
		originalID: id,
		prevID:     id,
	}
	n.down = Chain(children...)
	return n
}

// Chain links copies of nodes into a sibling list and returns the head of the list.
// It returns nil for an empty argument list.
func Chain(nodes ...*Node) *Node {
	var next *Node
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] == nil {
			panic("lcrs: attempt to chain a nil node")
		}
		c := nodes[i].clone()
		c.right = next
		next = c
	}
	return next
}

// clone makes a shallow copy of n, keeping all identities.
func (n *Node) clone() *Node {
	c := *n
	return &c
}

// fresh makes a shallow copy of n with a new id. Previous and original
// identities are kept.
func (n *Node) fresh() *Node {
	c := *n
	c.id = nextID()
	return &c
}

// Reissue creates a node with fresh identities (id, original and previous)
// holding value and sharing the children of n. Loop markers among the children
// stay unresolved.
func Reissue(n *Node, value interface{}) *Node {
	id := nextID()
	return &Node{
		id:         id,
		value:      value,
		down:       n.down,
		originalID: id,
		prevID:     id,
	}
}

// Resolve returns the target of a loop marker, keeping the marker's right
// sibling. Other nodes are returned as they are. Resolve panics with a
// *NavigationError for markers of unfilled slots.
func (n *Node) Resolve() *Node {
	return resolve(n)
}

// ID returns the identity of a node. Every allocation of a node gets its own ID.
func (n *Node) ID() uint64 {
	return n.id
}

// OriginalID is the identity of the node this node has been derived from.
func (n *Node) OriginalID() uint64 {
	return n.originalID
}

// PrevID is an identity which survives value rewrites and duplication.
func (n *Node) PrevID() uint64 {
	return n.prevID
}

// Value returns the payload of a node.
func (n *Node) Value() interface{} {
	return n.value
}

// Right returns the right sibling link, which may be nil. Loop markers are not
// resolved; use a Zipper for navigation.
func (n *Node) Right() *Node {
	return n.right
}

// Down returns the first child link, which may be nil. Loop markers are not
// resolved; use a Zipper for navigation.
func (n *Node) Down() *Node {
	return n.down
}

// IsLoop is true for loop markers.
func (n *Node) IsLoop() bool {
	return n.loop != nil
}

// Children returns the children of n as a slice, resolving loop markers.
func (n *Node) Children() []*Node {
	var ch []*Node
	for c := n.down; c != nil; c = c.right {
		ch = append(ch, resolve(c))
	}
	return ch
}

// Detach returns a copy of n without a right sibling. Identities are kept.
func (n *Node) Detach() *Node {
	if n.right == nil {
		return n
	}
	c := n.clone()
	c.right = nil
	return c
}

// Duplicate returns a copy of n with a fresh ID. The copy shares n's previous
// identity and therefore stands for the same logical position.
func (n *Node) Duplicate() *Node {
	return n.fresh()
}

// WithValue returns a copy of n holding a different value. The copy gets a fresh ID.
func (n *Node) WithValue(value interface{}) *Node {
	c := n.fresh()
	c.value = value
	return c
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.loop != nil {
		return fmt.Sprintf("↺%d", n.loop.slot)
	}
	return fmt.Sprintf("#%d[%v]", n.id, n.value)
}

// Dump returns an indented, multi-line representation of the tree below n.
// Loop markers are printed as references and not followed.
func Dump(n *Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n *Node, level int) {
	for ; n != nil; n = n.right {
		b.WriteString(strings.Repeat("   ", level))
		b.WriteString(n.String())
		b.WriteString("\n")
		if n.loop == nil {
			dump(b, n.down, level+1)
		}
	}
}
