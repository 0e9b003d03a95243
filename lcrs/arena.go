package lcrs

import (
	"errors"
	"fmt"
)

// ErrIllFounded is returned when a slot would (directly or through a chain of
// loop markers) resolve to itself.
var ErrIllFounded = errors.New("ill-founded cycle")

// ErrUnfilledSlot is flagged when navigation hits a loop marker whose slot is empty.
var ErrUnfilledSlot = errors.New("unfilled arena slot")

// Arena holds the targets of loop markers. Slots are reserved first and filled
// later, which is how cyclic structures are tied together.
type Arena struct {
	slots []*Node
}

type loopRef struct {
	arena *Arena
	slot  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Reserve allocates a new empty slot and returns its index.
func (a *Arena) Reserve() int {
	a.slots = append(a.slots, nil)
	return len(a.slots) - 1
}

// Size returns the number of slots, filled or not.
func (a *Arena) Size() int {
	return len(a.slots)
}

// Ref creates a loop marker for slot i. Every call returns a new marker node.
func (a *Arena) Ref(i int) *Node {
	a.check(i)
	id := nextID()
	return &Node{
		id:         id,
		originalID: id,
		prevID:     id,
		loop:       &loopRef{arena: a, slot: i},
	}
}

// Fill stores the target node for slot i. Filling a slot with a marker which
// resolves back to the same slot is rejected.
func (a *Arena) Fill(i int, n *Node) error {
	a.check(i)
	if n == nil {
		return fmt.Errorf("cannot fill slot %d with nil", i)
	}
	if a.slots[i] != nil {
		return fmt.Errorf("slot %d already filled", i)
	}
	a.slots[i] = n.Detach()
	if _, err := a.follow(i); errors.Is(err, ErrIllFounded) {
		a.slots[i] = nil
		return err
	}
	tracer().Debugf("arena slot %d := %v", i, n)
	return nil
}

// Target returns the node stored in slot i, following chains of loop markers.
// It returns nil if a slot on the way has not been filled yet.
func (a *Arena) Target(i int) *Node {
	a.check(i)
	n, err := a.follow(i)
	if err != nil {
		return nil
	}
	return n
}

// Filled reports whether every slot has been filled.
func (a *Arena) Filled() bool {
	for _, n := range a.slots {
		if n == nil {
			return false
		}
	}
	return true
}

func (a *Arena) check(i int) {
	if i < 0 || i >= len(a.slots) {
		panic(fmt.Sprintf("lcrs: arena slot %d out of range [0,%d)", i, len(a.slots)))
	}
}

// follow resolves slot i, stepping through slots which hold nothing but a loop
// marker. Unfilled slots on the way yield ErrUnfilledSlot.
func (a *Arena) follow(i int) (*Node, error) {
	arena, slot := a, i
	seen := make(map[loopRef]bool)
	for {
		ref := loopRef{arena: arena, slot: slot}
		if seen[ref] {
			return nil, fmt.Errorf("slot %d: %w", i, ErrIllFounded)
		}
		seen[ref] = true
		n := arena.slots[slot]
		if n == nil {
			return nil, fmt.Errorf("slot %d: %w", slot, ErrUnfilledSlot)
		}
		if n.loop == nil {
			return n, nil
		}
		arena, slot = n.loop.arena, n.loop.slot
	}
}

// resolve substitutes a loop marker by (a fresh copy of) its target. The copy
// keeps the marker's right sibling and the target's previous identity.
// Non-marker nodes are returned unchanged.
func resolve(n *Node) *Node {
	if n == nil || n.loop == nil {
		return n
	}
	target, err := n.loop.arena.follow(n.loop.slot)
	if err != nil {
		panic(&NavigationError{Op: "resolve", Node: n, Err: err})
	}
	c := target.fresh()
	c.right = n.right
	return c
}
