package pwz

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/pwz/lcrs"
)

// memoKey identifies a grammar position at a start position in the input.
// Grammar positions are identified by their previous identity, which is stable
// across rewrites and duplicates of the same node.
type memoKey struct {
	id  uint64
	pos int
}

// Mem is a memo record for an expression started at an input position.
//
// Parents are the zippers which have asked for the expression at that position,
// each focused on the (unparsed) expression. Results are the completed trees
// found so far, grouped by their end position.
type Mem struct {
	key     memoKey
	parents *arraylist.List // of *lcrs.Zipper
	results *treemap.Map    // int → []*lcrs.Node
}

func newMem(key memoKey, parent *lcrs.Zipper) *Mem {
	m := &Mem{
		key:     key,
		parents: arraylist.New(),
		results: treemap.NewWithIntComparator(),
	}
	m.parents.Add(parent)
	return m
}

func (m *Mem) addParent(z *lcrs.Zipper) {
	m.parents.Add(z)
}

// Parents returns the registered parents in order of registration.
func (m *Mem) Parents() []*lcrs.Zipper {
	p := make([]*lcrs.Zipper, 0, m.parents.Size())
	for _, v := range m.parents.Values() {
		p = append(p, v.(*lcrs.Zipper))
	}
	return p
}

// addResult prepends a result ending at position pos.
func (m *Mem) addResult(pos int, result *lcrs.Node) {
	prev := m.ResultsAt(pos)
	r := make([]*lcrs.Node, 0, len(prev)+1)
	r = append(r, result)
	m.results.Put(pos, append(r, prev...))
}

// ResultsAt returns the results ending at pos, most recent first.
func (m *Mem) ResultsAt(pos int) []*lcrs.Node {
	if r, found := m.results.Get(pos); found {
		return r.([]*lcrs.Node)
	}
	return nil
}

// Ends lists the end positions for which there are results, in ascending order.
func (m *Mem) Ends() []int {
	keys := m.results.Keys()
	ends := make([]int, len(keys))
	for i, k := range keys {
		ends[i] = k.(int)
	}
	return ends
}

func (m *Mem) String() string {
	if m == nil {
		return "mem<nil>"
	}
	return fmt.Sprintf("mem<%d@%d|%d parents|ends %v>", m.key.id, m.key.pos,
		m.parents.Size(), m.Ends())
}

// --- Memo table -------------------------------------------------------

// memoTable maps grammar positions at input positions to memo records.
// A table is owned by a single derivation.
type memoTable map[memoKey]*Mem

func (t memoTable) lookup(id uint64, pos int) (*Mem, bool) {
	m, ok := t[memoKey{id: id, pos: pos}]
	return m, ok
}

func (t memoTable) insert(m *Mem) {
	t[m.key] = m
}
