package lcrs

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// makeTree creates
//
//     r
//     ├── a
//     │   └── x
//     ├── b
//     └── c
//
func makeTree() *Node {
	return NewNode("r",
		NewNode("a", NewNode("x")),
		NewNode("b"),
		NewNode("c"),
	)
}

func values(nodes []*Node) []string {
	v := make([]string, len(nodes))
	for i, n := range nodes {
		v[i] = n.Value().(string)
	}
	return v
}

func expectPanic(t *testing.T, op string, f func()) {
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("expected %s to panic, didn't", op)
			return
		}
		if _, ok := r.(*NavigationError); !ok {
			t.Errorf("expected %s to panic with navigation error, got %v", op, r)
		}
	}()
	f()
}

func TestNodeChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.lcrs")
	defer teardown()
	//
	r := makeTree()
	ch := values(r.Children())
	if len(ch) != 3 || ch[0] != "a" || ch[1] != "b" || ch[2] != "c" {
		t.Errorf("expected children [a b c], have %v", ch)
	}
	a := NewNode("a")
	p1 := NewNode("p", a, a)
	if p1.Down().ID() != a.ID() || p1.Down().Right().ID() != a.ID() {
		t.Errorf("expected copies of children to keep their identity")
	}
	if a.Right() != nil {
		t.Errorf("expected original child to stay untouched")
	}
	t.Logf("\n%s", Dump(r))
}

func TestZipperNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.lcrs")
	defer teardown()
	//
	r := makeTree()
	z := NewZipper(r)
	z = z.Down()
	if z.Value() != "a" {
		t.Fatalf("expected focus on a, is %v", z.Value())
	}
	x := z.Down()
	if x.Value() != "x" || x.UpLink().Value() != "a" {
		t.Errorf("expected focus on x with parent a, have %v", x)
	}
	z = z.Right().Right()
	if z.Value() != "c" {
		t.Errorf("expected focus on c, is %v", z.Value())
	}
	if z.LeftLink().Value() != "b" || z.LeftLink().RightLink() != nil {
		t.Errorf("expected left link b, severed from its right sibling")
	}
	z = z.Left()
	if z.Value() != "b" || z.RightLink().Value() != "c" {
		t.Errorf("expected focus on b with right sibling c, have %v", z)
	}
	top := z.Up()
	if top.Value() != "r" || top.UpLink() != nil {
		t.Errorf("expected to be at root, have %v", top)
	}
	ch := values(top.Focus().Children())
	if len(ch) != 3 || ch[0] != "a" || ch[2] != "c" {
		t.Errorf("expected root children to be rebuilt as [a b c], have %v", ch)
	}
	if top.ID() != r.ID() {
		t.Errorf("expected navigation to keep identities")
	}
}

func TestZipperInvalidNavigation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.lcrs")
	defer teardown()
	//
	z := NewZipper(makeTree())
	expectPanic(t, "up", func() { z.Up() })
	expectPanic(t, "left", func() { z.Down().Left() })
	expectPanic(t, "right", func() { z.Down().Right().Right().Right() })
	expectPanic(t, "down", func() { z.Down().Right().Down() })
	expectPanic(t, "delete-before", func() { z.Down().DeleteBefore() })
}

func TestZipperRewrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.lcrs")
	defer teardown()
	//
	r := makeTree()
	b := NewZipper(r).Down().Right()
	b2 := b.WithValue("B")
	if b2.ID() == b.ID() || b2.PrevID() != b.PrevID() || b2.OriginalID() != b.OriginalID() {
		t.Errorf("expected rewrite to create fresh id, keeping previous and original ids")
	}
	top := b2.Up()
	ch := values(top.Focus().Children())
	if ch[1] != "B" {
		t.Errorf("expected rewritten child, have %v", ch)
	}
	if values(r.Children())[1] != "b" {
		t.Errorf("expected original tree to be unchanged")
	}
	s := b.Splice(NewNode("y", NewNode("z")))
	if s.Value() != "y" || s.DownLink().Value() != "z" || s.RightLink().Value() != "c" {
		t.Errorf("expected splice to keep right link and take value and children")
	}
}

func TestListEdits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.lcrs")
	defer teardown()
	//
	b := NewZipper(makeTree()).Down().Right()
	z := b.InsertAfter(NewNode("n"))
	if z.Value() != "b" || z.Right().Value() != "n" || z.Right().Right().Value() != "c" {
		t.Errorf("insert-after did not produce b n c")
	}
	z = b.InsertBefore(NewNode("m"))
	if ch := values(z.Up().Focus().Children()); len(ch) != 4 || ch[1] != "m" {
		t.Errorf("insert-before: expected [a m b c], have %v", ch)
	}
	z = b.DeleteAfter()
	if ch := values(z.Up().Focus().Children()); len(ch) != 2 || ch[1] != "b" {
		t.Errorf("delete-after: expected [a b], have %v", ch)
	}
	z = b.DeleteBefore()
	if ch := values(z.Up().Focus().Children()); len(ch) != 2 || ch[0] != "b" {
		t.Errorf("delete-before: expected [b c], have %v", ch)
	}
	sibs := values(b.Right().Siblings())
	if len(sibs) != 3 || sibs[0] != "a" || sibs[2] != "c" {
		t.Errorf("expected siblings [a b c], have %v", sibs)
	}
}

func TestDownTo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.lcrs")
	defer teardown()
	//
	r := makeTree()
	z := NewZipper(r)
	c := z.DownTo(r.Down().Right().Right())
	if c.Value() != "c" || c.LeftLink() != nil || c.RightLink() != nil {
		t.Errorf("expected c as the only child, have %v", c)
	}
	if ch := values(c.Up().Focus().Children()); len(ch) != 1 {
		t.Errorf("expected re-parented child to be the only child, have %v", ch)
	}
}

func TestArenaLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.lcrs")
	defer teardown()
	//
	// S = ( a S ) b
	a := NewArena()
	slot := a.Reserve()
	self := a.Ref(slot)
	s := NewNode("S", NewNode("a"), self, NewNode("b"))
	if err := a.Fill(slot, s); err != nil {
		t.Fatal(err)
	}
	z := NewZipper(s).Down().Right()
	if z.Value() != "S" {
		t.Fatalf("expected loop marker to be resolved to S, is %v", z.Value())
	}
	if z.PrevID() != s.PrevID() {
		t.Errorf("expected resolved node to share the previous identity of S")
	}
	if z.RightLink() == nil || z.RightLink().Value() != "b" {
		t.Errorf("expected resolved node to keep the marker's right sibling")
	}
	// descend once more through the cycle
	z = z.Down().Right()
	if z.Value() != "S" || z.PrevID() != s.PrevID() {
		t.Errorf("expected second level to resolve to S as well")
	}
	if !a.Filled() || a.Target(slot) == nil {
		t.Errorf("expected arena to be filled")
	}
}

func TestArenaIllFounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.lcrs")
	defer teardown()
	//
	a := NewArena()
	s0, s1 := a.Reserve(), a.Reserve()
	if err := a.Fill(s0, a.Ref(s0)); !errors.Is(err, ErrIllFounded) {
		t.Errorf("expected self-loop to be rejected, got %v", err)
	}
	if err := a.Fill(s0, a.Ref(s1)); err != nil {
		t.Errorf("expected forward reference to be accepted, got %v", err)
	}
	if err := a.Fill(s1, a.Ref(s0)); !errors.Is(err, ErrIllFounded) {
		t.Errorf("expected 2-cycle to be rejected, got %v", err)
	}
	if a.Target(s0) != nil {
		t.Errorf("expected unresolvable target to be nil")
	}
	expectPanic(t, "resolve", func() { NewZipper(a.Ref(s1)) })
}
