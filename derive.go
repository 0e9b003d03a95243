package pwz

import (
	"fmt"

	"github.com/npillmayer/pwz/lcrs"
	"github.com/npillmayer/schuko/gconf"
)

// Direction tells what a step of the derivation is about to do with the zipper
// it carries.
type Direction int8

// Steps move down into an expression (Down, then DownPrime once the memo table
// has been consulted), up with a completed expression (Up, then UpPrime once
// the result has been delivered to a parent) or wait for the next token (None).
const (
	Down Direction = iota
	DownPrime
	Up
	UpPrime
	None
)

func (d Direction) String() string {
	switch d {
	case Down:
		return "down"
	case DownPrime:
		return "down′"
	case Up:
		return "up"
	case UpPrime:
		return "up′"
	case None:
		return "none"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Step is an entry of the derivation's frontier.
type Step struct {
	Dir    Direction
	Zipper *lcrs.Zipper
	memo   *Mem
}

// Memo returns the memo record a step refers to, if any.
func (s Step) Memo() *Mem {
	return s.memo
}

func (s Step) String() string {
	return fmt.Sprintf("%s %v", s.Dir, exprAt(s.Zipper))
}

// --- Derivative ------------------------------------------------------------

// derive performs a single step at input position pos, with token being the
// token at pos. It returns the successor steps, which may be none.
func (d *Derivation) derive(pos int, token string, atEnd bool, s Step) ([]Step, error) {
	switch s.Dir {
	case Down:
		return d.down(pos, s), nil
	case DownPrime:
		return d.downPrime(pos, token, atEnd, s)
	case Up:
		return d.up(pos, s), nil
	case UpPrime:
		return d.upPrime(pos, atEnd, s)
	case None:
		return []Step{s}, nil
	}
	panic(fmt.Sprintf("pwz: invalid step direction %d", s.Dir))
}

// down consults the memo table. The first visitor of an expression at a
// position continues with DownPrime; later visitors register as parents and
// receive the results found so far.
func (d *Derivation) down(pos int, s Step) []Step {
	z := s.Zipper
	if m, found := d.memo.lookup(z.PrevID(), pos); found {
		m.addParent(z)
		results := m.ResultsAt(pos)
		steps := make([]Step, 0, len(results))
		for _, r := range results {
			steps = append(steps, Step{Dir: UpPrime, Zipper: z.Splice(d.vertical(r))})
		}
		tracer().Debugf("memo hit %v, replaying %d results", m, len(results))
		return steps
	}
	m := newMem(memoKey{id: z.PrevID(), pos: pos}, z)
	d.memo.insert(m)
	return []Step{{Dir: DownPrime, Zipper: z, memo: m}}
}

func (d *Derivation) downPrime(pos int, token string, atEnd bool, s Step) ([]Step, error) {
	z := s.Zipper
	e := exprAt(z)
	if e == nil {
		return nil, d.defect(z.Focus())
	}
	switch e.Type {
	case TokExpr:
		if !match(e.Label, token) {
			return nil, nil
		}
		tok := &Expr{Type: SeqExpr, Value: token, Start: pos, End: pos + 1, Done: true}
		if atEnd {
			tok.End = pos
			return []Step{{Dir: Up, Zipper: z.WithValue(tok), memo: s.memo}}, nil
		}
		return []Step{{Dir: None, Zipper: z.WithValue(tok), memo: s.memo}}, nil
	case LookExpr:
		ok := match(e.Label, token)
		if e.Negated {
			ok = !ok
		}
		if !ok {
			return nil, nil
		}
		look := &Expr{Type: SeqExpr, Start: pos, End: pos, Done: true}
		return []Step{{Dir: Up, Zipper: z.WithValue(look).WithDown(), memo: s.memo}}, nil
	case SeqExpr:
		if z.DownLink() == nil {
			empty := &Expr{Type: SeqExpr, Label: e.Label, Start: pos, End: pos, Done: true}
			return []Step{{Dir: Up, Zipper: z.WithValue(empty), memo: s.memo}}, nil
		}
		c := z.WithValue(continuation(e, SeqCont, pos, s.memo))
		return []Step{{Dir: Down, Zipper: c.Down()}}, nil
	case AltExpr:
		c := z.WithValue(continuation(e, AltCont, pos, s.memo))
		var steps []Step
		for ch := z.DownLink(); ch != nil; ch = ch.Right() {
			steps = append(steps, Step{Dir: Down, Zipper: c.DownTo(ch)})
		}
		return steps, nil
	case RepExpr:
		body := z.DownLink()
		if body == nil {
			return nil, d.defect(z.Focus())
		}
		rc := continuation(e, RepCont, pos, s.memo)
		rc.body = body.Detach()
		empty := &Expr{Type: RepExpr, Label: e.Label, Start: pos, End: pos, Done: true}
		return []Step{
			{Dir: Down, Zipper: z.WithValue(rc).DownTo(body)},
			{Dir: Up, Zipper: z.WithValue(empty).WithDown(), memo: s.memo},
		}, nil
	case LexExpr, IgnExpr:
		if z.DownLink() == nil {
			return nil, d.defect(z.Focus())
		}
		t := LexCont
		if e.Type == IgnExpr {
			t = IgnCont
		}
		c := z.WithValue(continuation(e, t, pos, s.memo))
		return []Step{{Dir: Down, Zipper: c.Down()}}, nil
	}
	return nil, d.defect(z.Focus())
}

// up stores a completed expression in its memo record and hands it to every
// parent registered so far. Every up-step carries the memo record of the
// expression it completes; a step without one is a bug in the derivation.
func (d *Derivation) up(pos int, s Step) []Step {
	m := s.memo
	if m == nil {
		panic(fmt.Sprintf("pwz: up-step without memo record at %v", s.Zipper))
	}
	result := s.Zipper.Focus().Detach()
	m.addResult(pos, result)
	parents := m.Parents()
	steps := make([]Step, 0, len(parents))
	compacted := d.vertical(result)
	for _, p := range parents {
		steps = append(steps, Step{Dir: UpPrime, Zipper: p.Splice(compacted)})
	}
	return steps
}

// upPrime continues the parent of a completed expression. The parent's
// continuation decides what comes next.
func (d *Derivation) upPrime(pos int, atEnd bool, s Step) ([]Step, error) {
	z := s.Zipper
	if z.UpLink() == nil {
		if atEnd {
			tracer().Debugf("accepting %v", exprAt(z))
			return []Step{{Dir: None, Zipper: z}}, nil
		}
		return nil, nil
	}
	c := ExprOf(z.UpLink().Focus())
	if c == nil {
		return nil, d.defect(z.UpLink().Focus())
	}
	switch c.Type {
	case SeqCont:
		if z.RightLink() == nil {
			p := d.closeSeq(z).WithValue(completed(c, SeqExpr, pos))
			return []Step{{Dir: Up, Zipper: p, memo: c.m}}, nil
		}
		return []Step{{Dir: Down, Zipper: d.nextInSeq(z)}}, nil
	case AltCont:
		p := z.Up().WithValue(completed(c, AltExpr, pos))
		return []Step{{Dir: Up, Zipper: p, memo: c.m}}, nil
	case RepCont:
		if it := exprAt(z); it == nil || it.Start == it.End {
			return nil, nil // an empty iteration would repeat forever
		}
		stop := z.Up().WithValue(completed(c, RepExpr, pos))
		more := z.InsertAfter(c.body.Duplicate()).Right()
		return []Step{
			{Dir: Up, Zipper: stop, memo: c.m},
			{Dir: Down, Zipper: more},
		}, nil
	case LexCont:
		lex := completed(c, LexExpr, pos)
		lex.Value = d.input.slice(c.Start, pos)
		return []Step{{Dir: Up, Zipper: z.Up().WithValue(lex).WithDown(), memo: c.m}}, nil
	case IgnCont:
		ign := &Expr{Type: SeqExpr, Start: c.Start, End: pos, Done: true}
		return []Step{{Dir: Up, Zipper: z.Up().WithValue(ign).WithDown(), memo: c.m}}, nil
	}
	return nil, d.defect(z.UpLink().Focus())
}

// defect reports a grammar node the derivation cannot handle.
func (d *Derivation) defect(n *lcrs.Node) error {
	err := fmt.Errorf("%w: %v", ErrUnknownExpression, n)
	tracer().Errorf(err.Error())
	if gconf.GetBool("panic-on-grammar-defect") {
		panic(err)
	}
	return err
}
