package pwz

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/pwz/lcrs"
)

// Derivation is a single parse run of an input against a grammar.
// It owns the frontier of steps, the memo table and the token cache.
//
// A derivation advances by cycles: every cycle processes the first step of the
// frontier which is not waiting for the next token. When all steps are waiting,
// the derivation moves on to the next input position. It is finished when the
// frontier is empty (the input has been rejected) or when all remaining steps
// wait at the end of input (each of them holds a parse tree).
type Derivation struct {
	grammar  *Expression
	input    *tokenCache
	memo     memoTable
	steps    []Step
	position int
	current  int // index of the most recently processed step
	cycles   int
	done     bool
	opts     *options
}

// Progress reports what a call to ProcessSteps did.
type Progress struct {
	Position int  // input position the steps have been processed at
	Current  int  // index of the processed step, -1 if none
	Produced int  // number of successor steps
	Next     int  // input position for the next call
	NextStep int  // index of the next step to process, -1 if none
	Done     bool // no further processing possible
}

// NewDerivation prepares a derivation of the input from r against grammar g.
// The frontier is seeded with a single Down step at the root of g.
func NewDerivation(r io.Reader, g *Expression, opts ...Option) (*Derivation, error) {
	if g == nil || g.root == nil {
		return nil, ErrNoGrammar
	}
	d := &Derivation{
		grammar: g,
		input:   newTokenCache(r),
		memo:    make(memoTable),
		opts:    makeOptions(opts),
		current: -1,
	}
	d.steps = []Step{{Dir: Down, Zipper: lcrs.NewZipper(g.root)}}
	return d, nil
}

// ProcessSteps processes the first active (i.e., non-None) step of steps at
// position, with token being the input token there. The successors of the
// processed step take its place. If there is no active step and the end of input
// has not been reached yet, all waiting steps are released to go up at the next
// position.
//
// ProcessSteps does not modify its steps argument.
func (d *Derivation) ProcessSteps(token string, atEnd bool, position int, steps []Step) ([]Step, Progress, error) {
	prog := Progress{Position: position, Current: -1, Next: position, NextStep: -1}
	for i, s := range steps {
		if s.Dir == None {
			continue
		}
		succ, err := d.derive(position, token, atEnd, s)
		if err != nil {
			return steps, prog, err
		}
		next := make([]Step, 0, len(steps)-1+len(succ))
		next = append(next, steps[:i]...)
		next = append(next, succ...)
		next = append(next, steps[i+1:]...)
		prog.Current, prog.Produced = i, len(succ)
		prog.Done = len(next) == 0
		prog.NextStep = nextActive(next)
		return next, prog, nil
	}
	if atEnd || len(steps) == 0 {
		prog.Done = true
		return steps, prog, nil
	}
	next := make([]Step, len(steps))
	for i, s := range steps {
		next[i] = Step{Dir: Up, Zipper: s.Zipper, memo: s.memo}
	}
	prog.Next = position + 1
	prog.Produced = len(next)
	prog.NextStep = 0
	return next, prog, nil
}

// nextActive returns the index of the first step not waiting for the next
// token, or -1.
func nextActive(steps []Step) int {
	for i, s := range steps {
		if s.Dir != None {
			return i
		}
	}
	return -1
}

// Cycle performs one cycle of the derivation. It returns true when the
// derivation is finished.
func (d *Derivation) Cycle() (bool, error) {
	if d.done {
		return true, nil
	}
	if d.opts.cycleLimit > 0 && d.cycles >= d.opts.cycleLimit {
		return false, fmt.Errorf("%w: %d cycles at position %d", ErrCycleLimit, d.cycles, d.position)
	}
	token, atEnd, err := d.input.at(d.position)
	if err != nil {
		return false, err
	}
	steps, prog, err := d.ProcessSteps(token, atEnd, d.position, d.steps)
	if err != nil {
		return false, err
	}
	d.cycles++
	d.steps, d.current, d.position = steps, prog.Current, prog.Next
	if prog.Current >= 0 && debugging() {
		dumpSteps(d.steps, d.position, d.cycles)
	}
	d.done = prog.Done
	return d.done, nil
}

// Run runs the derivation to its end. Cancellation of ctx is checked
// between cycles.
func (d *Derivation) Run(ctx context.Context) error {
	for !d.done {
		if d.cycles%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := d.Cycle(); err != nil {
			return err
		}
	}
	tracer().Infof("derivation finished after %d cycles, %d memo records, %d results",
		d.cycles, len(d.memo), len(d.steps))
	return nil
}

// Grammar returns the grammar the derivation runs against.
func (d *Derivation) Grammar() *Expression {
	return d.grammar
}

// Finished is true when no further cycles are possible.
func (d *Derivation) Finished() bool {
	return d.done
}

// Steps returns the current frontier.
func (d *Derivation) Steps() []Step {
	return d.steps
}

// Position returns the current input position.
func (d *Derivation) Position() int {
	return d.position
}

// StepIndex returns the index of the most recently processed step, or -1.
func (d *Derivation) StepIndex() int {
	return d.current
}

// Cycles returns the number of cycles performed so far.
func (d *Derivation) Cycles() int {
	return d.cycles
}

// MemoSize returns the number of memo records created so far.
func (d *Derivation) MemoSize() int {
	return len(d.memo)
}

// Results returns the parse forest, i.e. the root of every parse tree found.
// Results are available only after the derivation has finished.
func (d *Derivation) Results() ([]*lcrs.Node, error) {
	if !d.done {
		return nil, ErrDerivationNotFinished
	}
	var trees []*lcrs.Node
	for _, s := range d.steps {
		if s.Dir == None {
			trees = append(trees, s.Zipper.Focus())
		}
	}
	return trees, nil
}

// --- Entry points ----------------------------------------------------------

// DeriveFinalSteps runs a derivation of input against g for at most targetCycle
// cycles (or to its end, if targetCycle is negative) and returns it. Clients may
// inspect the frontier or continue with Cycle.
func DeriveFinalSteps(input string, g *Expression, targetCycle int, opts ...Option) (*Derivation, error) {
	d, err := NewDerivation(strings.NewReader(input), g, opts...)
	if err != nil {
		return nil, err
	}
	for !d.done && (targetCycle < 0 || d.cycles < targetCycle) {
		if _, err := d.Cycle(); err != nil {
			return d, err
		}
	}
	return d, nil
}

// Parse parses input against grammar g and returns the parse forest. An empty
// forest means the input has been rejected; more than one tree means the input
// is ambiguous.
func Parse(input string, g *Expression, opts ...Option) ([]*lcrs.Node, error) {
	return ParseContext(context.Background(), strings.NewReader(input), g, opts...)
}

// ParseReader parses the input from r against grammar g.
func ParseReader(r io.Reader, g *Expression, opts ...Option) ([]*lcrs.Node, error) {
	return ParseContext(context.Background(), r, g, opts...)
}

// ParseContext parses the input from r against grammar g, stopping when ctx
// is cancelled.
func ParseContext(ctx context.Context, r io.Reader, g *Expression, opts ...Option) ([]*lcrs.Node, error) {
	d, err := NewDerivation(r, g, opts...)
	if err != nil {
		return nil, err
	}
	if err = d.Run(ctx); err != nil {
		return nil, err
	}
	return d.Results()
}
