package pwz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/pwz/lcrs"
)

// GrammarBuilder builds grammars from named rules. Rules may reference each
// other (and themselves) by name before they are defined:
//
//     b := pwz.NewGrammarBuilder("Parens")
//     b.Define("S", pwz.Alt(pwz.Seq(pwz.Str("("), b.N("S"), pwz.Str(")")), pwz.Seq()))
//     S, err := b.Grammar("S")
//
// The root of every rule's expression is labeled with the rule's name.
type GrammarBuilder struct {
	Name  string
	arena *lcrs.Arena
	rules *ruleTable
	err   error
	tied  bool
}

// NewGrammarBuilder creates a builder for a grammar.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		Name:  name,
		arena: lcrs.NewArena(),
		rules: newRuleTable(),
	}
}

// N returns a reference to the rule named name.
func (b *GrammarBuilder) N(name string) *Expression {
	r, _ := b.rules.resolveOrDefine(name, b.arena)
	r.refs++
	return &Expression{root: b.arena.Ref(r.slot)}
}

// Define defines a rule. Defining a rule twice is an error, which will be
// reported by Grammar.
func (b *GrammarBuilder) Define(name string, e *Expression) *GrammarBuilder {
	if e == nil || e.root == nil {
		panic(fmt.Sprintf("pwz: rule %s defined as nil", name))
	}
	r, _ := b.rules.resolveOrDefine(name, b.arena)
	if r.expr != nil {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %s", ErrDuplicateRule, name)
		}
		return b
	}
	if b.tied {
		if b.err == nil {
			b.err = fmt.Errorf("rule %s defined after grammar has been completed", name)
		}
		return b
	}
	r.expr = Named(name, e)
	tracer().Debugf("%s: defined rule %s", b.Name, name)
	return b
}

// Rules returns the names of all rules referenced or defined, sorted.
func (b *GrammarBuilder) Rules() []string {
	return b.rules.names()
}

// Undefined returns the names of all rules referenced but not defined, sorted.
func (b *GrammarBuilder) Undefined() []string {
	var undef []string
	b.rules.each(func(name string, r *rule) {
		if r.expr == nil {
			undef = append(undef, name)
		}
	})
	sort.Strings(undef)
	return undef
}

// Grammar completes the grammar and returns the expression for the start rule.
// Referencing rules which are not defined results in ErrUndefinedNonTerminal.
func (b *GrammarBuilder) Grammar(start string) (*Expression, error) {
	if b.err != nil {
		return nil, b.err
	}
	if undef := b.Undefined(); len(undef) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", b.Name, ErrUndefinedNonTerminal, strings.Join(undef, ", "))
	}
	r := b.rules.resolve(start)
	if r == nil {
		return nil, fmt.Errorf("%s: %w: start rule %s", b.Name, ErrUndefinedNonTerminal, start)
	}
	if !b.tied {
		var err error
		b.rules.each(func(name string, r *rule) {
			if e := b.arena.Fill(r.slot, r.expr.root); e != nil && err == nil {
				err = fmt.Errorf("rule %s: %w", name, e)
			}
		})
		if err != nil {
			b.err = err
			return nil, err
		}
		b.tied = true
	}
	return r.expr, nil
}

// --- Rule table ------------------------------------------------------------

type rule struct {
	name string
	slot int
	expr *Expression
	refs int
}

// ruleTable maps rule names to rules (map-like semantics).
type ruleTable struct {
	table map[string]*rule
}

func newRuleTable() *ruleTable {
	return &ruleTable{table: make(map[string]*rule)}
}

// resolve checks for a rule in the table. Returns a rule or nil.
func (t *ruleTable) resolve(name string) *rule {
	return t.table[name]
}

// resolveOrDefine finds a rule in the table, inserts a new one (with a fresh
// arena slot) if not found. The flag signals whether the rule was already present.
func (t *ruleTable) resolveOrDefine(name string, arena *lcrs.Arena) (*rule, bool) {
	if name == "" {
		panic("pwz: rule name must not be empty")
	}
	if r := t.resolve(name); r != nil {
		return r, true
	}
	r := &rule{name: name, slot: arena.Reserve()}
	t.table[name] = r
	return r, false
}

func (t *ruleTable) names() []string {
	names := make([]string, 0, len(t.table))
	for name := range t.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// each iterates over the rules in order of their names.
func (t *ruleTable) each(mapper func(string, *rule)) {
	for _, name := range t.names() {
		mapper(name, t.table[name])
	}
}
