/*
Package pwz implements parsing with derivatives over zippers.

A grammar is a tree of expressions (tokens, sequences, alternatives, repetitions,
lexemes, ignored input and lookaheads), built with a small set of constructor
functions. Recursive grammars are built with Rec and Recs, or with a GrammarBuilder
for named rules:

    // S ➞ S a | a
    S := pwz.Rec(func(s *pwz.Expression) *pwz.Expression {
        return pwz.Alt(pwz.Seq(s, pwz.Tok("a")), pwz.Tok("a"))
    })
    trees, err := pwz.Parse("aaa", S)

The parser never rewrites the grammar. Instead it keeps a frontier of zippers
focused somewhere within the grammar tree and, for every input character,
moves them step by step down into expressions to be matched and up again with
completed results ("taking the derivative"). Partial results are memoized per
(grammar position, input position), which makes left recursion and cyclic
grammars terminate and keeps the amount of work polynomial.

The outcome is a parse forest: a list of result trees, one per distinct parse.
Result trees are lcrs nodes holding completed *Expr values; package forest
provides walkers for them.

Grammars have to guard empty self-recursion. The canonical example

    S ➞ a | ε | S S

makes the derivation produce ever more empty results and does not terminate.
Clients parsing input against untrusted grammars may set a CycleLimit.

Characters and Tokens

Input is read rune by rune. Every rune is a token. Tok matches a single rune
against a label:

    "abc"     any of a, b, c
    "a-z"     a range (exactly three runes)
    "^…"      negation of the rest
    "\."      any rune
    "\^"      a literal ^
    "\"       a literal backslash
    ""        the end of input

Tracing

All packages trace to keys starting with "pwz", using schuko's tracing facility.
Derivation steps are traced on debug level.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pwz

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwz'.
func tracer() tracing.Trace {
	return tracing.Select("pwz")
}
