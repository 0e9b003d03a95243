/*
Package bnf reads grammars in EBNF notation and compiles them to pwz expressions.

The notation is the one used by the Go language specification, as implemented by
golang.org/x/exp/ebnf:

    Expr   = Term { ( "+" | "-" ) Term } .
    Term   = Factor { ( "*" | "/" ) Factor } .
    Factor = number | "(" Expr ")" .
    number = digit { digit } .
    digit  = "0" … "9" .

Productions with an upper-case name are syntactic: their results are labeled with
the production's name and keep their structure. All other productions are
lexical and produce a single lexeme each. Productions whose name starts with an
underscore match input which is dropped from the parse forest (e.g., white space).

    _ws = { " " | "\t" } .

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwz.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("pwz.bnf")
}
