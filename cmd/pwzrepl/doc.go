/*
Command pwzrepl provides an interactive command line tool for experiments with
grammars. Grammars are written in EBNF (see package bnf) and loaded from a file;
every line entered which is not a command is parsed against the current
grammar, and the resulting parse forest is printed as a set of trees.

Usage:

    pwzrepl [-g grammar.ebnf] [-start Production] [-trace Level] [input]

Commands start with a colon:

    :load <file> [<start>]     load a grammar
    :start <production>        switch the start production
    :compact on|off            toggle compaction of parse trees
    :trace <level>             set the trace level [Debug|Info|Error]
    :help                      list commands
    :quit                      leave

Without a grammar file, a small expression grammar is pre-loaded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pwz.repl'
func tracer() tracing.Trace {
	return tracing.Select("pwz.repl")
}
