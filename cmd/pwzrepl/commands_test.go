package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCommandLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.repl")
	defer teardown()
	//
	cl, err := newCommandLexer()
	if err != nil {
		t.Fatal(err)
	}
	cmd, args, err := cl.split(`:load  "my grammar.ebnf"	Start`)
	if err != nil {
		t.Fatal(err)
	}
	if cmd != ":load" || len(args) != 2 || args[0] != "my grammar.ebnf" || args[1] != "Start" {
		t.Errorf("expected :load with 2 arguments, have %s %v", cmd, args)
	}
	cmd, args, err = cl.split(":QUIT")
	if err != nil || cmd != ":quit" || len(args) != 0 {
		t.Errorf("expected :quit without arguments, have %s %v (%v)", cmd, args, err)
	}
	if _, _, err = cl.split("load x"); err == nil {
		t.Errorf("expected line without command to be rejected")
	}
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pwz.repl")
	defer teardown()
	//
	cl, err := newCommandLexer()
	if err != nil {
		t.Fatal(err)
	}
	intp := &Intp{lexer: cl, compact: true, gname: "expressions", source: exprGrammar, start: "Expr"}
	if err = intp.compile(); err != nil {
		t.Fatal(err)
	}
	if _, err = intp.Execute(":start Term"); err != nil || intp.start != "Term" {
		t.Errorf("expected start production to be switched to Term, is %s (%v)", intp.start, err)
	}
	if _, err = intp.Execute(":start Nope"); err == nil || intp.start != "Term" {
		t.Errorf("expected unknown start production to be rejected")
	}
	if _, err = intp.Execute(":compact off"); err != nil || intp.compact {
		t.Errorf("expected compaction to be switched off")
	}
	if _, err = intp.Execute(":load /does/not/exist.ebnf"); err == nil {
		t.Errorf("expected missing grammar file to be reported")
	}
	if quit, _ := intp.Execute(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}
