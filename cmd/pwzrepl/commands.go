package main

import (
	"fmt"
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of the command line lexer.
const (
	tokCommand int = iota + 1
	tokWord
	tokString
)

// commandLexer splits command lines into a command and its arguments.
type commandLexer struct {
	lexer *lexmachine.Lexer
}

// newCommandLexer creates and compiles the lexer. It will return an error if
// compiling the DFA failed.
func newCommandLexer() (*commandLexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`:[a-zA-Z]+`), makeToken(tokCommand))
	lexer.Add([]byte(`"[^"]*"`), makeToken(tokString))
	lexer.Add([]byte("[^ \t\"]+"), makeToken(tokWord))
	lexer.Add([]byte("( |\t)+"), skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return &commandLexer{lexer: lexer}, nil
}

// split scans a command line. It returns the command (including the colon) and
// the arguments, with quotes removed from quoted arguments.
func (cl *commandLexer) split(line string) (string, []string, error) {
	s, err := cl.lexer.Scanner([]byte(line))
	if err != nil {
		return "", nil, err
	}
	var cmd string
	var args []string
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			return "", nil, fmt.Errorf("cannot scan command line: %v", err)
		}
		token := tok.(*lexmachine.Token)
		tracer().Debugf("command token %d = %q", token.Type, token.Lexeme)
		switch token.Type {
		case tokCommand:
			if cmd != "" || len(args) > 0 {
				return "", nil, fmt.Errorf("command %s must come first", token.Lexeme)
			}
			cmd = strings.ToLower(string(token.Lexeme))
		case tokString:
			args = append(args, strings.Trim(string(token.Lexeme), `"`))
		default:
			args = append(args, string(token.Lexeme))
		}
	}
	if cmd == "" {
		return "", nil, fmt.Errorf("not a command: %s", line)
	}
	return cmd, args, nil
}

// skip is a pre-defined action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a pre-defined action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
