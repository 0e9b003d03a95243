package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pwz"
	"github.com/npillmayer/pwz/bnf"
	"github.com/npillmayer/pwz/forest"
	"github.com/npillmayer/pwz/lcrs"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// We provide a simple expression grammar as a default.
const exprGrammar = `
Expr   = Term { _ws ( "+" | "-" ) _ws Term } .
Term   = Factor { _ws ( "*" | "/" ) _ws Factor } .
Factor = number | "(" _ws Expr _ws ")" .
number = digit { digit } .
digit  = "0" … "9" .
_ws    = { " " } .
`

// main() starts an interactive CLI, where users may enter input to be parsed
// against a grammar. The parse forest is printed as a set of trees.
// Grammars are written in EBNF and may be loaded from a file.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gfile := flag.String("g", "", "Grammar file (EBNF)")
	start := flag.String("start", "", "Start production")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to PWZ.REPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp := &Intp{compact: true}
	var err error
	if intp.lexer, err = newCommandLexer(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	if *gfile == "" {
		intp.source, intp.start = exprGrammar, "Expr"
		intp.gname = "expressions"
		if *start != "" {
			intp.start = *start
		}
		err = intp.compile()
	} else {
		err = intp.load(*gfile, *start)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Parse(input)
	}
	//
	// set up REPL
	repl, err := readline.New("pwz> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	lexer   *commandLexer
	gname   string
	source  string
	start   string
	grammar *pwz.Expression
	compact bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.Parse(line)
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute executes a command line.
func (intp *Intp) Execute(line string) (bool, error) {
	cmd, args, err := intp.lexer.split(line)
	if err != nil {
		return false, err
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":help":
		pterm.Info.Println(":load <file> [<start>] | :start <production> | :compact on|off | :trace <level> | :quit")
	case ":load":
		if len(args) < 1 || len(args) > 2 {
			return false, fmt.Errorf("usage: :load <file> [<start>]")
		}
		start := ""
		if len(args) == 2 {
			start = args[1]
		}
		return false, intp.load(args[0], start)
	case ":start":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :start <production>")
		}
		prev := intp.start
		intp.start = args[0]
		if err := intp.compile(); err != nil {
			intp.start = prev
			return false, err
		}
	case ":compact":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return false, fmt.Errorf("usage: :compact on|off")
		}
		intp.compact = args[0] == "on"
	case ":trace":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: :trace <level>")
		}
		tracer().SetTraceLevel(traceLevel(args[0]))
		for _, key := range []string{"pwz", "pwz.lcrs", "pwz.forest", "pwz.bnf"} {
			tracing.Select(key).SetTraceLevel(traceLevel(args[0]))
		}
	default:
		return false, fmt.Errorf("unknown command %s, try :help", cmd)
	}
	return false, nil
}

// load reads a grammar from a file and compiles it. If start is empty, the
// current start production is kept.
func (intp *Intp) load(filename string, start string) error {
	src, err := ioutil.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("unable to open grammar file: %w", err)
	}
	prev := *intp
	intp.gname, intp.source = filename, string(src)
	if start != "" {
		intp.start = start
	}
	if err = intp.compile(); err != nil {
		*intp = prev
		return err
	}
	return nil
}

func (intp *Intp) compile() error {
	if intp.start == "" {
		return fmt.Errorf("no start production given for grammar %s", intp.gname)
	}
	g, err := bnf.LoadString(intp.gname, intp.source, intp.start)
	if err != nil {
		return err
	}
	intp.grammar = g
	pterm.Info.Printf("Grammar %s loaded, start production is %s\n", intp.gname, intp.start)
	return nil
}

// Parse parses a line of input against the current grammar and prints the
// parse forest.
func (intp *Intp) Parse(input string) {
	trees, err := pwz.Parse(input, intp.grammar,
		pwz.VerticalCompaction(intp.compact),
		pwz.HorizontalCompaction(intp.compact))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	switch len(trees) {
	case 0:
		pterm.Error.Println("input rejected")
		return
	case 1:
		pterm.Info.Println("1 parse tree")
	default:
		pterm.Info.Printf("%d parse trees (input is ambiguous)\n", len(trees))
	}
	for i, tree := range trees {
		pterm.Println(fmt.Sprintf("#%d", i+1))
		renderTree(tree)
	}
}

func renderTree(tree *lcrs.Node) {
	var ll pterm.LeveledList
	for _, item := range forest.Outline(tree) {
		ll = append(ll, pterm.LeveledListItem{
			Level: item.Level,
			Text:  item.Text,
		})
	}
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
