package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/kr/pretty"
	"golang.org/x/xerrors"

	"lox/analysis"
	"lox/interp"
	"lox/parser"
	"lox/scanner"
)

// Exit codes: 1 for usage errors, 65 for malformed source and 70 for
// evaluation failures.
const (
	exitUsage    = 1
	exitDataErr  = 65
	exitSoftware = 70
)

const usageText = `Usage: lox [-trace] <command> [filename]

Commands:
  tokenize <file>   print the tokens of a file
  parse <file>      print the first expression in prefix form
  evaluate <file>   evaluate the first expression
  run <file>        run every statement
  dump <file>       print the syntax tree of every statement
  check <file>      report type and scope errors without running
  repl              start an interactive session
`

func main() {
	os.Exit(loxMain())
}

func loxMain() int {
	log.SetFlags(0)
	log.SetPrefix("lox: ")

	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	trace := fs.Bool("trace", false, "log each statement to stderr before running it")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usageText) }
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	args := fs.Args()
	if len(args) == 0 {
		fs.Usage()
		return 2
	}
	cmd := args[0]
	if cmd == "repl" {
		return cmdRepl(*trace)
	}
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: lox %s <filename>\n", cmd)
		return exitUsage
	}

	b, err := os.ReadFile(args[1])
	if err != nil {
		log.Print(err)
		return exitUsage
	}
	src := string(b)

	switch cmd {
	case "tokenize":
		return cmdTokenize(src)
	case "parse":
		return cmdParse(src)
	case "evaluate":
		return cmdEvaluate(src)
	case "run":
		return cmdRun(src, *trace)
	case "dump":
		return cmdDump(src)
	case "check":
		return cmdCheck(src)
	}
	fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
	return exitUsage
}

func cmdTokenize(src string) int {
	ret := 0
	s := scanner.New(src, func(offset, line int, msg string) {
		fmt.Fprintln(os.Stderr, &scanner.LexError{Offset: offset, Line: line, Msg: msg})
		ret = exitDataErr
	})
	for {
		tok, ok := s.Next()
		if !ok {
			return ret
		}
		fmt.Println(tok)
	}
}

// reportLexErrors prints the lexical errors p has collected and reports
// whether there were any.
func reportLexErrors(p *parser.Parser) bool {
	for _, err := range p.LexErrors() {
		fmt.Fprintln(os.Stderr, err)
	}
	return len(p.LexErrors()) > 0
}

func cmdParse(src string) int {
	p := parser.New(src)
	n, err := p.Expression()
	if reportLexErrors(p) {
		return exitDataErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDataErr
	}
	fmt.Println(parser.Format(n))
	return 0
}

func cmdEvaluate(src string) int {
	p := parser.New(src)
	n, err := p.Expression()
	if reportLexErrors(p) {
		return exitDataErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDataErr
	}
	v, err := interp.New(interp.Detached(), os.Stdout).Eval(n)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitSoftware
	}
	fmt.Println(interp.Display(v))
	return 0
}

// cmdRun parses and executes one statement at a time, so statements before
// a syntax error still run.
func cmdRun(src string, trace bool) int {
	p := parser.New(src)
	ev := interp.New(interp.NewScopeStack(), os.Stdout)
	for !p.AtEnd() {
		stmt, err := p.Statement()
		if err != nil {
			reportLexErrors(p)
			fmt.Fprintln(os.Stderr, err)
			return exitDataErr
		}
		if trace {
			log.Printf("exec %s", parser.Format(stmt))
		}
		if _, err := ev.Eval(stmt); err != nil {
			lexFailed := reportLexErrors(p)
			fmt.Fprintln(os.Stderr, err)
			if lexFailed {
				return exitDataErr
			}
			return exitCode(err)
		}
	}
	if reportLexErrors(p) {
		return exitDataErr
	}
	return 0
}

func cmdDump(src string) int {
	p := parser.New(src)
	stmts, err := p.Program()
	if reportLexErrors(p) {
		return exitDataErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDataErr
	}
	for _, s := range stmts {
		pretty.Fprintf(os.Stdout, "%# v\n", s)
	}
	return 0
}

func cmdCheck(src string) int {
	p := parser.New(src)
	stmts, err := p.Program()
	if reportLexErrors(p) {
		return exitDataErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDataErr
	}
	errs := analysis.Check(stmts)
	for _, err := range errs {
		fmt.Fprintln(os.Stderr, err)
	}
	if len(errs) > 0 {
		return exitDataErr
	}
	return 0
}

func exitCode(err error) int {
	var perr *parser.ParseError
	if xerrors.As(err, &perr) {
		return exitDataErr
	}
	var eerr *interp.EvalError
	if xerrors.As(err, &eerr) {
		return exitSoftware
	}
	return exitUsage
}

// lexErrors reports every lexical error of a source, one per line.
type lexErrors []*scanner.LexError

func (errs lexErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

// runSource executes every statement of src against ev and echoes the
// values of expression statements to w.
func runSource(ev *interp.Evaluator, src string, w io.Writer, trace bool) error {
	p := parser.New(src)
	stmts, err := p.Program()
	if errs := p.LexErrors(); len(errs) > 0 {
		return lexErrors(errs)
	}
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if trace {
			log.Printf("exec %s", parser.Format(stmt))
		}
		v, err := ev.Eval(stmt)
		if err != nil {
			return err
		}
		if _, ok := stmt.(*parser.ExprStmt); ok {
			fmt.Fprintln(w, interp.Display(v))
		}
	}
	return nil
}
