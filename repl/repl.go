/*
File    : lumen/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements Lumen's interactive Read-Eval-Print Loop: a
// readline-backed prompt that parses, resolves, and evaluates one line at
// a time against a single long-lived interpreter, so a closure or global
// defined on one line is visible on the next.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/parser"
	"github.com/akashmaji946/lumen/report"
	"github.com/akashmaji946/lumen/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Prompt is the literal prompt string the REPL writes before each line.
const Prompt = "> "

// Repl holds an interactive Lumen session's startup banner fields. Start
// creates the session's reporter and an interpreter whose global
// environment persists across lines.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
}

// NewRepl creates a Repl with the given startup banner fields.
func NewRepl(banner, version, author, line string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line}
}

// printBanner prints the startup banner; purely cosmetic, has no effect on
// evaluation.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Press Ctrl+D to exit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until end-of-input. Each line is parsed, resolved,
// and evaluated against one shared Interpreter; the reporter's error flags
// are reset before each line so one bad line doesn't poison the next.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	rep := report.New()
	interp := eval.New(rep)
	interp.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		rep.Reset()
		r.runLine(line, rep, interp)
	}
}

// runLine parses, resolves, and evaluates a single line of input against
// the session's shared interpreter. A syntax or resolution error stops
// before evaluation; a runtime error is reported the same way file-mode
// reports it.
func (r *Repl) runLine(line string, rep *report.Reporter, interp *eval.Interpreter) {
	lx := lexer.New(line, rep)
	tokens := lx.ScanTokens()

	p := parser.New(tokens, rep)
	statements := p.Parse()
	if rep.HadError {
		return
	}

	res := resolver.New(interp, rep)
	res.Resolve(statements)
	if rep.HadError {
		return
	}

	interp.Interpret(statements)
}
