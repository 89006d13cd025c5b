/*
File    : lumen/report/report.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package report is Lumen's host error-reporting surface: the collaborator
// the lexer, parser, resolver, and evaluator all call into when they detect
// a problem, and the thing cmd/lumen and repl consult to decide an exit
// code or whether to clear state between REPL lines.
package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lumen/lexer"
)

var (
	errColor = color.New(color.FgRed, color.Bold)
)

// Reporter accumulates the two failure flags a Lumen run cares about:
// whether a static (lex/parse/resolve) error was reported, and whether a
// runtime error halted evaluation. cmd/lumen reads both to pick an exit
// code; repl.Repl clears them between lines with Reset.
type Reporter struct {
	HadError        bool
	HadRuntimeError bool
}

// New returns a Reporter with both flags clear.
func New() *Reporter {
	return &Reporter{}
}

// Reset clears both failure flags. The REPL calls this before evaluating
// each new line so that one bad line doesn't poison the exit code of a
// later, valid one.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Error reports a line-addressed static error with no further location
// detail, e.g. an unterminated string or an unrecognized character from the
// lexer.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// TokenError reports a static error located at a specific token, as the
// parser and resolver do. An EOF token reports "at end"; any other token
// reports "at '<lexeme>'".
func (r *Reporter) TokenError(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF_TYPE {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at '%s'", tok.Lexeme), message)
	}
}

func (r *Reporter) report(line int, where, message string) {
	errColor.Fprintf(os.Stderr, "[line %d] Error%s: %s\n", line, where, message)
	r.HadError = true
}

// RuntimeErrorValue is the minimal shape a runtime error needs to satisfy
// for RuntimeError to format it: the message and the token whose line the
// failure happened on. object.Error implements this.
type RuntimeErrorValue interface {
	Error() string
	Token() lexer.Token
}

// RuntimeError reports a runtime failure in the "<message>\n [line N]" form
// spec.md's evaluator contract specifies, and sets HadRuntimeError.
func (r *Reporter) RuntimeError(err RuntimeErrorValue) {
	errColor.Fprintf(os.Stderr, "%s\n [line %d]\n", err.Error(), err.Token().Line)
	r.HadRuntimeError = true
}
