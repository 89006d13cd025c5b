/*
File    : lumen/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function implements Lumen's user-defined, closure-capturing
// callable, adapted from the teacher's function.Function. The one
// deliberate divergence from the teacher: Env below is a live pointer into
// the defining environment chain, not a scope.Scope.Copy() snapshot —
// Lumen's closures must observe later mutations of captured variables
// (see DESIGN.md's Open Question log), which a copy-on-capture would
// break.
package function

import (
	"fmt"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
)

// BlockExecutor is the minimal surface Function needs from the evaluator
// to run its body: execute a list of statements against a given
// environment, returning either a *object.ReturnSignal unwrapped to its
// value, a *object.Error, or object.NilValue if the block fell off the
// end without an explicit return. Declaring this interface here (instead
// of importing eval) is what lets function be imported by eval without a
// cycle.
type BlockExecutor interface {
	ExecuteBlock(body []parser.Stmt, env *environment.Environment) object.Object
}

// Function is a user-defined function value: its declaration's name,
// parameter names, body, and the environment it closed over at
// declaration time.
type Function struct {
	Name   string
	Params []lexer.Token
	Body   []parser.Stmt
	Env    *environment.Environment
}

func (f *Function) Type() object.Type { return object.FunctionType }

// Inspect renders "<fn name>" for a named declaration, or the bare "<fn>"
// the distillation source uses for an anonymous function expression.
func (f *Function) Inspect() string {
	if f.Name == "" {
		return "<fn>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

func (f *Function) Arity() int {
	return len(f.Params)
}

// Call runs the function body against a fresh environment nested in the
// closure's captured environment, with each parameter bound to the
// corresponding argument. executor supplies the actual statement-execution
// logic (eval.Interpreter.ExecuteBlock).
func (f *Function) Call(executor BlockExecutor, args []object.Object) object.Object {
	callEnv := environment.New(f.Env)
	for i, param := range f.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	return executor.ExecuteBlock(f.Body, callEnv)
}
