/*
File    : lumen/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is Lumen's tree-walking evaluator: given a resolved AST, it
// walks statements and expressions directly against a chain of
// environments, maintaining lexical closures and threading runtime errors
// and "return" as ordinary Object values rather than Go panics — the same
// sentinel-value propagation idiom the teacher's own evaluator uses
// throughout eval_statements.go.
package eval

import (
	"io"
	"os"
	"time"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/function"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
)

// Reporter is the minimal surface the evaluator needs from the host error
// reporter.
type Reporter interface {
	RuntimeError(err interface {
		Error() string
		Token() lexer.Token
	})
}

// Interpreter holds the evaluation state: the global environment, the
// environment currently in scope, the resolver's variable-distance table,
// and where "print" writes to.
type Interpreter struct {
	Globals     *environment.Environment
	Environment *environment.Environment
	Writer      io.Writer
	reporter    Reporter
	locals      map[parser.Expr]int
}

// New creates an Interpreter with clock() registered as the sole native
// global, output directed to os.Stdout, and errors sent to reporter.
func New(reporter Reporter) *Interpreter {
	globals := environment.New(nil)
	interp := &Interpreter{
		Globals:     globals,
		Environment: globals,
		Writer:      os.Stdout,
		reporter:    reporter,
		locals:      make(map[parser.Expr]int),
	}
	interp.defineNatives()
	return interp
}

// SetWriter redirects "print" output, for tests and embedding.
func (i *Interpreter) SetWriter(w io.Writer) {
	i.Writer = w
}

// defineNatives registers clock(), the one native function spec.md
// requires, grounded on the distillation source's Clock.call (time.time())
// the same way the teacher registers its own std builtins into globals at
// construction time.
func (i *Interpreter) defineNatives() {
	i.Globals.Define("clock", &object.NativeFunction{
		NameStr: "clock",
		ArityN:  0,
		Fn: func(args []object.Object) (object.Object, error) {
			return object.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	})
}

// Resolve records that expr refers to a variable distance enclosing
// scopes up from wherever it is evaluated. Called by resolver.Resolver as
// it walks the tree; this is what satisfies resolver.DistanceRecorder.
func (i *Interpreter) Resolve(expr parser.Expr, distance int) {
	i.locals[expr] = distance
}

// Interpret runs a resolved program's statements in order. A runtime
// error halts execution immediately and is reported via reporter; it is
// not a Go panic, so callers needn't recover — they just check
// reporter.HadRuntimeError (or equivalent) afterward.
func (i *Interpreter) Interpret(statements []parser.Stmt) {
	for _, stmt := range statements {
		result := i.execute(stmt)
		if err, ok := result.(*object.Error); ok {
			i.reporter.RuntimeError(err)
			return
		}
	}
}

// execute runs a single statement and returns whatever Object it produced
// last: object.NilValue for ordinary statements, a *object.ReturnSignal if
// it was (or contained) a "return", or a *object.Error if evaluation
// failed. It never returns a Go error — StmtVisitor's signature is only
// shaped that way so parser stays decoupled from the value model; every
// VisitXStmt method below always returns nil and communicates its outcome
// purely through the shared result cell.
func (i *Interpreter) execute(stmt parser.Stmt) object.Object {
	var result object.Object = object.NilValue
	stmt.Accept(&stmtDispatcher{interp: i, result: &result})
	return result
}

// executeStatements runs stmts in order against env, stopping early and
// propagating the first *object.Error or *object.ReturnSignal it
// encounters without unwrapping it. Both VisitBlockStmt and
// function.Function.Call (via ExecuteBlock) use this, so a "return" deep
// inside nested blocks bubbles all the way up to the function call
// boundary intact, where the return value is finally unwrapped.
func (i *Interpreter) executeStatements(stmts []parser.Stmt, env *environment.Environment) object.Object {
	previous := i.Environment
	i.Environment = env
	defer func() { i.Environment = previous }()

	var result object.Object = object.NilValue
	for _, stmt := range stmts {
		result = i.execute(stmt)
		switch result.(type) {
		case *object.Error, *object.ReturnSignal:
			return result
		}
	}
	return result
}

// ExecuteBlock implements function.BlockExecutor: it runs a function's
// body and unwraps a completed *object.ReturnSignal to the value it
// carries, since the function call itself — not its caller — is the
// return's destination. A propagated *object.Error passes through
// unchanged.
func (i *Interpreter) ExecuteBlock(body []parser.Stmt, env *environment.Environment) object.Object {
	result := i.executeStatements(body, env)
	if rs, ok := result.(*object.ReturnSignal); ok {
		return rs.Value
	}
	return result
}

// stmtDispatcher adapts StmtVisitor's (error) return signature onto the
// Interpreter's sentinel-Object convention described on execute.
type stmtDispatcher struct {
	interp *Interpreter
	result *object.Object
}

// eval evaluates expr and returns its Object, or an *object.Error.
func (i *Interpreter) eval(expr parser.Expr) object.Object {
	if expr == nil {
		return object.NilValue
	}
	result, _ := expr.Accept(&exprDispatcher{interp: i})
	obj, ok := result.(object.Object)
	if !ok {
		return object.NilValue
	}
	return obj
}

// exprDispatcher adapts ExprVisitor's (interface{}, error) signature onto
// plain object.Object values; every VisitXExpr method below always
// returns a nil Go error and communicates failure as an *object.Error
// Object instead.
type exprDispatcher struct {
	interp *Interpreter
}

// lookUpVariable resolves name via the resolver's recorded distance when
// one exists, falling back to a dynamic global lookup otherwise — exactly
// the two-tier strategy spec.md's resolver/evaluator pairing specifies.
func (i *Interpreter) lookUpVariable(name lexer.Token, expr parser.Expr) (object.Object, bool) {
	if distance, ok := i.locals[expr]; ok {
		return i.Environment.GetAt(distance, name.Lexeme)
	}
	return i.Globals.Get(name.Lexeme)
}

var _ function.BlockExecutor = (*Interpreter)(nil)
