/*
File    : lumen/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver performs a single static pass over the parsed AST,
// between parsing and evaluation, that determines how many enclosing
// scopes separate each variable reference from the scope that declares
// it. The evaluator uses these distances to look a variable up directly
// instead of walking its environment chain and guessing at global scope.
//
// The pass also catches three errors the parser and evaluator can't: a
// variable's own initializer referring to itself, a duplicate declaration
// in the same block, and a top-level "return".
package resolver

import (
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/parser"
)

// Reporter is the minimal surface the resolver needs from the host error
// reporter.
type Reporter interface {
	TokenError(tok lexer.Token, message string)
}

// DistanceRecorder receives one (expr, distance) pair per resolved
// Variable/Assign node. eval.Interpreter implements this to build its
// locals table.
type DistanceRecorder interface {
	Resolve(expr parser.Expr, distance int)
}

// functionType tracks whether the resolver is currently inside a function
// body, which is the only context a "return" statement is legal in.
type functionType int

const (
	functionNone functionType = iota
	functionDeclared
)

// Resolver walks statements and expressions, maintaining a stack of block
// scopes. Each scope maps a declared name to whether its initializer has
// finished resolving yet.
type Resolver struct {
	interpreter     DistanceRecorder
	reporter        Reporter
	scopes          []map[string]bool
	currentFunction functionType
}

// New creates a Resolver that will record scope distances on interpreter
// and report static errors to reporter.
func New(interpreter DistanceRecorder, reporter Reporter) *Resolver {
	return &Resolver{interpreter: interpreter, reporter: reporter}
}

// Resolve walks every top-level statement in program.
func (r *Resolver) Resolve(program []parser.Stmt) {
	r.resolveStatements(program)
}

func (r *Resolver) resolveStatements(statements []parser.Stmt) {
	for _, stmt := range statements {
		r.resolveStatement(stmt)
	}
}

func (r *Resolver) resolveStatement(stmt parser.Stmt) {
	stmt.Accept(r)
}

func (r *Resolver) resolveExpr(expr parser.Expr) {
	if expr == nil {
		return
	}
	expr.Accept(r)
}

// --- StmtVisitor ---

func (r *Resolver) VisitBlockStmt(stmt *parser.Block) error {
	r.beginScope()
	r.resolveStatements(stmt.Statements)
	r.endScope()
	return nil
}

// VisitVarStmt declares the name before resolving the initializer (if
// any), then defines it. Splitting declare/define this way is what makes
//
//	var a = "outer";
//	{ var a = a; }
//
// an error: inside the inner initializer, "a" is declared-but-not-defined
// in the current scope, so the reference is caught rather than silently
// picking up the shadowed outer "a" or an uninitialized inner one.
func (r *Resolver) VisitVarStmt(stmt *parser.Var) error {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name)
	return nil
}

// VisitFunctionStmt declares and defines the function's own name before
// resolving its body, so the function can recursively call itself.
func (r *Resolver) VisitFunctionStmt(stmt *parser.Function) error {
	r.declare(stmt.Name)
	r.define(stmt.Name)
	r.resolveFunction(stmt.Params, stmt.Body, functionDeclared)
	return nil
}

func (r *Resolver) VisitExpressionStmt(stmt *parser.ExpressionStmt) error {
	r.resolveExpr(stmt.Expr)
	return nil
}

func (r *Resolver) VisitIfStmt(stmt *parser.If) error {
	r.resolveExpr(stmt.Condition)
	r.resolveStatement(stmt.Then)
	if stmt.Else != nil {
		r.resolveStatement(stmt.Else)
	}
	return nil
}

func (r *Resolver) VisitPrintStmt(stmt *parser.Print) error {
	r.resolveExpr(stmt.Expr)
	return nil
}

func (r *Resolver) VisitReturnStmt(stmt *parser.Return) error {
	if r.currentFunction == functionNone {
		r.reporter.TokenError(stmt.Keyword, "Can't return from top-level code.")
	}
	if stmt.Value != nil {
		r.resolveExpr(stmt.Value)
	}
	return nil
}

func (r *Resolver) VisitWhileStmt(stmt *parser.While) error {
	r.resolveExpr(stmt.Condition)
	r.resolveStatement(stmt.Body)
	return nil
}

// --- ExprVisitor ---

func (r *Resolver) VisitVariableExpr(expr *parser.Variable) (interface{}, error) {
	if len(r.scopes) > 0 {
		if ready, declared := r.scopes[len(r.scopes)-1][expr.Name.Lexeme]; declared && !ready {
			r.reporter.TokenError(expr.Name, "Can't read local variable in its own initializer.")
		}
	}
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) VisitAssignExpr(expr *parser.Assign) (interface{}, error) {
	r.resolveExpr(expr.Value)
	r.resolveLocal(expr, expr.Name)
	return nil, nil
}

func (r *Resolver) VisitBinaryExpr(expr *parser.Binary) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitLogicalExpr(expr *parser.Logical) (interface{}, error) {
	r.resolveExpr(expr.Left)
	r.resolveExpr(expr.Right)
	return nil, nil
}

func (r *Resolver) VisitCallExpr(expr *parser.Call) (interface{}, error) {
	r.resolveExpr(expr.Callee)
	for _, arg := range expr.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *Resolver) VisitGroupingExpr(expr *parser.Grouping) (interface{}, error) {
	r.resolveExpr(expr.Expression)
	return nil, nil
}

func (r *Resolver) VisitLiteralExpr(expr *parser.Literal) (interface{}, error) {
	return nil, nil
}

func (r *Resolver) VisitUnaryExpr(expr *parser.Unary) (interface{}, error) {
	r.resolveExpr(expr.Right)
	return nil, nil
}

// VisitFunctionExpr resolves an anonymous function's parameters and body
// exactly like a named declaration, minus the declare/define of a name —
// an anonymous function has nothing to bind in the enclosing scope.
func (r *Resolver) VisitFunctionExpr(expr *parser.FunctionExpr) (interface{}, error) {
	r.resolveFunction(expr.Params, expr.Body, functionDeclared)
	return nil, nil
}

// --- scope stack management ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, map[string]bool{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope, marked not-yet-ready. It is a
// no-op at global scope, which the resolver never tracks — an
// unresolved reference is assumed global and left for the evaluator to
// look up dynamically.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.TokenError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as ready in the innermost scope.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal searches the scope stack from innermost to outermost for
// name, and if found, records the distance (0 = current scope) against
// expr. A name never found in any tracked scope is assumed global.
func (r *Resolver) resolveLocal(expr parser.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.interpreter.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

// resolveFunction opens a new scope for params/body, tracking that code
// inside is now in function context so "return" is legal. Shared by named
// declarations and anonymous function expressions.
func (r *Resolver) resolveFunction(params []lexer.Token, body []parser.Stmt, typ functionType) {
	enclosing := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(body)
	r.endScope()

	r.currentFunction = enclosing
}
