/*
File    : lumen/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/function"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
)

func (d *stmtDispatcher) VisitExpressionStmt(stmt *parser.ExpressionStmt) error {
	if stmt.Expr == nil {
		return nil
	}
	value := d.interp.eval(stmt.Expr)
	if object.IsError(value) {
		*d.result = value
	}
	return nil
}

// VisitPrintStmt evaluates Expr and writes its stringified form followed
// by a newline to the interpreter's Writer.
func (d *stmtDispatcher) VisitPrintStmt(stmt *parser.Print) error {
	value := d.interp.eval(stmt.Expr)
	if object.IsError(value) {
		*d.result = value
		return nil
	}
	fmt.Fprintln(d.interp.Writer, value.Inspect())
	return nil
}

// VisitVarStmt evaluates Initializer (or defaults to nil) and binds Name
// in the current environment.
func (d *stmtDispatcher) VisitVarStmt(stmt *parser.Var) error {
	var value object.Object = object.NilValue
	if stmt.Initializer != nil {
		value = d.interp.eval(stmt.Initializer)
		if object.IsError(value) {
			*d.result = value
			return nil
		}
	}
	d.interp.Environment.Define(stmt.Name.Lexeme, value)
	return nil
}

// VisitBlockStmt runs Statements in a fresh environment nested in the
// current one, propagating an in-flight error or return signal unchanged.
func (d *stmtDispatcher) VisitBlockStmt(stmt *parser.Block) error {
	child := environment.New(d.interp.Environment)
	*d.result = d.interp.executeStatements(stmt.Statements, child)
	return nil
}

// VisitIfStmt evaluates Condition and runs Then or Else (if present)
// according to Lumen's truthiness rule.
func (d *stmtDispatcher) VisitIfStmt(stmt *parser.If) error {
	condition := d.interp.eval(stmt.Condition)
	if object.IsError(condition) {
		*d.result = condition
		return nil
	}
	if object.IsTruthy(condition) {
		*d.result = d.interp.execute(stmt.Then)
	} else if stmt.Else != nil {
		*d.result = d.interp.execute(stmt.Else)
	}
	return nil
}

// VisitWhileStmt repeats Body while Condition evaluates truthy, stopping
// early on an error or return signal.
func (d *stmtDispatcher) VisitWhileStmt(stmt *parser.While) error {
	for {
		condition := d.interp.eval(stmt.Condition)
		if object.IsError(condition) {
			*d.result = condition
			return nil
		}
		if !object.IsTruthy(condition) {
			return nil
		}
		result := d.interp.execute(stmt.Body)
		switch result.(type) {
		case *object.Error, *object.ReturnSignal:
			*d.result = result
			return nil
		}
	}
}

// VisitFunctionStmt builds a closure capturing the environment active at
// declaration time and binds it to Name.
func (d *stmtDispatcher) VisitFunctionStmt(stmt *parser.Function) error {
	fn := &function.Function{
		Name:   stmt.Name.Lexeme,
		Params: stmt.Params,
		Body:   stmt.Body,
		Env:    d.interp.Environment,
	}
	d.interp.Environment.Define(stmt.Name.Lexeme, fn)
	return nil
}

// VisitReturnStmt evaluates Value (or defaults to nil) and wraps it in a
// ReturnSignal for the enclosing call to unwrap.
func (d *stmtDispatcher) VisitReturnStmt(stmt *parser.Return) error {
	var value object.Object = object.NilValue
	if stmt.Value != nil {
		value = d.interp.eval(stmt.Value)
		if object.IsError(value) {
			*d.result = value
			return nil
		}
	}
	*d.result = &object.ReturnSignal{Value: value}
	return nil
}
