/*
File    : lumen/internal/astprint/astprint.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package astprint is a debug Visitor that renders a parsed program as an
// indented tree, one line per node, for cmd/lumen's --ast flag.
package astprint

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/lumen/parser"
)

const indentSize = 2

// Printer walks a parsed program and accumulates a formatted tree into Buf.
type Printer struct {
	Indent int
	Buf    bytes.Buffer
}

// Print renders statements as an indented tree and returns the result.
func Print(statements []parser.Stmt) string {
	p := &Printer{}
	for _, stmt := range statements {
		stmt.Accept(p)
	}
	return p.Buf.String()
}

func (p *Printer) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

func (p *Printer) line(format string, args ...interface{}) {
	p.indent()
	fmt.Fprintf(&p.Buf, format, args...)
	p.Buf.WriteString("\n")
}

func (p *Printer) nested(f func()) {
	p.Indent += indentSize
	f()
	p.Indent -= indentSize
}

// --- StmtVisitor ---

func (p *Printer) VisitExpressionStmt(stmt *parser.ExpressionStmt) error {
	p.line("ExpressionStmt")
	if stmt.Expr != nil {
		p.nested(func() { stmt.Expr.Accept(p) })
	}
	return nil
}

func (p *Printer) VisitPrintStmt(stmt *parser.Print) error {
	p.line("Print")
	p.nested(func() { stmt.Expr.Accept(p) })
	return nil
}

func (p *Printer) VisitVarStmt(stmt *parser.Var) error {
	p.line("Var %s", stmt.Name.Lexeme)
	if stmt.Initializer != nil {
		p.nested(func() { stmt.Initializer.Accept(p) })
	}
	return nil
}

func (p *Printer) VisitBlockStmt(stmt *parser.Block) error {
	p.line("Block")
	p.nested(func() {
		for _, s := range stmt.Statements {
			s.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitIfStmt(stmt *parser.If) error {
	p.line("If")
	p.nested(func() {
		stmt.Condition.Accept(p)
		stmt.Then.Accept(p)
		if stmt.Else != nil {
			stmt.Else.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitWhileStmt(stmt *parser.While) error {
	p.line("While")
	p.nested(func() {
		stmt.Condition.Accept(p)
		stmt.Body.Accept(p)
	})
	return nil
}

func (p *Printer) VisitFunctionStmt(stmt *parser.Function) error {
	params := make([]string, len(stmt.Params))
	for i, param := range stmt.Params {
		params[i] = param.Lexeme
	}
	p.line("Function %s(%v)", stmt.Name.Lexeme, params)
	p.nested(func() {
		for _, s := range stmt.Body {
			s.Accept(p)
		}
	})
	return nil
}

func (p *Printer) VisitReturnStmt(stmt *parser.Return) error {
	p.line("Return")
	if stmt.Value != nil {
		p.nested(func() { stmt.Value.Accept(p) })
	}
	return nil
}

// --- ExprVisitor ---

func (p *Printer) VisitLiteralExpr(expr *parser.Literal) (interface{}, error) {
	p.line("Literal %v", expr.Value)
	return nil, nil
}

func (p *Printer) VisitGroupingExpr(expr *parser.Grouping) (interface{}, error) {
	p.line("Grouping")
	p.nested(func() { expr.Expression.Accept(p) })
	return nil, nil
}

func (p *Printer) VisitUnaryExpr(expr *parser.Unary) (interface{}, error) {
	p.line("Unary %s", expr.Operator.Lexeme)
	p.nested(func() { expr.Right.Accept(p) })
	return nil, nil
}

func (p *Printer) VisitBinaryExpr(expr *parser.Binary) (interface{}, error) {
	p.line("Binary %s", expr.Operator.Lexeme)
	p.nested(func() {
		expr.Left.Accept(p)
		expr.Right.Accept(p)
	})
	return nil, nil
}

func (p *Printer) VisitLogicalExpr(expr *parser.Logical) (interface{}, error) {
	p.line("Logical %s", expr.Operator.Lexeme)
	p.nested(func() {
		expr.Left.Accept(p)
		expr.Right.Accept(p)
	})
	return nil, nil
}

func (p *Printer) VisitVariableExpr(expr *parser.Variable) (interface{}, error) {
	p.line("Variable %s", expr.Name.Lexeme)
	return nil, nil
}

func (p *Printer) VisitAssignExpr(expr *parser.Assign) (interface{}, error) {
	p.line("Assign %s", expr.Name.Lexeme)
	p.nested(func() { expr.Value.Accept(p) })
	return nil, nil
}

func (p *Printer) VisitCallExpr(expr *parser.Call) (interface{}, error) {
	p.line("Call")
	p.nested(func() {
		expr.Callee.Accept(p)
		for _, arg := range expr.Arguments {
			arg.Accept(p)
		}
	})
	return nil, nil
}

func (p *Printer) VisitFunctionExpr(expr *parser.FunctionExpr) (interface{}, error) {
	params := make([]string, len(expr.Params))
	for i, param := range expr.Params {
		params[i] = param.Lexeme
	}
	p.line("FunctionExpr(%v)", params)
	p.nested(func() {
		for _, s := range expr.Body {
			s.Accept(p)
		}
	})
	return nil, nil
}
