/*
File    : lumen/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/lumen/lexer"

// expression is the grammar's entry point: assignment is the
// lowest-precedence production.
func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment parses "target = value", right-associatively, falling
// through to logicOr when no "=" follows. The left-hand side is parsed as
// an ordinary expression first and only validated as an assignable target
// once "=" is seen — this lets the same recursive-descent path handle
// "a" and "a = b" without a separate lvalue grammar.
func (p *Parser) assignment() Expr {
	expr := p.logicOr()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*Variable); ok {
			return &Assign{Name: variable.Name, Value: value}
		}
		p.error(equals, "Invalid assignment target.")
	}
	return expr
}

func (p *Parser) logicOr() Expr {
	expr := p.logicAnd()
	for p.match(lexer.OR_KEY) {
		operator := p.previous()
		right := p.logicAnd()
		expr = &Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() Expr {
	expr := p.equality()
	for p.match(lexer.AND_KEY) {
		operator := p.previous()
		right := p.equality()
		expr = &Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &Unary{Operator: operator, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by zero or more "(args)"
// call suffixes, e.g. "f()()" for a function returning a function.
func (p *Parser) call() Expr {
	expr := p.primary()

	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var arguments []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				p.error(p.peek(), "Can't have more than 255 arguments.")
			}
			arguments = append(arguments, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &Call{Callee: callee, Paren: paren, Arguments: arguments}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE_KEY):
		return &Literal{Value: false}
	case p.match(lexer.TRUE_KEY):
		return &Literal{Value: true}
	case p.match(lexer.NIL_KEY):
		return &Literal{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &Literal{Value: p.previous().Literal}
	case p.match(lexer.IDENTIFIER):
		return &Variable{Name: p.previous()}
	case p.match(lexer.FUN_KEY):
		params, body := p.functionBody("function")
		return &FunctionExpr{Params: params, Body: body}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &Grouping{Expression: expr}
	}
	panic(p.error(p.peek(), "Expect expression."))
}
