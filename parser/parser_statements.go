/*
File    : lumen/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/lumen/lexer"

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.FOR_KEY):
		return p.forStatement()
	case p.match(lexer.IF_KEY):
		return p.ifStatement()
	case p.match(lexer.PRINT_KEY):
		return p.printStatement()
	case p.match(lexer.RETURN_KEY):
		return p.returnStatement()
	case p.match(lexer.WHILE_KEY):
		return p.whileStatement()
	case p.match(lexer.LEFT_BRACE):
		return &Block{Statements: p.block()}
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &Print{Expr: value}
}

func (p *Parser) returnStatement() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &Return{Keyword: keyword, Value: value}
}

func (p *Parser) varDeclaration() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &Var{Name: name, Initializer: initializer}
}

func (p *Parser) whileStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &While{Condition: condition, Body: body}
}

// forStatement desugars "for (init; cond; incr) body" into the equivalent
// while-loop form: the increment (if present) is appended to the body
// inside its own block, a missing condition becomes the literal "true",
// and the initializer (if present) wraps the whole thing in an outer
// block that scopes the loop variable. This mirrors the distillation
// source's Parser.for_statement exactly.
func (p *Parser) forStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR_KEY):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &Block{Statements: []Stmt{body, &ExpressionStmt{Expr: increment}}}
	}
	if condition == nil {
		condition = &Literal{Value: true}
	}
	body = &While{Condition: condition, Body: body}

	if initializer != nil {
		body = &Block{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) ifStatement() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(lexer.ELSE_KEY) {
		elseBranch = p.statement()
	}
	return &If{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) expressionStatement() Stmt {
	if p.match(lexer.SEMICOLON) {
		// A bare ";" is a legal no-op expression statement.
		return &ExpressionStmt{}
	}
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ExpressionStmt{Expr: expr}
}

// function parses a named function declaration. kind is only used in
// diagnostics ("function"); Lumen has no method declarations yet, so it is
// always "function" today, but the parameter keeps parity with how the
// distillation source generalizes this method for methods as well.
func (p *Parser) function(kind string) Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect "+kind+" name.")
	params, body := p.functionBody(kind)
	return &Function{Name: name, Params: params, Body: body}
}

// functionBody parses the "(params) { body }" portion shared by a named
// function declaration and an anonymous function expression, after any
// name has already been consumed (or skipped, for the expression form).
func (p *Parser) functionBody(kind string) ([]lexer.Token, []Stmt) {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.error(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(lexer.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return params, body
}
