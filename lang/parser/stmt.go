package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// declaration → classDecl | funDecl | varDecl | statement
func (p *parser) declaration() ast.Stmt {
	var s ast.Stmt
	switch {
	case p.match(token.CLASS):
		s = p.classDecl()
	case p.match(token.FUN):
		s = p.function("function")
	case p.match(token.VAR):
		s = p.varDecl()
	default:
		s = p.statement()
	}
	if p.panic {
		p.synchronize()
	}
	return s
}

// classDecl → "class" IDENT ("<" IDENT)? "{" function* "}"
func (p *parser) classDecl() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect class name.")

	var super *ast.VariableExpr
	if p.match(token.LESS) {
		superName := p.consume(token.IDENTIFIER, "Expect superclass name.")
		super = ast.NewVariable(superName, p.ids.Next())
	}

	p.consume(token.LEFT_BRACE, "Expect '{' before class body.")
	var methods []*ast.FunctionStmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after class body.")

	return ast.NewClassStmt(name, super, methods)
}

// function → IDENT "(" parameters? ")" block   (kind ∈ {"function", "method"})
func (p *parser) function(kind string) *ast.FunctionStmt {
	name := p.consume(token.IDENTIFIER, "Expect "+kind+" name.")
	p.consume(token.LEFT_PAREN, "Expect '(' after "+kind+" name.")

	var params []token.Token
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENTIFIER, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after parameters.")

	p.consume(token.LEFT_BRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return ast.NewFunctionStmt(name, params, body)
}

// varDecl → "var" IDENT ("=" expression)? ";"
func (p *parser) varDecl() ast.Stmt {
	name := p.consume(token.IDENTIFIER, "Expect variable name.")
	var init ast.Expr
	if p.match(token.EQUAL) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return ast.NewVarStmt(name, init)
}

// statement → exprStmt | forStmt | ifStmt | printStmt | returnStmt | whileStmt | block
func (p *parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStmt()
	case p.match(token.IF):
		return p.ifStmt()
	case p.match(token.PRINT):
		return p.printStmt()
	case p.match(token.RETURN):
		return p.returnStmt()
	case p.match(token.WHILE):
		return p.whileStmt()
	case p.match(token.LEFT_BRACE):
		line := p.previous().Line
		return ast.NewBlockStmt(line, p.block())
	default:
		return p.exprStmt()
	}
}

// block → "{" declaration* "}"   (the opening brace has already been consumed)
func (p *parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RIGHT_BRACE) && !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.consume(token.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

// forStmt is desugared at parse time into { init; while (cond) { body; incr; } }.
func (p *parser) forStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "Expect '(' after 'for'.")

	var init ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		// no initializer
	case p.match(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var incr ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		incr = p.expression()
	}
	p.consume(token.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if incr != nil {
		body = ast.NewBlockStmt(line, []ast.Stmt{body, ast.NewExprStmt(line, incr)})
	}
	if cond == nil {
		cond = ast.NewLiteralBool(line, true)
	}
	body = ast.NewWhileStmt(line, cond, body)
	if init != nil {
		body = ast.NewBlockStmt(line, []ast.Stmt{init, body})
	}
	return body
}

// ifStmt → "if" "(" expression ")" statement ("else" statement)?
func (p *parser) ifStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after if condition.")

	then := p.statement()
	var els ast.Stmt
	if p.match(token.ELSE) {
		els = p.statement()
	}
	return ast.NewIfStmt(line, cond, then, els)
}

// printStmt → "print" expression ";"
func (p *parser) printStmt() ast.Stmt {
	line := p.previous().Line
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return ast.NewPrintStmt(line, value)
}

// returnStmt → "return" expression? ";"
func (p *parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return ast.NewReturnStmt(keyword, value)
}

// whileStmt → "while" "(" expression ")" statement
func (p *parser) whileStmt() ast.Stmt {
	line := p.previous().Line
	p.consume(token.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(token.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return ast.NewWhileStmt(line, cond, body)
}

// exprStmt → expression ";"
func (p *parser) exprStmt() ast.Stmt {
	line := p.peek().Line
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return ast.NewExprStmt(line, expr)
}
