package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// expression → assignment
func (p *parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → ( call "." )? IDENT "=" assignment | logic_or
func (p *parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.VariableExpr:
			return ast.NewAssign(target.Name, value, p.ids.Next())
		case *ast.GetExpr:
			return ast.NewSet(target.Object, target.Name, value)
		default:
			p.errorAt(equals, "Invalid assignment target.")
			return expr
		}
	}
	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = ast.NewLogical(expr, op, right)
	}
	return expr
}

// equality → comparison ( ("!="|"==") comparison )*
func (p *parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// comparison → term ( (">"|">="|"<"|"<=") term )*
func (p *parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// term → factor ( ("-"|"+") factor )*
func (p *parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// factor → unary ( ("/"|"*") unary )*
func (p *parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.SLASH, token.STAR) {
		op := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, op, right)
	}
	return expr
}

// unary → ("!"|"-") unary | call
func (p *parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return ast.NewUnary(op, right)
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" | "." IDENT )*
func (p *parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LEFT_PAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENTIFIER, "Expect property name after '.'.")
			expr = ast.NewGet(expr, name)
		default:
			return expr
		}
	}
}

func (p *parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RIGHT_PAREN, "Expect ')' after arguments.")
	return ast.NewCall(callee, paren, args)
}

// primary → "true"|"false"|"nil"|NUMBER|STRING|IDENT
//         | "(" expression ")" | "this" | "super" "." IDENT
func (p *parser) primary() ast.Expr {
	tok := p.peek()
	switch {
	case p.match(token.FALSE):
		return ast.NewLiteralBool(tok.Line, false)
	case p.match(token.TRUE):
		return ast.NewLiteralBool(tok.Line, true)
	case p.match(token.NIL):
		return ast.NewLiteralNil(tok.Line)
	case p.match(token.NUMBER):
		return ast.NewLiteralNumber(tok.Line, tok.Literal.Num)
	case p.match(token.STRING):
		return ast.NewLiteralString(tok.Line, tok.Literal.Str)
	case p.match(token.SUPER):
		keyword := p.previous()
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENTIFIER, "Expect superclass method name.")
		return ast.NewSuper(keyword, method, p.ids.Next())
	case p.match(token.THIS):
		return ast.NewThis(p.previous(), p.ids.Next())
	case p.match(token.IDENTIFIER):
		return ast.NewVariable(p.previous(), p.ids.Next())
	case p.match(token.LEFT_PAREN):
		expr := p.expression()
		p.consume(token.RIGHT_PAREN, "Expect ')' after expression.")
		return ast.NewGrouping(tok.Line, expr)
	default:
		p.errorAt(p.peek(), "Expect expression.")
		p.advance()
		return ast.NewLiteralNil(tok.Line)
	}
}
