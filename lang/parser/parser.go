// Package parser implements a recursive-descent parser: it consumes an
// EOF-terminated token stream and produces a statement list, reporting
// and recovering from syntax errors via panic-mode synchronization
// instead of aborting on the first one.
package parser

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/token"
)

const maxArgs = 255

// parser holds the mutable state of a single parse. A parser is constructed
// fresh for every run (file or REPL line).
type parser struct {
	toks  []token.Token
	cur   int
	in    *interner.Interner
	errs  *diag.List
	ids   ast.IDGen
	panic bool // in panic-mode recovery, suppress cascading errors
}

// Parse consumes toks (which must end with a token.EOF) and returns the
// parsed statement list. Errors are reported to errs; the caller should
// check errs.HasErrors() before proceeding to the resolver.
func Parse(toks []token.Token, in *interner.Interner, errs *diag.List) []ast.Stmt {
	p := &parser{toks: toks, in: in, errs: errs}
	var stmts []ast.Stmt
	for !p.atEnd() {
		if s := p.declaration(); s != nil {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

func (p *parser) atEnd() bool            { return p.peek().Kind == token.EOF }
func (p *parser) peek() token.Token      { return p.toks[p.cur] }
func (p *parser) previous() token.Token  { return p.toks[p.cur-1] }

func (p *parser) advance() token.Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.previous()
}

func (p *parser) check(k token.Kind) bool {
	if p.atEnd() {
		return k == token.EOF
	}
	return p.peek().Kind == k
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume checks that the current token has kind k, advancing past it; if
// not, it reports msg at the current token and enters panic mode.
func (p *parser) consume(k token.Kind, msg string) token.Token {
	if p.check(k) {
		return p.advance()
	}
	p.errorAt(p.peek(), msg)
	return p.peek()
}

// errorAt reports msg at tok, unless the parser is already in panic-mode
// recovery (to avoid a cascade of spurious errors from one syntax mistake).
func (p *parser) errorAt(tok token.Token, msg string) {
	if p.panic {
		return
	}
	p.panic = true
	origin := " at end"
	if tok.Kind != token.EOF {
		origin = " at '" + p.in.Resolve(tok.Lexeme) + "'"
	}
	p.errs.Add(tok.Line, origin, msg)
}

// synchronize discards tokens until it reaches a likely statement boundary.
func (p *parser) synchronize() {
	p.panic = false
	for !p.atEnd() {
		if p.previous().Kind == token.SEMICOLON {
			return
		}
		if token.IsKeywordStart(p.peek().Kind) {
			return
		}
		p.advance()
	}
}
