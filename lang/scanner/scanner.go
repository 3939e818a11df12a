// Package scanner implements the lexical scanner: a straightforward
// character-by-character tokenizer that turns Lox source text into a stream
// of token.Token values. It is a thin external collaborator to the semantic
// pipeline (parser/resolver/interpreter), so it is kept simple rather than
// general — there is exactly one source language to tokenize.
package scanner

import (
	"strconv"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/token"
)

// Scanner tokenizes a single source file's bytes. It is constructed fresh for
// every run (file or REPL line).
type Scanner struct {
	in    *interner.Interner
	errs  *diag.List
	src   []byte
	start int
	cur   int
	line  int
}

// New returns a Scanner reading src, interning identifiers and strings
// through in, and reporting diagnostics to errs.
func New(src []byte, in *interner.Interner, errs *diag.List) *Scanner {
	return &Scanner{in: in, errs: errs, src: src, line: 1}
}

// ScanTokens scans the entire source and returns the resulting tokens,
// always terminated by a single token.EOF.
func (s *Scanner) ScanTokens() []token.Token {
	var toks []token.Token
	for {
		tok, ok := s.scanOne()
		if ok {
			toks = append(toks, tok)
		}
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() byte {
	c := s.src[s.cur]
	s.cur++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() byte {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.cur] != want {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) make(k token.Kind) token.Token {
	lexeme := string(s.src[s.start:s.cur])
	return token.Token{Kind: k, Lexeme: s.in.Intern(lexeme), Line: s.line}
}

func (s *Scanner) error(msg string) {
	s.errs.Add(s.line, "", msg)
}

// scanOne scans and returns the next token. Whitespace, comments and
// unexpected characters are skipped (the latter reported) inside its loop;
// ok is false only when an unterminated string produced no token (the
// caller should continue scanning — the scanner, like the parser, reports and
// keeps going rather than aborting on the first bad character).
func (s *Scanner) scanOne() (token.Token, bool) {
	for {
		s.start = s.cur
		if s.atEnd() {
			return token.Token{Kind: token.EOF, Line: s.line}, true
		}

		c := s.advance()
		switch c {
		case ' ', '\r', '\t':
			continue
		case '\n':
			s.line++
			continue
		case '/':
			if s.match('/') {
				for s.peek() != '\n' && !s.atEnd() {
					s.advance()
				}
				continue
			}
			return s.make(token.SLASH), true
		case '(':
			return s.make(token.LEFT_PAREN), true
		case ')':
			return s.make(token.RIGHT_PAREN), true
		case '{':
			return s.make(token.LEFT_BRACE), true
		case '}':
			return s.make(token.RIGHT_BRACE), true
		case ',':
			return s.make(token.COMMA), true
		case '.':
			return s.make(token.DOT), true
		case '-':
			return s.make(token.MINUS), true
		case '+':
			return s.make(token.PLUS), true
		case ';':
			return s.make(token.SEMICOLON), true
		case '*':
			return s.make(token.STAR), true
		case '!':
			if s.match('=') {
				return s.make(token.BANG_EQUAL), true
			}
			return s.make(token.BANG), true
		case '=':
			if s.match('=') {
				return s.make(token.EQUAL_EQUAL), true
			}
			return s.make(token.EQUAL), true
		case '<':
			if s.match('=') {
				return s.make(token.LESS_EQUAL), true
			}
			return s.make(token.LESS), true
		case '>':
			if s.match('=') {
				return s.make(token.GREATER_EQUAL), true
			}
			return s.make(token.GREATER), true
		case '"':
			tok, ok := s.scanString()
			return tok, ok
		default:
			switch {
			case isDigit(c):
				return s.scanNumber(), true
			case isAlpha(c):
				return s.scanIdentifier(), true
			default:
				s.error("Unexpected character.")
				continue
			}
		}
	}
}

func (s *Scanner) scanString() (token.Token, bool) {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.error("Unterminated string.")
		return token.Token{}, false
	}
	s.advance() // the closing quote

	contents := string(s.src[s.start+1 : s.cur-1])
	tok := token.Token{
		Kind:   token.STRING,
		Lexeme: s.in.Intern(string(s.src[s.start:s.cur])),
		Line:   s.line,
	}
	tok.Literal.IsStr = true
	tok.Literal.Str = s.in.Intern(contents)
	return tok, true
}

func (s *Scanner) scanNumber() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lexeme := string(s.src[s.start:s.cur])
	val, _ := strconv.ParseFloat(lexeme, 64)
	tok := s.make(token.NUMBER)
	tok.Literal.IsNum = true
	tok.Literal.Num = val
	return tok
}

func (s *Scanner) scanIdentifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lexeme := string(s.src[s.start:s.cur])
	if kw, ok := token.Keywords[lexeme]; ok {
		tok := s.make(kw)
		if kw == token.TRUE || kw == token.FALSE {
			tok.Literal.IsBool = true
			tok.Literal.Bool = kw == token.TRUE
		}
		return tok
	}
	return s.make(token.IDENTIFIER)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
