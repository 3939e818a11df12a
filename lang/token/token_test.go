package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mna/lox/lang/token"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "+", token.PLUS.String())
	assert.Equal(t, "identifier", token.IDENTIFIER.String())
	assert.Equal(t, "end of file", token.EOF.String())
	assert.Equal(t, "unknown token", token.Kind(-1).String())
}

func TestKeywords(t *testing.T) {
	want := map[string]token.Kind{
		"and": token.AND, "class": token.CLASS, "else": token.ELSE,
		"false": token.FALSE, "for": token.FOR, "fun": token.FUN,
		"if": token.IF, "nil": token.NIL, "or": token.OR,
		"print": token.PRINT, "return": token.RETURN, "super": token.SUPER,
		"this": token.THIS, "true": token.TRUE, "var": token.VAR,
		"while": token.WHILE,
	}
	assert.Equal(t, want, token.Keywords)
}

func TestIsKeywordStart(t *testing.T) {
	assert.True(t, token.IsKeywordStart(token.CLASS))
	assert.True(t, token.IsKeywordStart(token.FOR))
	assert.False(t, token.IsKeywordStart(token.IDENTIFIER))
	assert.False(t, token.IsKeywordStart(token.AND))
}
