package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, *interner.Interner, *diag.List) {
	t.Helper()
	in := interner.New()
	errs := &diag.List{}
	toks := scanner.New([]byte(src), in, errs).ScanTokens()
	return toks, in, errs
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, _, errs := scanAll(t, "(){},.-+;*!= = == <= >=")
	require.False(t, errs.HasErrors())

	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.EOF,
	}, kinds)
}

func TestScanStringLiteral(t *testing.T) {
	toks, in, errs := scanAll(t, `"hello world"`)
	require.False(t, errs.HasErrors())
	require.Len(t, toks, 2) // STRING, EOF

	tok := toks[0]
	assert.Equal(t, token.STRING, tok.Kind)
	assert.True(t, tok.Literal.IsStr)
	assert.Equal(t, "hello world", in.Resolve(tok.Literal.Str))
}

func TestScanUnterminatedString(t *testing.T) {
	_, _, errs := scanAll(t, `"unterminated`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Unterminated string.", errs.Errs()[0].Msg)
}

func TestScanNumber(t *testing.T) {
	toks, _, errs := scanAll(t, "123 45.67")
	require.False(t, errs.HasErrors())
	require.Len(t, toks, 3)
	assert.Equal(t, 123.0, toks[0].Literal.Num)
	assert.Equal(t, 45.67, toks[1].Literal.Num)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	toks, in, errs := scanAll(t, "var x = foo and true")
	require.False(t, errs.HasErrors())

	assert.Equal(t, token.VAR, toks[0].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "x", in.Resolve(toks[1].Lexeme))
	assert.Equal(t, token.EQUAL, toks[2].Kind)
	assert.Equal(t, token.IDENTIFIER, toks[3].Kind)
	assert.Equal(t, token.AND, toks[4].Kind)
	assert.Equal(t, token.TRUE, toks[5].Kind)
	assert.True(t, toks[5].Literal.IsBool)
	assert.True(t, toks[5].Literal.Bool)
}

func TestScanSkipsCommentsAndWhitespace(t *testing.T) {
	toks, _, errs := scanAll(t, "// a comment\nvar a;\n")
	require.False(t, errs.HasErrors())
	require.Len(t, toks, 4) // var, a, ;, EOF
	assert.Equal(t, 2, toks[0].Line)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, _, errs := scanAll(t, "@")
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Unexpected character.", errs.Errs()[0].Msg)
}
