package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/scanner"
)

func parseSrc(t *testing.T, src string) ([]ast.Stmt, *interner.Interner, *diag.List) {
	t.Helper()
	in := interner.New()
	errs := &diag.List{}
	toks := scanner.New([]byte(src), in, errs).ScanTokens()
	stmts := parser.Parse(toks, in, errs)
	return stmts, in, errs
}

func TestParseVarDecl(t *testing.T) {
	stmts, in, errs := parseSrc(t, `var a = 1 + 2;`)
	require.False(t, errs.HasErrors())
	require.Len(t, stmts, 1)

	v, ok := stmts[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "a", in.Resolve(v.Name.Lexeme))

	bin, ok := v.Initializer.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.LitNumber, bin.Left.(*ast.LiteralExpr).Kind)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, _, errs := parseSrc(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, errs.HasErrors())
	require.Len(t, stmts, 1)

	block, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "for loop desugars into an enclosing block")
	require.Len(t, block.Stmts, 2)

	_, ok = block.Stmts[0].(*ast.VarStmt)
	assert.True(t, ok, "first statement is the initializer")

	while, ok := block.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement is the desugared while loop")

	body, ok := while.Body.(*ast.BlockStmt)
	require.True(t, ok, "while body wraps the original body plus the increment")
	require.Len(t, body.Stmts, 2)
}

func TestParseClassWithSuperclass(t *testing.T) {
	stmts, in, errs := parseSrc(t, `class B < A { greet() { super.greet(); } }`)
	require.False(t, errs.HasErrors())
	require.Len(t, stmts, 1)

	c, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "B", in.Resolve(c.Name.Lexeme))
	require.NotNil(t, c.Superclass)
	assert.Equal(t, "A", in.Resolve(c.Superclass.Name.Lexeme))
	require.Len(t, c.Methods, 1)
	assert.Equal(t, "greet", in.Resolve(c.Methods[0].Name.Lexeme))
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, _, errs := parseSrc(t, `1 = 2;`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Invalid assignment target.", errs.Errs()[0].Msg)
}

func TestParseMissingSemicolonReportsAndSynchronizes(t *testing.T) {
	stmts, _, errs := parseSrc(t, "var a = 1\nvar b = 2;")
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Expect ';' after variable declaration.", errs.Errs()[0].Msg)
	// synchronization should still let the parser recover the next statement
	require.Len(t, stmts, 2)
}

func TestParseTooManyArguments(t *testing.T) {
	var b []byte
	b = append(b, "f("...)
	for i := 0; i < 256; i++ {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, '1')
	}
	b = append(b, ");"...)

	_, _, errs := parseSrc(t, string(b))
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Can't have more than 255 arguments.", errs.Errs()[0].Msg)
}
