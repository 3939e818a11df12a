package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

func resolveSrc(t *testing.T, src string) ([]ast.Stmt, resolver.Distances, *interner.Interner, *diag.List) {
	t.Helper()
	in := interner.New()
	errs := &diag.List{}
	toks := scanner.New([]byte(src), in, errs).ScanTokens()
	stmts := parser.Parse(toks, in, errs)
	require.False(t, errs.HasErrors())
	dist := resolver.Resolve(stmts, in, errs)
	return stmts, dist, in, errs
}

func TestResolveLocalDistance(t *testing.T) {
	stmts, dist, _, errs := resolveSrc(t, `
var a = "global";
{
	var a = "outer";
	{
		var a = "inner";
		print a;
	}
}`)
	require.False(t, errs.HasErrors())

	outer := stmts[1].(*ast.BlockStmt)
	inner := outer.Stmts[1].(*ast.BlockStmt)
	printStmt := inner.Stmts[1].(*ast.PrintStmt)
	v := printStmt.Expr.(*ast.VariableExpr)

	d, ok := dist[v.ID]
	require.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestResolveGlobalIsUnresolved(t *testing.T) {
	stmts, dist, _, errs := resolveSrc(t, `
var a = "global";
print a;`)
	require.False(t, errs.HasErrors())

	printStmt := stmts[1].(*ast.PrintStmt)
	v := printStmt.Expr.(*ast.VariableExpr)

	_, ok := dist[v.ID]
	assert.False(t, ok, "a reference to a global variable is left unresolved")
}

func TestResolveDuplicateLocalDeclaration(t *testing.T) {
	_, _, _, errs := resolveSrc(t, `{ var a = 1; var a = 2; }`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Already a variable with this name in this scope.", errs.Errs()[0].Msg)
}

func TestResolveSelfInheritance(t *testing.T) {
	_, _, _, errs := resolveSrc(t, `class X < X {}`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "A class can't inherit from itself.", errs.Errs()[0].Msg)
}

func TestResolveThisOutsideClass(t *testing.T) {
	_, _, _, errs := resolveSrc(t, `print this;`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Can't use 'this' outside of a class.", errs.Errs()[0].Msg)
}

func TestResolveSuperWithoutSuperclass(t *testing.T) {
	_, _, _, errs := resolveSrc(t, `class A { method() { super.method(); } }`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Can't use 'super' in a class with no superclass.", errs.Errs()[0].Msg)
}

func TestResolveReturnOutsideFunction(t *testing.T) {
	_, _, _, errs := resolveSrc(t, `return 1;`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Can't return from top-level code.", errs.Errs()[0].Msg)
}

func TestResolveReturnValueFromInitializer(t *testing.T) {
	_, _, _, errs := resolveSrc(t, `class C { init() { return 1; } }`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Can't return a value from an initializer.", errs.Errs()[0].Msg)
}

func TestResolveReadOwnInitializer(t *testing.T) {
	_, _, _, errs := resolveSrc(t, `{ var a = a; }`)
	require.True(t, errs.HasErrors())
	assert.Equal(t, "Can't read local variable in its own initializer.", errs.Errs()[0].Msg)
}
