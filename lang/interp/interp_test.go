package interp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

// run scans, parses, resolves and interprets src as a single top-level
// input, returning stdout and any runtime error.
func run(t *testing.T, src string) (string, *interp.RuntimeError) {
	t.Helper()
	in := interner.New()
	errs := &diag.List{}

	toks := scanner.New([]byte(src), in, errs).ScanTokens()
	stmts := parser.Parse(toks, in, errs)
	require.False(t, errs.HasErrors(), "unexpected compile errors: %v", errs.Errs())
	dist := resolver.Resolve(stmts, in, errs)
	require.False(t, errs.HasErrors(), "unexpected resolve errors: %v", errs.Errs())

	var out bytes.Buffer
	it := interp.New(in, &out)
	rerr := it.Interpret(stmts, dist)
	return out.String(), rerr
}

func TestClosureCapture(t *testing.T) {
	out, rerr := run(t, `
var a = "outer";
{ var a = "inner"; print a; }
print a;`)
	require.Nil(t, rerr)
	assert.Equal(t, "inner\nouter\n", out)
}

func TestRecursion(t *testing.T) {
	out, rerr := run(t, `
fun fib(n) { if (n < 2) return n; return fib(n - 1) + fib(n - 2); }
print fib(10);`)
	require.Nil(t, rerr)
	assert.Equal(t, "55\n", out)
}

func TestInheritanceAndSuper(t *testing.T) {
	out, rerr := run(t, `
class A { greet() { print "A"; } }
class B < A { greet() { super.greet(); print "B"; } }
B().greet();`)
	require.Nil(t, rerr)
	assert.Equal(t, "A\nB\n", out)
}

func TestInitializerReturnsInstance(t *testing.T) {
	out, rerr := run(t, `
class P { init(x) { this.x = x; } }
var p = P(7);
print p.x;`)
	require.Nil(t, rerr)
	assert.Equal(t, "7\n", out)
}

func TestRuntimeErrorOnMissingProperty(t *testing.T) {
	_, rerr := run(t, `class C {} var c = C(); print c.missing;`)
	require.NotNil(t, rerr)
	assert.Equal(t, "Undefined property 'missing'.", rerr.Msg)
	assert.Equal(t, 1, rerr.Token.Line)
	assert.Equal(t, "Undefined property 'missing'.\n[line 1]", rerr.Error())
}

func TestClosuresCaptureDeclarationSiteEnvironment(t *testing.T) {
	out, rerr := run(t, `
fun makeCounter() {
	var i = 0;
	fun counter() { i = i + 1; print i; }
	return counter;
}
var counter = makeCounter();
counter();
counter();`)
	require.Nil(t, rerr)
	assert.Equal(t, "1\n2\n", out)
}

func TestCallingNonCallable(t *testing.T) {
	_, rerr := run(t, `var a = 1; a();`)
	require.NotNil(t, rerr)
	assert.Equal(t, "Can only call functions and classes.", rerr.Msg)
}

func TestArityMismatch(t *testing.T) {
	_, rerr := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.NotNil(t, rerr)
	assert.Equal(t, "Expected 2 arguments but got 1.", rerr.Msg)
}

func TestFieldShadowsMethod(t *testing.T) {
	out, rerr := run(t, `
class Box { value() { return "method"; } }
var b = Box();
b.value = "field";
print b.value;`)
	require.Nil(t, rerr)
	assert.Equal(t, "field\n", out)
}

func TestNumberStringification(t *testing.T) {
	out, rerr := run(t, `print 3 + 4; print 1 / 4;`)
	require.Nil(t, rerr)
	assert.Equal(t, "7\n0.25\n", out)
}

func TestStringConcatenationTypeError(t *testing.T) {
	_, rerr := run(t, `print "a" + 1;`)
	require.NotNil(t, rerr)
	assert.Equal(t, "Operands must be two numbers or two strings.", rerr.Msg)
}
