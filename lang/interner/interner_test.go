package interner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/token"
)

func TestInternRoundTrip(t *testing.T) {
	in := interner.New()

	a := in.Intern("foo")
	b := in.Intern("bar")
	a2 := in.Intern("foo")

	assert.Equal(t, a, a2, "interning the same string twice returns the same symbol")
	assert.NotEqual(t, a, b)
	assert.Equal(t, "foo", in.Resolve(a))
	assert.Equal(t, "bar", in.Resolve(b))
}

func TestPreinternedSymbols(t *testing.T) {
	in := interner.New()

	assert.Equal(t, "this", in.Resolve(in.SymThis))
	assert.Equal(t, "init", in.Resolve(in.SymInit))
	assert.Equal(t, "super", in.Resolve(in.SymSuper))
	assert.Equal(t, "clock", in.Resolve(in.SymClock))

	assert.Equal(t, in.SymThis, in.Intern("this"))
}

func TestResolveInvalidSymbolPanics(t *testing.T) {
	in := interner.New()
	assert.Panics(t, func() { in.Resolve(token.NoSymbol) })
	assert.Panics(t, func() { in.Resolve(token.Symbol(9999)) })
}
