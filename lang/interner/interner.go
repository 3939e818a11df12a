// Package interner implements the process-wide string-to-symbol interner
// shared by the scanner, parser, resolver and interpreter. Representing
// identifiers and string lexemes as small integers lets the rest of the
// pipeline compare and hash them without ever touching the underlying bytes.
package interner

import (
	"github.com/dolthub/swiss"

	"github.com/mna/lox/lang/token"
)

// Interner is a bidirectional mapping between strings and Symbols. The zero
// value is not ready for use; call New.
type Interner struct {
	byString *swiss.Map[string, token.Symbol]
	byIndex  []string // byIndex[sym-1] == the string for sym

	// SymThis, SymInit, SymSuper and SymClock are pre-interned so the resolver
	// and interpreter never pay for a map lookup to recognize these reserved
	// identifiers.
	SymThis  token.Symbol
	SymInit  token.Symbol
	SymSuper token.Symbol
	SymClock token.Symbol
}

// New returns a ready-to-use Interner with the reserved identifiers
// pre-interned.
func New() *Interner {
	in := &Interner{
		byString: swiss.NewMap[string, token.Symbol](64),
	}
	in.SymThis = in.Intern("this")
	in.SymInit = in.Intern("init")
	in.SymSuper = in.Intern("super")
	in.SymClock = in.Intern("clock")
	return in
}

// Intern returns the Symbol for s, interning it if this is the first time s
// is seen.
func (in *Interner) Intern(s string) token.Symbol {
	if sym, ok := in.byString.Get(s); ok {
		return sym
	}
	sym := token.Symbol(len(in.byIndex) + 1)
	in.byString.Put(s, sym)
	in.byIndex = append(in.byIndex, s)
	return sym
}

// Resolve returns the text for a previously interned Symbol. It panics if sym
// was never produced by this Interner, which would be a programming error,
// not a user-facing one.
func (in *Interner) Resolve(sym token.Symbol) string {
	if sym == token.NoSymbol || int(sym) > len(in.byIndex) {
		panic("interner: resolving an invalid symbol")
	}
	return in.byIndex[sym-1]
}
