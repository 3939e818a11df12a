// Package interp implements the tree-walking evaluator: the runtime object
// model (nil, booleans, numbers, strings, callables, instances), the
// Environment chain, and the statement/expression evaluator that walks the
// resolved AST directly.
package interp

import (
	"strconv"

	"github.com/mna/lox/lang/interner"
)

// Value is the interface implemented by every value the interpreter
// manipulates: a minimal common surface, with callability expressed as the
// additional, narrower Callable interface.
type Value interface {
	// Type returns a short name for the value's runtime type. It is never
	// shown to Lox code, which has no typeof.
	Type() string
}

// Nil is the single Lox nil value.
type Nil struct{}

func (Nil) Type() string { return "nil" }

// NilValue is the canonical Lox nil.
var NilValue = Nil{}

// Bool is a Lox boolean.
type Bool bool

func (Bool) Type() string { return "boolean" }

// Number is a Lox number, an IEEE-754 double.
type Number float64

func (Number) Type() string { return "number" }

// String is a Lox string value. Two Strings are equal iff their contents
// match, regardless of whether either originated from an interned lexeme or
// from runtime concatenation.
type String string

func (String) Type() string { return "string" }

// Truthy implements Lox's truthiness rule: nil is false, booleans are
// themselves, everything else is true.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(v)
	default:
		return true
	}
}

// Equal implements Lox's equality rule: structural for
// nil/boolean/number/string, identity for instances and callables, false
// across kinds.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bb, ok := b.(Bool)
		return ok && a == bb
	case Number:
		bb, ok := b.(Number)
		return ok && a == bb
	case String:
		bb, ok := b.(String)
		return ok && a == bb
	case *Instance:
		bb, ok := b.(*Instance)
		return ok && a == bb
	case Callable:
		bb, ok := b.(Callable)
		return ok && sameCallable(a, bb)
	default:
		return false
	}
}

func sameCallable(a, b Callable) bool {
	switch a := a.(type) {
	case *Function:
		bb, ok := b.(*Function)
		return ok && a == bb
	case *Class:
		bb, ok := b.(*Class)
		return ok && a == bb
	case *Native:
		bb, ok := b.(*Native)
		return ok && a == bb
	default:
		return false
	}
}

// Stringify renders v the way `print` and string concatenation do.
func Stringify(in *interner.Interner, v Value) string {
	switch v := v.(type) {
	case Nil:
		return "nil"
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case Number:
		return formatNumber(float64(v))
	case String:
		return string(v)
	case *Native:
		return "<native fn>"
	case *Function:
		return "<fn " + in.Resolve(v.Decl.Name.Lexeme) + ">"
	case *Class:
		return in.Resolve(v.Name.Lexeme)
	case *Instance:
		return in.Resolve(v.Class.Name.Lexeme) + " instance"
	default:
		return "<?>"
	}
}

// formatNumber renders a double using the shortest round-trip decimal
// representation, printing integral values without a decimal point so
// 123.0 prints as "123".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
