package interp

import (
	"github.com/dolthub/swiss"

	"github.com/mna/lox/lang/token"
)

// Environment is one lexical scope's binding table, chained to its enclosing
// scope. Bindings are keyed by interned Symbol rather than by string, so
// lookups never hash or compare raw identifier text.
type Environment struct {
	enclosing *Environment
	values    *swiss.Map[token.Symbol, Value]
}

// NewEnvironment returns a fresh global scope with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: swiss.NewMap[token.Symbol, Value](8)}
}

// NewChild returns a scope nested inside env, as pushed on entry to a block
// or function call, when binding a method's `this`, or for a subclass's
// `super` scope.
func NewChild(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: swiss.NewMap[token.Symbol, Value](8)}
}

// Define binds name to v in this scope, shadowing any binding of the same
// name in an enclosing scope. Redefinition within the same scope is allowed
// (global re-declaration, `var a = a;`-style shadowing).
func (e *Environment) Define(name token.Symbol, v Value) {
	e.values.Put(name, v)
}

// Get looks up name starting in this scope and walking outward.
func (e *Environment) Get(name token.Symbol) (Value, bool) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values.Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// GetAt looks up name exactly `dist` scopes outward from this one, as
// computed by the resolver. It never fails: the resolver only records a
// distance when it has already confirmed the binding exists.
func (e *Environment) GetAt(dist int, name token.Symbol) Value {
	env := e.ancestor(dist)
	v, _ := env.values.Get(name)
	return v
}

// AssignAt assigns v to name exactly `dist` scopes outward from this one.
func (e *Environment) AssignAt(dist int, name token.Symbol, v Value) {
	e.ancestor(dist).values.Put(name, v)
}

func (e *Environment) ancestor(dist int) *Environment {
	env := e
	for i := 0; i < dist; i++ {
		env = env.enclosing
	}
	return env
}

// Assign rebinds name to v, searching from this scope outward. It reports
// false if name is bound nowhere in the chain: assignment never creates a
// new global binding, unlike Define.
func (e *Environment) Assign(name token.Symbol, v Value) bool {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values.Get(name); ok {
			env.values.Put(name, v)
			return true
		}
	}
	return false
}
