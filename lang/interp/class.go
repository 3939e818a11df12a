package interp

import (
	"github.com/dolthub/swiss"

	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/token"
)

// Class is a Lox class: a name, its own methods, and an optional
// superclass. Calling a Class instantiates it. in holds the interner that
// named its methods, so the init() method can be found by symbol without a
// program-wide lookup.
type Class struct {
	Name       token.Token
	Superclass *Class // nil if no `< Super` clause
	Methods    map[token.Symbol]*Function
	in         *interner.Interner
}

// NewClass returns a class named name with the given methods and optional
// superclass.
func NewClass(in *interner.Interner, name token.Token, super *Class, methods map[token.Symbol]*Function) *Class {
	return &Class{Name: name, Superclass: super, Methods: methods, in: in}
}

func (*Class) Type() string { return "class" }

// Arity is the arity of the class's init() method, its own or the nearest
// inherited one, or 0 if neither the class nor an ancestor declares one.
func (c *Class) Arity() int {
	if m := c.FindMethod(c.in.SymInit); m != nil {
		return m.Arity()
	}
	return 0
}

// FindMethod looks up name on c, then walks the superclass chain.
func (c *Class) FindMethod(name token.Symbol) *Function {
	for class := c; class != nil; class = class.Superclass {
		if m, ok := class.Methods[name]; ok {
			return m
		}
	}
	return nil
}

// Call instantiates c, running its initializer (if any) with args.
func (c *Class) Call(interp *Interpreter, callTok token.Token, args []Value) (Value, *RuntimeError) {
	inst := NewInstance(c)
	if init := c.FindMethod(interp.in.SymInit); init != nil {
		bound := init.Bind(interp.in.SymThis, inst)
		if _, rerr := bound.Call(interp, callTok, args); rerr != nil {
			return nil, rerr
		}
	}
	return inst, nil
}

// Instance is a runtime instance of a Class: a mutable field table backed by
// a swiss.Map.
type Instance struct {
	Class  *Class
	fields *swiss.Map[token.Symbol, Value]
}

// NewInstance returns a fresh, field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, fields: swiss.NewMap[token.Symbol, Value](4)}
}

func (*Instance) Type() string { return "instance" }

// Get reads a field or bound method named by tok off inst: fields shadow
// methods, and a method reference comes back already bound to inst.
func (inst *Instance) Get(interp *Interpreter, tok token.Token) (Value, *RuntimeError) {
	if v, ok := inst.fields.Get(tok.Lexeme); ok {
		return v, nil
	}
	if m := inst.Class.FindMethod(tok.Lexeme); m != nil {
		return m.Bind(interp.in.SymThis, inst), nil
	}
	return nil, newError(tok, "Undefined property '%s'.", interp.in.Resolve(tok.Lexeme))
}

// Set assigns a field named by tok on inst, creating it if absent. Lox has
// no declared field list: any identifier becomes a field on first
// assignment.
func (inst *Instance) Set(tok token.Token, v Value) {
	inst.fields.Put(tok.Lexeme, v)
}
