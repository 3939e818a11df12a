package interp

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// Callable is implemented by every value that can appear as the callee of a
// call expression: native functions, declared functions/methods, and classes
// (instantiation is calling the class itself).
type Callable interface {
	Value

	// Arity is the number of arguments Call expects.
	Arity() int

	// Call invokes the callable with already-evaluated args. interp is the
	// interpreter to use for executing any Lox code the call runs (a function
	// body, an initializer).
	Call(interp *Interpreter, callTok token.Token, args []Value) (Value, *RuntimeError)
}

// Native wraps a Go function as a Lox-callable built-in, such as clock().
type Native struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []Value) Value
}

func (*Native) Type() string { return "native function" }
func (n *Native) Arity() int { return n.arity }

func (n *Native) Call(interp *Interpreter, _ token.Token, args []Value) (Value, *RuntimeError) {
	return n.fn(interp, args), nil
}

// Function is a declared Lox function or method, closing over the
// environment active at its declaration site.
type Function struct {
	Decl          *ast.FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() string { return "function" }
func (f *Function) Arity() int { return len(f.Decl.Params) }

// Bind returns a copy of f whose closure has `this` bound to inst, as
// produced when a method is looked up on an instance: a method reference
// carries its receiver even when stored in a variable.
func (f *Function) Bind(thisSym token.Symbol, inst *Instance) *Function {
	env := NewChild(f.Closure)
	env.Define(thisSym, inst)
	return &Function{Decl: f.Decl, Closure: env, IsInitializer: f.IsInitializer}
}

func (f *Function) Call(interp *Interpreter, _ token.Token, args []Value) (Value, *RuntimeError) {
	env := NewChild(f.Closure)
	for i, param := range f.Decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	sig, rerr := interp.execBlock(f.Decl.Body, env)
	if rerr != nil {
		return nil, rerr
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, interp.in.SymThis), nil
	}
	if sig.kind == sigReturn {
		return sig.value, nil
	}
	return NilValue, nil
}
