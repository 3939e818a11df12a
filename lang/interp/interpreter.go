package interp

import (
	"fmt"
	"io"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/token"
)

// Interpreter walks a resolved AST and executes it directly. A single
// Interpreter carries the global environment and the current call's
// environment across an entire program run (a file, or a whole REPL
// session), so that top-level `var` declarations and function closures
// persist between successive top-level statements.
type Interpreter struct {
	in      *interner.Interner
	dist    resolver.Distances
	globals *Environment
	env     *Environment
	stdout  io.Writer
}

// New returns an Interpreter with a fresh global environment, printing
// `print` output to stdout. A single Interpreter should be reused across
// every top-level input of a run (every REPL line, or the one input of a
// file run) so that state persists across REPL lines.
func New(in *interner.Interner, stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	defineNatives(globals, in)
	return &Interpreter{in: in, globals: globals, env: globals, stdout: stdout}
}

// Interpret executes stmts (resolved into dist) in order, stopping and
// returning the first runtime error encountered. A runtime error aborts the
// current top-level input but is reported rather than crashing the process.
// dist is scoped to this single call: each
// top-level input is parsed and resolved independently, so its ast.ExprIDs
// only make sense against its own Distances.
func (it *Interpreter) Interpret(stmts []ast.Stmt, dist resolver.Distances) *RuntimeError {
	it.dist = dist
	for _, s := range stmts {
		if sig, rerr := it.exec(s); rerr != nil {
			return rerr
		} else if sig.kind == sigReturn {
			// a bare top-level `return` is rejected by the resolver; reaching
			// here would be a resolver bug, not a user-facing situation.
			return newError(token.Token{}, "return outside of a function")
		}
	}
	return nil
}

// signalKind tags how a statement's execution unwound: either it ran to
// completion (sigNone), or it hit a `return` that needs to propagate up to
// the enclosing function call (sigReturn). Tagged-result control flow is
// used here instead of a Go panic, adapted from the (retVal, ret bool)
// idiom used for the same purpose in tree-walking Lox interpreters.
type signalKind int8

const (
	sigNone signalKind = iota
	sigReturn
)

type signal struct {
	kind  signalKind
	value Value
}

var noSignal = signal{kind: sigNone}

// exec executes a single statement in the interpreter's current
// environment.
func (it *Interpreter) exec(stmt ast.Stmt) (signal, *RuntimeError) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, rerr := it.eval(s.Expr)
		return noSignal, rerr

	case *ast.PrintStmt:
		v, rerr := it.eval(s.Expr)
		if rerr != nil {
			return noSignal, rerr
		}
		fmt.Fprintln(it.stdout, Stringify(it.in, v))
		return noSignal, nil

	case *ast.VarStmt:
		var v Value = NilValue
		if s.Initializer != nil {
			var rerr *RuntimeError
			v, rerr = it.eval(s.Initializer)
			if rerr != nil {
				return noSignal, rerr
			}
		}
		it.env.Define(s.Name.Lexeme, v)
		return noSignal, nil

	case *ast.BlockStmt:
		return it.execBlock(s.Stmts, NewChild(it.env))

	case *ast.IfStmt:
		cond, rerr := it.eval(s.Cond)
		if rerr != nil {
			return noSignal, rerr
		}
		if Truthy(cond) {
			return it.exec(s.Then)
		} else if s.Else != nil {
			return it.exec(s.Else)
		}
		return noSignal, nil

	case *ast.WhileStmt:
		for {
			cond, rerr := it.eval(s.Cond)
			if rerr != nil {
				return noSignal, rerr
			}
			if !Truthy(cond) {
				return noSignal, nil
			}
			sig, rerr := it.exec(s.Body)
			if rerr != nil || sig.kind != sigNone {
				return sig, rerr
			}
		}

	case *ast.FunctionStmt:
		fn := &Function{Decl: s, Closure: it.env}
		it.env.Define(s.Name.Lexeme, fn)
		return noSignal, nil

	case *ast.ReturnStmt:
		v := Value(NilValue)
		if s.Value != nil {
			var rerr *RuntimeError
			v, rerr = it.eval(s.Value)
			if rerr != nil {
				return noSignal, rerr
			}
		}
		return signal{kind: sigReturn, value: v}, nil

	case *ast.ClassStmt:
		return noSignal, it.execClass(s)

	default:
		panic("interp: unexpected statement type")
	}
}

// execBlock executes stmts with env as the current environment, restoring
// the previous environment before returning, including on error or
// early-return.
func (it *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) (signal, *RuntimeError) {
	prev := it.env
	it.env = env
	defer func() { it.env = prev }()

	for _, s := range stmts {
		sig, rerr := it.exec(s)
		if rerr != nil || sig.kind != sigNone {
			return sig, rerr
		}
	}
	return noSignal, nil
}

// execClass resolves the superclass (if any) and checks it really is a
// class, declares the class's own name first (so methods can recurse
// through it), pushes a `super`-scope if there's a superclass, builds the
// method table, then binds the finished Class object.
func (it *Interpreter) execClass(s *ast.ClassStmt) *RuntimeError {
	var super *Class
	if s.Superclass != nil {
		v, rerr := it.eval(s.Superclass)
		if rerr != nil {
			return rerr
		}
		sc, ok := v.(*Class)
		if !ok {
			return newError(s.Superclass.Name, "Superclass must be a class.")
		}
		super = sc
	}

	it.env.Define(s.Name.Lexeme, NilValue)

	env := it.env
	if super != nil {
		env = NewChild(it.env)
		env.Define(it.in.SymSuper, super)
	}

	methods := make(map[token.Symbol]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{
			Decl:          m,
			Closure:       env,
			IsInitializer: m.Name.Lexeme == it.in.SymInit,
		}
	}

	class := NewClass(it.in, s.Name, super, methods)
	it.env.Assign(s.Name.Lexeme, class)
	return nil
}

// eval evaluates expr in the interpreter's current environment.
func (it *Interpreter) eval(expr ast.Expr) (Value, *RuntimeError) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		switch e.Kind {
		case ast.LitNil:
			return NilValue, nil
		case ast.LitBool:
			return Bool(e.Bool), nil
		case ast.LitNumber:
			return Number(e.Number), nil
		case ast.LitString:
			return String(it.in.Resolve(e.Str)), nil
		}
		panic("interp: unexpected literal kind")

	case *ast.GroupingExpr:
		return it.eval(e.Expression)

	case *ast.UnaryExpr:
		return it.evalUnary(e)

	case *ast.BinaryExpr:
		return it.evalBinary(e)

	case *ast.LogicalExpr:
		return it.evalLogical(e)

	case *ast.VariableExpr:
		return it.lookUpVariable(e.Name, e.ID)

	case *ast.AssignExpr:
		v, rerr := it.eval(e.Value)
		if rerr != nil {
			return nil, rerr
		}
		if dist, ok := it.dist[e.ID]; ok {
			it.env.AssignAt(dist, e.Name.Lexeme, v)
		} else if !it.globals.Assign(e.Name.Lexeme, v) {
			return nil, newError(e.Name, "Undefined variable '%s'.", it.in.Resolve(e.Name.Lexeme))
		}
		return v, nil

	case *ast.CallExpr:
		return it.evalCall(e)

	case *ast.GetExpr:
		obj, rerr := it.eval(e.Object)
		if rerr != nil {
			return nil, rerr
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, newError(e.Name, "Only instances have properties.")
		}
		return inst.Get(it, e.Name)

	case *ast.SetExpr:
		obj, rerr := it.eval(e.Object)
		if rerr != nil {
			return nil, rerr
		}
		inst, ok := obj.(*Instance)
		if !ok {
			return nil, newError(e.Name, "Only instances have fields.")
		}
		v, rerr := it.eval(e.Value)
		if rerr != nil {
			return nil, rerr
		}
		inst.Set(e.Name, v)
		return v, nil

	case *ast.ThisExpr:
		return it.lookUpVariable(e.Keyword, e.ID)

	case *ast.SuperExpr:
		return it.evalSuper(e)

	default:
		panic("interp: unexpected expression type")
	}
}

// lookUpVariable reads the variable named by tok, using the resolver's
// recorded distance when available and falling back to the global scope
// otherwise: an unresolved reference is a global reference.
func (it *Interpreter) lookUpVariable(tok token.Token, id ast.ExprID) (Value, *RuntimeError) {
	if dist, ok := it.dist[id]; ok {
		return it.env.GetAt(dist, tok.Lexeme), nil
	}
	if v, ok := it.globals.Get(tok.Lexeme); ok {
		return v, nil
	}
	return nil, newError(tok, "Undefined variable '%s'.", it.in.Resolve(tok.Lexeme))
}

func (it *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, *RuntimeError) {
	left, rerr := it.eval(e.Left)
	if rerr != nil {
		return nil, rerr
	}
	if e.Operator.Kind == token.OR {
		if Truthy(left) {
			return left, nil
		}
	} else if !Truthy(left) {
		return left, nil
	}
	return it.eval(e.Right)
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, *RuntimeError) {
	right, rerr := it.eval(e.Right)
	if rerr != nil {
		return nil, rerr
	}
	switch e.Operator.Kind {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, newError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return Bool(!Truthy(right)), nil
	}
	panic("interp: unexpected unary operator")
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, *RuntimeError) {
	left, rerr := it.eval(e.Left)
	if rerr != nil {
		return nil, rerr
	}
	right, rerr := it.eval(e.Right)
	if rerr != nil {
		return nil, rerr
	}

	switch e.Operator.Kind {
	case token.BANG_EQUAL:
		return Bool(!Equal(left, right)), nil
	case token.EQUAL_EQUAL:
		return Bool(Equal(left, right)), nil
	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
			return nil, newError(e.Operator, "Operands must be two numbers or two strings.")
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
			return nil, newError(e.Operator, "Operands must be two numbers or two strings.")
		}
		return nil, newError(e.Operator, "Operands must be two numbers or two strings.")
	}

	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		return nil, newError(e.Operator, "Operands must be numbers.")
	}
	switch e.Operator.Kind {
	case token.MINUS:
		return ln - rn, nil
	case token.SLASH:
		return ln / rn, nil
	case token.STAR:
		return ln * rn, nil
	case token.GREATER:
		return Bool(ln > rn), nil
	case token.GREATER_EQUAL:
		return Bool(ln >= rn), nil
	case token.LESS:
		return Bool(ln < rn), nil
	case token.LESS_EQUAL:
		return Bool(ln <= rn), nil
	}
	panic("interp: unexpected binary operator")
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (Value, *RuntimeError) {
	callee, rerr := it.eval(e.Callee)
	if rerr != nil {
		return nil, rerr
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, rerr := it.eval(a)
		if rerr != nil {
			return nil, rerr
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(it, e.Paren, args)
}

func (it *Interpreter) evalSuper(e *ast.SuperExpr) (Value, *RuntimeError) {
	dist, ok := it.dist[e.ID]
	if !ok {
		panic("interp: unresolved super")
	}
	superVal := it.env.GetAt(dist, it.in.SymSuper)
	super := superVal.(*Class)
	inst := it.env.GetAt(dist-1, it.in.SymThis).(*Instance)

	m := super.FindMethod(e.Method.Lexeme)
	if m == nil {
		return nil, newError(e.Method, "Undefined property '%s'.", it.in.Resolve(e.Method.Lexeme))
	}
	return m.Bind(it.in.SymThis, inst), nil
}
