// Package resolver implements a static pass over the parsed AST: a single
// top-down walk that, for every variable-use expression
// (variable read, assignment, this, super), records the lexical distance
// from the use-site to its binding scope into a side-table keyed by
// ast.ExprID. Names that resolve to no enclosing scope are left unresolved,
// and the evaluator treats them as global references.
package resolver

import (
	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interner"
	"github.com/mna/lox/lang/token"
)

// funcType tracks what kind of function body is currently being resolved,
// so `return` statements can be validated contextually.
type funcType int

const (
	funcNone funcType = iota
	funcFunction
	funcMethod
	funcInitializer
)

// classType tracks whether the resolver is currently inside a class body,
// and whether that class has a superclass.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Distances holds the ExprID → distance side-table produced by Resolve.
// A missing entry means the reference is global.
type Distances map[ast.ExprID]int

// Resolve walks stmts and returns the resulting distance side-table. Static
// errors (duplicate declarations, `this`/`super` misuse, bad `return`
// placement, self-inheriting classes) are reported to errs; the caller
// should check errs.HasErrors() before handing the program to the
// interpreter.
func Resolve(stmts []ast.Stmt, in *interner.Interner, errs *diag.List) Distances {
	r := &resolver{in: in, errs: errs, dist: make(Distances)}
	r.resolveStmts(stmts)
	return r.dist
}

// scope maps a local variable name to whether it has finished being defined
// (false = declared but its initializer is still being resolved).
type scope map[token.Symbol]bool

type resolver struct {
	in       *interner.Interner
	errs     *diag.List
	dist     Distances
	scopes   []scope
	curFunc  funcType
	curClass classType
}

func (r *resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) errorAt(tok token.Token, msg string) {
	r.errs.Add(tok.Line, " at '"+r.in.Resolve(tok.Lexeme)+"'", msg)
}

func (r *resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	sc := r.scopes[len(r.scopes)-1]
	if _, ok := sc[name.Lexeme]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	sc[name.Lexeme] = false
}

func (r *resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records the distance from the innermost scope to the scope
// that declares name, for the expression identified by id.
func (r *resolver) resolveLocal(id ast.ExprID, name token.Symbol) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.dist[id] = len(r.scopes) - 1 - i
			return
		}
	}
	// not found in any scope: leave unresolved, evaluator treats it as global
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, funcFunction)

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.ReturnStmt:
		if r.curFunc == funcNone {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.curFunc == funcInitializer {
				r.errorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	default:
		panic("resolver: unexpected statement type")
	}
}

func (r *resolver) resolveFunction(fn *ast.FunctionStmt, ft funcType) {
	enclosingFunc := r.curFunc
	r.curFunc = ft

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.curFunc = enclosingFunc
}

func (r *resolver) resolveClass(c *ast.ClassStmt) {
	enclosingClass := r.curClass
	r.curClass = classClass

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.errorAt(c.Superclass.Name, "A class can't inherit from itself.")
		} else {
			r.curClass = classSubclass
			r.resolveExpr(c.Superclass)
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1][r.in.SymSuper] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1][r.in.SymThis] = true

	for _, m := range c.Methods {
		ft := funcMethod
		if m.Name.Lexeme == r.in.SymInit {
			ft = funcInitializer
		}
		r.resolveFunction(m, ft)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.curClass = enclosingClass
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e.ID, e.Name.Lexeme)

	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID, e.Name.Lexeme)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *ast.LiteralExpr:
		// nothing to resolve

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpr:
		if r.curClass == classNone {
			r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e.ID, r.in.SymThis)

	case *ast.SuperExpr:
		switch r.curClass {
		case classNone:
			r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		default:
			r.resolveLocal(e.ID, r.in.SymSuper)
		}

	default:
		panic("resolver: unexpected expression type")
	}
}
