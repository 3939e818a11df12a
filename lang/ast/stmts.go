package ast

import "github.com/mna/lox/lang/token"

type (
	// ExprStmt is an expression evaluated for its side effects.
	ExprStmt struct {
		baseStmt
		Expr Expr
	}

	// PrintStmt evaluates Expr and writes its stringified form to stdout.
	PrintStmt struct {
		baseStmt
		Expr Expr
	}

	// VarStmt declares a variable, optionally initializing it.
	VarStmt struct {
		baseStmt
		Name        token.Token
		Initializer Expr // nil if not initialized
	}

	// BlockStmt is a `{ ... }` sequence of statements; the block gets its own
	// lexical scope, pushed on entry and popped on exit.
	BlockStmt struct {
		baseStmt
		Stmts []Stmt
	}

	// IfStmt is a conditional, with an optional else branch.
	IfStmt struct {
		baseStmt
		Cond Expr
		Then Stmt
		Else Stmt // nil if no else branch
	}

	// WhileStmt is a condition-checked loop. `for` is desugared into this by
	// the parser.
	WhileStmt struct {
		baseStmt
		Cond Expr
		Body Stmt
	}

	// FunctionStmt is a named function (or method) declaration.
	FunctionStmt struct {
		baseStmt
		Name   token.Token
		Params []token.Token
		Body   []Stmt
	}

	// ReturnStmt exits the current function call, optionally with a value.
	ReturnStmt struct {
		baseStmt
		Keyword token.Token
		Value   Expr // nil for a bare `return;`
	}

	// ClassStmt declares a class, with an optional superclass and a list of
	// method declarations.
	ClassStmt struct {
		baseStmt
		Name       token.Token
		Superclass *VariableExpr // nil if no `< Super` clause
		Methods    []*FunctionStmt
	}
)

func NewExprStmt(line int, e Expr) *ExprStmt { return &ExprStmt{baseStmt{line}, e} }
func (n *ExprStmt) Walk(v Visitor)           { Walk(v, n.Expr) }

func NewPrintStmt(line int, e Expr) *PrintStmt { return &PrintStmt{baseStmt{line}, e} }
func (n *PrintStmt) Walk(v Visitor)            { Walk(v, n.Expr) }

func NewVarStmt(name token.Token, init Expr) *VarStmt {
	return &VarStmt{baseStmt{tokenLine(name)}, name, init}
}
func (n *VarStmt) Walk(v Visitor) {
	if n.Initializer != nil {
		Walk(v, n.Initializer)
	}
}

func NewBlockStmt(line int, stmts []Stmt) *BlockStmt { return &BlockStmt{baseStmt{line}, stmts} }
func (n *BlockStmt) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

func NewIfStmt(line int, cond Expr, then, els Stmt) *IfStmt {
	return &IfStmt{baseStmt{line}, cond, then, els}
}
func (n *IfStmt) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}

func NewWhileStmt(line int, cond Expr, body Stmt) *WhileStmt {
	return &WhileStmt{baseStmt{line}, cond, body}
}
func (n *WhileStmt) Walk(v Visitor) { Walk(v, n.Cond); Walk(v, n.Body) }

func NewFunctionStmt(name token.Token, params []token.Token, body []Stmt) *FunctionStmt {
	return &FunctionStmt{baseStmt{tokenLine(name)}, name, params, body}
}
func (n *FunctionStmt) Walk(v Visitor) {
	for _, s := range n.Body {
		Walk(v, s)
	}
}

func NewReturnStmt(keyword token.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{baseStmt{tokenLine(keyword)}, keyword, value}
}
func (n *ReturnStmt) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}
func (n *ReturnStmt) BlockEnding() bool { return true }

func NewClassStmt(name token.Token, super *VariableExpr, methods []*FunctionStmt) *ClassStmt {
	return &ClassStmt{baseStmt{tokenLine(name)}, name, super, methods}
}
func (n *ClassStmt) Walk(v Visitor) {
	if n.Superclass != nil {
		Walk(v, n.Superclass)
	}
	for _, m := range n.Methods {
		Walk(v, m)
	}
}
