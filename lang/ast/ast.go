// Package ast defines the types representing the abstract syntax tree (AST)
// of a Lox program: a closed set of tagged Expr and Stmt variants. Dynamic
// dispatch over these variants is done by the parser, resolver and
// interpreter via type switches, never through a class hierarchy.
package ast

import "github.com/mna/lox/lang/token"

// Node is implemented by every Expr and Stmt.
type Node interface {
	// Line returns the source line this node starts on, used for diagnostics.
	Line() int

	// Walk visits the node's direct children, in evaluation order.
	Walk(v Visitor)
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()

	// BlockEnding reports whether this statement should only ever appear as
	// the last statement of a block (return is the only such case in Lox).
	BlockEnding() bool
}

// ExprID is a process-unique identifier assigned to every expression that
// names or binds to a lexical variable (variable reference, assignment,
// this, super). It is the key into the resolver's distance side-table.
type ExprID uint32

// IDGen generates process-unique ExprIDs. The parser owns one IDGen for the
// whole parse.
type IDGen struct{ next ExprID }

// Next returns the next unused ExprID.
func (g *IDGen) Next() ExprID {
	g.next++
	return g.next
}

// baseExpr/baseStmt factor out the Line field shared by every node.
type baseExpr struct{ line int }

func (b baseExpr) Line() int { return b.line }
func (baseExpr) exprNode()   {}

type baseStmt struct{ line int }

func (b baseStmt) Line() int       { return b.line }
func (baseStmt) stmtNode()         {}
func (baseStmt) BlockEnding() bool { return false }

// tokenLine is a small helper used throughout the node constructors.
func tokenLine(t token.Token) int { return t.Line }
