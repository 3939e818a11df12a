package ast

import (
	"fmt"
	"io"

	"github.com/mna/lox/lang/interner"
)

// Printer renders a parsed statement list as an indented dump, one node per
// line, used by the `parse` and `resolve` CLI subcommands to inspect the
// pipeline's intermediate stages.
type Printer struct {
	Output   io.Writer
	Interner *interner.Interner

	// Distances, if non-nil, annotates every variable-use node with the
	// resolver's recorded lexical distance (or "global" if unresolved), for
	// the `resolve` subcommand.
	Distances map[ExprID]int
}

// Print writes a textual representation of stmts to p.Output.
func (p *Printer) Print(stmts []Stmt) {
	for _, s := range stmts {
		p.printNode(s, 0)
	}
}

func (p *Printer) printNode(n Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Fprintf(p.Output, "%s%s\n", indent, p.describe(n))

	n.Walk(VisitorFunc(func(child Node, dir VisitDirection) Visitor {
		if dir != VisitEnter || child == n {
			return nil
		}
		p.printNode(child, depth+1)
		return nil
	}))
}

func (p *Printer) describe(n Node) string {
	switch n := n.(type) {
	case *LiteralExpr:
		switch n.Kind {
		case LitNil:
			return "nil"
		case LitBool:
			return fmt.Sprintf("%v", n.Bool)
		case LitNumber:
			return fmt.Sprintf("%v", n.Number)
		default:
			return fmt.Sprintf("%q", p.Interner.Resolve(n.Str))
		}
	case *GroupingExpr:
		return "group"
	case *UnaryExpr:
		return "unary " + p.Interner.Resolve(n.Operator.Lexeme)
	case *BinaryExpr:
		return "binary " + p.Interner.Resolve(n.Operator.Lexeme)
	case *LogicalExpr:
		return "logical " + p.Interner.Resolve(n.Operator.Lexeme)
	case *VariableExpr:
		return "var " + p.Interner.Resolve(n.Name.Lexeme) + p.distAnnotation(n.ID)
	case *AssignExpr:
		return "assign " + p.Interner.Resolve(n.Name.Lexeme) + p.distAnnotation(n.ID)
	case *CallExpr:
		return "call"
	case *GetExpr:
		return "get ." + p.Interner.Resolve(n.Name.Lexeme)
	case *SetExpr:
		return "set ." + p.Interner.Resolve(n.Name.Lexeme)
	case *ThisExpr:
		return "this" + p.distAnnotation(n.ID)
	case *SuperExpr:
		return "super." + p.Interner.Resolve(n.Method.Lexeme) + p.distAnnotation(n.ID)
	case *ExprStmt:
		return "exprStmt"
	case *PrintStmt:
		return "print"
	case *VarStmt:
		return "varDecl " + p.Interner.Resolve(n.Name.Lexeme)
	case *BlockStmt:
		return "block"
	case *IfStmt:
		return "if"
	case *WhileStmt:
		return "while"
	case *FunctionStmt:
		return "fun " + p.Interner.Resolve(n.Name.Lexeme)
	case *ReturnStmt:
		return "return"
	case *ClassStmt:
		return "class " + p.Interner.Resolve(n.Name.Lexeme)
	default:
		return fmt.Sprintf("%T", n)
	}
}

// distAnnotation renders the resolver's distance for id as " (dist N)" / "
// (global)", or "" if p.Distances is nil (the `parse` subcommand, which
// runs before resolution).
func (p *Printer) distAnnotation(id ExprID) string {
	if p.Distances == nil {
		return ""
	}
	if d, ok := p.Distances[id]; ok {
		return fmt.Sprintf(" (dist %d)", d)
	}
	return " (global)"
}
