package ast

import "github.com/mna/lox/lang/token"

// LitKind identifies which field of LiteralExpr is meaningful.
type LitKind int8

const (
	LitNil LitKind = iota
	LitBool
	LitNumber
	LitString
)

type (
	// LiteralExpr is a boolean, number, string or nil literal.
	LiteralExpr struct {
		baseExpr
		Kind   LitKind
		Bool   bool
		Number float64
		Str    token.Symbol
	}

	// GroupingExpr is a parenthesized expression.
	GroupingExpr struct {
		baseExpr
		Expression Expr
	}

	// UnaryExpr is a prefix unary operator applied to an operand.
	UnaryExpr struct {
		baseExpr
		Operator token.Token
		Right    Expr
	}

	// BinaryExpr is an infix binary operator applied to two operands.
	BinaryExpr struct {
		baseExpr
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// LogicalExpr is `and`/`or`, which short-circuit unlike BinaryExpr.
	LogicalExpr struct {
		baseExpr
		Left     Expr
		Operator token.Token
		Right    Expr
	}

	// VariableExpr reads the value bound to Name. ID is the key into the
	// resolver's distance side-table.
	VariableExpr struct {
		baseExpr
		Name token.Token
		ID   ExprID
	}

	// AssignExpr assigns Value to the variable named Name. ID is the key into
	// the resolver's distance side-table.
	AssignExpr struct {
		baseExpr
		Name  token.Token
		Value Expr
		ID    ExprID
	}

	// CallExpr calls Callee with Args. Paren is the closing parenthesis token,
	// reported on arity-mismatch runtime errors.
	CallExpr struct {
		baseExpr
		Callee Expr
		Paren  token.Token
		Args   []Expr
	}

	// GetExpr reads property Name off Object.
	GetExpr struct {
		baseExpr
		Object Expr
		Name   token.Token
	}

	// SetExpr assigns Value to property Name on Object.
	SetExpr struct {
		baseExpr
		Object Expr
		Name   token.Token
		Value  Expr
	}

	// ThisExpr is a `this` reference inside a method body. ID is the key into
	// the resolver's distance side-table.
	ThisExpr struct {
		baseExpr
		Keyword token.Token
		ID      ExprID
	}

	// SuperExpr is a `super.method` reference inside a subclass method body.
	// ID is the key into the resolver's distance side-table (for `super`
	// itself; `this` is always found at distance ID's distance minus one).
	SuperExpr struct {
		baseExpr
		Keyword token.Token
		Method  token.Token
		ID      ExprID
	}
)

func NewLiteralNil(line int) *LiteralExpr {
	return &LiteralExpr{baseExpr: baseExpr{line}, Kind: LitNil}
}
func NewLiteralBool(line int, b bool) *LiteralExpr {
	return &LiteralExpr{baseExpr: baseExpr{line}, Kind: LitBool, Bool: b}
}
func NewLiteralNumber(line int, n float64) *LiteralExpr {
	return &LiteralExpr{baseExpr: baseExpr{line}, Kind: LitNumber, Number: n}
}
func NewLiteralString(line int, s token.Symbol) *LiteralExpr {
	return &LiteralExpr{baseExpr: baseExpr{line}, Kind: LitString, Str: s}
}

func (n *LiteralExpr) Walk(Visitor) {}

func NewGrouping(line int, e Expr) *GroupingExpr {
	return &GroupingExpr{baseExpr: baseExpr{line}, Expression: e}
}
func (n *GroupingExpr) Walk(v Visitor) { Walk(v, n.Expression) }

func NewUnary(op token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{baseExpr: baseExpr{tokenLine(op)}, Operator: op, Right: right}
}
func (n *UnaryExpr) Walk(v Visitor) { Walk(v, n.Right) }

func NewBinary(left Expr, op token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{baseExpr: baseExpr{tokenLine(op)}, Left: left, Operator: op, Right: right}
}
func (n *BinaryExpr) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }

func NewLogical(left Expr, op token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{baseExpr: baseExpr{tokenLine(op)}, Left: left, Operator: op, Right: right}
}
func (n *LogicalExpr) Walk(v Visitor) { Walk(v, n.Left); Walk(v, n.Right) }

func NewVariable(name token.Token, id ExprID) *VariableExpr {
	return &VariableExpr{baseExpr: baseExpr{tokenLine(name)}, Name: name, ID: id}
}
func (n *VariableExpr) Walk(Visitor) {}

func NewAssign(name token.Token, value Expr, id ExprID) *AssignExpr {
	return &AssignExpr{baseExpr: baseExpr{tokenLine(name)}, Name: name, Value: value, ID: id}
}
func (n *AssignExpr) Walk(v Visitor) { Walk(v, n.Value) }

func NewCall(callee Expr, paren token.Token, args []Expr) *CallExpr {
	return &CallExpr{baseExpr: baseExpr{tokenLine(paren)}, Callee: callee, Paren: paren, Args: args}
}
func (n *CallExpr) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}

func NewGet(object Expr, name token.Token) *GetExpr {
	return &GetExpr{baseExpr: baseExpr{tokenLine(name)}, Object: object, Name: name}
}
func (n *GetExpr) Walk(v Visitor) { Walk(v, n.Object) }

func NewSet(object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{baseExpr: baseExpr{tokenLine(name)}, Object: object, Name: name, Value: value}
}
func (n *SetExpr) Walk(v Visitor) { Walk(v, n.Object); Walk(v, n.Value) }

func NewThis(keyword token.Token, id ExprID) *ThisExpr {
	return &ThisExpr{baseExpr: baseExpr{tokenLine(keyword)}, Keyword: keyword, ID: id}
}
func (n *ThisExpr) Walk(Visitor) {}

func NewSuper(keyword, method token.Token, id ExprID) *SuperExpr {
	return &SuperExpr{baseExpr: baseExpr{tokenLine(keyword)}, Keyword: keyword, Method: method, ID: id}
}
func (n *SuperExpr) Walk(Visitor) {}
