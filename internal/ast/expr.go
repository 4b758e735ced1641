package ast

// Expr is the closed set of expression forms.
type Expr interface {
	Node
	isExpr()
}

func (*IdentExpr) isExpr() {}

func (*LiteralExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*UnaryExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*FieldAccessExpr) isExpr() {}

func (*MatchExpr) isExpr() {}

func (*ForallExpr) isExpr() {}

func (*ExistsExpr) isExpr() {}

func (*ParenExpr) isExpr() {}

// IdentExpr represents a variable reference.
// Example: "income", "bracket", "b"
type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// LiteralExpr represents literal values of every domain type. Value holds
// the exact lexeme so money amounts and dates survive without rounding.
// Example: "$100.50", "25%", "15-01-2024", "30d", "42", "true"
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

// BinaryExpr represents binary operations
// Example: "income - deduction", "rate <= 37%", "a && b"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// UnaryExpr represents unary operations
// Example: "-amount", "!qualified"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// CallExpr represents function calls with optional generic arguments.
// Example: "marginal_rate(income)", "clamp<BoundedInt<0, 100>>(x)"
type CallExpr struct {
	Pos      Position
	EndPos   Position
	Callee   Expr
	Generics []Type
	Args     []Expr
}

// FieldAccessExpr represents field access
// Example: "bracket.rate", "person.filing_status"
type FieldAccessExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Field  string
}

// MatchExpr represents a match over a scrutinee with ordered arms.
// Example: "match status { Single => 12%, _ => 22% }"
type MatchExpr struct {
	Pos       Position
	EndPos    Position
	Scrutinee Expr
	Arms      []*MatchArm
}

// MatchArm is one pattern arm, with an optional boolean guard.
// Example: "Single where income > $50000.00 => 22%"
type MatchArm struct {
	Pos     Position
	EndPos  Position
	Pattern Pattern
	Guard   Expr // optional
	Result  Expr
}

// ForallExpr represents a universally quantified claim, with an optional
// constraint on the bound variable.
// Example: "forall x: Int where x > 0, x > 0"
type ForallExpr struct {
	Pos        Position
	EndPos     Position
	Var        Ident
	VarType    Type
	Constraint Expr // optional `where` clause
	Body       Expr
}

// ExistsExpr represents an existentially quantified claim.
// Example: "exists b: Bracket, b.rate == 0%"
type ExistsExpr struct {
	Pos        Position
	EndPos     Position
	Var        Ident
	VarType    Type
	Constraint Expr // optional `where` clause
	Body       Expr
}

// ParenExpr represents parenthesized expressions
// Example: "(income - deduction)"
type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}
