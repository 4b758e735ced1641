package ast

// Pattern is the closed set of match-arm patterns.
type Pattern interface {
	Node
	isPattern()
}

func (*LiteralPattern) isPattern() {}

func (*IdentPattern) isPattern() {}

func (*WildcardPattern) isPattern() {}

// LiteralPattern matches an exact domain literal.
// Example: "0", "$0.00", "true"
type LiteralPattern struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

// IdentPattern matches an enum variant by name.
// Example: "Single", "MarriedJoint"
type IdentPattern struct {
	Pos    Position
	EndPos Position
	Name   Ident
}

// WildcardPattern is the default arm.
// Example: "_"
type WildcardPattern struct {
	Pos    Position
	EndPos Position
}
