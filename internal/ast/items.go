package ast

// Struct represents a record declaration with optional single-parent
// field inheritance.
// Example: "struct TaxBracket extends Bracket { rate: Percent, cap: Money<USD>, }"
type Struct struct {
	Pos         Position
	EndPos      Position
	Annotations []*Annotation
	Name        Ident
	TypeParams  []Ident
	Extends     *Ident // at most one parent
	Fields      []*StructField
}

// StructField represents a single typed field, optionally guarded.
// Example: "income: Money<USD> where income >= $0.00,"
type StructField struct {
	Pos         Position
	EndPos      Position
	Annotations []*Annotation
	Name        Ident
	Type        Type
	Guard       Expr // optional `where` constraint
}

// Enum represents an enumerated type. MutuallyExclusive is a flag, never a
// distinct node type, whether it came from the keyword or the annotation.
// Example: "mutually_exclusive enum FilingStatus { Single, MarriedJoint }"
type Enum struct {
	Pos               Position
	EndPos            Position
	Annotations       []*Annotation
	MutuallyExclusive bool
	Name              Ident
	Variants          []Ident
}

// Function represents a pure function whose body is a single expression.
// Example: "fn marginal_rate(income: Money<USD>) -> Percent { match income { ... } }"
type Function struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	TypeParams []Ident
	Params     []*FunctionParam
	Return     Type
	Body       Expr
}

// FunctionParam represents function parameters
// Example: "income: Money<USD>", "filed: Date"
type FunctionParam struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   Type
}

// TypeAlias represents a named type abbreviation.
// Example: "type Rate = BoundedInt<0, 100>;"
type TypeAlias struct {
	Pos        Position
	EndPos     Position
	Name       Ident
	TypeParams []Ident
	Target     Type
}

// Scope represents a named lexical frame of nested items.
// Example: "scope Title26 { struct Bracket { ... } principle progressive { ... } }"
type Scope struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Items  []Item
}

// Principle represents a named quantified invariant checked by the solver.
// Example: "principle no_negative_tax { forall b: Bracket, b.rate >= 0% }"
type Principle struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Body   Expr
}

// LegalTest represents an ordered conjunction of boolean requirements.
// Example: "legal_test fair_use { requires Boolean transformative, requires Boolean limited_amount, }"
type LegalTest struct {
	Pos          Position
	EndPos       Position
	Name         Ident
	Requirements []*Requirement
}

// Requirement represents one `requires <Type> <name>` line of a legal test.
type Requirement struct {
	Pos    Position
	EndPos Position
	Type   Type
	Name   Ident
}

// Declaration represents a scope-level binding using the statement
// assignment operator.
// Example: "Int threshold := 40000"
type Declaration struct {
	Pos    Position
	EndPos Position
	Type   Type
	Name   Ident
	Value  Expr
}
