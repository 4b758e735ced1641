package ast

// Type is the closed set of type forms.
type Type interface {
	Node
	isType()
}

func (*TypeRef) isType() {}

func (*UnionType) isType() {}

func (*StructType) isType() {}

func (*LiteralType) isType() {}

// TypeRef represents a named type with optional angle-bracket arguments.
// Primitives, user-defined structs and generic applications all take this
// form: "Int", "Money<USD>", "BoundedInt<0, 100>",
// "Temporal<Percent, 01-01-2024, 31-12-2030>".
type TypeRef struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Args   []Type
}

// UnionType represents an anonymous union of alternatives.
// Example: "Money<USD> | Pass"
type UnionType struct {
	Pos     Position
	EndPos  Position
	Members []Type
}

// StructType represents an inline structural type.
// Example: "{ amount: Money<USD>, due: Date }"
type StructType struct {
	Pos    Position
	EndPos Position
	Fields []*StructTypeField
}

type StructTypeField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   Type
}

// LiteralType represents a literal used in type-argument position, such as
// the bounds of BoundedInt or the validity dates of Temporal.
// Example: the "0" and "100" in "BoundedInt<0, 100>"
type LiteralType struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

// Primitive type names. These resolve without declaration and take the
// arity recorded in PrimitiveArity.
const (
	TypeInt        = "Int"
	TypeFloat      = "Float"
	TypeString     = "String"
	TypeBoolean    = "Boolean"
	TypePercent    = "Percent"
	TypeMoney      = "Money"
	TypeDate       = "Date"
	TypeDuration   = "Duration"
	TypePass       = "Pass"
	TypeBoundedInt = "BoundedInt"
	TypeTemporal   = "Temporal"
	TypeCitation   = "Citation"
)

// PrimitiveArity maps each built-in type name to the number of
// angle-bracket arguments it accepts. Temporal is listed at its minimum;
// the checker accepts one to three arguments for it.
var PrimitiveArity = map[string]int{
	TypeInt:        0,
	TypeFloat:      0,
	TypeString:     0,
	TypeBoolean:    0,
	TypePercent:    0,
	TypeMoney:      1,
	TypeDate:       0,
	TypeDuration:   0,
	TypePass:       0,
	TypeBoundedInt: 2,
	TypeTemporal:   1,
	TypeCitation:   0,
}

// IsPrimitive reports whether name is a built-in type name.
func IsPrimitive(name string) bool {
	_, ok := PrimitiveArity[name]
	return ok
}
