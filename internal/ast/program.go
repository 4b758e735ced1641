package ast

// Program represents a compiled statute unit (the entire source file).
// Item order is source order; it carries no semantic weight beyond the
// definition-before-use rules enforced by the resolver and checker.
type Program struct {
	Pos    Position
	EndPos Position
	Items  []Item
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Ident represents any identifier like struct names, field names, variables.
// Example: "Statute", "effective_date", "income"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Annotation represents leading field or item annotations.
// Example: "#[level(statute)]", "#[subordinate_to(Code.title)]",
// "#[effective(01-01-2024)]", "#[cites("§ 1201(a) of DMCA")]"
type Annotation struct {
	Pos    Position
	EndPos Position
	Name   string
	Args   []string
}

// Annotation names understood by the structural checkers.
const (
	AnnotLevel             = "level"
	AnnotSubordinateTo     = "subordinate_to"
	AnnotEffective         = "effective"
	AnnotSunset            = "sunset"
	AnnotRetroactive       = "retroactive"
	AnnotCites             = "cites"
	AnnotMutuallyExclusive = "mutually_exclusive"
)
