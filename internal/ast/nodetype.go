package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota

	// High-level constructs
	PROGRAM
	IDENT
	ANNOTATION

	// Items
	STRUCT
	STRUCT_FIELD
	ENUM
	FUNCTION
	FUNCTION_PARAM
	TYPE_ALIAS
	SCOPE
	PRINCIPLE
	LEGAL_TEST
	REQUIREMENT
	DECLARATION

	// Types
	TYPE_REF
	UNION_TYPE
	STRUCT_TYPE
	STRUCT_TYPE_FIELD
	LITERAL_TYPE

	// Expressions
	IDENT_EXPR
	LITERAL_EXPR
	BINARY_EXPR
	UNARY_EXPR
	CALL_EXPR
	FIELD_ACCESS_EXPR
	MATCH_EXPR
	MATCH_ARM
	FORALL_EXPR
	EXISTS_EXPR
	PAREN_EXPR

	// Patterns
	LITERAL_PATTERN
	IDENT_PATTERN
	WILDCARD_PATTERN
)
