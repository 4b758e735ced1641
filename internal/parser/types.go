package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	INT
	FLOAT
	STRING
	MONEY
	PERCENT
	DATE
	DURATION

	// Keywords
	STRUCT
	ENUM
	SCOPE
	MATCH
	PRINCIPLE
	FORALL
	EXISTS
	LEGAL_TEST
	REQUIRES
	EFFECTIVE
	SUNSET
	RETROACTIVE
	EXTENDS
	MUTUALLY_EXCLUSIVE
	WHERE
	TYPE
	FN
	IN
	TRUE
	FALSE

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	MODULO
	WALRUS
	EQUAL
	EQUAL_EQUAL
	BANG
	BANG_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	AND
	OR
	PIPE
	ARROW
	FAT_ARROW

	// Separators
	COMMA
	DOT
	SEMICOLON
	COLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
	POUND
)

var tokenNames = map[TokenType]string{
	ILLEGAL:            "ILLEGAL",
	EOF:                "EOF",
	IDENTIFIER:         "IDENTIFIER",
	INT:                "INT",
	FLOAT:              "FLOAT",
	STRING:             "STRING",
	MONEY:              "MONEY",
	PERCENT:            "PERCENT",
	DATE:               "DATE",
	DURATION:           "DURATION",
	STRUCT:             "STRUCT",
	ENUM:               "ENUM",
	SCOPE:              "SCOPE",
	MATCH:              "MATCH",
	PRINCIPLE:          "PRINCIPLE",
	FORALL:             "FORALL",
	EXISTS:             "EXISTS",
	LEGAL_TEST:         "LEGAL_TEST",
	REQUIRES:           "REQUIRES",
	EFFECTIVE:          "EFFECTIVE",
	SUNSET:             "SUNSET",
	RETROACTIVE:        "RETROACTIVE",
	EXTENDS:            "EXTENDS",
	MUTUALLY_EXCLUSIVE: "MUTUALLY_EXCLUSIVE",
	WHERE:              "WHERE",
	TYPE:               "TYPE",
	FN:                 "FN",
	IN:                 "IN",
	TRUE:               "TRUE",
	FALSE:              "FALSE",
	PLUS:               "PLUS",
	MINUS:              "MINUS",
	STAR:               "STAR",
	SLASH:              "SLASH",
	MODULO:             "MODULO",
	WALRUS:             "WALRUS",
	EQUAL:              "EQUAL",
	EQUAL_EQUAL:        "EQUAL_EQUAL",
	BANG:               "BANG",
	BANG_EQUAL:         "BANG_EQUAL",
	LESS:               "LESS",
	LESS_EQUAL:         "LESS_EQUAL",
	GREATER:            "GREATER",
	GREATER_EQUAL:      "GREATER_EQUAL",
	AND:                "AND",
	OR:                 "OR",
	PIPE:               "PIPE",
	ARROW:              "ARROW",
	FAT_ARROW:          "FAT_ARROW",
	COMMA:              "COMMA",
	DOT:                "DOT",
	SEMICOLON:          "SEMICOLON",
	COLON:              "COLON",
	LEFT_PAREN:         "LEFT_PAREN",
	RIGHT_PAREN:        "RIGHT_PAREN",
	LEFT_BRACE:         "LEFT_BRACE",
	RIGHT_BRACE:        "RIGHT_BRACE",
	LEFT_BRACKET:       "LEFT_BRACKET",
	RIGHT_BRACKET:      "RIGHT_BRACKET",
	POUND:              "POUND",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
