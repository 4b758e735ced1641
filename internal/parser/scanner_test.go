package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(source string) ([]Token, []ScanError) {
	s := NewScanner(source)
	tokens := s.ScanTokens()
	return tokens, s.Errors()
}

func tokenTypes(tokens []Token) []TokenType {
	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestScanMoneyRequiresExactCents(t *testing.T) {
	tokens, errs := scanAll("$100.50")
	assert.Empty(t, errs, "Should scan a well-formed money amount")
	assert.Equal(t, MONEY, tokens[0].Type)
	assert.Equal(t, "$100.50", tokens[0].Lexeme)

	_, errs = scanAll("$100.5")
	assert.NotEmpty(t, errs, "One fractional digit should be rejected")

	_, errs = scanAll("$100.505")
	assert.NotEmpty(t, errs, "Three fractional digits should be rejected")

	_, errs = scanAll("$100")
	assert.NotEmpty(t, errs, "Money without cents should be rejected")
}

func TestScanPercentVersusModulo(t *testing.T) {
	tokens, errs := scanAll("25%")
	assert.Empty(t, errs)
	assert.Equal(t, PERCENT, tokens[0].Type)
	assert.Equal(t, "25%", tokens[0].Lexeme)

	tokens, errs = scanAll("a % b")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{IDENTIFIER, MODULO, IDENTIFIER, EOF}, tokenTypes(tokens))
}

func TestScanDateVersusSubtraction(t *testing.T) {
	tokens, errs := scanAll("15-01-2024")
	assert.Empty(t, errs)
	assert.Equal(t, DATE, tokens[0].Type)
	assert.Equal(t, "15-01-2024", tokens[0].Lexeme)

	tokens, errs = scanAll("15 - 1")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{INT, MINUS, INT, EOF}, tokenTypes(tokens))

	// adjacency alone is not a date
	tokens, errs = scanAll("15-1")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{INT, MINUS, INT, EOF}, tokenTypes(tokens))
}

func TestScanDurationSuffix(t *testing.T) {
	for _, lexeme := range []string{"30d", "6m", "2y"} {
		tokens, errs := scanAll(lexeme)
		assert.Empty(t, errs)
		assert.Equal(t, DURATION, tokens[0].Type, "%s should be a duration", lexeme)
	}

	// a suffix followed by more identifier characters is not a duration
	tokens, errs := scanAll("30dx")
	assert.Empty(t, errs)
	assert.Equal(t, INT, tokens[0].Type)
	assert.Equal(t, IDENTIFIER, tokens[1].Type)
}

func TestScanWalrusAndComparison(t *testing.T) {
	tokens, errs := scanAll("x := y == z")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{IDENTIFIER, WALRUS, IDENTIFIER, EQUAL_EQUAL, IDENTIFIER, EOF}, tokenTypes(tokens))
}

func TestScanArrowForms(t *testing.T) {
	tokens, errs := scanAll("-> =>")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{ARROW, FAT_ARROW, EOF}, tokenTypes(tokens))
}

func TestScanSingleAmpersandSuggestsAnd(t *testing.T) {
	_, errs := scanAll("a & b")
	assert.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Message, "&&")
}

func TestScanPipeForms(t *testing.T) {
	tokens, errs := scanAll("a | b || c")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{IDENTIFIER, PIPE, IDENTIFIER, OR, IDENTIFIER, EOF}, tokenTypes(tokens))
}

func TestScanStringLiteral(t *testing.T) {
	tokens, errs := scanAll(`"§ 501(c) of Code"`)
	assert.Empty(t, errs)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "§ 501(c) of Code", tokens[0].Lexeme, "Quotes should be stripped")

	_, errs = scanAll(`"unterminated`)
	assert.NotEmpty(t, errs)
}

func TestScanCommentsProduceNoTokens(t *testing.T) {
	tokens, errs := scanAll("// line comment\nstruct /* block */ S")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{STRUCT, IDENTIFIER, EOF}, tokenTypes(tokens))
}

func TestScanKeywords(t *testing.T) {
	tokens, errs := scanAll("struct enum scope principle forall exists legal_test requires mutually_exclusive where extends")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{
		STRUCT, ENUM, SCOPE, PRINCIPLE, FORALL, EXISTS,
		LEGAL_TEST, REQUIRES, MUTUALLY_EXCLUSIVE, WHERE, EXTENDS, EOF,
	}, tokenTypes(tokens))
}

func TestScanAnnotationPunctuation(t *testing.T) {
	tokens, errs := scanAll("#[level(statute)]")
	assert.Empty(t, errs)
	assert.Equal(t, []TokenType{
		POUND, LEFT_BRACKET, IDENTIFIER, LEFT_PAREN, IDENTIFIER, RIGHT_PAREN, RIGHT_BRACKET, EOF,
	}, tokenTypes(tokens))
}

func TestScanTracksPositions(t *testing.T) {
	tokens, _ := scanAll("a\n  b")
	assert.Equal(t, 1, tokens[0].Position.Line)
	assert.Equal(t, 1, tokens[0].Position.Column)
	assert.Equal(t, 2, tokens[1].Position.Line)
	assert.Equal(t, 3, tokens[1].Position.Column)
}
