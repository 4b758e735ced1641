package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"stele/internal/ast"
	"stele/internal/errors"
	"stele/internal/parser"
)

func TestConvertParseErrors(t *testing.T) {
	parseErrs := []parser.ParseError{
		{Message: "expected '{' to start struct body", Position: parser.Position{Line: 3, Column: 12}},
	}

	diags := ConvertParseErrors(parseErrs)
	require.Len(t, diags, 1)

	assert.Equal(t, uint32(2), diags[0].Range.Start.Line, "LSP positions are 0-based")
	assert.Equal(t, uint32(11), diags[0].Range.Start.Character)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	assert.Equal(t, "stele-parser", *diags[0].Source)
	assert.Contains(t, diags[0].Message, "struct body")
}

func TestConvertScanErrors(t *testing.T) {
	scanErrs := []parser.ScanError{
		{Message: "malformed money literal", Position: parser.Position{Line: 1, Column: 5}, Length: 7},
	}

	diags := ConvertScanErrors(scanErrs)
	require.Len(t, diags, 1)

	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
	assert.Equal(t, uint32(4), diags[0].Range.Start.Character)
	assert.Equal(t, uint32(11), diags[0].Range.End.Character, "the span covers the lexeme")
	assert.Equal(t, "stele-scanner", *diags[0].Source)
}

func TestConvertScanErrorsZeroLength(t *testing.T) {
	scanErrs := []parser.ScanError{
		{Message: "unexpected character", Position: parser.Position{Line: 2, Column: 1}},
	}

	diags := ConvertScanErrors(scanErrs)
	require.Len(t, diags, 1)
	assert.Greater(t, diags[0].Range.End.Character, diags[0].Range.Start.Character,
		"a zero-length error still gets a visible span")
}

func TestConvertCompilerErrors(t *testing.T) {
	errs := []errors.CompilerError{
		errors.UndefinedSymbol("incme", ast.Position{Line: 4, Column: 10}, []string{"income"}),
	}

	diags := ConvertCompilerErrors(errs)
	require.Len(t, diags, 1)

	assert.Equal(t, uint32(3), diags[0].Range.Start.Line)
	assert.Equal(t, uint32(9), diags[0].Range.Start.Character)
	assert.Equal(t, uint32(9+5), diags[0].Range.End.Character, "the span is the symbol length")
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	assert.Equal(t, "stele", *diags[0].Source)
	require.NotNil(t, diags[0].Code)
	assert.Equal(t, errors.ErrorUndefinedSymbol, diags[0].Code.Value)
	assert.Contains(t, diags[0].Message, "help: did you mean 'income'")
}

func TestConvertCompilerErrorsWarningSeverity(t *testing.T) {
	warn := errors.NewWarning(errors.ErrorTypeMismatch, "suspicious", ast.Position{Line: 1, Column: 1}).Build()

	diags := ConvertCompilerErrors([]errors.CompilerError{warn})
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *diags[0].Severity)
}

func TestConvertCompilerErrorsNotesAppended(t *testing.T) {
	err := errors.NewError(errors.ErrorTypeMismatch, "type mismatch", ast.Position{Line: 1, Column: 1}).
		WithNote("principle body must be Boolean").
		Build()

	diags := ConvertCompilerErrors([]errors.CompilerError{err})
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "note: principle body must be Boolean")
}

func TestCollectSemanticTokens(t *testing.T) {
	source := `
struct Person {
    age: Int,
}

Money<USD> threshold := $600.00
`
	program, parseErrs, scanErrs := parser.ParseSource("test.sl", source)
	require.Empty(t, scanErrs)
	require.Empty(t, parseErrs)

	tokens := collectSemanticTokens(program)
	require.NotEmpty(t, tokens)

	for i := 1; i < len(tokens); i++ {
		prev, curr := tokens[i-1], tokens[i]
		ordered := prev.Line < curr.Line || (prev.Line == curr.Line && prev.StartChar <= curr.StartChar)
		assert.True(t, ordered, "tokens must be in position order for delta encoding")
	}

	byType := make(map[int]int)
	for _, tok := range tokens {
		byType[tok.TokenType]++
	}
	assert.Equal(t, 1, byType[tokProperty], "one struct field")
	assert.Equal(t, 1, byType[tokVariable], "one declaration")
	assert.GreaterOrEqual(t, byType[tokType], 3, "Person, Int, Money and USD refs")
}

func TestCollectSemanticTokensNilProgram(t *testing.T) {
	assert.Empty(t, collectSemanticTokens(nil))
}
