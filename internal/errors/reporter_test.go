package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"stele/internal/ast"
)

func TestErrorReporter(t *testing.T) {
	source := `struct Person {
    age: Int where age >= 0,
    name: String,
}

Int limit := unknownVar`

	reporter := NewReporter("test.sl", source)

	err := UndefinedSymbol("unknownVar", ast.Position{Line: 6, Column: 14}, []string{"knownVar"})
	formatted := reporter.Format(err)

	// Should contain error level and code
	assert.Contains(t, formatted, "error["+ErrorUndefinedSymbol+"]")
	assert.Contains(t, formatted, "undefined symbol")
	assert.Contains(t, formatted, "unknownVar")

	// Should contain location
	assert.Contains(t, formatted, "test.sl:6:14")

	// Should contain suggestions
	assert.Contains(t, formatted, "did you mean")
	assert.Contains(t, formatted, "knownVar")
}

func TestUndefinedSymbolError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := UndefinedSymbol("incme", pos, []string{"income"})
	assert.Equal(t, ErrorUndefinedSymbol, err.Code)
	assert.Contains(t, err.Message, "incme")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0], "did you mean 'income'")

	// Without similar names there is still a generic suggestion
	err = UndefinedSymbol("xyz", pos, nil)
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0], "declared before use")
}

func TestTypeMismatchError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := TypeMismatch("Money", "Int", pos)
	assert.Equal(t, ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Message, "expected Money, found Int")
}

func TestFieldNotFoundError(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := FieldNotFound("Person", "nam", pos)
	assert.Equal(t, ErrorFieldNotFound, err.Code)
	assert.Contains(t, err.Message, "struct 'Person' has no field 'nam'")
	assert.Len(t, err.Notes, 1)
	assert.Contains(t, err.Notes[0], "inherited fields")
}

func TestHierarchyErrors(t *testing.T) {
	pos := ast.Position{Line: 2, Column: 1}

	cyc := HierarchyCycle([]string{"A.f", "B.g", "A.f"})
	assert.Equal(t, ErrorHierarchyCycle, cyc.Code)
	assert.Contains(t, cyc.Message, "A.f -> B.g -> A.f")

	inv := LevelInversion("Rule.a", "statute", "Code.b", "regulation", pos)
	assert.Equal(t, ErrorLevelInversion, inv.Code)
	assert.Contains(t, inv.Message, "strictly below")

	unk := UnknownLevel("Rule.a", "bylaw", []string{"constitutional", "statute"}, pos)
	assert.Equal(t, ErrorUnknownLevel, unk.Code)
	assert.Contains(t, unk.Suggestions[0], "constitutional, statute")
}

func TestTemporalErrors(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	err := ExpiredSunset("Credit.rate", "31-12-2020", "29-08-2026", pos)
	assert.Equal(t, ErrorExpiredSunset, err.Code)
	assert.Contains(t, err.Message, "sunset on 31-12-2020")

	err = RetroactiveConflict("Credit.rate", "01-01-2025", "01-01-2024", pos)
	assert.Equal(t, ErrorRetroactiveConflict, err.Code)
	assert.Contains(t, err.Message, "postdates")
}

func TestWarningFormatting(t *testing.T) {
	source := `Int unused := 42`
	reporter := NewReporter("test.sl", source)

	warn := NewWarning(ErrorTypeMismatch, "test warning", ast.Position{Line: 1, Column: 5}).Build()
	formatted := reporter.Format(warn)

	assert.Contains(t, formatted, "warning[")
}

func TestErrorMarker(t *testing.T) {
	// Column 5, length 8: four leading spaces then eight carets
	m := marker(5, 8, Error)
	assert.Equal(t, 4, strings.Count(m, " "))
	assert.Equal(t, 8, strings.Count(m, "^"))

	// Non-positive length still renders one caret
	m = marker(1, 0, Error)
	assert.Equal(t, 1, strings.Count(m, "^"))
}

func TestBuilderAccumulates(t *testing.T) {
	pos := ast.Position{Line: 3, Column: 2}
	err := NewError(ErrorTypeMismatch, "mismatch", pos).
		WithLength(4).
		WithSuggestion("first").
		WithSuggestion("second").
		WithNote("context").
		Build()

	assert.Equal(t, Error, err.Level)
	assert.Equal(t, 4, err.Length)
	assert.Len(t, err.Suggestions, 2)
	assert.Len(t, err.Notes, 1)
}

func TestCompilerErrorImplementsError(t *testing.T) {
	err := TypeMismatch("Boolean", "Int", ast.Position{Line: 1, Column: 1})
	assert.Contains(t, err.Error(), ErrorTypeMismatch)
	assert.Contains(t, err.Error(), "expected Boolean, found Int")
}
