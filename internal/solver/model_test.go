package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelSameLine(t *testing.T) {
	model := `(
  (define-fun x () Int 5)
  (define-fun flag () Bool true)
)`
	ce := ParseModel(model)
	require.Len(t, ce.Assignments, 2)
	assert.Equal(t, Assignment{Name: "x", Value: "5"}, ce.Assignments[0])
	assert.Equal(t, Assignment{Name: "flag", Value: "true"}, ce.Assignments[1])
}

func TestParseModelValueOnNextLine(t *testing.T) {
	model := `(
  (define-fun income () Int
    60000)
)`
	ce := ParseModel(model)
	require.Len(t, ce.Assignments, 1)
	assert.Equal(t, "income", ce.Assignments[0].Name)
	assert.Equal(t, "60000", ce.Assignments[0].Value)
}

func TestParseModelPipedNames(t *testing.T) {
	model := `(
  (define-fun |b.rate| () Real 25.0)
  (define-fun |b.floor| () Int 0)
)`
	ce := ParseModel(model)
	require.Len(t, ce.Assignments, 2)
	assert.Equal(t, "b.rate", ce.Assignments[0].Name, "pipes are stripped from the name")
	assert.Equal(t, "25.0", ce.Assignments[0].Value)
	assert.Equal(t, "b.floor", ce.Assignments[1].Name)
}

func TestParseModelNegativeValues(t *testing.T) {
	model := `(
  (define-fun x () Int (- 5))
)`
	ce := ParseModel(model)
	require.Len(t, ce.Assignments, 1)
	assert.Equal(t, "(- 5)", ce.Assignments[0].Value,
		"interior structure survives the closing-paren trim")
}

func TestParseModelSkipsFunctionDefinitions(t *testing.T) {
	model := `(
  (define-fun f ((a Int)) Int (+ a 1))
  (define-fun x () Int 3)
)`
	ce := ParseModel(model)
	require.Len(t, ce.Assignments, 1, "only zero-arity definitions are assignments")
	assert.Equal(t, "x", ce.Assignments[0].Name)
}

func TestParseModelEmpty(t *testing.T) {
	ce := ParseModel("")
	assert.Empty(t, ce.Assignments)
	assert.Equal(t, "(no assignments)", ce.String())
}

func TestCounterexampleString(t *testing.T) {
	ce := &Counterexample{Assignments: []Assignment{
		{Name: "income", Value: "60000"},
		{Name: "b.rate", Value: "25.0"},
	}}
	assert.Equal(t, "income = 60000, b.rate = 25.0", ce.String())

	var nilCE *Counterexample
	assert.Equal(t, "(no assignments)", nilCE.String())
}

func TestTrimValue(t *testing.T) {
	assert.Equal(t, "5", trimValue("5)"))
	assert.Equal(t, "(- 5)", trimValue("(- 5))"))
	assert.Equal(t, "true", trimValue("true"))
	assert.Equal(t, "", trimValue(")"))
}

func TestCutToken(t *testing.T) {
	name, rest := cutToken("x () Int 5")
	assert.Equal(t, "x", name)
	assert.Equal(t, " () Int 5", rest)

	name, rest = cutToken("|b.rate| () Real 25.0")
	assert.Equal(t, "|b.rate|", name, "piped symbols stay whole")
	assert.Equal(t, " () Real 25.0", rest)
}
