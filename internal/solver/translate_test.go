package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stele/internal/ast"
	"stele/internal/parser"
	"stele/internal/semantic"
)

func resolveProgram(t *testing.T, source string) *semantic.ResolvedProgram {
	t.Helper()
	program, parseErrs, scanErrs := parser.ParseSource("test.sl", source)
	require.Empty(t, scanErrs, "expected no scan errors")
	require.Empty(t, parseErrs, "expected no parse errors")
	resolved, err := semantic.Resolve(program)
	require.Nil(t, err)
	return resolved
}

func firstPrinciple(t *testing.T, resolved *semantic.ResolvedProgram) *ast.Principle {
	t.Helper()
	for _, item := range resolved.Program.Items {
		if p, ok := item.(*ast.Principle); ok {
			return p
		}
	}
	t.Fatal("no principle in source")
	return nil
}

func buildQuery(t *testing.T, source string) *Query {
	t.Helper()
	resolved := resolveProgram(t, source)
	query, err := NewTranslator(resolved).BuildQuery(firstPrinciple(t, resolved))
	require.NoError(t, err)
	return query
}

func buildQueryErr(t *testing.T, source string) error {
	t.Helper()
	resolved := resolveProgram(t, source)
	_, err := NewTranslator(resolved).BuildQuery(firstPrinciple(t, resolved))
	require.Error(t, err)
	return err
}

func TestPolarity(t *testing.T) {
	universal := Polarity(QuantForall)
	assert.Equal(t, VerdictInvalid, universal.OnSat)
	assert.Equal(t, VerdictValid, universal.OnUnsat)
	assert.True(t, universal.ModelIsCounterexample)

	existential := Polarity(QuantExists)
	assert.Equal(t, VerdictWitness, existential.OnSat)
	assert.Equal(t, VerdictNoWitness, existential.OnUnsat)
	assert.False(t, existential.ModelIsCounterexample)
}

func TestVerdictHolds(t *testing.T) {
	assert.True(t, VerdictValid.Holds())
	assert.True(t, VerdictWitness.Holds())
	assert.False(t, VerdictInvalid.Holds())
	assert.False(t, VerdictNoWitness.Holds())
}

func TestBuildForallNegatesClaim(t *testing.T) {
	query := buildQuery(t, `
principle monotonic {
    forall x: Int, x + 1 > x
}
`)
	assert.Equal(t, QuantForall, query.Kind)
	assert.Contains(t, query.Text, "(set-logic ALL)")
	assert.Contains(t, query.Text, "(declare-const x Int)")
	assert.Contains(t, query.Text, "(assert (not (> (+ x 1) x)))")
	assert.Contains(t, query.Text, "(check-sat)")
	assert.Contains(t, query.Text, "(get-model)")
}

func TestBuildExistsAssertsDirectly(t *testing.T) {
	query := buildQuery(t, `
principle reachable {
    exists x: Int, x > 10
}
`)
	assert.Equal(t, QuantExists, query.Kind)
	assert.Contains(t, query.Text, "(assert (> x 10))")
	assert.NotContains(t, query.Text, "(assert (not")
}

func TestBuildGroundClaimIsUniversal(t *testing.T) {
	query := buildQuery(t, `
principle arithmetic {
    1 + 1 == 2
}
`)
	assert.Equal(t, QuantForall, query.Kind)
	assert.Contains(t, query.Text, "(assert (not (= (+ 1 1) 2)))")
}

func TestBuildConstraintIsAsserted(t *testing.T) {
	query := buildQuery(t, `
principle positive {
    forall x: Int where x > 0, x >= 1
}
`)
	assert.Contains(t, query.Text, "(assert (> x 0))")
	assert.Contains(t, query.Text, "(assert (not (>= x 1)))")
}

func TestPercentEncodesAsBoundedReal(t *testing.T) {
	query := buildQuery(t, `
principle bounded {
    forall r: Percent, r <= 100%
}
`)
	assert.Contains(t, query.Text, "(declare-const r Real)")
	assert.Contains(t, query.Text, "(assert (<= 0.0 r))")
	assert.Contains(t, query.Text, "(assert (<= r 100.0))")
	assert.Contains(t, query.Text, "(assert (not (<= r 100.0)))")
}

func TestMoneyEncodesAsCents(t *testing.T) {
	query := buildQuery(t, `
principle additive {
    forall income: Money<USD>, income + $10.50 > income
}
`)
	assert.Contains(t, query.Text, "(declare-const income Int)")
	assert.Contains(t, query.Text, "1050", "money literals become whole cents")
}

func TestDateAndDurationEncodeAsDays(t *testing.T) {
	query := buildQuery(t, `
principle later {
    forall d: Date, d + 30d > d
}
`)
	assert.Contains(t, query.Text, "(> (+ d 30) d)")
}

func TestBoundedIntRangesAsserted(t *testing.T) {
	query := buildQuery(t, `
principle inRange {
    forall n: BoundedInt<0, 100>, n >= 0
}
`)
	assert.Contains(t, query.Text, "(assert (<= 0 n))")
	assert.Contains(t, query.Text, "(assert (<= n 100))")
}

func TestEnumEncodesAsRangedInt(t *testing.T) {
	query := buildQuery(t, `
enum Status {
    Active,
    Dissolved,
}

principle closed {
    forall s: Status, s == Active || s == Dissolved
}
`)
	assert.Contains(t, query.Text, "(assert (<= 0 s))")
	assert.Contains(t, query.Text, "(assert (< s 2))")
	assert.Contains(t, query.Text, "(or (= s 0) (= s 1))",
		"variants become their declaration index")
}

func TestStructVariableExpandsToFields(t *testing.T) {
	query := buildQuery(t, `
struct Bracket {
    rate: Percent where rate <= 50%,
    floor: Money<USD>,
}

principle sane {
    forall b: Bracket, b.floor >= $0.00
}
`)
	assert.Contains(t, query.Text, "(declare-const |b.rate| Real)")
	assert.Contains(t, query.Text, "(declare-const |b.floor| Int)")
	assert.Contains(t, query.Text, "(assert (<= |b.rate| 50.0))",
		"field guards constrain the expansion")
	assert.Contains(t, query.Text, "(assert (not (>= |b.floor| 0)))")
}

func TestNestedQuantifierStaysABinder(t *testing.T) {
	query := buildQuery(t, `
principle unbounded {
    forall x: Int, exists y: Int, y > x
}
`)
	assert.Contains(t, query.Text, "(exists ((y Int)) (> y x))")
}

func TestNestedForallGuardsWithImplication(t *testing.T) {
	query := buildQuery(t, `
principle guarded {
    forall x: Int, forall y: Int where y > 0, x + y > x
}
`)
	assert.Contains(t, query.Text, "(forall ((y Int)) (=> (> y 0) (> (+ x y) x)))")
}

func TestNestedExistsGuardsWithConjunction(t *testing.T) {
	query := buildQuery(t, `
principle witnessed {
    forall x: Int, exists r: Percent, r >= 0%
}
`)
	assert.Contains(t, query.Text,
		"(exists ((r Real)) (and (and (<= 0.0 r) (<= r 100.0)) (>= r 0.0)))",
		"range guards conjoin under exists")
}

func TestFunctionCallsAreInlined(t *testing.T) {
	query := buildQuery(t, `
fn double(x: Int) -> Int {
    x + x
}

principle doubling {
    forall n: Int, double(n) == n + n
}
`)
	assert.Contains(t, query.Text, "(assert (not (= (+ n n) (+ n n))))")
}

func TestDeclarationsAreSubstituted(t *testing.T) {
	query := buildQuery(t, `
Int limit := 10

principle capped {
    forall x: Int where x < limit, x < 10
}
`)
	assert.Contains(t, query.Text, "(assert (< x 10))")
}

func TestMixedIntRealComparisonPromotes(t *testing.T) {
	query := buildQuery(t, `
principle mixed {
    forall r: Percent, r >= 0
}
`)
	assert.Contains(t, query.Text, "(>= r (to_real 0))")
}

func TestMatchIsNotTranslatable(t *testing.T) {
	err := buildQueryErr(t, `
principle matched {
    forall x: Int, match x {
        0 => true,
        _ => false,
    }
}
`)
	var terr *TranslateError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Reason, "match")
	assert.Equal(t, "matched", terr.Principle)
}

func TestNestedStructBinderIsRejected(t *testing.T) {
	err := buildQueryErr(t, `
struct Bracket {
    rate: Percent,
}

principle nested {
    forall x: Int, forall b: Bracket, b.rate >= 0%
}
`)
	var terr *TranslateError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Reason, "outermost quantifier")
}

func TestStructVariableIsNotAValue(t *testing.T) {
	err := buildQueryErr(t, `
struct Bracket {
    rate: Percent,
}

principle misuse {
    forall b: Bracket, b == b
}
`)
	var terr *TranslateError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Reason, "cannot be used as a value")
}

func TestRecursiveInliningIsBounded(t *testing.T) {
	err := buildQueryErr(t, `
fn loop(x: Int) -> Int {
    loop(x)
}

principle diverging {
    forall n: Int, loop(n) == 0
}
`)
	var terr *TranslateError
	require.ErrorAs(t, err, &terr)
	assert.Contains(t, terr.Reason, "too deep")
}
