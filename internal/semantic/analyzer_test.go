package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stele/internal/errors"
)

func checkSource(t *testing.T, source string) []errors.CompilerError {
	t.Helper()
	return NewAnalyzer(resolveSource(t, source)).Analyze()
}

func errorCodes(errs []errors.CompilerError) []string {
	codes := make([]string, len(errs))
	for i, e := range errs {
		codes[i] = e.Code
	}
	return codes
}

func TestAnalyzeCleanProgram(t *testing.T) {
	source := `
struct Taxpayer {
    income: Money<USD> where income >= $0.00,
    dependents: BoundedInt<0, 20>,
}

fn taxDue(income: Money<USD>, rate: Percent) -> Money<USD> {
    income * rate
}

Money<USD> threshold := $600.00
Percent standard := 25%
`
	assert.Empty(t, checkSource(t, source))
}

func TestAnalyzeUndefinedSymbol(t *testing.T) {
	source := `
Int income := 100
Int tax := incme * 2
`
	errs := checkSource(t, source)
	require.Contains(t, errorCodes(errs), errors.ErrorUndefinedSymbol)

	for _, e := range errs {
		if e.Code == errors.ErrorUndefinedSymbol {
			assert.Contains(t, e.Message, "incme")
			require.NotEmpty(t, e.Suggestions)
			assert.Contains(t, e.Suggestions[0], "income")
		}
	}
}

func TestAnalyzeDuplicateDefinition(t *testing.T) {
	source := `
Int rate := 1
Int rate := 2
`
	errs := checkSource(t, source)
	assert.Contains(t, errorCodes(errs), errors.ErrorDuplicateDefinition)
}

func TestAnalyzeDuplicateStructField(t *testing.T) {
	source := `
struct S {
    x: Int,
    x: String,
}
`
	errs := checkSource(t, source)
	require.NotEmpty(t, errs, "a repeated field name is diagnosed, not dropped")
	assert.Contains(t, errorCodes(errs), errors.ErrorDuplicateDefinition)
}

func TestAnalyzeDuplicateInheritedField(t *testing.T) {
	source := `
struct Base {
    amount: Int,
}

struct Refined extends Base {
    amount: Money<USD>,
}
`
	errs := checkSource(t, source)
	assert.Contains(t, errorCodes(errs), errors.ErrorDuplicateDefinition,
		"redeclaring an inherited field collides in the flattened list")
}

func TestAnalyzeDeclarationTypeMismatch(t *testing.T) {
	errs := checkSource(t, `Boolean flag := 42`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorTypeMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Message, "expected Boolean, found Int")
}

func TestAnalyzeContextualNumericLiterals(t *testing.T) {
	source := `
Money<USD> cap := 100
Percent p := 12.5
Float f := 3
Duration grace := 30
`
	assert.Empty(t, checkSource(t, source),
		"Int literals type contextually against numeric targets")
}

func TestAnalyzeBoundedIntRange(t *testing.T) {
	errs := checkSource(t, `
struct S {
    n: BoundedInt<10, 5>,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorBoundedIntRange, errs[0].Code)

	assert.Empty(t, checkSource(t, `
struct S {
    n: BoundedInt<0, 100>,
}
`))

	assert.Empty(t, checkSource(t, `
struct S {
    n: BoundedInt<5, 5>,
}
`), "equal bounds describe a single-value range, not an error")
}

func TestAnalyzeMoneyRequiresCurrency(t *testing.T) {
	errs := checkSource(t, `
struct S {
    amount: Money,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorGenericArity, errs[0].Code)
	assert.Contains(t, errs[0].Message, "Money")
}

func TestAnalyzeUnknownAnnotation(t *testing.T) {
	errs := checkSource(t, `
#[frobnicate]
struct S {
    x: Int,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvalidAnnotation, errs[0].Code)
	assert.Contains(t, errs[0].Message, "frobnicate")
}

func TestAnalyzeAnnotationDateArgument(t *testing.T) {
	errs := checkSource(t, `
struct S {
    #[effective(soon)]
    x: Int,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvalidAnnotation, errs[0].Code)
	assert.Contains(t, errs[0].Message, "DD-MM-YYYY")

	assert.Empty(t, checkSource(t, `
struct S {
    #[effective(15-01-2024)]
    x: Int,
}
`))
}

func TestAnalyzeMutuallyExclusiveOnlyOnEnums(t *testing.T) {
	errs := checkSource(t, `
#[mutually_exclusive]
struct S {
    x: Int,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvalidAnnotation, errs[0].Code)
	assert.Contains(t, errs[0].Message, "only valid on enums")

	assert.Empty(t, checkSource(t, `
#[mutually_exclusive]
enum Filing {
    Single,
    Joint,
}
`))
}

func TestAnalyzeCitesAnnotation(t *testing.T) {
	errs := checkSource(t, `
#[cites("nonsense")]
struct S {
    x: Int,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvalidCitation, errs[0].Code)

	assert.Empty(t, checkSource(t, `
#[cites("§ 1201(a) of DMCA")]
struct S {
    x: Int,
}
`))
}

func TestAnalyzeCitationDeclaration(t *testing.T) {
	assert.Empty(t, checkSource(t, `Citation c := "§ 501(c) of Code"`))

	errs := checkSource(t, `Citation c := "garbage"`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvalidCitation, errs[0].Code)
}

func TestAnalyzeFieldAccess(t *testing.T) {
	source := `
struct Person {
    age: Int,
}

struct Employee extends Person {
    salary: Money<USD>,
}

fn retirementReady(e: Employee) -> Boolean {
    e.age >= 65
}
`
	assert.Empty(t, checkSource(t, source), "inherited fields are visible through the flattened list")

	errs := checkSource(t, `
struct Person {
    age: Int,
}

fn f(p: Person) -> Int {
    p.height
}
`)
	require.Contains(t, errorCodes(errs), errors.ErrorFieldNotFound)
}

func TestAnalyzeLegalTestRequiresBoolean(t *testing.T) {
	errs := checkSource(t, `
legal_test incorporation {
    requires Boolean charter_filed,
    requires Int fee_paid,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorTypeMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Message, "expected Boolean, found Int")
}

func TestAnalyzeFunctionReturnMismatch(t *testing.T) {
	errs := checkSource(t, `
fn wrong() -> Boolean {
    1 + 2
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorTypeMismatch, errs[0].Code)
}

func TestAnalyzePrincipleBodyMustBeBoolean(t *testing.T) {
	errs := checkSource(t, `
principle sums {
    1 + 1
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorTypeMismatch, errs[0].Code)
	require.NotEmpty(t, errs[0].Notes)
	assert.Contains(t, errs[0].Notes[0], "principle body must be Boolean")
}

func TestAnalyzeDomainArithmetic(t *testing.T) {
	source := `
Money<USD> gross := $100.00
Percent rate := 25%
Money<USD> tax := gross * rate
Date filed := 15-01-2024
Date deadline := filed + 90d
Duration window := deadline - filed
`
	assert.Empty(t, checkSource(t, source))
}

func TestAnalyzeRejectsBooleanArithmetic(t *testing.T) {
	errs := checkSource(t, `Int bad := true + 1`)
	require.NotEmpty(t, errs)
	assert.Equal(t, errors.ErrorTypeMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Message, "numeric operand")
}

func TestAnalyzeCallArity(t *testing.T) {
	source := `
fn double(x: Int) -> Int {
    x + x
}

Int v := double(1, 2)
`
	errs := checkSource(t, source)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorTypeMismatch, errs[0].Code)
	assert.Contains(t, errs[0].Message, "1 argument(s)")
}

func TestAnalyzeTemporalShape(t *testing.T) {
	assert.Empty(t, checkSource(t, `
struct S {
    rate: Temporal<Percent, 01-01-2024, 31-12-2030>,
}
`))

	errs := checkSource(t, `
struct S {
    rate: Temporal<5>,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvalidTemporal, errs[0].Code)
	assert.Contains(t, errs[0].Message, "first argument must be a type")
}

func TestAnalyzeDateLiteralValue(t *testing.T) {
	errs := checkSource(t, `Date filed := 99-99-2024`)
	require.NotEmpty(t, errs, "a date must name a real calendar day, not just scan as one")
	assert.Contains(t, errorCodes(errs), errors.ErrorInvalidDate)

	for _, e := range errs {
		if e.Code == errors.ErrorInvalidDate {
			assert.Contains(t, e.Message, "99-99-2024")
		}
	}

	assert.Empty(t, checkSource(t, `Date filed := 15-01-2024`))
}

func TestAnalyzeDateLiteralInMatchPattern(t *testing.T) {
	source := `
fn since(d: Date) -> Int {
    match d {
        31-02-2024 => 1,
        _ => 0,
    }
}
`
	errs := checkSource(t, source)
	assert.Contains(t, errorCodes(errs), errors.ErrorInvalidDate)
}

func TestAnalyzeDateLiteralInTemporalBounds(t *testing.T) {
	errs := checkSource(t, `
struct S {
    rate: Temporal<Percent, 32-13-2024>,
}
`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.ErrorInvalidDate, errs[0].Code)
}

func TestAnalyzeAliasFollowedOneLevel(t *testing.T) {
	source := `
type Rate = Percent;

Rate standard := 25%
`
	assert.Empty(t, checkSource(t, source))
}
