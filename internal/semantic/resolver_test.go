package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stele/internal/ast"
	"stele/internal/errors"
	"stele/internal/parser"
)

func parseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, parseErrs, scanErrs := parser.ParseSource("test.sl", source)
	require.Empty(t, scanErrs, "expected no scan errors")
	require.Empty(t, parseErrs, "expected no parse errors")
	require.NotNil(t, program)
	return program
}

func resolveSource(t *testing.T, source string) *ResolvedProgram {
	t.Helper()
	resolved, err := Resolve(parseProgram(t, source))
	require.Nil(t, err, "expected resolution to succeed")
	return resolved
}

func fieldNames(fields []*ast.StructField) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name.Value
	}
	return names
}

func TestResolveFlattensInheritance(t *testing.T) {
	source := `
struct Entity {
    id: Int,
    name: String,
}

struct Person extends Entity {
    age: Int,
}

struct Employee extends Person {
    salary: Money,
}
`
	resolved := resolveSource(t, source)

	assert.Equal(t, []string{"id", "name"}, fieldNames(resolved.FlatFields["Entity"]))
	assert.Equal(t, []string{"id", "name", "age"}, fieldNames(resolved.FlatFields["Person"]),
		"inherited fields come first, in parent order")
	assert.Equal(t, []string{"id", "name", "age", "salary"}, fieldNames(resolved.FlatFields["Employee"]))
}

func TestResolveDuplicateFieldInOneStruct(t *testing.T) {
	source := `
struct S {
    x: Int,
    x: String,
}
`
	resolved := resolveSource(t, source)

	require.Equal(t, []string{"x", "x"}, fieldNames(resolved.FlatFields["S"]),
		"a repeated field stays in the flattened list")
	require.Len(t, resolved.Duplicates, 1)
	assert.Equal(t, "x", resolved.Duplicates[0].Name)
}

func TestResolveDuplicateFieldAcrossExtends(t *testing.T) {
	source := `
struct Base {
    amount: Int,
    note: String,
}

struct Refined extends Base {
    amount: Money,
}
`
	resolved := resolveSource(t, source)

	assert.Equal(t, []string{"amount", "note", "amount"}, fieldNames(resolved.FlatFields["Refined"]),
		"flattening is concatenation, never a silent replacement")
	require.Len(t, resolved.Duplicates, 1)
	assert.Equal(t, "amount", resolved.Duplicates[0].Name)
	assert.Equal(t, []string{"amount", "note"}, fieldNames(resolved.FlatFields["Base"]),
		"the parent's own list is unaffected")
}

func TestResolveParentDuplicateReportedOnce(t *testing.T) {
	source := `
struct Base {
    x: Int,
    x: String,
}

struct Child extends Base {
    y: Int,
}
`
	resolved := resolveSource(t, source)

	require.Len(t, resolved.Duplicates, 1, "the parent's duplicate is not re-reported for the child")
	assert.Equal(t, []string{"x", "x", "y"}, fieldNames(resolved.FlatFields["Child"]))
}

func TestResolveExtendsCycle(t *testing.T) {
	source := `
struct A extends B {
    x: Int,
}

struct B extends A {
    y: Int,
}
`
	_, err := Resolve(parseProgram(t, source))
	require.NotNil(t, err, "a cyclic extends chain fails resolution")
	assert.Equal(t, errors.ErrorExtendsCycle, err.Code)
}

func TestResolveUnknownParent(t *testing.T) {
	source := `
struct Orphan extends Missing {
    x: Int,
}
`
	_, err := Resolve(parseProgram(t, source))
	require.NotNil(t, err)
	assert.Equal(t, errors.ErrorUnknownParent, err.Code)
	assert.Contains(t, err.Message, "Missing")
}

func TestResolveUnboundWithSuggestions(t *testing.T) {
	source := `
Int income := 100
Int tax := incme
`
	resolved := resolveSource(t, source)

	require.Len(t, resolved.Unbound, 1, "unbound refs are recorded, not fatal")
	assert.Equal(t, "incme", resolved.Unbound[0].Name)
	assert.Contains(t, resolved.Unbound[0].Similar, "income")
}

func TestResolveDeclarationsBindInOrder(t *testing.T) {
	source := `
Int early := later
Int later := 1
`
	resolved := resolveSource(t, source)

	require.Len(t, resolved.Unbound, 1,
		"a declaration cannot reference one below it")
	assert.Equal(t, "later", resolved.Unbound[0].Name)
}

func TestResolveFunctionsBindRegardlessOfOrder(t *testing.T) {
	source := `
Int v := double(2)

fn double(x: Int) -> Int {
    x + x
}
`
	resolved := resolveSource(t, source)
	assert.Empty(t, resolved.Unbound, "functions are declared up front")
}

func TestResolveDuplicates(t *testing.T) {
	source := `
Int x := 1
Int x := 2
`
	resolved := resolveSource(t, source)
	require.Len(t, resolved.Duplicates, 1)
	assert.Equal(t, "x", resolved.Duplicates[0].Name)
}

func TestResolveSiblingScopesMayReuseNames(t *testing.T) {
	source := `
scope Federal {
    Int rate := 1
}

scope State {
    Int rate := 2
}
`
	resolved := resolveSource(t, source)
	assert.Empty(t, resolved.Duplicates, "sibling scopes are separate frames")
	assert.Empty(t, resolved.Unbound)
}

func TestResolveScopeShadowing(t *testing.T) {
	source := `
Int rate := 1

scope Local {
    Int rate := 2
    Int doubled := rate + rate
}
`
	resolved := resolveSource(t, source)
	assert.Empty(t, resolved.Duplicates, "shadowing in a nested scope is not a duplicate")
	assert.Empty(t, resolved.Unbound)
}

func TestResolveGuardSeesInheritedFields(t *testing.T) {
	source := `
struct Person {
    age: Int,
}

struct Employee extends Person {
    salary: Money where age >= 18,
}
`
	resolved := resolveSource(t, source)
	assert.Empty(t, resolved.Unbound, "guards see every flattened field")
}

func TestResolveMatchPatternsNameVariants(t *testing.T) {
	source := `
enum Status {
    Active,
    Dissolved,
}

fn code(s: Status) -> Int {
    match s {
        Active => 1,
        Dissolve => 2,
        _ => 0,
    }
}
`
	resolved := resolveSource(t, source)

	require.Len(t, resolved.Unbound, 1, "patterns resolve against variants, never bind fresh names")
	assert.Equal(t, "Dissolve", resolved.Unbound[0].Name)
	assert.Contains(t, resolved.Unbound[0].Similar, "Dissolved")
}

func TestResolveQuantifierScopesItsVariable(t *testing.T) {
	source := `
principle positivity {
    forall x: Int where x > 0, x + 1 > 1
}

Int outside := x
`
	resolved := resolveSource(t, source)

	require.Len(t, resolved.Unbound, 1, "the bound variable is not visible outside the quantifier")
	assert.Equal(t, "x", resolved.Unbound[0].Name)
}

func TestSymbolTableShadowing(t *testing.T) {
	root := NewSymbolTable(nil)
	require.Nil(t, root.Define(&Symbol{Name: "rate", Kind: SymbolVariable}))

	prev := root.Define(&Symbol{Name: "rate", Kind: SymbolVariable})
	assert.NotNil(t, prev, "redefining in the same frame reports the prior symbol")

	child := NewSymbolTable(root)
	assert.Nil(t, child.Define(&Symbol{Name: "rate", Kind: SymbolVariable}),
		"a child frame may shadow")
	assert.Nil(t, child.LookupLocal("other"))
	assert.NotNil(t, child.Lookup("rate"))
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, editDistance("hello", "hello"))
	assert.Equal(t, 1, editDistance("hello", "hallo"))
	assert.Equal(t, 1, editDistance("hello", "helo"))
	assert.Equal(t, 5, editDistance("hello", ""))
	assert.Equal(t, 3, editDistance("kitten", "sitting"))
}

func TestSimilarNames(t *testing.T) {
	candidates := []string{"income", "outcome", "rate", "tax"}

	similar := similarNames("incme", candidates)
	assert.Contains(t, similar, "income")
	assert.NotContains(t, similar, "rate")

	assert.Empty(t, similarNames("completelydifferent", candidates))
}
