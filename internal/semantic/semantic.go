// Package semantic implements name resolution, type and annotation
// checking, and the structural passes over statute programs: the
// authority hierarchy and temporal validity.
package semantic

import (
	"time"

	"stele/internal/ast"
	"stele/internal/errors"
)

// Result is the outcome of full semantic analysis. Resolved is nil
// when resolution failed structurally; Errors then holds exactly that
// failure.
type Result struct {
	Resolved *ResolvedProgram
	Errors   []errors.CompilerError
}

// Analyze runs every semantic pass over a parsed program. referenceDate
// anchors the temporal checks; levels overrides DefaultLevels when
// non-empty.
func Analyze(program *ast.Program, referenceDate time.Time, levels []string) *Result {
	resolved, resolveErr := Resolve(program)
	if resolveErr != nil {
		return &Result{Errors: []errors.CompilerError{*resolveErr}}
	}

	result := &Result{Resolved: resolved}
	result.Errors = append(result.Errors, NewAnalyzer(resolved).Analyze()...)

	hierarchy := NewHierarchyChecker(levels)
	hierarchy.Collect(program)
	result.Errors = append(result.Errors, hierarchy.CheckConflicts()...)

	temporal := NewTemporalChecker()
	temporal.Collect(program)
	result.Errors = append(result.Errors, temporal.Check(referenceDate)...)

	return result
}
