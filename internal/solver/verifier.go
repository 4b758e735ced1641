// Package solver bridges statute principles to an external SMT solver.
// Translation, invocation and interpretation live here; the rest of
// the compiler never sees SMT-LIB.
package solver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"stele/internal/ast"
	"stele/internal/semantic"
)

// PrincipleResult is the outcome of verifying one principle. Exactly
// one of Verdict and Err is meaningful: Err marks translation or
// invocation failures, distinct from any logical verdict.
type PrincipleResult struct {
	Name           string
	Kind           QuantKind
	Verdict        Verdict
	Counterexample *Counterexample
	Witness        *Counterexample
	Err            error
	Elapsed        time.Duration
}

// Report covers one verification run over a program.
type Report struct {
	RunID   string
	Results []PrincipleResult
	Elapsed time.Duration
}

// Failed reports whether any principle was refuted or failed to run.
func (r *Report) Failed() bool {
	for _, result := range r.Results {
		if result.Err != nil || !result.Verdict.Holds() {
			return true
		}
	}
	return false
}

// Verifier runs every principle of a resolved program through the
// solver.
type Verifier struct {
	translator *Translator
	runner     *Runner
	log        commonlog.Logger
}

func NewVerifier(resolved *semantic.ResolvedProgram, runner *Runner) *Verifier {
	return &Verifier{
		translator: NewTranslator(resolved),
		runner:     runner,
		log:        commonlog.GetLogger("solver"),
	}
}

// Verify checks every principle in the program, in source order,
// nested scopes included. One failing principle never stops the rest.
func (v *Verifier) Verify(ctx context.Context, program *ast.Program) *Report {
	report := &Report{RunID: uuid.NewString()}
	start := time.Now()

	for _, principle := range collectPrinciples(program.Items) {
		result := v.VerifyPrinciple(ctx, principle)
		report.Results = append(report.Results, result)
	}

	report.Elapsed = time.Since(start)
	v.log.Infof("run %s: %d principle(s) in %s", report.RunID, len(report.Results), report.Elapsed)
	return report
}

// VerifyPrinciple translates, runs and interprets one principle.
func (v *Verifier) VerifyPrinciple(ctx context.Context, principle *ast.Principle) PrincipleResult {
	start := time.Now()
	result := PrincipleResult{Name: principle.Name.Value}

	query, err := v.translator.BuildQuery(principle)
	if err != nil {
		result.Err = err
		result.Elapsed = time.Since(start)
		return result
	}
	result.Kind = query.Kind
	v.log.Debugf("principle %s: %s query, %d bytes", query.Principle, query.Kind, len(query.Text))

	raw, err := v.runner.Check(ctx, query.Text)
	if err != nil {
		result.Err = err
		result.Elapsed = time.Since(start)
		return result
	}

	if raw.Sat {
		result.Verdict = query.Interp.OnSat
		model := ParseModel(raw.Model)
		if query.Interp.ModelIsCounterexample {
			result.Counterexample = model
		} else {
			result.Witness = model
		}
	} else {
		result.Verdict = query.Interp.OnUnsat
	}

	result.Elapsed = time.Since(start)
	return result
}

func collectPrinciples(items []ast.Item) []*ast.Principle {
	var principles []*ast.Principle
	for _, item := range items {
		switch it := item.(type) {
		case *ast.Principle:
			principles = append(principles, it)
		case *ast.Scope:
			principles = append(principles, collectPrinciples(it.Items)...)
		}
	}
	return principles
}
