package semantic

import (
	"fmt"
	"time"

	"stele/internal/ast"
	"stele/internal/citation"
	"stele/internal/errors"
)

// Analyzer runs every semantic check over a resolved program and
// accumulates diagnostics. One run reports everything it can find;
// nothing short-circuits.
type Analyzer struct {
	resolved *ResolvedProgram
	errors   []errors.CompilerError
}

func NewAnalyzer(resolved *ResolvedProgram) *Analyzer {
	return &Analyzer{resolved: resolved}
}

// Analyze returns all semantic diagnostics for the program: undefined
// and duplicate symbols, type rule violations, field access errors,
// annotation and citation problems.
func (a *Analyzer) Analyze() []errors.CompilerError {
	for _, dup := range a.resolved.Duplicates {
		a.errors = append(a.errors, errors.DuplicateDefinition(dup.Name, dup.Pos))
	}
	for _, ref := range a.resolved.Unbound {
		a.errors = append(a.errors, errors.UndefinedSymbol(ref.Name, ref.Pos, ref.Similar))
	}

	a.checkItems(a.resolved.Program.Items)
	return a.errors
}

func (a *Analyzer) checkItems(items []ast.Item) {
	for _, item := range items {
		switch it := item.(type) {
		case *ast.Struct:
			a.checkStruct(it)
		case *ast.Enum:
			a.checkAnnotations(it.Annotations, annotTargetEnum)
		case *ast.Function:
			a.checkFunction(it)
		case *ast.TypeAlias:
			a.checkType(it.Target)
		case *ast.Scope:
			a.checkItems(it.Items)
		case *ast.Principle:
			a.requireBoolean(it.Body, "principle body")
			a.checkExpr(it.Body)
		case *ast.LegalTest:
			a.checkLegalTest(it)
		case *ast.Declaration:
			a.checkDeclaration(it)
		}
	}
}

func (a *Analyzer) checkStruct(st *ast.Struct) {
	a.checkAnnotations(st.Annotations, annotTargetStruct)
	for _, field := range st.Fields {
		a.checkAnnotations(field.Annotations, annotTargetField)
		a.checkType(field.Type)
		if field.Guard != nil {
			a.requireBoolean(field.Guard, "field guard")
			a.checkExpr(field.Guard)
		}
	}
}

func (a *Analyzer) checkFunction(fn *ast.Function) {
	for _, param := range fn.Params {
		a.checkType(param.Type)
	}
	if fn.Return != nil {
		a.checkType(fn.Return)
	}
	a.checkExpr(fn.Body)

	if fn.Return != nil {
		if want, ok := a.typeName(fn.Return); ok {
			if got, ok := a.inferExpr(fn.Body); ok && !unifies(want, got) {
				a.errors = append(a.errors, errors.TypeMismatch(want, got, fn.Body.NodePos()))
			}
		}
	}
}

// checkLegalTest verifies every requirement is declared Boolean. A
// legal test is an ordered conjunction, so nothing else makes sense as
// a requirement type.
func (a *Analyzer) checkLegalTest(test *ast.LegalTest) {
	for _, req := range test.Requirements {
		a.checkType(req.Type)
		if name, ok := a.typeName(req.Type); ok && name != ast.TypeBoolean {
			a.errors = append(a.errors, errors.TypeMismatch(ast.TypeBoolean, name, req.Type.NodePos()))
		}
	}
}

func (a *Analyzer) checkDeclaration(decl *ast.Declaration) {
	a.checkType(decl.Type)
	a.checkExpr(decl.Value)

	want, ok := a.typeName(decl.Type)
	if !ok {
		return
	}
	if want == ast.TypeCitation {
		if lit, isLit := decl.Value.(*ast.LiteralExpr); isLit && lit.Kind == ast.LitString {
			if _, err := citation.Parse(lit.Value); err != nil {
				a.errors = append(a.errors, errors.InvalidCitation(lit.Value, err.Error(), lit.Pos))
			}
			return
		}
	}
	if got, ok := a.inferExpr(decl.Value); ok && !unifies(want, got) {
		a.errors = append(a.errors, errors.TypeMismatch(want, got, decl.Value.NodePos()))
	}
}

type annotTarget int

const (
	annotTargetStruct annotTarget = iota
	annotTargetField
	annotTargetEnum
)

// annotationArity maps each known annotation to its required argument
// count; -1 means one or more.
var annotationArity = map[string]int{
	ast.AnnotLevel:             1,
	ast.AnnotSubordinateTo:     1,
	ast.AnnotEffective:         1,
	ast.AnnotSunset:            1,
	ast.AnnotRetroactive:       1,
	ast.AnnotCites:             -1,
	ast.AnnotMutuallyExclusive: 0,
}

var dateAnnotations = map[string]bool{
	ast.AnnotEffective:   true,
	ast.AnnotSunset:      true,
	ast.AnnotRetroactive: true,
}

func (a *Analyzer) checkAnnotations(annotations []*ast.Annotation, target annotTarget) {
	for _, annot := range annotations {
		want, known := annotationArity[annot.Name]
		if !known {
			a.errors = append(a.errors, errors.InvalidAnnotation(annot.Name, "unknown annotation", annot.Pos))
			continue
		}
		if want >= 0 && len(annot.Args) != want {
			detail := fmt.Sprintf("expected %d argument(s), found %d", want, len(annot.Args))
			a.errors = append(a.errors, errors.InvalidAnnotation(annot.Name, detail, annot.Pos))
			continue
		}
		if want == -1 && len(annot.Args) == 0 {
			a.errors = append(a.errors, errors.InvalidAnnotation(annot.Name, "expected at least one argument", annot.Pos))
			continue
		}

		switch {
		case dateAnnotations[annot.Name]:
			if _, err := ast.DateValue(annot.Args[0]); err != nil {
				detail := fmt.Sprintf("%q is not a DD-MM-YYYY date", annot.Args[0])
				a.errors = append(a.errors, errors.InvalidAnnotation(annot.Name, detail, annot.Pos))
			}
		case annot.Name == ast.AnnotCites:
			for _, arg := range annot.Args {
				if _, err := citation.Parse(arg); err != nil {
					a.errors = append(a.errors, errors.InvalidCitation(arg, err.Error(), annot.Pos))
				}
			}
		case annot.Name == ast.AnnotMutuallyExclusive && target != annotTargetEnum:
			a.errors = append(a.errors, errors.InvalidAnnotation(annot.Name, "only valid on enums", annot.Pos))
		}
	}
}

// parseAnnotationDate is the shared date reading used by the temporal
// and hierarchy passes; annotations already validated here parse clean.
func parseAnnotationDate(annot *ast.Annotation) (time.Time, bool) {
	if len(annot.Args) != 1 {
		return time.Time{}, false
	}
	d, err := ast.DateValue(annot.Args[0])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
