package semantic

import (
	"time"

	"stele/internal/ast"
	"stele/internal/errors"
)

// TemporalField is one field wrapped in Temporal<T, from, until>.
// Either bound may be absent.
type TemporalField struct {
	Key        string
	ValidFrom  *time.Time
	ValidUntil *time.Time
	Pos        ast.Position
}

// SunsetClause is a #[sunset(date)] annotation: the provision expires
// on Expiry.
type SunsetClause struct {
	Key    string
	Expiry time.Time
	Pos    ast.Position
}

// RetroactiveRule is a #[retroactive(date)] annotation, paired with
// the effective date declared alongside it when one exists.
type RetroactiveRule struct {
	Key       string
	RetroFrom time.Time
	Effective *time.Time
	Pos       ast.Position
}

// TemporalChecker validates validity windows, sunset clauses and
// retroactive rules against a caller-supplied reference date. The
// reference date is an input, never read from the clock here, so runs
// are reproducible.
type TemporalChecker struct {
	fields  []TemporalField
	sunsets []SunsetClause
	retros  []RetroactiveRule
}

func NewTemporalChecker() *TemporalChecker {
	return &TemporalChecker{}
}

// Collect gathers every temporal construct in the program. Arguments
// the analyzer already rejected as malformed are skipped, not
// re-reported.
func (t *TemporalChecker) Collect(program *ast.Program) {
	t.collectItems(program.Items)
}

func (t *TemporalChecker) collectItems(items []ast.Item) {
	for _, item := range items {
		switch it := item.(type) {
		case *ast.Struct:
			for _, field := range it.Fields {
				key := it.Name.Value + "." + field.Name.Value
				t.collectField(key, field)
			}
		case *ast.Scope:
			t.collectItems(it.Items)
		}
	}
}

func (t *TemporalChecker) collectField(key string, field *ast.StructField) {
	if ref, ok := field.Type.(*ast.TypeRef); ok && ref.Name.Value == ast.TypeTemporal {
		t.collectTemporalType(key, ref)
	}

	var effective *time.Time
	for _, annot := range field.Annotations {
		if annot.Name == ast.AnnotEffective {
			if d, ok := parseAnnotationDate(annot); ok {
				effective = &d
			}
		}
	}

	for _, annot := range field.Annotations {
		switch annot.Name {
		case ast.AnnotSunset:
			if d, ok := parseAnnotationDate(annot); ok {
				t.sunsets = append(t.sunsets, SunsetClause{
					Key:    key,
					Expiry: d,
					Pos:    annot.Pos,
				})
			}
		case ast.AnnotRetroactive:
			if d, ok := parseAnnotationDate(annot); ok {
				t.retros = append(t.retros, RetroactiveRule{
					Key:       key,
					RetroFrom: d,
					Effective: effective,
					Pos:       annot.Pos,
				})
			}
		}
	}
}

func (t *TemporalChecker) collectTemporalType(key string, ref *ast.TypeRef) {
	field := TemporalField{Key: key, Pos: ref.Name.Pos}
	if len(ref.Args) >= 2 {
		if d, ok := literalDate(ref.Args[1]); ok {
			field.ValidFrom = &d
		}
	}
	if len(ref.Args) >= 3 {
		if d, ok := literalDate(ref.Args[2]); ok {
			field.ValidUntil = &d
		}
	}
	t.fields = append(t.fields, field)
}

func literalDate(arg ast.Type) (time.Time, bool) {
	lit, ok := arg.(*ast.LiteralType)
	if !ok || lit.Kind != ast.LitDate {
		return time.Time{}, false
	}
	d, err := ast.DateValue(lit.Value)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Check reports every temporal violation relative to current: inverted
// validity windows, sunsets already past, and retroactive dates that
// postdate their own effective dates.
func (t *TemporalChecker) Check(current time.Time) []errors.CompilerError {
	var errs []errors.CompilerError

	for _, field := range t.fields {
		if field.ValidFrom != nil && field.ValidUntil != nil && !field.ValidFrom.Before(*field.ValidUntil) {
			errs = append(errs, errors.InvertedValidity(
				field.Key,
				formatDate(*field.ValidFrom),
				formatDate(*field.ValidUntil),
				field.Pos,
			))
		}
	}

	for _, sunset := range t.sunsets {
		if sunset.Expiry.Before(current) {
			errs = append(errs, errors.ExpiredSunset(
				sunset.Key,
				formatDate(sunset.Expiry),
				formatDate(current),
				sunset.Pos,
			))
		}
	}

	for _, retro := range t.retros {
		if retro.Effective != nil && retro.RetroFrom.After(*retro.Effective) {
			errs = append(errs, errors.RetroactiveConflict(
				retro.Key,
				formatDate(retro.RetroFrom),
				formatDate(*retro.Effective),
				retro.Pos,
			))
		}
	}
	return errs
}

// Fields exposes the collected validity windows for tooling.
func (t *TemporalChecker) Fields() []TemporalField {
	return t.fields
}

func formatDate(d time.Time) string {
	return d.Format("02-01-2006")
}
