package errors

import (
	"fmt"
	"strings"

	"stele/internal/ast"
)

// Common diagnostic constructors used across the analysis phases.

// UndefinedSymbol creates an error for an unbound identifier reference.
func UndefinedSymbol(name string, pos ast.Position, similarNames []string) CompilerError {
	builder := NewError(ErrorUndefinedSymbol, fmt.Sprintf("undefined symbol '%s'", name), pos).
		WithLength(len(name))

	if len(similarNames) > 0 {
		if len(similarNames) == 1 {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similarNames[0]))
		} else {
			builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similarNames, "', '")))
		}
	} else {
		builder = builder.WithSuggestion("make sure the name is declared before use")
	}

	return builder.Build()
}

// DuplicateDefinition creates an error for a second declaration of the
// same name within one scope frame.
func DuplicateDefinition(name string, pos ast.Position) CompilerError {
	return NewError(ErrorDuplicateDefinition, fmt.Sprintf("duplicate definition of '%s'", name), pos).
		WithLength(len(name)).
		WithNote("a name may be shadowed in a nested scope, but not redeclared in the same one").
		Build()
}

// TypeMismatch creates an error for incompatible types.
func TypeMismatch(expected, actual string, pos ast.Position) CompilerError {
	return NewError(ErrorTypeMismatch, fmt.Sprintf("type mismatch: expected %s, found %s", expected, actual), pos).
		Build()
}

// FieldNotFound creates an error for an access to a field missing from
// the flattened field list of a struct.
func FieldNotFound(structName, field string, pos ast.Position) CompilerError {
	return NewError(ErrorFieldNotFound, fmt.Sprintf("struct '%s' has no field '%s'", structName, field), pos).
		WithLength(len(field)).
		WithNote("inherited fields from 'extends' parents are included in the lookup").
		Build()
}

// GenericArity creates an error for a generic instantiation whose
// argument count does not match the declaration.
func GenericArity(name string, want, got int, pos ast.Position) CompilerError {
	return NewError(ErrorGenericArity,
		fmt.Sprintf("'%s' expects %d type argument(s), found %d", name, want, got), pos).
		WithLength(len(name)).
		Build()
}

// BoundedIntRange creates an error for BoundedInt<low, high> with low > high.
func BoundedIntRange(low, high string, pos ast.Position) CompilerError {
	return NewError(ErrorBoundedIntRange,
		fmt.Sprintf("BoundedInt bounds are inverted: low %s > high %s", low, high), pos).
		WithSuggestion("swap the bounds so the low bound comes first").
		Build()
}

// InvalidAnnotation creates an error for an unknown or malformed annotation.
func InvalidAnnotation(name, detail string, pos ast.Position) CompilerError {
	msg := fmt.Sprintf("invalid annotation '#[%s]'", name)
	if detail != "" {
		msg += ": " + detail
	}
	return NewError(ErrorInvalidAnnotation, msg, pos).
		WithLength(len(name)).
		Build()
}

// InvalidDate creates an error for a date lexeme that scans by shape but
// does not name a real calendar day.
func InvalidDate(lexeme string, pos ast.Position) CompilerError {
	return NewError(ErrorInvalidDate,
		fmt.Sprintf("%q is not a valid DD-MM-YYYY date", lexeme), pos).
		WithLength(len(lexeme)).
		Build()
}

// InvalidCitation creates an error for a citation that does not match the
// statute-number or subsection patterns.
func InvalidCitation(text, detail string, pos ast.Position) CompilerError {
	return NewError(ErrorInvalidCitation,
		fmt.Sprintf("invalid citation %q: %s", text, detail), pos).
		WithNote("citations take the form '§ 1201(a) of Act' or 'Act § 1201'").
		Build()
}

// UnresolvedReference creates a resolution error for a name with no
// reachable declaration.
func UnresolvedReference(name string, pos ast.Position) CompilerError {
	return NewError(ErrorUnresolvedReference, fmt.Sprintf("unresolved reference '%s'", name), pos).
		WithLength(len(name)).
		Build()
}

// ExtendsCycle creates an error for a cyclic extends chain.
func ExtendsCycle(path []string, pos ast.Position) CompilerError {
	return NewError(ErrorExtendsCycle,
		fmt.Sprintf("cyclic 'extends' chain: %s", strings.Join(path, " -> ")), pos).
		Build()
}

// UnknownParent creates an error for an extends target that is not a
// declared struct.
func UnknownParent(child, parent string, pos ast.Position) CompilerError {
	return NewError(ErrorUnknownParent,
		fmt.Sprintf("struct '%s' extends unknown struct '%s'", child, parent), pos).
		WithLength(len(parent)).
		Build()
}

// HierarchyCycle creates an error for a cyclic subordinate_to chain.
func HierarchyCycle(path []string) CompilerError {
	return NewError(ErrorHierarchyCycle,
		fmt.Sprintf("cyclic subordination chain: %s", strings.Join(path, " -> ")), ast.Position{}).
		Build()
}

// DanglingSubordinate creates an error for a subordinate_to reference to
// a node that does not exist.
func DanglingSubordinate(node, target string, pos ast.Position) CompilerError {
	return NewError(ErrorDanglingSubordinate,
		fmt.Sprintf("'%s' is subordinate to unknown node '%s'", node, target), pos).
		Build()
}

// LevelInversion creates an error for a child whose level is not strictly
// more specific than its parent's.
func LevelInversion(node, level, parent, parentLevel string, pos ast.Position) CompilerError {
	return NewError(ErrorLevelInversion,
		fmt.Sprintf("'%s' (%s) must sit strictly below its parent '%s' (%s)", node, level, parent, parentLevel), pos).
		Build()
}

// UnknownLevel creates an error for a level tag outside the closed level set.
func UnknownLevel(node, level string, levels []string, pos ast.Position) CompilerError {
	return NewError(ErrorUnknownLevel,
		fmt.Sprintf("'%s' has unknown level '%s'", node, level), pos).
		WithSuggestion(fmt.Sprintf("known levels, most to least authoritative: %s", strings.Join(levels, ", "))).
		Build()
}

// InvertedValidity creates an error for Temporal bounds out of order.
func InvertedValidity(key, from, until string, pos ast.Position) CompilerError {
	return NewError(ErrorInvertedValidity,
		fmt.Sprintf("'%s' has inverted validity window: valid_from %s is not before valid_until %s", key, from, until), pos).
		Build()
}

// ExpiredSunset creates an error for a sunset clause whose date has passed.
func ExpiredSunset(key, date, current string, pos ast.Position) CompilerError {
	return NewError(ErrorExpiredSunset,
		fmt.Sprintf("'%s' sunset on %s, before the reference date %s", key, date, current), pos).
		WithNote("expired clauses are reported, never silently accepted").
		Build()
}

// RetroactiveConflict creates an error for retroactive_from postdating
// the effective date.
func RetroactiveConflict(key, retroFrom, effective string, pos ast.Position) CompilerError {
	return NewError(ErrorRetroactiveConflict,
		fmt.Sprintf("'%s' retroactive_from %s postdates its effective date %s", key, retroFrom, effective), pos).
		Build()
}
