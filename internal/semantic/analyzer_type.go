package semantic

import (
	"strconv"

	"stele/internal/ast"
	"stele/internal/errors"
)

// checkType validates one type form: generic arity against the
// primitive table or the user declaration, BoundedInt bounds, Temporal
// and Money argument shapes. Names the resolver could not bind were
// already reported, so unknown names are skipped here.
func (a *Analyzer) checkType(t ast.Type) {
	switch typ := t.(type) {
	case *ast.TypeRef:
		a.checkTypeRef(typ)
	case *ast.UnionType:
		for _, member := range typ.Members {
			a.checkType(member)
		}
	case *ast.StructType:
		for _, field := range typ.Fields {
			a.checkType(field.Type)
		}
	case *ast.LiteralType:
	}
}

func (a *Analyzer) checkTypeRef(ref *ast.TypeRef) {
	name := ref.Name.Value

	if ast.IsPrimitive(name) {
		a.checkPrimitiveRef(ref)
	} else if arity, known := a.declaredArity(name); known && len(ref.Args) != arity {
		a.errors = append(a.errors, errors.GenericArity(name, arity, len(ref.Args), ref.Name.Pos))
	}

	for _, arg := range ref.Args {
		a.checkType(arg)
	}
}

func (a *Analyzer) checkPrimitiveRef(ref *ast.TypeRef) {
	name := ref.Name.Value

	switch name {
	case ast.TypeTemporal:
		a.checkTemporalRef(ref)
		return
	case ast.TypeBoundedInt:
		a.checkBoundedIntRef(ref)
		return
	}

	arity := ast.PrimitiveArity[name]
	if len(ref.Args) != arity {
		a.errors = append(a.errors, errors.GenericArity(name, arity, len(ref.Args), ref.Name.Pos))
		return
	}

	if name == ast.TypeMoney {
		if _, ok := ref.Args[0].(*ast.TypeRef); !ok {
			a.errors = append(a.errors, errors.TypeMismatch("currency code", ref.Args[0].String(), ref.Args[0].NodePos()))
		}
	}
}

// checkBoundedIntRef requires exactly two integer literal bounds with
// low <= high.
func (a *Analyzer) checkBoundedIntRef(ref *ast.TypeRef) {
	if len(ref.Args) != 2 {
		a.errors = append(a.errors, errors.GenericArity(ast.TypeBoundedInt, 2, len(ref.Args), ref.Name.Pos))
		return
	}

	bounds := make([]int64, 0, 2)
	for _, arg := range ref.Args {
		lit, ok := arg.(*ast.LiteralType)
		if !ok || lit.Kind != ast.LitInt {
			a.errors = append(a.errors, errors.TypeMismatch("Int literal", arg.String(), arg.NodePos()))
			return
		}
		value, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			a.errors = append(a.errors, errors.TypeMismatch("Int literal", lit.Value, lit.Pos))
			return
		}
		bounds = append(bounds, value)
	}

	if bounds[0] > bounds[1] {
		a.errors = append(a.errors, errors.BoundedIntRange(ref.Args[0].String(), ref.Args[1].String(), ref.Name.Pos))
	}
}

// checkTemporalRef accepts Temporal<T>, Temporal<T, from> and
// Temporal<T, from, until>. Date ordering is the temporal pass's
// concern; shape is checked here.
func (a *Analyzer) checkTemporalRef(ref *ast.TypeRef) {
	if len(ref.Args) < 1 || len(ref.Args) > 3 {
		a.errors = append(a.errors, errors.GenericArity(ast.TypeTemporal, 1, len(ref.Args), ref.Name.Pos))
		return
	}

	if _, isLit := ref.Args[0].(*ast.LiteralType); isLit {
		err := errors.NewError(errors.ErrorInvalidTemporal,
			"Temporal's first argument must be a type", ref.Args[0].NodePos()).Build()
		a.errors = append(a.errors, err)
	}

	for _, arg := range ref.Args[1:] {
		lit, ok := arg.(*ast.LiteralType)
		if !ok || lit.Kind != ast.LitDate {
			err := errors.NewError(errors.ErrorInvalidTemporal,
				"Temporal validity bounds must be date literals", arg.NodePos()).Build()
			a.errors = append(a.errors, err)
			continue
		}
		a.checkLiteral(lit.Kind, lit.Value, lit.Pos)
	}
}

// declaredArity returns the generic parameter count of a user-declared
// type, or false for names the side tables do not know (type
// parameters, unresolved names).
func (a *Analyzer) declaredArity(name string) (int, bool) {
	if st, ok := a.resolved.Structs[name]; ok {
		return len(st.TypeParams), true
	}
	if alias, ok := a.resolved.Aliases[name]; ok {
		return len(alias.TypeParams), true
	}
	if _, ok := a.resolved.Enums[name]; ok {
		return 0, true
	}
	return 0, false
}

// typeName reduces a type form to a single comparable name, following
// one level of alias indirection. Unions and inline struct types have
// no single name; callers skip checks for those.
func (a *Analyzer) typeName(t ast.Type) (string, bool) {
	ref, ok := t.(*ast.TypeRef)
	if !ok {
		return "", false
	}
	name := ref.Name.Value
	switch name {
	case ast.TypeTemporal:
		// a temporal wrapper carries its payload's value semantics
		if len(ref.Args) >= 1 {
			return a.typeName(ref.Args[0])
		}
		return "", false
	case ast.TypeBoundedInt:
		return ast.TypeInt, true
	}
	if alias, isAlias := a.resolved.Aliases[name]; isAlias {
		return a.typeName(alias.Target)
	}
	return name, true
}

var numericTypes = map[string]bool{
	ast.TypeInt:      true,
	ast.TypeFloat:    true,
	ast.TypePercent:  true,
	ast.TypeMoney:    true,
	ast.TypeDuration: true,
}

// unifies reports whether a value of inferred type got is acceptable
// where want is expected. Numeric literals type contextually, so Int
// unifies with every numeric type and Float with Float and Percent;
// everything else must match exactly.
func unifies(want, got string) bool {
	if want == got {
		return true
	}
	if got == ast.TypeInt && numericTypes[want] {
		return true
	}
	if got == ast.TypeFloat && (want == ast.TypeFloat || want == ast.TypePercent) {
		return true
	}
	if want == ast.TypeCitation && got == ast.TypeString {
		return true
	}
	return false
}
