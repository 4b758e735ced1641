package solver

import (
	"fmt"
	"strconv"
	"strings"

	"stele/internal/ast"
	"stele/internal/semantic"
)

// maxInlineDepth bounds function inlining so mutually recursive
// definitions cannot hang translation.
const maxInlineDepth = 16

// TranslateError reports a principle the bridge cannot express in
// SMT-LIB, with the construct that stopped it.
type TranslateError struct {
	Principle string
	Reason    string
	Pos       ast.Position
}

func (e *TranslateError) Error() string {
	return fmt.Sprintf("cannot translate principle %q: %s", e.Principle, e.Reason)
}

// Translator turns principles into SMT-LIB queries. Domain values map
// to solver sorts as follows: Money becomes integer cents, Date an
// integer day ordinal, Duration integer days, Percent a Real
// constrained to 0..100, enums integers ranged over their variants.
type Translator struct {
	resolved *semantic.ResolvedProgram
}

func NewTranslator(resolved *semantic.ResolvedProgram) *Translator {
	return &Translator{resolved: resolved}
}

// BuildQuery builds the script and interpretation for one principle.
// The outermost quantifier's variable becomes global declarations with
// asserted range and guard constraints; nested quantifiers stay as
// SMT binders. A body with no leading quantifier is checked as a
// universal ground claim.
func (t *Translator) BuildQuery(principle *ast.Principle) (*Query, error) {
	tr := &translation{
		translator: t,
		principle:  principle.Name.Value,
	}

	body := unwrapParens(principle.Body)
	kind := QuantForall
	env := scope{}

	var claim string
	switch q := body.(type) {
	case *ast.ForallExpr:
		kind = QuantForall
		if err := tr.declareTopLevel(q.Var, q.VarType, q.Constraint, env); err != nil {
			return nil, err
		}
		text, err := tr.boolExpr(q.Body, env, 0)
		if err != nil {
			return nil, err
		}
		claim = text
	case *ast.ExistsExpr:
		kind = QuantExists
		if err := tr.declareTopLevel(q.Var, q.VarType, q.Constraint, env); err != nil {
			return nil, err
		}
		text, err := tr.boolExpr(q.Body, env, 0)
		if err != nil {
			return nil, err
		}
		claim = text
	default:
		text, err := tr.boolExpr(body, env, 0)
		if err != nil {
			return nil, err
		}
		claim = text
	}

	interp := Polarity(kind)

	var script strings.Builder
	script.WriteString("(set-logic ALL)\n")
	for _, decl := range tr.decls {
		script.WriteString(decl)
		script.WriteByte('\n')
	}
	for _, assert := range tr.asserts {
		fmt.Fprintf(&script, "(assert %s)\n", assert)
	}
	if kind == QuantForall {
		fmt.Fprintf(&script, "(assert (not %s))\n", claim)
	} else {
		fmt.Fprintf(&script, "(assert %s)\n", claim)
	}
	script.WriteString("(check-sat)\n(get-model)\n")

	return &Query{
		Principle: principle.Name.Value,
		Kind:      kind,
		Text:      script.String(),
		Interp:    interp,
	}, nil
}

// binding is one name visible during translation: either a declared
// solver symbol with a sort, or a struct variable whose fields each
// carry their own symbol.
type binding struct {
	symbol string
	sort   string
	fields map[string]*binding // non-nil for struct variables
	inline string              // substituted argument text for inlined calls
}

type scope map[string]*binding

func (s scope) child() scope {
	c := make(scope, len(s))
	for name, b := range s {
		c[name] = b
	}
	return c
}

type translation struct {
	translator *Translator
	principle  string
	decls      []string
	asserts    []string
}

func (tr *translation) fail(reason string, pos ast.Position) error {
	return &TranslateError{Principle: tr.principle, Reason: reason, Pos: pos}
}

// declareTopLevel turns the outermost bound variable into global
// constants. Struct variables expand to one constant per flattened
// field, with field guards asserted over the expansion.
func (tr *translation) declareTopLevel(v ast.Ident, varType ast.Type, constraint ast.Expr, env scope) error {
	name := v.Value

	if structName, isStruct := tr.structType(varType); isStruct {
		b := &binding{fields: make(map[string]*binding)}
		fieldEnv := scope{}
		for _, field := range tr.translator.resolved.FlatFields[structName] {
			enc, err := tr.encode(field.Type, field.Name.Pos)
			if err != nil {
				return err
			}
			symbol := fmt.Sprintf("|%s.%s|", name, field.Name.Value)
			tr.decls = append(tr.decls, fmt.Sprintf("(declare-const %s %s)", symbol, enc.sort))
			tr.asserts = append(tr.asserts, enc.ranges(symbol)...)
			fb := &binding{symbol: symbol, sort: enc.sort}
			b.fields[field.Name.Value] = fb
			fieldEnv[field.Name.Value] = fb
		}
		env[name] = b

		for _, field := range tr.translator.resolved.FlatFields[structName] {
			if field.Guard == nil {
				continue
			}
			guard, err := tr.boolExpr(field.Guard, fieldEnv, 0)
			if err != nil {
				return err
			}
			tr.asserts = append(tr.asserts, guard)
		}
	} else {
		enc, err := tr.encode(varType, v.Pos)
		if err != nil {
			return err
		}
		tr.decls = append(tr.decls, fmt.Sprintf("(declare-const %s %s)", name, enc.sort))
		tr.asserts = append(tr.asserts, enc.ranges(name)...)
		env[name] = &binding{symbol: name, sort: enc.sort}
	}

	if constraint != nil {
		text, err := tr.boolExpr(constraint, env, 0)
		if err != nil {
			return err
		}
		tr.asserts = append(tr.asserts, text)
	}
	return nil
}

func (tr *translation) structType(t ast.Type) (string, bool) {
	ref, ok := t.(*ast.TypeRef)
	if !ok {
		return "", false
	}
	name := ref.Name.Value
	if alias, isAlias := tr.translator.resolved.Aliases[name]; isAlias {
		return tr.structType(alias.Target)
	}
	if _, isStruct := tr.translator.resolved.Structs[name]; isStruct {
		return name, true
	}
	return "", false
}

// encoding is a solver sort plus the range assertions a symbol of that
// sort must satisfy.
type encoding struct {
	sort   string
	ranges func(symbol string) []string
}

func noRanges(string) []string { return nil }

func (tr *translation) encode(t ast.Type, pos ast.Position) (*encoding, error) {
	ref, ok := t.(*ast.TypeRef)
	if !ok {
		return nil, tr.fail(fmt.Sprintf("type %s has no solver encoding", t.String()), pos)
	}
	name := ref.Name.Value

	switch name {
	case ast.TypeInt, ast.TypeDuration:
		return &encoding{sort: "Int", ranges: noRanges}, nil
	case ast.TypeDate:
		return &encoding{sort: "Int", ranges: noRanges}, nil
	case ast.TypeMoney:
		return &encoding{sort: "Int", ranges: noRanges}, nil
	case ast.TypeFloat:
		return &encoding{sort: "Real", ranges: noRanges}, nil
	case ast.TypeBoolean:
		return &encoding{sort: "Bool", ranges: noRanges}, nil
	case ast.TypePercent:
		return &encoding{sort: "Real", ranges: func(symbol string) []string {
			return []string{
				fmt.Sprintf("(<= 0.0 %s)", symbol),
				fmt.Sprintf("(<= %s 100.0)", symbol),
			}
		}}, nil
	case ast.TypeBoundedInt:
		if len(ref.Args) != 2 {
			return nil, tr.fail("BoundedInt without bounds", pos)
		}
		low, lerr := literalInt(ref.Args[0])
		high, herr := literalInt(ref.Args[1])
		if lerr != nil || herr != nil {
			return nil, tr.fail("BoundedInt bounds must be integer literals", pos)
		}
		return &encoding{sort: "Int", ranges: func(symbol string) []string {
			return []string{
				fmt.Sprintf("(<= %d %s)", low, symbol),
				fmt.Sprintf("(<= %s %d)", symbol, high),
			}
		}}, nil
	case ast.TypeTemporal:
		if len(ref.Args) < 1 {
			return nil, tr.fail("Temporal without a payload type", pos)
		}
		return tr.encode(ref.Args[0], pos)
	}

	if alias, isAlias := tr.translator.resolved.Aliases[name]; isAlias {
		return tr.encode(alias.Target, pos)
	}
	if enum, isEnum := tr.translator.resolved.Enums[name]; isEnum {
		count := len(enum.Variants)
		return &encoding{sort: "Int", ranges: func(symbol string) []string {
			return []string{
				fmt.Sprintf("(<= 0 %s)", symbol),
				fmt.Sprintf("(< %s %d)", symbol, count),
			}
		}}, nil
	}
	if _, isStruct := tr.translator.resolved.Structs[name]; isStruct {
		return nil, tr.fail(fmt.Sprintf("struct %s can only bind the outermost quantifier", name), pos)
	}
	return nil, tr.fail(fmt.Sprintf("type %s has no solver encoding", name), pos)
}

func literalInt(t ast.Type) (int64, error) {
	lit, ok := t.(*ast.LiteralType)
	if !ok || lit.Kind != ast.LitInt {
		return 0, fmt.Errorf("not an integer literal")
	}
	return strconv.ParseInt(lit.Value, 10, 64)
}

func unwrapParens(e ast.Expr) ast.Expr {
	for {
		paren, ok := e.(*ast.ParenExpr)
		if !ok {
			return e
		}
		e = paren.Value
	}
}
