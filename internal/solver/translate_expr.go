package solver

import (
	"fmt"
	"strconv"

	"stele/internal/ast"
	"stele/internal/semantic"
)

// term is one translated subexpression with its solver sort.
type term struct {
	text string
	sort string
}

func (tr *translation) boolExpr(e ast.Expr, env scope, depth int) (string, error) {
	t, err := tr.expr(e, env, depth)
	if err != nil {
		return "", err
	}
	if t.sort != "Bool" {
		return "", tr.fail("expected a boolean expression", e.NodePos())
	}
	return t.text, nil
}

func (tr *translation) expr(e ast.Expr, env scope, depth int) (term, error) {
	switch expr := e.(type) {
	case *ast.IdentExpr:
		return tr.ident(expr, env, depth)

	case *ast.LiteralExpr:
		return tr.literal(expr)

	case *ast.BinaryExpr:
		return tr.binary(expr, env, depth)

	case *ast.UnaryExpr:
		operand, err := tr.expr(expr.Value, env, depth)
		if err != nil {
			return term{}, err
		}
		if expr.Op == "!" {
			return term{text: fmt.Sprintf("(not %s)", operand.text), sort: "Bool"}, nil
		}
		return term{text: fmt.Sprintf("(- %s)", operand.text), sort: operand.sort}, nil

	case *ast.FieldAccessExpr:
		return tr.fieldAccess(expr, env)

	case *ast.CallExpr:
		return tr.call(expr, env, depth)

	case *ast.ForallExpr:
		return tr.binder(true, expr.Var, expr.VarType, expr.Constraint, expr.Body, env, depth)

	case *ast.ExistsExpr:
		return tr.binder(false, expr.Var, expr.VarType, expr.Constraint, expr.Body, env, depth)

	case *ast.ParenExpr:
		return tr.expr(expr.Value, env, depth)

	case *ast.MatchExpr:
		return term{}, tr.fail("match expressions are not supported in solver queries", expr.Pos)
	}
	return term{}, tr.fail("expression form has no solver encoding", e.NodePos())
}

// ident resolves a name: a bound solver symbol, an inlined call
// argument, an enum variant constant, or a scope-level declaration
// whose value is substituted in place.
func (tr *translation) ident(expr *ast.IdentExpr, env scope, depth int) (term, error) {
	if b, ok := env[expr.Name]; ok {
		if b.fields != nil {
			return term{}, tr.fail(fmt.Sprintf("struct variable %s cannot be used as a value", expr.Name), expr.Pos)
		}
		if b.inline != "" {
			return term{text: b.inline, sort: b.sort}, nil
		}
		return term{text: b.symbol, sort: b.sort}, nil
	}

	sym := tr.translator.resolved.Bindings[expr]
	if sym == nil {
		return term{}, tr.fail(fmt.Sprintf("%s is not representable in a solver query", expr.Name), expr.Pos)
	}

	switch sym.Kind {
	case semantic.SymbolEnumVariant:
		ref, ok := sym.Type.(*ast.TypeRef)
		if !ok {
			break
		}
		enum := tr.translator.resolved.Enums[ref.Name.Value]
		if enum == nil {
			break
		}
		for i, variant := range enum.Variants {
			if variant.Value == expr.Name {
				return term{text: strconv.Itoa(i), sort: "Int"}, nil
			}
		}
	case semantic.SymbolVariable:
		if decl, ok := sym.Node.(*ast.Declaration); ok {
			if depth >= maxInlineDepth {
				return term{}, tr.fail("declaration substitution too deep", expr.Pos)
			}
			return tr.expr(decl.Value, scope{}, depth+1)
		}
	}
	return term{}, tr.fail(fmt.Sprintf("%s is not representable in a solver query", expr.Name), expr.Pos)
}

func (tr *translation) literal(expr *ast.LiteralExpr) (term, error) {
	switch expr.Kind {
	case ast.LitInt:
		return term{text: expr.Value, sort: "Int"}, nil
	case ast.LitFloat:
		return term{text: realText(expr.Value), sort: "Real"}, nil
	case ast.LitBool:
		return term{text: expr.Value, sort: "Bool"}, nil
	case ast.LitMoney:
		cents, err := ast.MoneyCents(expr.Value)
		if err != nil {
			return term{}, tr.fail(err.Error(), expr.Pos)
		}
		return term{text: strconv.FormatInt(cents, 10), sort: "Int"}, nil
	case ast.LitPercent:
		value, err := ast.PercentValue(expr.Value)
		if err != nil {
			return term{}, tr.fail(err.Error(), expr.Pos)
		}
		return term{text: realText(strconv.FormatFloat(value, 'f', -1, 64)), sort: "Real"}, nil
	case ast.LitDate:
		ordinal, err := ast.DateOrdinal(expr.Value)
		if err != nil {
			return term{}, tr.fail(err.Error(), expr.Pos)
		}
		return term{text: strconv.FormatInt(ordinal, 10), sort: "Int"}, nil
	case ast.LitDuration:
		days, err := ast.DurationDays(expr.Value)
		if err != nil {
			return term{}, tr.fail(err.Error(), expr.Pos)
		}
		return term{text: strconv.FormatInt(days, 10), sort: "Int"}, nil
	}
	return term{}, tr.fail(fmt.Sprintf("%s literals are not supported in solver queries", expr.Kind), expr.Pos)
}

func (tr *translation) binary(expr *ast.BinaryExpr, env scope, depth int) (term, error) {
	left, err := tr.expr(expr.Left, env, depth)
	if err != nil {
		return term{}, err
	}
	right, err := tr.expr(expr.Right, env, depth)
	if err != nil {
		return term{}, err
	}

	switch expr.Op {
	case "&&":
		return term{text: fmt.Sprintf("(and %s %s)", left.text, right.text), sort: "Bool"}, nil
	case "||":
		return term{text: fmt.Sprintf("(or %s %s)", left.text, right.text), sort: "Bool"}, nil
	}

	left, right = promote(left, right)

	switch expr.Op {
	case "==":
		return term{text: fmt.Sprintf("(= %s %s)", left.text, right.text), sort: "Bool"}, nil
	case "!=":
		return term{text: fmt.Sprintf("(not (= %s %s))", left.text, right.text), sort: "Bool"}, nil
	case "<", "<=", ">", ">=":
		return term{text: fmt.Sprintf("(%s %s %s)", expr.Op, left.text, right.text), sort: "Bool"}, nil
	case "+", "-", "*":
		return term{text: fmt.Sprintf("(%s %s %s)", expr.Op, left.text, right.text), sort: left.sort}, nil
	case "/":
		op := "div"
		if left.sort == "Real" {
			op = "/"
		}
		return term{text: fmt.Sprintf("(%s %s %s)", op, left.text, right.text), sort: left.sort}, nil
	case "%":
		if left.sort != "Int" {
			return term{}, tr.fail("modulo requires integer operands", expr.Pos)
		}
		return term{text: fmt.Sprintf("(mod %s %s)", left.text, right.text), sort: "Int"}, nil
	}
	return term{}, tr.fail(fmt.Sprintf("operator %s has no solver encoding", expr.Op), expr.Pos)
}

// promote lifts an Int operand to Real when the other side is Real, so
// mixed comparisons stay well-sorted.
func promote(left, right term) (term, term) {
	if left.sort == "Real" && right.sort == "Int" {
		right = term{text: fmt.Sprintf("(to_real %s)", right.text), sort: "Real"}
	}
	if left.sort == "Int" && right.sort == "Real" {
		left = term{text: fmt.Sprintf("(to_real %s)", left.text), sort: "Real"}
	}
	return left, right
}

func (tr *translation) fieldAccess(expr *ast.FieldAccessExpr, env scope) (term, error) {
	target, ok := unwrapParens(expr.Target).(*ast.IdentExpr)
	if !ok {
		return term{}, tr.fail("field access requires a quantified struct variable", expr.Pos)
	}
	b := env[target.Name]
	if b == nil || b.fields == nil {
		return term{}, tr.fail("field access requires a quantified struct variable", expr.Pos)
	}
	field := b.fields[expr.Field]
	if field == nil {
		return term{}, tr.fail(fmt.Sprintf("unknown field %s", expr.Field), expr.Pos)
	}
	return term{text: field.symbol, sort: field.sort}, nil
}

// call inlines a function body with the translated arguments
// substituted for the parameters. Bodies are single expressions, so
// substitution is exact.
func (tr *translation) call(expr *ast.CallExpr, env scope, depth int) (term, error) {
	if depth >= maxInlineDepth {
		return term{}, tr.fail("function inlining too deep", expr.Pos)
	}

	callee, ok := unwrapParens(expr.Callee).(*ast.IdentExpr)
	if !ok {
		return term{}, tr.fail("only named functions can be called in solver queries", expr.Pos)
	}
	sym := tr.translator.resolved.Bindings[callee]
	if sym == nil || sym.Kind != semantic.SymbolFunction {
		return term{}, tr.fail(fmt.Sprintf("%s is not a function", callee.Name), callee.Pos)
	}
	fn := sym.Node.(*ast.Function)
	if len(expr.Args) != len(fn.Params) {
		return term{}, tr.fail(fmt.Sprintf("%s expects %d argument(s)", fn.Name.Value, len(fn.Params)), expr.Pos)
	}

	body := scope{}
	for i, param := range fn.Params {
		arg, err := tr.expr(expr.Args[i], env, depth)
		if err != nil {
			return term{}, err
		}
		body[param.Name.Value] = &binding{inline: arg.text, sort: arg.sort}
	}
	return tr.expr(fn.Body, body, depth+1)
}

// binder translates a nested quantifier into an SMT binder. The range
// constraints of the variable's type and its where clause guard the
// body: implication under forall, conjunction under exists.
func (tr *translation) binder(universal bool, v ast.Ident, varType ast.Type, constraint, bodyExpr ast.Expr, env scope, depth int) (term, error) {
	enc, err := tr.encode(varType, v.Pos)
	if err != nil {
		return term{}, err
	}

	child := env.child()
	child[v.Value] = &binding{symbol: v.Value, sort: enc.sort}

	guards := enc.ranges(v.Value)
	if constraint != nil {
		text, err := tr.boolExpr(constraint, child, depth)
		if err != nil {
			return term{}, err
		}
		guards = append(guards, text)
	}

	body, err := tr.boolExpr(bodyExpr, child, depth)
	if err != nil {
		return term{}, err
	}

	quantifier := "exists"
	if universal {
		quantifier = "forall"
	}

	if len(guards) > 0 {
		guard := guards[0]
		if len(guards) > 1 {
			guard = "(and"
			for _, g := range guards {
				guard += " " + g
			}
			guard += ")"
		}
		if universal {
			body = fmt.Sprintf("(=> %s %s)", guard, body)
		} else {
			body = fmt.Sprintf("(and %s %s)", guard, body)
		}
	}

	text := fmt.Sprintf("(%s ((%s %s)) %s)", quantifier, v.Value, enc.sort, body)
	return term{text: text, sort: "Bool"}, nil
}

// realText renders a numeric lexeme as an SMT Real literal.
func realText(value string) string {
	for i := 0; i < len(value); i++ {
		if value[i] == '.' {
			return value
		}
	}
	return value + ".0"
}
