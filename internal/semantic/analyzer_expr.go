package semantic

import (
	"fmt"

	"stele/internal/ast"
	"stele/internal/errors"
)

var logicalOps = map[string]bool{"&&": true, "||": true}

var comparisonOps = map[string]bool{
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
}

// checkExpr walks one expression emitting every diagnostic that does
// not depend on an expected type: unknown fields, call shapes, operand
// sanity, guard and quantifier rules. Type inference itself never
// reports; this walk does.
func (a *Analyzer) checkExpr(e ast.Expr) {
	switch expr := e.(type) {
	case *ast.IdentExpr:

	case *ast.LiteralExpr:
		a.checkLiteral(expr.Kind, expr.Value, expr.Pos)

	case *ast.BinaryExpr:
		a.checkExpr(expr.Left)
		a.checkExpr(expr.Right)
		a.checkBinary(expr)

	case *ast.UnaryExpr:
		a.checkExpr(expr.Value)
		if expr.Op == "!" {
			a.requireBoolean(expr.Value, "operand of !")
		} else if got, ok := a.inferExpr(expr.Value); ok && !numericTypes[got] {
			a.errors = append(a.errors, errors.TypeMismatch("numeric operand", got, expr.Value.NodePos()))
		}

	case *ast.CallExpr:
		a.checkCall(expr)

	case *ast.FieldAccessExpr:
		a.checkExpr(expr.Target)
		a.checkFieldAccess(expr)

	case *ast.MatchExpr:
		a.checkExpr(expr.Scrutinee)
		for _, arm := range expr.Arms {
			if lit, ok := arm.Pattern.(*ast.LiteralPattern); ok {
				a.checkLiteral(lit.Kind, lit.Value, lit.Pos)
			}
			if arm.Guard != nil {
				a.requireBoolean(arm.Guard, "match guard")
				a.checkExpr(arm.Guard)
			}
			a.checkExpr(arm.Result)
		}

	case *ast.ForallExpr:
		a.checkQuantifier(expr.VarType, expr.Constraint, expr.Body)

	case *ast.ExistsExpr:
		a.checkQuantifier(expr.VarType, expr.Constraint, expr.Body)

	case *ast.ParenExpr:
		a.checkExpr(expr.Value)
	}
}

// checkLiteral validates value-bearing lexemes the scanner accepts by
// shape alone. Dates are the one such form: 99-99-2024 scans but names
// no calendar day.
func (a *Analyzer) checkLiteral(kind ast.LiteralKind, value string, pos ast.Position) {
	if kind != ast.LitDate {
		return
	}
	if _, err := ast.DateValue(value); err != nil {
		a.errors = append(a.errors, errors.InvalidDate(value, pos))
	}
}

func (a *Analyzer) checkQuantifier(varType ast.Type, constraint, body ast.Expr) {
	a.checkType(varType)
	if constraint != nil {
		a.requireBoolean(constraint, "quantifier constraint")
		a.checkExpr(constraint)
	}
	a.requireBoolean(body, "quantifier body")
	a.checkExpr(body)
}

func (a *Analyzer) checkBinary(expr *ast.BinaryExpr) {
	if logicalOps[expr.Op] {
		a.requireBoolean(expr.Left, fmt.Sprintf("left operand of %s", expr.Op))
		a.requireBoolean(expr.Right, fmt.Sprintf("right operand of %s", expr.Op))
		return
	}
	if comparisonOps[expr.Op] {
		return
	}
	// arithmetic
	for _, operand := range []ast.Expr{expr.Left, expr.Right} {
		if got, ok := a.inferExpr(operand); ok {
			if got == ast.TypeBoolean || got == ast.TypeString {
				a.errors = append(a.errors, errors.TypeMismatch("numeric operand", got, operand.NodePos()))
			}
		}
	}
}

func (a *Analyzer) checkCall(expr *ast.CallExpr) {
	a.checkExpr(expr.Callee)
	for _, generic := range expr.Generics {
		a.checkType(generic)
	}
	for _, arg := range expr.Args {
		a.checkExpr(arg)
	}

	callee, ok := expr.Callee.(*ast.IdentExpr)
	if !ok {
		return
	}
	sym := a.resolved.Bindings[callee]
	if sym == nil || sym.Kind != SymbolFunction {
		return
	}
	fn := sym.Node.(*ast.Function)

	if len(expr.Generics) > 0 && len(expr.Generics) != len(fn.TypeParams) {
		a.errors = append(a.errors, errors.GenericArity(fn.Name.Value, len(fn.TypeParams), len(expr.Generics), callee.Pos))
	}
	if len(expr.Args) != len(fn.Params) {
		want := fmt.Sprintf("%d argument(s)", len(fn.Params))
		got := fmt.Sprintf("%d", len(expr.Args))
		a.errors = append(a.errors, errors.TypeMismatch(want, got, callee.Pos))
	}
}

// checkFieldAccess reports access to a field absent from the target
// struct's flattened field list, so inherited fields resolve and
// removed ones do not. Targets whose type is unknown are skipped.
func (a *Analyzer) checkFieldAccess(expr *ast.FieldAccessExpr) {
	target, ok := a.inferExpr(expr.Target)
	if !ok {
		return
	}
	if _, isStruct := a.resolved.Structs[target]; !isStruct {
		return
	}
	for _, field := range a.resolved.FlatFields[target] {
		if field.Name.Value == expr.Field {
			return
		}
	}
	a.errors = append(a.errors, errors.FieldNotFound(target, expr.Field, expr.Pos))
}

func (a *Analyzer) requireBoolean(e ast.Expr, context string) {
	got, ok := a.inferExpr(e)
	if !ok || got == ast.TypeBoolean {
		return
	}
	err := errors.TypeMismatch(ast.TypeBoolean, got, e.NodePos())
	err.Notes = append(err.Notes, fmt.Sprintf("%s must be Boolean", context))
	a.errors = append(a.errors, err)
}

// inferExpr computes an expression's type name, best effort. It never
// emits diagnostics; a false second return means the type is unknown
// and callers should skip their check rather than guess.
func (a *Analyzer) inferExpr(e ast.Expr) (string, bool) {
	switch expr := e.(type) {
	case *ast.IdentExpr:
		sym := a.resolved.Bindings[expr]
		if sym == nil || sym.Type == nil {
			return "", false
		}
		return a.typeName(sym.Type)

	case *ast.LiteralExpr:
		return expr.Kind.String(), true

	case *ast.BinaryExpr:
		if logicalOps[expr.Op] || comparisonOps[expr.Op] {
			return ast.TypeBoolean, true
		}
		left, lok := a.inferExpr(expr.Left)
		right, rok := a.inferExpr(expr.Right)
		if !lok || !rok {
			return "", false
		}
		return arithmeticResult(expr.Op, left, right)

	case *ast.UnaryExpr:
		if expr.Op == "!" {
			return ast.TypeBoolean, true
		}
		return a.inferExpr(expr.Value)

	case *ast.CallExpr:
		callee, ok := expr.Callee.(*ast.IdentExpr)
		if !ok {
			return "", false
		}
		sym := a.resolved.Bindings[callee]
		if sym == nil || sym.Kind != SymbolFunction {
			return "", false
		}
		fn := sym.Node.(*ast.Function)
		if fn.Return == nil {
			return "", false
		}
		return a.typeName(fn.Return)

	case *ast.FieldAccessExpr:
		target, ok := a.inferExpr(expr.Target)
		if !ok {
			return "", false
		}
		for _, field := range a.resolved.FlatFields[target] {
			if field.Name.Value == expr.Field {
				return a.typeName(field.Type)
			}
		}
		return "", false

	case *ast.MatchExpr:
		// arms were checked for agreement elsewhere; the first arm's
		// result stands for the whole expression
		if len(expr.Arms) > 0 {
			return a.inferExpr(expr.Arms[0].Result)
		}
		return "", false

	case *ast.ForallExpr, *ast.ExistsExpr:
		return ast.TypeBoolean, true

	case *ast.ParenExpr:
		return a.inferExpr(expr.Value)
	}
	return "", false
}

// arithmeticResult encodes the domain arithmetic rules: money and
// percent mix multiplicatively, dates shift by durations and subtract
// to durations, and plain numerics promote Int to Float.
func arithmeticResult(op, left, right string) (string, bool) {
	if left == right {
		switch left {
		case ast.TypeInt, ast.TypeFloat, ast.TypePercent, ast.TypeDuration:
			return left, true
		case ast.TypeMoney:
			if op == "+" || op == "-" {
				return ast.TypeMoney, true
			}
			return "", false
		case ast.TypeDate:
			if op == "-" {
				return ast.TypeDuration, true
			}
			return "", false
		}
		return "", false
	}

	switch {
	case left == ast.TypeMoney && right == ast.TypePercent,
		left == ast.TypePercent && right == ast.TypeMoney:
		if op == "*" {
			return ast.TypeMoney, true
		}
	case left == ast.TypeMoney && (right == ast.TypeInt || right == ast.TypeFloat):
		return ast.TypeMoney, true
	case (left == ast.TypeInt || left == ast.TypeFloat) && right == ast.TypeMoney:
		if op == "*" {
			return ast.TypeMoney, true
		}
	case left == ast.TypeDate && right == ast.TypeDuration:
		if op == "+" || op == "-" {
			return ast.TypeDate, true
		}
	case left == ast.TypeDuration && right == ast.TypeDate:
		if op == "+" {
			return ast.TypeDate, true
		}
	case left == ast.TypeInt && right == ast.TypeFloat,
		left == ast.TypeFloat && right == ast.TypeInt:
		return ast.TypeFloat, true
	case left == ast.TypeInt || right == ast.TypeInt:
		// Int literals type contextually against the other side
		other := left
		if left == ast.TypeInt {
			other = right
		}
		if numericTypes[other] {
			return other, true
		}
	}
	return "", false
}
