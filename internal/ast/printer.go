package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for i, item := range p.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(item.String())
	}
	return b.String()
}

func (i *Ident) String() string {
	return i.Value
}

func (a *Annotation) String() string {
	if len(a.Args) == 0 {
		return fmt.Sprintf("#[%s]", a.Name)
	}
	return fmt.Sprintf("#[%s(%s)]", a.Name, strings.Join(a.Args, ", "))
}

func writeAnnotations(b *strings.Builder, annotations []*Annotation) {
	for _, a := range annotations {
		b.WriteString(a.String())
		b.WriteString("\n")
	}
}

func writeTypeParams(b *strings.Builder, params []Ident) {
	if len(params) == 0 {
		return
	}
	b.WriteString("<")
	for i, p := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Value)
	}
	b.WriteString(">")
}

func (s *Struct) String() string {
	var b strings.Builder
	writeAnnotations(&b, s.Annotations)
	b.WriteString(fmt.Sprintf("struct %s", s.Name.Value))
	writeTypeParams(&b, s.TypeParams)
	if s.Extends != nil {
		b.WriteString(fmt.Sprintf(" extends %s", s.Extends.Value))
	}
	b.WriteString(" {")
	for _, field := range s.Fields {
		b.WriteString(" ")
		b.WriteString(field.String())
	}
	b.WriteString(" }")
	return b.String()
}

func (sf *StructField) String() string {
	var b strings.Builder
	for _, a := range sf.Annotations {
		b.WriteString(a.String())
		b.WriteString(" ")
	}
	b.WriteString(fmt.Sprintf("%s: %s", sf.Name.Value, sf.Type.String()))
	if sf.Guard != nil {
		b.WriteString(fmt.Sprintf(" where %s", sf.Guard.String()))
	}
	b.WriteString(",")
	return b.String()
}

func (e *Enum) String() string {
	var b strings.Builder
	writeAnnotations(&b, e.Annotations)
	if e.MutuallyExclusive {
		b.WriteString("mutually_exclusive ")
	}
	b.WriteString(fmt.Sprintf("enum %s { ", e.Name.Value))
	for i, v := range e.Variants {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Value)
	}
	b.WriteString(" }")
	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("fn %s", f.Name.Value))
	writeTypeParams(&b, f.TypeParams)
	b.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(")")
	if f.Return != nil {
		b.WriteString(fmt.Sprintf(" -> %s", f.Return.String()))
	}
	b.WriteString(fmt.Sprintf(" { %s }", f.Body.String()))
	return b.String()
}

func (fp *FunctionParam) String() string {
	return fmt.Sprintf("%s: %s", fp.Name.Value, fp.Type.String())
}

func (ta *TypeAlias) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("type %s", ta.Name.Value))
	writeTypeParams(&b, ta.TypeParams)
	b.WriteString(fmt.Sprintf(" = %s;", ta.Target.String()))
	return b.String()
}

func (s *Scope) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("scope %s {\n", s.Name.Value))
	for _, item := range s.Items {
		b.WriteString("  " + strings.ReplaceAll(item.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (p *Principle) String() string {
	return fmt.Sprintf("principle %s { %s }", p.Name.Value, p.Body.String())
}

func (lt *LegalTest) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("legal_test %s {", lt.Name.Value))
	for _, r := range lt.Requirements {
		b.WriteString(" ")
		b.WriteString(r.String())
	}
	b.WriteString(" }")
	return b.String()
}

func (r *Requirement) String() string {
	return fmt.Sprintf("requires %s %s,", r.Type.String(), r.Name.Value)
}

func (d *Declaration) String() string {
	return fmt.Sprintf("%s %s := %s", d.Type.String(), d.Name.Value, d.Value.String())
}

func (tr *TypeRef) String() string {
	if len(tr.Args) == 0 {
		return tr.Name.Value
	}
	parts := make([]string, len(tr.Args))
	for i, a := range tr.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s<%s>", tr.Name.Value, strings.Join(parts, ", "))
}

func (ut *UnionType) String() string {
	parts := make([]string, len(ut.Members))
	for i, m := range ut.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

func (st *StructType) String() string {
	parts := make([]string, len(st.Fields))
	for i, f := range st.Fields {
		parts[i] = f.String()
	}
	return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
}

func (sf *StructTypeField) String() string {
	return fmt.Sprintf("%s: %s", sf.Name.Value, sf.Type.String())
}

func (lt *LiteralType) String() string {
	return lt.Value
}

func (ie *IdentExpr) String() string {
	return ie.Name
}

func (le *LiteralExpr) String() string {
	return le.Value
}

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", be.Left.String(), be.Op, be.Right.String())
}

func (ue *UnaryExpr) String() string {
	return fmt.Sprintf("%s%s", ue.Op, ue.Value.String())
}

func (ce *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(ce.Callee.String())
	if len(ce.Generics) > 0 {
		parts := make([]string, len(ce.Generics))
		for i, g := range ce.Generics {
			parts[i] = g.String()
		}
		b.WriteString(fmt.Sprintf("<%s>", strings.Join(parts, ", ")))
	}
	b.WriteString("(")
	for i, arg := range ce.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	return b.String()
}

func (fa *FieldAccessExpr) String() string {
	return fmt.Sprintf("%s.%s", fa.Target.String(), fa.Field)
}

func (me *MatchExpr) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("match %s {", me.Scrutinee.String()))
	for _, arm := range me.Arms {
		b.WriteString(" ")
		b.WriteString(arm.String())
	}
	b.WriteString(" }")
	return b.String()
}

func (ma *MatchArm) String() string {
	var b strings.Builder
	b.WriteString(ma.Pattern.String())
	if ma.Guard != nil {
		b.WriteString(fmt.Sprintf(" where %s", ma.Guard.String()))
	}
	b.WriteString(fmt.Sprintf(" => %s,", ma.Result.String()))
	return b.String()
}

func (fe *ForallExpr) String() string {
	return quantifierString("forall", fe.Var, fe.VarType, fe.Constraint, fe.Body)
}

func (ee *ExistsExpr) String() string {
	return quantifierString("exists", ee.Var, ee.VarType, ee.Constraint, ee.Body)
}

func quantifierString(kw string, v Ident, t Type, constraint, body Expr) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s: %s", kw, v.Value, t.String()))
	if constraint != nil {
		b.WriteString(fmt.Sprintf(" where %s", constraint.String()))
	}
	b.WriteString(fmt.Sprintf(", %s", body.String()))
	return b.String()
}

func (pe *ParenExpr) String() string {
	return fmt.Sprintf("(%s)", pe.Value.String())
}

func (lp *LiteralPattern) String() string {
	return lp.Value
}

func (ip *IdentPattern) String() string {
	return ip.Name.Value
}

func (wp *WildcardPattern) String() string {
	return "_"
}
