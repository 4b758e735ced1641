package semantic

import (
	"stele/internal/ast"
	"stele/internal/errors"
)

// ResolvedProgram is the output of name resolution: the program plus the
// side tables the checker, the hierarchy pass and the solver bridge read.
// FlatFields holds each struct's effective field list with inherited
// fields first, in parent declaration order.
type ResolvedProgram struct {
	Program *ast.Program

	Structs   map[string]*ast.Struct
	Enums     map[string]*ast.Enum
	Functions map[string]*ast.Function
	Aliases   map[string]*ast.TypeAlias
	Tests     map[string]*ast.LegalTest

	FlatFields map[string][]*ast.StructField

	// Bindings links every resolved identifier use to its definition.
	Bindings map[*ast.IdentExpr]*Symbol

	// Unbound and Duplicates are deferred to the checker, which owns
	// the diagnostics for them. Resolution itself only fails on
	// structural problems: inheritance cycles and unknown parents.
	Unbound    []UnboundRef
	Duplicates []DuplicateDef

	Root *SymbolTable
}

type UnboundRef struct {
	Name    string
	Pos     ast.Position
	Similar []string
}

type DuplicateDef struct {
	Name string
	Pos  ast.Position
}

// Resolve builds the symbol tables for a parsed program, flattens
// struct inheritance and binds every identifier use it can. It returns
// a CompilerError only for structural failures that make the rest of
// analysis meaningless; everything else is recorded on the
// ResolvedProgram for the checker to report.
func Resolve(program *ast.Program) (*ResolvedProgram, *errors.CompilerError) {
	r := &resolver{
		resolved: &ResolvedProgram{
			Program:    program,
			Structs:    make(map[string]*ast.Struct),
			Enums:      make(map[string]*ast.Enum),
			Functions:  make(map[string]*ast.Function),
			Aliases:    make(map[string]*ast.TypeAlias),
			Tests:      make(map[string]*ast.LegalTest),
			FlatFields: make(map[string][]*ast.StructField),
			Bindings:   make(map[*ast.IdentExpr]*Symbol),
			Root:       NewSymbolTable(nil),
		},
	}

	r.collectItems(program.Items)
	if err := r.flattenAll(); err != nil {
		return nil, err
	}
	r.bindItems(program.Items, r.resolved.Root)
	return r.resolved, nil
}

type resolver struct {
	resolved *ResolvedProgram
}

// collectItems fills the by-name side tables, walking into nested
// scopes. The tables are a single namespace: a struct in an inner scope
// is still reachable by name for inheritance and hierarchy purposes.
func (r *resolver) collectItems(items []ast.Item) {
	for _, item := range items {
		switch it := item.(type) {
		case *ast.Struct:
			if _, exists := r.resolved.Structs[it.Name.Value]; !exists {
				r.resolved.Structs[it.Name.Value] = it
			}
		case *ast.Enum:
			if _, exists := r.resolved.Enums[it.Name.Value]; !exists {
				r.resolved.Enums[it.Name.Value] = it
			}
		case *ast.Function:
			if _, exists := r.resolved.Functions[it.Name.Value]; !exists {
				r.resolved.Functions[it.Name.Value] = it
			}
		case *ast.TypeAlias:
			if _, exists := r.resolved.Aliases[it.Name.Value]; !exists {
				r.resolved.Aliases[it.Name.Value] = it
			}
		case *ast.LegalTest:
			if _, exists := r.resolved.Tests[it.Name.Value]; !exists {
				r.resolved.Tests[it.Name.Value] = it
			}
		case *ast.Scope:
			r.collectItems(it.Items)
		}
	}
}

// flattenAll computes FlatFields for every struct. A child's own fields
// follow its inherited ones; nothing is dropped, and a name repeated in
// the combined list is recorded as a duplicate for the checker.
func (r *resolver) flattenAll() *errors.CompilerError {
	for name := range r.resolved.Structs {
		if _, done := r.resolved.FlatFields[name]; done {
			continue
		}
		if err := r.flatten(name, map[string]bool{}, nil); err != nil {
			return err
		}
	}
	return nil
}

func (r *resolver) flatten(name string, visiting map[string]bool, path []string) *errors.CompilerError {
	st := r.resolved.Structs[name]
	path = append(path, name)

	if visiting[name] {
		err := errors.ExtendsCycle(path, st.Name.Pos)
		return &err
	}
	if _, done := r.resolved.FlatFields[name]; done {
		return nil
	}

	var fields []*ast.StructField
	if st.Extends != nil {
		parent := st.Extends.Value
		parentStruct, ok := r.resolved.Structs[parent]
		if !ok {
			err := errors.UnknownParent(name, parent, st.Extends.Pos)
			return &err
		}
		visiting[name] = true
		if err := r.flatten(parent, visiting, path); err != nil {
			return err
		}
		delete(visiting, name)
		fields = append(fields, r.resolved.FlatFields[parentStruct.Name.Value]...)
	}

	seen := make(map[string]bool, len(fields))
	for _, inherited := range fields {
		seen[inherited.Name.Value] = true
	}
	for _, field := range st.Fields {
		if seen[field.Name.Value] {
			r.resolved.Duplicates = append(r.resolved.Duplicates, DuplicateDef{
				Name: field.Name.Value,
				Pos:  field.Name.Pos,
			})
		}
		seen[field.Name.Value] = true
		fields = append(fields, field)
	}

	r.resolved.FlatFields[name] = fields
	return nil
}

// bindItems resolves names within one lexical frame. Type-level items,
// functions and legal tests are declared up front so their order in the
// source does not matter; value declarations are bound strictly in
// order, so a declaration can only reference bindings above it.
func (r *resolver) bindItems(items []ast.Item, table *SymbolTable) {
	for _, item := range items {
		r.declareItem(item, table)
	}
	for _, item := range items {
		r.bindItem(item, table)
	}
}

func (r *resolver) declareItem(item ast.Item, table *SymbolTable) {
	switch it := item.(type) {
	case *ast.Struct:
		r.define(table, &Symbol{
			Name: it.Name.Value, Kind: SymbolStruct,
			TypeArity: len(it.TypeParams), Pos: it.Name.Pos, Node: it,
		})
	case *ast.Enum:
		r.define(table, &Symbol{
			Name: it.Name.Value, Kind: SymbolEnum, Pos: it.Name.Pos, Node: it,
		})
		for i := range it.Variants {
			variant := &it.Variants[i]
			r.define(table, &Symbol{
				Name: variant.Value, Kind: SymbolEnumVariant,
				Type: &ast.TypeRef{Pos: it.Name.Pos, Name: it.Name},
				Pos:  variant.Pos, Node: it,
			})
		}
	case *ast.Function:
		r.define(table, &Symbol{
			Name: it.Name.Value, Kind: SymbolFunction,
			TypeArity: len(it.TypeParams), Pos: it.Name.Pos, Node: it,
		})
	case *ast.TypeAlias:
		r.define(table, &Symbol{
			Name: it.Name.Value, Kind: SymbolTypeAlias,
			TypeArity: len(it.TypeParams), Pos: it.Name.Pos, Node: it,
		})
	case *ast.LegalTest:
		r.define(table, &Symbol{
			Name: it.Name.Value, Kind: SymbolLegalTest, Pos: it.Name.Pos, Node: it,
		})
	case *ast.Principle:
		// Principles are named for reporting but are not referenceable
		// from expressions, so they take no symbol.
	}
}

func (r *resolver) bindItem(item ast.Item, table *SymbolTable) {
	switch it := item.(type) {
	case *ast.Struct:
		r.bindStruct(it, table)
	case *ast.Function:
		r.bindFunction(it, table)
	case *ast.TypeAlias:
		frame := r.typeParamFrame(it.TypeParams, table)
		r.bindType(it.Target, frame)
	case *ast.Scope:
		child := NewSymbolTable(table)
		r.bindItems(it.Items, child)
	case *ast.Principle:
		r.bindExpr(it.Body, table)
	case *ast.LegalTest:
		for _, req := range it.Requirements {
			r.bindType(req.Type, table)
		}
	case *ast.Declaration:
		r.bindType(it.Type, table)
		r.bindExpr(it.Value, table)
		r.define(table, &Symbol{
			Name: it.Name.Value, Kind: SymbolVariable,
			Type: it.Type, Pos: it.Name.Pos, Node: it,
		})
	}
}

// bindStruct binds field types against the enclosing frame and guards
// against a frame where every flattened field is in scope, so a guard
// can reference sibling and inherited fields.
func (r *resolver) bindStruct(st *ast.Struct, table *SymbolTable) {
	frame := r.typeParamFrame(st.TypeParams, table)
	for _, field := range st.Fields {
		r.bindType(field.Type, frame)
	}

	guardFrame := NewSymbolTable(frame)
	for _, field := range r.resolved.FlatFields[st.Name.Value] {
		guardFrame.Define(&Symbol{
			Name: field.Name.Value, Kind: SymbolVariable,
			Type: field.Type, Pos: field.Name.Pos, Node: field,
		})
	}
	for _, field := range st.Fields {
		if field.Guard != nil {
			r.bindExpr(field.Guard, guardFrame)
		}
	}
}

func (r *resolver) bindFunction(fn *ast.Function, table *SymbolTable) {
	frame := r.typeParamFrame(fn.TypeParams, table)
	for _, param := range fn.Params {
		r.bindType(param.Type, frame)
	}
	if fn.Return != nil {
		r.bindType(fn.Return, frame)
	}

	body := NewSymbolTable(frame)
	for _, param := range fn.Params {
		r.define(body, &Symbol{
			Name: param.Name.Value, Kind: SymbolParameter,
			Type: param.Type, Pos: param.Name.Pos, Node: param,
		})
	}
	r.bindExpr(fn.Body, body)
}

func (r *resolver) typeParamFrame(params []ast.Ident, table *SymbolTable) *SymbolTable {
	if len(params) == 0 {
		return table
	}
	frame := NewSymbolTable(table)
	for i := range params {
		param := &params[i]
		frame.Define(&Symbol{
			Name: param.Value, Kind: SymbolTypeParam, Pos: param.Pos,
		})
	}
	return frame
}

func (r *resolver) bindType(t ast.Type, table *SymbolTable) {
	switch typ := t.(type) {
	case *ast.TypeRef:
		if !ast.IsPrimitive(typ.Name.Value) {
			sym := table.Lookup(typ.Name.Value)
			if sym == nil {
				r.unbound(typ.Name.Value, typ.Name.Pos, table)
			}
		}
		for _, arg := range typ.Args {
			r.bindType(arg, table)
		}
	case *ast.UnionType:
		for _, member := range typ.Members {
			r.bindType(member, table)
		}
	case *ast.StructType:
		for _, field := range typ.Fields {
			r.bindType(field.Type, table)
		}
	case *ast.LiteralType:
		// literal arguments carry no names
	}
}

func (r *resolver) bindExpr(e ast.Expr, table *SymbolTable) {
	switch expr := e.(type) {
	case *ast.IdentExpr:
		sym := table.Lookup(expr.Name)
		if sym == nil {
			r.unbound(expr.Name, expr.Pos, table)
			return
		}
		r.resolved.Bindings[expr] = sym
	case *ast.LiteralExpr:
	case *ast.BinaryExpr:
		r.bindExpr(expr.Left, table)
		r.bindExpr(expr.Right, table)
	case *ast.UnaryExpr:
		r.bindExpr(expr.Value, table)
	case *ast.CallExpr:
		r.bindExpr(expr.Callee, table)
		for _, generic := range expr.Generics {
			r.bindType(generic, table)
		}
		for _, arg := range expr.Args {
			r.bindExpr(arg, table)
		}
	case *ast.FieldAccessExpr:
		r.bindExpr(expr.Target, table)
	case *ast.MatchExpr:
		r.bindExpr(expr.Scrutinee, table)
		for _, arm := range expr.Arms {
			r.bindPattern(arm.Pattern, table)
			if arm.Guard != nil {
				r.bindExpr(arm.Guard, table)
			}
			r.bindExpr(arm.Result, table)
		}
	case *ast.ForallExpr:
		r.bindQuantifier(expr.Var, expr.VarType, expr.Constraint, expr.Body, table)
	case *ast.ExistsExpr:
		r.bindQuantifier(expr.Var, expr.VarType, expr.Constraint, expr.Body, table)
	case *ast.ParenExpr:
		r.bindExpr(expr.Value, table)
	}
}

func (r *resolver) bindQuantifier(v ast.Ident, varType ast.Type, constraint, body ast.Expr, table *SymbolTable) {
	r.bindType(varType, table)
	frame := NewSymbolTable(table)
	frame.Define(&Symbol{
		Name: v.Value, Kind: SymbolVariable, Type: varType, Pos: v.Pos,
	})
	if constraint != nil {
		r.bindExpr(constraint, frame)
	}
	r.bindExpr(body, frame)
}

// bindPattern resolves identifier patterns against enum variants in
// scope. A name that matches nothing is unbound, never an implicit
// binder: patterns in this language name variants, not fresh variables.
func (r *resolver) bindPattern(p ast.Pattern, table *SymbolTable) {
	switch pat := p.(type) {
	case *ast.IdentPattern:
		if table.Lookup(pat.Name.Value) == nil {
			r.unbound(pat.Name.Value, pat.Name.Pos, table)
		}
	case *ast.LiteralPattern, *ast.WildcardPattern:
	}
}

func (r *resolver) define(table *SymbolTable, sym *Symbol) {
	if prev := table.Define(sym); prev != nil {
		r.resolved.Duplicates = append(r.resolved.Duplicates, DuplicateDef{
			Name: sym.Name,
			Pos:  sym.Pos,
		})
	}
}

func (r *resolver) unbound(name string, pos ast.Position, table *SymbolTable) {
	r.resolved.Unbound = append(r.resolved.Unbound, UnboundRef{
		Name:    name,
		Pos:     pos,
		Similar: similarNames(name, table.Names()),
	})
}

// similarNames picks candidates within a small edit distance, the way
// the reporter expects suggestions.
func similarNames(name string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if candidate == name {
			continue
		}
		if editDistance(name, candidate) <= 2 {
			similar = append(similar, candidate)
		}
	}
	if len(similar) > 3 {
		similar = similar[:3]
	}
	return similar
}

func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
