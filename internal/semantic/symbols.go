package semantic

import (
	"stele/internal/ast"
)

type SymbolKind int

const (
	SymbolStruct SymbolKind = iota
	SymbolEnum
	SymbolEnumVariant
	SymbolFunction
	SymbolTypeAlias
	SymbolTypeParam
	SymbolVariable
	SymbolParameter
	SymbolLegalTest
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolStruct:
		return "struct"
	case SymbolEnum:
		return "enum"
	case SymbolEnumVariant:
		return "variant"
	case SymbolFunction:
		return "function"
	case SymbolTypeAlias:
		return "type alias"
	case SymbolTypeParam:
		return "type parameter"
	case SymbolVariable:
		return "variable"
	case SymbolParameter:
		return "parameter"
	case SymbolLegalTest:
		return "legal test"
	default:
		return "symbol"
	}
}

// Symbol is a single named definition visible somewhere in a program.
// TypeArity is the number of generic parameters for type-level symbols
// and the number of value parameters for functions.
type Symbol struct {
	Name      string
	Kind      SymbolKind
	Type      ast.Type
	TypeArity int
	Pos       ast.Position
	Node      ast.Node
}

// SymbolTable is one lexical frame. Lookups walk outward through
// enclosing frames; definitions always land in the innermost one.
type SymbolTable struct {
	parent  *SymbolTable
	symbols map[string]*Symbol
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		parent:  parent,
		symbols: make(map[string]*Symbol),
	}
}

// Define inserts a symbol into this frame. It returns the previous
// symbol with the same name in this frame, if any, so callers can
// report duplicates without losing the original definition site.
func (t *SymbolTable) Define(sym *Symbol) *Symbol {
	prev := t.symbols[sym.Name]
	if prev != nil {
		return prev
	}
	t.symbols[sym.Name] = sym
	return nil
}

// Lookup resolves a name against this frame and every enclosing frame.
func (t *SymbolTable) Lookup(name string) *Symbol {
	for frame := t; frame != nil; frame = frame.parent {
		if sym, ok := frame.symbols[name]; ok {
			return sym
		}
	}
	return nil
}

// LookupLocal resolves a name against this frame only.
func (t *SymbolTable) LookupLocal(name string) *Symbol {
	return t.symbols[name]
}

// Names returns every name defined in this frame and its ancestors,
// innermost first. Used for similar-name suggestions.
func (t *SymbolTable) Names() []string {
	var names []string
	for frame := t; frame != nil; frame = frame.parent {
		for name := range frame.symbols {
			names = append(names, name)
		}
	}
	return names
}
