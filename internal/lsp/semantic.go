package lsp

import (
	"sort"

	"stele/internal/ast"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based positions; TokenType is an index into
// SemanticTokenTypes and TokenModifiers a bitmask over
// SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// Token type indices into SemanticTokenTypes.
const (
	tokNamespace = iota
	tokType
	tokTypeParameter
	tokFunction
	tokVariable
	tokParameter
	tokProperty
	tokKeyword
	tokNumber
	tokOperator
	tokModifier
)

// Modifier bits into SemanticTokenModifiers.
const (
	modDeclaration = 1 << iota
	modDefinition
	modReadonly
)

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	var tokens []SemanticToken
	if program == nil {
		return tokens
	}

	tokens = walkItems(program.Items, tokens)

	// the wire format requires position order
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})
	return tokens
}

func walkItems(items []ast.Item, tokens []SemanticToken) []SemanticToken {
	for _, item := range items {
		switch it := item.(type) {
		case *ast.Scope:
			tokens = append(tokens, identToken(it.Name, tokNamespace, modDeclaration))
			tokens = walkItems(it.Items, tokens)

		case *ast.Struct:
			tokens = append(tokens, identToken(it.Name, tokType, modDeclaration))
			for _, param := range it.TypeParams {
				tokens = append(tokens, identToken(param, tokTypeParameter, modDeclaration))
			}
			if it.Extends != nil {
				tokens = append(tokens, identToken(*it.Extends, tokType, 0))
			}
			for _, field := range it.Fields {
				tokens = append(tokens, identToken(field.Name, tokProperty, modDeclaration))
				tokens = walkType(field.Type, tokens)
			}

		case *ast.Enum:
			tokens = append(tokens, identToken(it.Name, tokType, modDeclaration))
			for _, variant := range it.Variants {
				tokens = append(tokens, identToken(variant, tokProperty, modDeclaration|modReadonly))
			}

		case *ast.Function:
			tokens = append(tokens, identToken(it.Name, tokFunction, modDeclaration))
			for _, param := range it.TypeParams {
				tokens = append(tokens, identToken(param, tokTypeParameter, modDeclaration))
			}
			for _, param := range it.Params {
				tokens = append(tokens, identToken(param.Name, tokParameter, modDeclaration))
				tokens = walkType(param.Type, tokens)
			}
			if it.Return != nil {
				tokens = walkType(it.Return, tokens)
			}

		case *ast.TypeAlias:
			tokens = append(tokens, identToken(it.Name, tokType, modDeclaration))
			tokens = walkType(it.Target, tokens)

		case *ast.Principle:
			tokens = append(tokens, identToken(it.Name, tokFunction, modDefinition))

		case *ast.LegalTest:
			tokens = append(tokens, identToken(it.Name, tokFunction, modDefinition))
			for _, req := range it.Requirements {
				tokens = walkType(req.Type, tokens)
				tokens = append(tokens, identToken(req.Name, tokVariable, modDeclaration))
			}

		case *ast.Declaration:
			tokens = walkType(it.Type, tokens)
			tokens = append(tokens, identToken(it.Name, tokVariable, modDeclaration|modReadonly))
		}
	}
	return tokens
}

func walkType(t ast.Type, tokens []SemanticToken) []SemanticToken {
	switch typ := t.(type) {
	case *ast.TypeRef:
		tokens = append(tokens, identToken(typ.Name, tokType, 0))
		for _, arg := range typ.Args {
			tokens = walkType(arg, tokens)
		}
	case *ast.UnionType:
		for _, member := range typ.Members {
			tokens = walkType(member, tokens)
		}
	case *ast.StructType:
		for _, field := range typ.Fields {
			tokens = append(tokens, identToken(field.Name, tokProperty, modDeclaration))
			tokens = walkType(field.Type, tokens)
		}
	case *ast.LiteralType:
		tokens = append(tokens, SemanticToken{
			Line:      uint32(typ.Pos.Line - 1),
			StartChar: uint32(typ.Pos.Column - 1),
			Length:    uint32(len(typ.Value)),
			TokenType: tokNumber,
		})
	}
	return tokens
}

func identToken(ident ast.Ident, tokenType, modifiers int) SemanticToken {
	return SemanticToken{
		Line:           uint32(ident.Pos.Line - 1),
		StartChar:      uint32(ident.Pos.Column - 1),
		Length:         uint32(len(ident.Value)),
		TokenType:      tokenType,
		TokenModifiers: modifiers,
	}
}
