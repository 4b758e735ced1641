package parser

import "stele/internal/ast"

// parseType parses a type form, including unions: A | B | C.
func (p *Parser) parseType() ast.Type {
	first := p.parsePrimaryType()
	if first == nil {
		return nil
	}

	if !p.check(PIPE) {
		return first
	}

	members := []ast.Type{first}
	for p.match(PIPE) {
		next := p.parsePrimaryType()
		if next == nil {
			return nil
		}
		members = append(members, next)
	}

	return &ast.UnionType{
		Pos:     first.NodePos(),
		EndPos:  members[len(members)-1].NodeEndPos(),
		Members: members,
	}
}

func (p *Parser) parsePrimaryType() ast.Type {
	if p.check(LEFT_BRACE) {
		return p.parseStructType()
	}

	nameTok := p.consume(IDENTIFIER, "expected type name")
	if nameTok.Type == ILLEGAL {
		return nil
	}
	name := p.makeIdent(nameTok)

	if !p.check(LESS) {
		return &ast.TypeRef{
			Pos:    name.Pos,
			EndPos: name.EndPos,
			Name:   name,
		}
	}

	p.advance() // '<'
	var args []ast.Type
	for !p.check(GREATER) && !p.isAtEnd() {
		arg := p.parseTypeArg()
		if arg == nil {
			return nil
		}
		args = append(args, arg)

		if !p.match(COMMA) {
			break
		}
	}
	end := p.consume(GREATER, "expected '>' to close type arguments")

	return &ast.TypeRef{
		Pos:    name.Pos,
		EndPos: p.makeEndPos(end),
		Name:   name,
		Args:   args,
	}
}

// parseTypeArg parses either a nested type or a type-level literal, such
// as the bounds of BoundedInt<0, 100> or the dates of
// Temporal<Percent, 01-01-2024, 31-12-2030>.
func (p *Parser) parseTypeArg() ast.Type {
	switch p.peek().Type {
	case INT:
		return p.makeLiteralType(ast.LitInt)
	case FLOAT:
		return p.makeLiteralType(ast.LitFloat)
	case DATE:
		return p.makeLiteralType(ast.LitDate)
	case DURATION:
		return p.makeLiteralType(ast.LitDuration)
	case MINUS:
		// Negative integer bound, e.g. BoundedInt<-10, 10>.
		minus := p.advance()
		num := p.consume(INT, "expected integer after '-' in type argument")
		if num.Type == ILLEGAL {
			return nil
		}
		return &ast.LiteralType{
			Pos:    p.makePos(minus),
			EndPos: p.makeEndPos(num),
			Kind:   ast.LitInt,
			Value:  "-" + num.Lexeme,
		}
	default:
		return p.parseType()
	}
}

func (p *Parser) makeLiteralType(kind ast.LiteralKind) *ast.LiteralType {
	tok := p.advance()
	return &ast.LiteralType{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   kind,
		Value:  tok.Lexeme,
	}
}

// parseStructType parses an inline structural type: { name: Type, ... }
func (p *Parser) parseStructType() *ast.StructType {
	start := p.consume(LEFT_BRACE, "expected '{' to start struct type")

	var fields []*ast.StructTypeField
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() {
		name, ok := p.consumeIdent("expected field name in struct type")
		if !ok {
			return nil
		}
		p.consume(COLON, "expected ':' after field name in struct type")
		typ := p.parseType()
		if typ == nil {
			return nil
		}
		fields = append(fields, &ast.StructTypeField{
			Pos:    name.Pos,
			EndPos: typ.NodeEndPos(),
			Name:   name,
			Type:   typ,
		})

		if !p.match(COMMA) {
			break
		}
	}
	end := p.consume(RIGHT_BRACE, "expected '}' to close struct type")

	return &ast.StructType{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(end),
		Fields: fields,
	}
}
