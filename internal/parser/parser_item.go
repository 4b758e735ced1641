package parser

import "stele/internal/ast"

// parseAnnotations parses zero or more leading #[...] annotations.
func (p *Parser) parseAnnotations() []*ast.Annotation {
	var annotations []*ast.Annotation

	for p.check(POUND) && !p.failed() {
		start := p.advance()
		p.consume(LEFT_BRACKET, "expected '[' after '#'")

		name := p.parseAnnotationName()
		if name == "" {
			return annotations
		}

		var args []string
		if p.match(LEFT_PAREN) {
			args = p.parseAnnotationArgs()
			p.consume(RIGHT_PAREN, "expected ')' to close annotation arguments")
		}

		end := p.consume(RIGHT_BRACKET, "expected ']' to close annotation")
		annotations = append(annotations, &ast.Annotation{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Name:   name,
			Args:   args,
		})
	}

	return annotations
}

// parseAnnotationName accepts an identifier or one of the domain keywords
// that double as annotation names (effective, sunset, retroactive,
// mutually_exclusive).
func (p *Parser) parseAnnotationName() string {
	switch p.peek().Type {
	case IDENTIFIER, EFFECTIVE, SUNSET, RETROACTIVE, MUTUALLY_EXCLUSIVE:
		return p.advance().Lexeme
	default:
		p.errorAtCurrent("expected annotation name")
		return ""
	}
}

func (p *Parser) parseAnnotationArgs() []string {
	var args []string

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		arg, ok := p.parseAnnotationArg()
		if !ok {
			break
		}
		args = append(args, arg)

		if !p.match(COMMA) {
			break
		}
	}

	return args
}

func (p *Parser) parseAnnotationArg() (string, bool) {
	switch p.peek().Type {
	case STRING, DATE, INT, FLOAT, MONEY, PERCENT, DURATION:
		return p.advance().Lexeme, true
	case IDENTIFIER:
		// Composite keys like Code.title are joined back into one string.
		arg := p.advance().Lexeme
		for p.match(DOT) {
			part := p.consume(IDENTIFIER, "expected identifier after '.' in annotation argument")
			if part.Type == ILLEGAL {
				return "", false
			}
			arg += "." + part.Lexeme
		}
		return arg, true
	default:
		p.errorAtCurrent("expected annotation argument")
		return "", false
	}
}

func (p *Parser) parseStruct(annotations []*ast.Annotation) *ast.Struct {
	startToken := p.consume(STRUCT, "expected 'struct' keyword")

	name, ok := p.consumeIdent("expected struct name")
	if !ok {
		return nil
	}

	typeParams := p.parseTypeParamList()

	var extends *ast.Ident
	if p.match(EXTENDS) {
		parent, ok := p.consumeIdent("expected parent struct name after 'extends'")
		if !ok {
			return nil
		}
		extends = &parent
	}

	p.consume(LEFT_BRACE, "expected '{' to start struct body")
	var fields []*ast.StructField
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		field := p.parseStructField()
		if field == nil {
			return nil
		}
		fields = append(fields, field)
	}
	endToken := p.consume(RIGHT_BRACE, "expected '}' to close struct body")

	return &ast.Struct{
		Pos:         p.makePos(startToken),
		EndPos:      p.makeEndPos(endToken),
		Annotations: annotations,
		Name:        name,
		TypeParams:  typeParams,
		Extends:     extends,
		Fields:      fields,
	}
}

// parseStructField parses a single field: [#[...]] name: Type [where expr],
func (p *Parser) parseStructField() *ast.StructField {
	annotations := p.parseAnnotations()

	name, ok := p.consumeIdent("expected field name")
	if !ok {
		return nil
	}

	p.consume(COLON, "expected ':' after field name")
	typ := p.parseType()
	if typ == nil {
		return nil
	}

	var guard ast.Expr
	if p.match(WHERE) {
		guard = p.parseExpr()
		if guard == nil {
			return nil
		}
	}

	end := p.consume(COMMA, "expected ',' after struct field")

	return &ast.StructField{
		Pos:         name.Pos,
		EndPos:      p.makeEndPos(end),
		Annotations: annotations,
		Name:        name,
		Type:        typ,
		Guard:       guard,
	}
}

func (p *Parser) parseEnum(annotations []*ast.Annotation, mutuallyExclusive bool) *ast.Enum {
	startToken := p.consume(ENUM, "expected 'enum' keyword")

	name, ok := p.consumeIdent("expected enum name")
	if !ok {
		return nil
	}

	p.consume(LEFT_BRACE, "expected '{' to start enum body")
	var variants []ast.Ident
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		variant, ok := p.consumeIdent("expected enum variant name")
		if !ok {
			return nil
		}
		variants = append(variants, variant)

		if !p.match(COMMA) {
			break
		}
	}
	endToken := p.consume(RIGHT_BRACE, "expected '}' to close enum body")

	return &ast.Enum{
		Pos:               p.makePos(startToken),
		EndPos:            p.makeEndPos(endToken),
		Annotations:       annotations,
		MutuallyExclusive: mutuallyExclusive,
		Name:              name,
		Variants:          variants,
	}
}

func (p *Parser) parseFunction() *ast.Function {
	startToken := p.consume(FN, "expected 'fn' keyword")

	name, ok := p.consumeIdent("expected function name")
	if !ok {
		return nil
	}

	typeParams := p.parseTypeParamList()
	params := p.parseFunctionParameters()

	var returnType ast.Type
	if p.match(ARROW) {
		returnType = p.parseType()
		if returnType == nil {
			return nil
		}
	}

	p.consume(LEFT_BRACE, "expected '{' to start function body")
	body := p.parseExpr()
	if body == nil {
		return nil
	}
	endToken := p.consume(RIGHT_BRACE, "expected '}' to close function body")

	return &ast.Function{
		Pos:        p.makePos(startToken),
		EndPos:     p.makeEndPos(endToken),
		Name:       name,
		TypeParams: typeParams,
		Params:     params,
		Return:     returnType,
		Body:       body,
	}
}

func (p *Parser) parseFunctionParameters() []*ast.FunctionParam {
	p.consume(LEFT_PAREN, "expected '(' after function name")
	var params []*ast.FunctionParam

	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		paramName, ok := p.consumeIdent("expected parameter name")
		if !ok {
			break
		}

		p.consume(COLON, "expected ':' after parameter name")
		paramType := p.parseType()
		if paramType == nil {
			break
		}

		params = append(params, &ast.FunctionParam{
			Pos:    paramName.Pos,
			EndPos: paramType.NodeEndPos(),
			Name:   paramName,
			Type:   paramType,
		})

		if !p.match(COMMA) {
			break
		}
	}

	p.consume(RIGHT_PAREN, "expected ')' after parameter list")
	return params
}

func (p *Parser) parseTypeAlias() *ast.TypeAlias {
	startToken := p.consume(TYPE, "expected 'type' keyword")

	name, ok := p.consumeIdent("expected type alias name")
	if !ok {
		return nil
	}

	typeParams := p.parseTypeParamList()

	p.consume(EQUAL, "expected '=' in type alias")
	target := p.parseType()
	if target == nil {
		return nil
	}
	end := p.consume(SEMICOLON, "expected ';' after type alias")

	return &ast.TypeAlias{
		Pos:        p.makePos(startToken),
		EndPos:     p.makeEndPos(end),
		Name:       name,
		TypeParams: typeParams,
		Target:     target,
	}
}

func (p *Parser) parseScope() *ast.Scope {
	startToken := p.consume(SCOPE, "expected 'scope' keyword")

	name, ok := p.consumeIdent("expected scope name")
	if !ok {
		return nil
	}

	p.consume(LEFT_BRACE, "expected '{' to start scope body")
	var items []ast.Item
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		item := p.parseItem()
		if item != nil {
			items = append(items, item)
		}
	}
	endToken := p.consume(RIGHT_BRACE, "expected '}' to close scope body")

	return &ast.Scope{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(endToken),
		Name:   name,
		Items:  items,
	}
}

func (p *Parser) parsePrinciple() *ast.Principle {
	startToken := p.consume(PRINCIPLE, "expected 'principle' keyword")

	name, ok := p.consumeIdent("expected principle name")
	if !ok {
		return nil
	}

	p.consume(LEFT_BRACE, "expected '{' to start principle body")
	body := p.parseExpr()
	if body == nil {
		return nil
	}
	endToken := p.consume(RIGHT_BRACE, "expected '}' to close principle body")

	return &ast.Principle{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(endToken),
		Name:   name,
		Body:   body,
	}
}

func (p *Parser) parseLegalTest() *ast.LegalTest {
	startToken := p.consume(LEGAL_TEST, "expected 'legal_test' keyword")

	name, ok := p.consumeIdent("expected legal test name")
	if !ok {
		return nil
	}

	p.consume(LEFT_BRACE, "expected '{' to start legal_test body")
	var requirements []*ast.Requirement
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		req := p.parseRequirement()
		if req == nil {
			return nil
		}
		requirements = append(requirements, req)
	}
	endToken := p.consume(RIGHT_BRACE, "expected '}' to close legal_test body")

	return &ast.LegalTest{
		Pos:          p.makePos(startToken),
		EndPos:       p.makeEndPos(endToken),
		Name:         name,
		Requirements: requirements,
	}
}

// parseRequirement parses one line: requires <Type> <name>,
func (p *Parser) parseRequirement() *ast.Requirement {
	startToken := p.consume(REQUIRES, "expected 'requires' in legal_test body")

	typ := p.parseType()
	if typ == nil {
		return nil
	}

	name, ok := p.consumeIdent("expected requirement name")
	if !ok {
		return nil
	}
	end := p.consume(COMMA, "expected ',' after requirement")

	return &ast.Requirement{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(end),
		Type:   typ,
		Name:   name,
	}
}

// parseDeclaration parses a type-first binding: <Type> <name> := <expr>
func (p *Parser) parseDeclaration() *ast.Declaration {
	typ := p.parseType()
	if typ == nil {
		return nil
	}

	name, ok := p.consumeIdent("expected name in declaration")
	if !ok {
		return nil
	}

	p.consume(WALRUS, "expected ':=' in declaration")
	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return &ast.Declaration{
		Pos:    typ.NodePos(),
		EndPos: value.NodeEndPos(),
		Type:   typ,
		Name:   name,
		Value:  value,
	}
}
