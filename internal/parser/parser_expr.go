package parser

import "stele/internal/ast"

var binaryPrecedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3,
	"<": 4, "<=": 4, ">": 4, ">=": 4,
	"+": 5, "-": 5,
	"*": 6, "/": 6, "%": 6,
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parsePrattExpr(1)
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	expr := p.parsePrefixExpr()
	if expr == nil {
		return nil
	}

	for {
		tok := p.peek()
		prec, ok := binaryPrecedence[tok.Lexeme]
		if !ok || prec < minPrec {
			break
		}

		p.advance()
		right := p.parsePrattExpr(prec + 1)
		if right == nil {
			return nil
		}

		expr = &ast.BinaryExpr{
			Pos:    expr.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   expr,
			Right:  right,
		}
	}

	return expr
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	if p.match(MINUS, BANG) {
		op := p.previous()
		value := p.parsePrefixExpr()
		if value == nil {
			return nil
		}
		return &ast.UnaryExpr{
			Pos:    p.makePos(op),
			EndPos: value.NodeEndPos(),
			Op:     op.Lexeme,
			Value:  value,
		}
	}

	expr := p.parsePrimaryExpr()
	if expr == nil {
		return nil
	}
	return p.parsePostfixExpr(expr)
}

func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		if p.match(DOT) {
			field := p.consume(IDENTIFIER, "expected field name after '.'")
			if field.Type == ILLEGAL {
				return nil
			}
			expr = &ast.FieldAccessExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(field),
				Target: expr,
				Field:  field.Lexeme,
			}
		} else if p.check(LEFT_PAREN) {
			p.advance()
			args := p.parseExprList()
			end := p.consume(RIGHT_PAREN, "expected ')' after arguments")
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(end),
				Callee: expr,
				Args:   args,
			}
		} else {
			break
		}
	}

	return expr
}

func (p *Parser) parseExprList() []ast.Expr {
	var args []ast.Expr
	for !p.check(RIGHT_PAREN) && !p.isAtEnd() {
		arg := p.parseExpr()
		if arg == nil {
			break
		}
		args = append(args, arg)

		if !p.match(COMMA) {
			break
		}
	}
	return args
}

var literalKinds = map[TokenType]ast.LiteralKind{
	INT:      ast.LitInt,
	FLOAT:    ast.LitFloat,
	STRING:   ast.LitString,
	TRUE:     ast.LitBool,
	FALSE:    ast.LitBool,
	MONEY:    ast.LitMoney,
	PERCENT:  ast.LitPercent,
	DATE:     ast.LitDate,
	DURATION: ast.LitDuration,
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	if kind, ok := literalKinds[p.peek().Type]; ok {
		tok := p.advance()
		return &ast.LiteralExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   kind,
			Value:  tok.Lexeme,
		}
	}

	switch p.peek().Type {
	case IDENTIFIER:
		tok := p.advance()
		ident := &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}

		// A '<' here is usually a comparison; it opens a generic
		// argument list only when a balanced <...> is followed by '('.
		if p.check(LESS) && p.genericCallAhead() {
			return p.parseGenericCall(ident)
		}
		return ident

	case LEFT_PAREN:
		start := p.advance()
		value := p.parseExpr()
		if value == nil {
			return nil
		}
		end := p.consume(RIGHT_PAREN, "expected ')' to close expression")
		return &ast.ParenExpr{
			Pos:    p.makePos(start),
			EndPos: p.makeEndPos(end),
			Value:  value,
		}

	case MATCH:
		return p.parseMatchExpr()

	case FORALL:
		return p.parseQuantifier(FORALL)

	case EXISTS:
		return p.parseQuantifier(EXISTS)

	default:
		p.errorAtCurrent("expected expression")
		return nil
	}
}

// genericCallAhead scans forward over a balanced angle-bracket group and
// reports whether it is immediately followed by '('. Nothing is consumed.
func (p *Parser) genericCallAhead() bool {
	i := p.current // at '<'
	depth := 0
	for ; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case LESS:
			depth++
		case GREATER:
			depth--
			if depth == 0 {
				return i+1 < len(p.tokens) && p.tokens[i+1].Type == LEFT_PAREN
			}
		case IDENTIFIER, INT, FLOAT, DATE, DURATION, COMMA, MINUS, PIPE:
			// Plausible inside a type argument list.
		default:
			return false
		}
	}
	return false
}

func (p *Parser) parseGenericCall(callee *ast.IdentExpr) ast.Expr {
	p.advance() // '<'
	var generics []ast.Type
	for !p.check(GREATER) && !p.isAtEnd() {
		arg := p.parseTypeArg()
		if arg == nil {
			return nil
		}
		generics = append(generics, arg)

		if !p.match(COMMA) {
			break
		}
	}
	p.consume(GREATER, "expected '>' to close generic arguments")

	p.consume(LEFT_PAREN, "expected '(' after generic arguments")
	args := p.parseExprList()
	end := p.consume(RIGHT_PAREN, "expected ')' after arguments")

	return &ast.CallExpr{
		Pos:      callee.Pos,
		EndPos:   p.makeEndPos(end),
		Callee:   callee,
		Generics: generics,
		Args:     args,
	}
}

func (p *Parser) parseMatchExpr() ast.Expr {
	startToken := p.consume(MATCH, "expected 'match' keyword")

	scrutinee := p.parseExpr()
	if scrutinee == nil {
		return nil
	}

	p.consume(LEFT_BRACE, "expected '{' to start match arms")
	var arms []*ast.MatchArm
	for !p.check(RIGHT_BRACE) && !p.isAtEnd() && !p.failed() {
		arm := p.parseMatchArm()
		if arm == nil {
			return nil
		}
		arms = append(arms, arm)
	}
	endToken := p.consume(RIGHT_BRACE, "expected '}' to close match arms")

	return &ast.MatchExpr{
		Pos:       p.makePos(startToken),
		EndPos:    p.makeEndPos(endToken),
		Scrutinee: scrutinee,
		Arms:      arms,
	}
}

// parseMatchArm parses one arm: pattern [where guard] => result,
func (p *Parser) parseMatchArm() *ast.MatchArm {
	pattern := p.parsePattern()
	if pattern == nil {
		return nil
	}

	var guard ast.Expr
	if p.match(WHERE) {
		guard = p.parseExpr()
		if guard == nil {
			return nil
		}
	}

	p.consume(FAT_ARROW, "expected '=>' after match pattern")
	result := p.parseExpr()
	if result == nil {
		return nil
	}
	end := p.consume(COMMA, "expected ',' after match arm")

	return &ast.MatchArm{
		Pos:     pattern.NodePos(),
		EndPos:  p.makeEndPos(end),
		Pattern: pattern,
		Guard:   guard,
		Result:  result,
	}
}

func (p *Parser) parsePattern() ast.Pattern {
	if kind, ok := literalKinds[p.peek().Type]; ok {
		tok := p.advance()
		return &ast.LiteralPattern{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Kind:   kind,
			Value:  tok.Lexeme,
		}
	}

	if p.check(IDENTIFIER) {
		tok := p.advance()
		if tok.Lexeme == "_" {
			return &ast.WildcardPattern{
				Pos:    p.makePos(tok),
				EndPos: p.makeEndPos(tok),
			}
		}
		return &ast.IdentPattern{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   p.makeIdent(tok),
		}
	}

	p.errorAtCurrent("expected match pattern")
	return nil
}

// parseQuantifier parses forall/exists with an optional variable
// constraint: forall x: Int where x > 0, x > 0
//
// Nesting depth is counted during descent; exceeding MaxQuantifierDepth
// is a parse error, not a checker diagnostic.
func (p *Parser) parseQuantifier(kind TokenType) ast.Expr {
	startToken := p.advance() // forall / exists

	p.quantDepth++
	defer func() { p.quantDepth-- }()
	if p.quantDepth > MaxQuantifierDepth {
		p.errorAtCurrent("quantifier nesting exceeds maximum depth of 10")
		return nil
	}

	v, ok := p.consumeIdent("expected bound variable name")
	if !ok {
		return nil
	}

	p.consume(COLON, "expected ':' after bound variable")
	varType := p.parseType()
	if varType == nil {
		return nil
	}

	var constraint ast.Expr
	if p.match(WHERE) {
		constraint = p.parseExpr()
		if constraint == nil {
			return nil
		}
	}

	p.consume(COMMA, "expected ',' before quantifier body")
	body := p.parseExpr()
	if body == nil {
		return nil
	}

	if kind == FORALL {
		return &ast.ForallExpr{
			Pos:        p.makePos(startToken),
			EndPos:     body.NodeEndPos(),
			Var:        v,
			VarType:    varType,
			Constraint: constraint,
			Body:       body,
		}
	}
	return &ast.ExistsExpr{
		Pos:        p.makePos(startToken),
		EndPos:     body.NodeEndPos(),
		Var:        v,
		VarType:    varType,
		Constraint: constraint,
		Body:       body,
	}
}
