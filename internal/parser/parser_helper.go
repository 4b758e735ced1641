package parser

import "stele/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, message string) Token {
	if p.check(tt) {
		return p.advance()
	}
	p.errorAtCurrent(message)
	return Token{Type: ILLEGAL, Position: p.peek().Position}
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

// failed reports whether an irrecoverable error has been seen. The parser
// never recovers into a partial tree: the first error aborts the unit.
func (p *Parser) failed() bool {
	return len(p.errors) > 0
}

func (p *Parser) errorAtCurrent(message string) {
	// Only the first error is meaningful; everything after it is cascade.
	if p.failed() {
		return
	}
	p.errors = append(p.errors, ParseError{
		Message:  message,
		Position: p.peek().Position,
	})
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// consumeIdent consumes an identifier token and returns an ast.Ident
func (p *Parser) consumeIdent(message string) (ast.Ident, bool) {
	tok := p.consume(IDENTIFIER, message)
	if tok.Type == ILLEGAL {
		return ast.Ident{Value: "error"}, false
	}
	return p.makeIdent(tok), true
}

// parseTypeParamList parses an optional angle-bracket list of type
// parameter names, e.g. <T, U>.
func (p *Parser) parseTypeParamList() []ast.Ident {
	if !p.match(LESS) {
		return nil
	}

	var params []ast.Ident
	for !p.check(GREATER) && !p.isAtEnd() {
		ident, ok := p.consumeIdent("expected type parameter name")
		if !ok {
			break
		}
		params = append(params, ident)

		if !p.match(COMMA) {
			break
		}
	}
	p.consume(GREATER, "expected '>' to close type parameter list")
	return params
}
