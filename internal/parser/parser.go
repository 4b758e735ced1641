package parser

import "stele/internal/ast"

// MaxQuantifierDepth bounds forall/exists nesting. Deeper quantifier
// towers translate into pathological solver queries, so the parser
// rejects them outright.
const MaxQuantifierDepth = 10

type ParseError struct {
	Message  string
	Position Position
}

type Parser struct {
	filename   string
	tokens     []Token
	current    int
	errors     []ParseError
	quantDepth int
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
	}
}

// ParseProgram parses the whole unit. An empty token stream is a valid,
// empty program.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	if len(p.tokens) > 0 {
		program.Pos = p.makePos(p.tokens[0])
	}

	for !p.isAtEnd() && !p.failed() {
		item := p.parseItem()
		if item != nil {
			program.Items = append(program.Items, item)
		}
	}

	program.EndPos = p.makePos(p.peek())
	return program
}

func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) parseItem() ast.Item {
	annotations := p.parseAnnotations()

	switch p.peek().Type {
	case STRUCT:
		return p.parseStruct(annotations)
	case ENUM:
		return p.parseEnum(annotations, hasAnnotation(annotations, ast.AnnotMutuallyExclusive))
	case MUTUALLY_EXCLUSIVE:
		p.advance()
		if !p.check(ENUM) {
			p.errorAtCurrent("expected 'enum' after 'mutually_exclusive'")
			return nil
		}
		return p.parseEnum(annotations, true)
	case FN:
		return p.parseFunction()
	case TYPE:
		return p.parseTypeAlias()
	case SCOPE:
		return p.parseScope()
	case PRINCIPLE:
		return p.parsePrinciple()
	case LEGAL_TEST:
		return p.parseLegalTest()
	case IDENTIFIER:
		return p.parseDeclaration()
	default:
		p.errorAtCurrent("expected an item (struct, enum, fn, type, scope, principle, legal_test or declaration)")
		return nil
	}
}

func hasAnnotation(annotations []*ast.Annotation, name string) bool {
	for _, a := range annotations {
		if a.Name == name {
			return true
		}
	}
	return false
}
