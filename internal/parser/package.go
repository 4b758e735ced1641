package parser

import "stele/internal/ast"

// ParseSource runs the scanner and parser over one unit. There is no
// partial-AST recovery: when any scan or parse error is present the
// returned program is nil.
func ParseSource(path string, source string) (*ast.Program, []ParseError, []ScanError) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()

	p := NewParser(path, tokens)
	program := p.ParseProgram()

	if len(scanner.errors) > 0 || len(p.errors) > 0 {
		return nil, p.errors, scanner.errors
	}
	return program, nil, nil
}
