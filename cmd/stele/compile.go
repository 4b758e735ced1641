package main

import (
	"fmt"
	"os"

	"stele/internal/ast"
	"stele/internal/config"
	"stele/internal/errors"
	"stele/internal/parser"
	"stele/internal/semantic"
)

// compilation is one source file run through the front end.
type compilation struct {
	path     string
	source   string
	program  *ast.Program
	resolved *semantic.ResolvedProgram
	diags    []errors.CompilerError
}

func (c *compilation) failed() bool {
	for _, d := range c.diags {
		if d.Level == errors.Error {
			return true
		}
	}
	return false
}

// compile reads, parses and analyzes one file. Scanner and parser
// errors arrive as diagnostics alongside the semantic ones, all
// rendered by the same reporter.
func compile(cfg *config.Config, path string) (*compilation, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	c := &compilation{path: path, source: string(source)}

	program, parseErrors, scanErrors := parser.ParseSource(path, c.source)
	for _, se := range scanErrors {
		c.diags = append(c.diags, errors.NewError(errors.ErrorScan, se.Message, toASTPos(path, se.Position)).
			WithLength(se.Length).
			Build())
	}
	for _, pe := range parseErrors {
		c.diags = append(c.diags, errors.NewError(errors.ErrorParse, pe.Message, toASTPos(path, pe.Position)).Build())
	}
	if program == nil {
		return c, nil
	}
	c.program = program

	result := semantic.Analyze(program, cfg.ReferenceDate(), cfg.Hierarchy.Levels)
	c.resolved = result.Resolved
	c.diags = append(c.diags, result.Errors...)
	return c, nil
}

func (c *compilation) report() {
	reporter := errors.NewReporter(c.path, c.source)
	for _, diag := range c.diags {
		fmt.Print(reporter.Format(diag))
	}
}

func toASTPos(path string, pos parser.Position) ast.Position {
	return ast.Position{
		Filename: path,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
