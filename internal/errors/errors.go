package errors

import (
	"fmt"

	"stele/internal/ast"
)

// ErrorLevel represents the severity of a diagnostic
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// CompilerError represents a structured diagnostic with machine-readable
// kind, source position and human message.
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0001
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []string     // Suggested fixes
	Notes       []string     // Additional context notes
}

func (e CompilerError) Error() string {
	return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
}

// Builder provides a fluent interface for diagnostics with suggestions.
type Builder struct {
	err CompilerError
}

func NewError(code, message string, pos ast.Position) *Builder {
	return &Builder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func NewWarning(code, message string, pos ast.Position) *Builder {
	return &Builder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *Builder) WithLength(length int) *Builder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *Builder) WithSuggestion(message string) *Builder {
	b.err.Suggestions = append(b.err.Suggestions, message)
	return b
}

// WithNote adds a note to the error
func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// Build returns the completed compiler error
func (b *Builder) Build() CompilerError {
	return b.err
}
