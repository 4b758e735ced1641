package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"stele/internal/errors"
	"stele/internal/parser"
)

// ConvertParseErrors transforms parser errors into LSP diagnostics for
// IDE display: missing braces, stray commas, malformed annotations and
// other syntax problems.
func ConvertParseErrors(parseErrors []parser.ParseError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, parseErr := range parseErrors {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),   // Convert to 0-based indexing
					Character: uint32(parseErr.Position.Column - 1), // Convert to 0-based indexing
				},
				End: protocol.Position{
					Line:      uint32(parseErr.Position.Line - 1),
					Character: uint32(parseErr.Position.Column + 5), // Rough span for visibility
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("stele-parser"),
			Message:  parseErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertScanErrors transforms scanner errors into LSP diagnostics:
// invalid characters, unterminated strings, malformed money amounts.
func ConvertScanErrors(scanErrors []parser.ScanError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, scanErr := range scanErrors {
		endChar := uint32(scanErr.Position.Column - 1 + scanErr.Length)
		if scanErr.Length == 0 {
			endChar = uint32(scanErr.Position.Column + 3) // Default small span
		}

		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: uint32(scanErr.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(scanErr.Position.Line - 1),
					Character: endChar,
				},
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("stele-scanner"),
			Message:  scanErr.Message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

// ConvertCompilerErrors transforms semantic diagnostics into LSP form,
// carrying the error code and severity through.
func ConvertCompilerErrors(errs []errors.CompilerError) []protocol.Diagnostic {
	var diagnostics []protocol.Diagnostic

	for _, err := range errs {
		length := err.Length
		if length <= 0 {
			length = 1
		}

		severity := protocol.DiagnosticSeverityError
		if err.Level == errors.Warning {
			severity = protocol.DiagnosticSeverityWarning
		}

		message := err.Message
		for _, note := range err.Notes {
			message += "\nnote: " + note
		}
		for _, suggestion := range err.Suggestions {
			message += "\nhelp: " + suggestion
		}

		code := err.Code
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(err.Position.Line - 1),
					Character: uint32(err.Position.Column - 1),
				},
				End: protocol.Position{
					Line:      uint32(err.Position.Line - 1),
					Character: uint32(err.Position.Column - 1 + length),
				},
			},
			Severity: ptrSeverity(severity),
			Source:   ptrString("stele"),
			Code:     &protocol.IntegerOrString{Value: code},
			Message:  message,
		}
		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
