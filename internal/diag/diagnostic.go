package diag

import "fmt"

// Stage identifies which interpreter phase produced the diagnostic.
type Stage string

const (
	StageLexer   Stage = "lexer"
	StageParser  Stage = "parser"
	StageRuntime Stage = "runtime"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerIllegalRune Code = "LEXER_ILLEGAL_RUNE"

	// Parser errors
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"

	// Runtime errors
	CodeRuntimeRedeclaration     Code = "RUNTIME_REDECLARATION"
	CodeRuntimeUnboundIdentifier Code = "RUNTIME_UNBOUND_IDENTIFIER"
	CodeRuntimeDivisionByZero    Code = "RUNTIME_DIVISION_BY_ZERO"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is an interpreter diagnostic surfaced to end-users. A run stops
// at its first error-severity diagnostic; print output emitted before the
// failing statement is not rolled back.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
}

// String formats the diagnostic on a single line, suitable for CLI output.
func (d Diagnostic) String() string {
	if d.Span.IsValid() {
		return fmt.Sprintf("%s: %s %s %s: %s", d.Span, d.Stage, d.Severity, d.Code, d.Message)
	}
	return fmt.Sprintf("%s %s %s: %s", d.Stage, d.Severity, d.Code, d.Message)
}

// Error makes Diagnostic usable as a Go error value.
func (d Diagnostic) Error() string {
	return d.String()
}
