package dsl

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/model"
)

// Severity indicates how serious a diagnostic is
type Severity string

const (
	SeverityError   Severity = "error"   // The document cannot be used
	SeverityWarning Severity = "warning" // The document is usable but suspicious
)

// ErrorKind categorizes diagnostics for programmatic handling
type ErrorKind string

const (
	KindSyntax   ErrorKind = "syntax"   // Malformed input
	KindLinking  ErrorKind = "linking"  // Reference could not be resolved
	KindSemantic ErrorKind = "semantic" // Well-formed but questionable model
)

// ParseError is a positioned diagnostic produced while loading a model.
// Syntax errors are returned as errors; linking and semantic findings are
// collected as warnings on the Document.
type ParseError struct {
	Err         error          // Underlying error, errors.ErrParse for syntax errors
	Kind        ErrorKind      // Diagnostic category
	Severity    Severity       // Diagnostic severity
	Message     string         // Human-readable message
	File        string         // Source file, if known
	Pos         model.Position // Where the problem starts
	Token       string         // Offending token text (optional)
	Suggestions []string       // Possible fixes
}

// newSyntaxError creates an error-severity syntax diagnostic at pos
func newSyntaxError(pos model.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Err:      errors.ErrParse,
		Kind:     KindSyntax,
		Severity: SeverityError,
		Message:  fmt.Sprintf(format, args...),
		Pos:      pos,
	}
}

// newWarning creates a warning diagnostic of the given kind
func newWarning(kind ErrorKind, pos model.Position, message string) *ParseError {
	return &ParseError{
		Kind:     kind,
		Severity: SeverityWarning,
		Message:  message,
		Pos:      pos,
	}
}

// Error implements error with a plain "file:line:col: message" rendering
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.location())
	b.WriteString(e.Message)
	if e.Token != "" {
		fmt.Fprintf(&b, " (got %q)", e.Token)
	}
	return b.String()
}

// FormatTerminal renders the diagnostic with colors for the CLI
func (e *ParseError) FormatTerminal() string {
	var msg string
	switch e.Severity {
	case SeverityError:
		msg = pterm.Red(e.Message)
	case SeverityWarning:
		msg = pterm.Yellow(e.Message)
	default:
		msg = e.Message
	}

	out := pterm.LightCyan(e.location()) + msg
	if e.Token != "" {
		out += fmt.Sprintf("\n  %s '%s'", pterm.Yellow("Token:"), e.Token)
	}
	if len(e.Suggestions) > 0 {
		out += fmt.Sprintf("\n  %s", pterm.Green("Suggestions:"))
		for _, suggestion := range e.Suggestions {
			out += fmt.Sprintf("\n    • %s", suggestion)
		}
	}
	return out
}

func (e *ParseError) location() string {
	var parts []string
	if e.File != "" {
		parts = append(parts, e.File)
	}
	if e.Pos.Line > 0 {
		parts = append(parts, fmt.Sprintf("%d:%d", e.Pos.Line, e.Pos.Column))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ":") + ": "
}

// Unwrap for errors.Is/As compatibility
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsWarning returns true if this diagnostic has warning severity
func (e *ParseError) IsWarning() bool {
	return e.Severity == SeverityWarning
}

// WithToken sets the offending token text
func (e *ParseError) WithToken(token string) *ParseError {
	e.Token = token
	return e
}

// WithSuggestion adds a suggestion for fixing the problem
func (e *ParseError) WithSuggestion(suggestion string) *ParseError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithFile sets the source file
func (e *ParseError) WithFile(file string) *ParseError {
	e.File = file
	return e
}
