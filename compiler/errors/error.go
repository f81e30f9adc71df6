package errors

import (
	"encoding/json"
	"fmt"
)

// Severity represents the severity level of an error
type Severity int

const (
	Warning Severity = iota
	Error
	Fatal
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity
func (s *Severity) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	switch str {
	case "warning":
		*s = Warning
	case "fatal":
		*s = Fatal
	default:
		*s = Error
	}
	return nil
}

// Location represents a position inside a pattern expression. Patterns are
// single-line, so a 1-based column and a rune length identify the span.
type Location struct {
	Column int `json:"column"`
	Length int `json:"length"`
}

// CompileError represents an error raised while compiling a pattern.
// Compilation is all-or-nothing: any CompileError means no usable graph.
type CompileError struct {
	Phase    string   // "lexer" or "compiler"
	Code     string   // "E002", "E100", etc.
	Message  string   // Human-readable message
	Pattern  string   // The pattern being compiled
	Location Location // Position within the pattern
	Severity Severity
}

// Error implements the error interface
func (e CompileError) Error() string {
	return fmt.Sprintf("pattern %q: column %d: %s: %s",
		e.Pattern,
		e.Location.Column,
		e.Code,
		e.Message)
}

// New creates a new CompileError
func New(phase, code, message, pattern string, location Location) CompileError {
	return CompileError{
		Phase:    phase,
		Code:     code,
		Message:  message,
		Pattern:  pattern,
		Location: location,
		Severity: Error,
	}
}

// MarshalJSON implements json.Marshaler
func (e CompileError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Phase    string   `json:"phase"`
		Code     string   `json:"code"`
		Message  string   `json:"message"`
		Pattern  string   `json:"pattern"`
		Severity Severity `json:"severity"`
		Location Location `json:"location"`
	}{
		Phase:    e.Phase,
		Code:     e.Code,
		Message:  e.Message,
		Pattern:  e.Pattern,
		Severity: e.Severity,
		Location: e.Location,
	})
}

// IsFatal returns true if the error is at Fatal severity
func (e CompileError) IsFatal() bool {
	return e.Severity == Fatal
}
