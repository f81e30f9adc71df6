package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// FormatForTerminal formats a CompileError for terminal output with colors.
//
// Example output:
//
//	error[E100]: quantifier '*' has no preceding token to quantify
//	  --> pattern:1
//	   | *abc
//	   | ^
func (e CompileError) FormatForTerminal() string {
	var sb strings.Builder

	headerColor := severityColor(e.Severity)
	sb.WriteString(fmt.Sprintf("%s: %s\n",
		headerColor.Sprintf("%s[%s]", e.Severity, e.Code),
		e.Message))

	arrow := color.New(color.FgCyan)
	sb.WriteString(fmt.Sprintf("  %s pattern:%d\n", arrow.Sprint("-->"), e.Location.Column))

	// Pattern excerpt with a caret under the offending span
	gutter := color.New(color.FgBlue)
	sb.WriteString(fmt.Sprintf("   %s %s\n", gutter.Sprint("|"), e.Pattern))

	length := e.Location.Length
	if length < 1 {
		length = 1
	}
	caret := strings.Repeat(" ", caretOffset(e.Pattern, e.Location.Column)) +
		headerColor.Sprint(strings.Repeat("^", length))
	sb.WriteString(fmt.Sprintf("   %s %s\n", gutter.Sprint("|"), caret))

	return sb.String()
}

// caretOffset converts a 1-based rune column into a display offset, clamped
// to the pattern's length.
func caretOffset(pattern string, column int) int {
	runes := len([]rune(pattern))
	offset := column - 1
	if offset < 0 {
		offset = 0
	}
	if offset > runes {
		offset = runes
	}
	return offset
}

func severityColor(s Severity) *color.Color {
	switch s {
	case Warning:
		return color.New(color.FgYellow, color.Bold)
	case Fatal:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
