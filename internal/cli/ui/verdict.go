// Package ui renders CLI output for fsmatch commands.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// FormatVerdict renders a single candidate's match verdict.
//
// Example output:
//
//	✓ "4uhi"
//	✗ "meow"
func FormatVerdict(candidate string, matched bool) string {
	if matched {
		mark := color.New(color.FgGreen, color.Bold).Sprint("✓")
		return fmt.Sprintf("%s %q", mark, candidate)
	}
	mark := color.New(color.FgRed, color.Bold).Sprint("✗")
	return fmt.Sprintf("%s %q", mark, candidate)
}

// PrintVerdict writes a verdict line to w.
func PrintVerdict(w io.Writer, candidate string, matched bool) {
	fmt.Fprintln(w, FormatVerdict(candidate, matched))
}

// PrintSummary writes a match count summary to w.
func PrintSummary(w io.Writer, matched, total int) {
	c := color.New(color.Bold)
	fmt.Fprintln(w, c.Sprintf("%d of %d matched", matched, total))
}
