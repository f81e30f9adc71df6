package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatVerdict(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	assert.Equal(t, `✓ "4uhi"`, FormatVerdict("4uhi", true))
	assert.Equal(t, `✗ "meow"`, FormatVerdict("meow", false))
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	PrintSummary(&buf, 3, 5)
	assert.Equal(t, "3 of 5 matched\n", buf.String())
}
