package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

var colorPhrase = color.New(color.FgCyan, color.Bold)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// FormatPhrase formats a fuzzy phrase for terminal output.
func FormatPhrase(phrase string) string {
	return colorPhrase.Sprint(phrase)
}

// CopyToClipboard places the phrase on the system clipboard.
func CopyToClipboard(phrase string) error {
	if err := writeClipboard(phrase); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
