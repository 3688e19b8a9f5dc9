// Package display renders user-facing terminal output: warnings and live
// progress for in-flight tree walks.
package display

import (
	"fmt"
	"io"
	"strings"
)

// Warning represents a user-facing warning message.
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display shows the formatted warning in yellow.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// LargeTreeWarning builds the warning shown when a pre-scan counts more
// entries than the configured threshold.
func LargeTreeWarning(root string, items, threshold int) Warning {
	return Warning{
		Title:      fmt.Sprintf("%s contains %d entries (threshold: %d)", root, items, threshold),
		Message:    "Generating the document for a tree this large may take a while.",
		Suggestion: "Re-run with --force to skip this prompt, or raise warn_threshold in .xmlfolder/config.yaml",
	}
}
