// Package cmd wires the xmlfolder command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for xmlfolder
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xmlfolder",
		Short: "Serialize a directory tree into an XML document",
		Long: `xmlfolder walks a directory tree and renders its structure as a
well-formed, escaped XML document.

Hidden entries (names starting with ".") are excluded at every level,
directories sort before files, and names are ordered with case-insensitive
natural comparison, so the output is deterministic for a given tree.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewCountCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
