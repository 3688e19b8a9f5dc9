package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perez987/XMLFolderStructure/internal/xmltree"
)

// NewCountCommand creates the count command
func NewCountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count <directory>",
		Short: "Pre-scan a directory tree without generating XML",
		Long: `Recursively count the non-hidden files and folders under a directory
and sum the file sizes, without generating any XML.

This is the same pre-scan the generate command runs to decide whether to
warn about large trees. Unreadable subdirectories are skipped, so the result
is a best-effort count.`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCount,
		SilenceUsage: true,
	}

	return cmd
}

// runCount implements the count command logic
func runCount(cmd *cobra.Command, args []string) error {
	root, err := resolveRootDir(args[0])
	if err != nil {
		return err
	}

	items := xmltree.CountItems(root)
	size := xmltree.AggregateSize(root)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entries:    %s\n", xmltree.FormatByteCount(int64(items)))
	fmt.Fprintf(out, "Total size: %s bytes\n", xmltree.FormatByteCount(size))

	return nil
}
