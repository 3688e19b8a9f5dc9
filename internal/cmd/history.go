package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perez987/XMLFolderStructure/internal/history"
	"github.com/perez987/XMLFolderStructure/internal/xmltree"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent generation runs",
		Long: `List recent generation runs recorded in the local history database,
newest first. Runs are recorded by the generate command when history is
enabled in the configuration.`,
		Args:         cobra.NoArgs,
		RunE:         runHistory,
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .xmlfolder/config.yaml)")
	cmd.Flags().Int("limit", 20, "Maximum number of runs to list")

	return cmd
}

// runHistory implements the history command logic
func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}

	for _, r := range runs {
		meta := "no metadata"
		if r.WithMetadata {
			meta = "with metadata"
		}
		fmt.Fprintf(out, "%s  %s  %s entries, %s bytes, %dms, %s -> %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Root,
			xmltree.FormatByteCount(int64(r.Items)),
			xmltree.FormatByteCount(r.TotalBytes),
			r.DurationMS,
			meta,
			r.Output,
		)
	}

	return nil
}
