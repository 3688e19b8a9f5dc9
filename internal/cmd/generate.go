package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/perez987/XMLFolderStructure/internal/config"
	"github.com/perez987/XMLFolderStructure/internal/display"
	"github.com/perez987/XMLFolderStructure/internal/fileutil"
	"github.com/perez987/XMLFolderStructure/internal/history"
	"github.com/perez987/XMLFolderStructure/internal/logger"
	"github.com/perez987/XMLFolderStructure/internal/xmltree"
)

// NewGenerateCommand creates the generate command
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <directory>",
		Short: "Generate the XML document for a directory tree",
		Long: `Walk a directory tree and print its structure as an XML document.

The tree is pre-scanned first; when the entry count exceeds the configured
warn_threshold you are warned (and, on a terminal, asked to confirm) before
the full walk starts. During the walk a progress bar is shown on stderr when
it is a terminal.

Configuration is loaded from .xmlfolder/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Print the document to stdout
  xmlfolder generate ~/Projects/website

  # Write to a file instead, without size/modified attributes
  xmlfolder generate --no-metadata -o structure.xml ~/Projects/website

  # Skip the large-tree confirmation prompt
  xmlfolder generate --force /data/archive

  # Suppress progress and log output
  xmlfolder generate --quiet /data/archive > structure.xml`,
		Args:         cobra.ExactArgs(1),
		RunE:         runGenerate,
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .xmlfolder/config.yaml)")
	cmd.Flags().Bool("no-metadata", false, "Omit size and modified attributes from file elements")
	cmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	cmd.Flags().Bool("force", false, "Skip the large-tree confirmation prompt")
	cmd.Flags().Bool("quiet", false, "Suppress progress and log output")

	return cmd
}

// runGenerate implements the generate command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}

	noMetadata, _ := cmd.Flags().GetBool("no-metadata")
	outputPath, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var logWriter io.Writer = errOut
	if quiet {
		logWriter = nil
	}
	log := logger.NewConsoleLogger(logWriter, logger.ParseLevel(cfg.LogLevel))

	root, err := resolveRootDir(args[0])
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log.Debugf("run %s: pre-scanning %s", runID, root)

	items := xmltree.CountItems(root)
	log.Debugf("run %s: pre-scan counted %d entries", runID, items)

	if cfg.WarnThreshold > 0 && items > cfg.WarnThreshold && !force {
		display.LargeTreeWarning(root, items, cfg.WarnThreshold).Display(errOut)
		if stdinIsTerminal() {
			ok, err := confirmPrompt(cmd.InOrStdin(), errOut)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("generation cancelled")
			}
		}
	}

	withMetadata := cfg.IncludeMetadata && !noMetadata
	builder := xmltree.NewBuilder(xmltree.Options{IncludeMetadata: withMetadata})

	start := time.Now()

	var document string
	if !quiet && stderrIsTerminal() {
		document, err = buildWithLiveProgress(builder, root, items)
	} else {
		document, err = builder.Build(root)
	}
	if err != nil {
		return err
	}

	duration := time.Since(start)

	if outputPath != "" {
		if err := fileutil.WriteFileLocked(outputPath, []byte(document)); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		log.Infof("run %s: wrote %s", runID, outputPath)
	} else {
		fmt.Fprint(out, document)
	}

	log.Infof("run %s: generated %d entries in %s", runID, items, duration.Round(time.Millisecond))

	if cfg.History.Enabled {
		run := &history.Run{
			ID:           runID,
			Root:         root,
			Items:        items,
			TotalBytes:   xmltree.AggregateSize(root),
			WithMetadata: withMetadata,
			Output:       outputDestination(outputPath),
			DurationMS:   duration.Milliseconds(),
		}
		if err := recordRun(cmd.Context(), cfg.History.DBPath, run); err != nil {
			// History is best-effort; the document was already delivered
			log.Warnf("failed to record run history: %v", err)
		}
	}

	return nil
}

// buildWithLiveProgress runs the asynchronous build and renders each
// progress observation on stderr.
func buildWithLiveProgress(builder *xmltree.Builder, root string, items int) (string, error) {
	walk := display.NewWalkProgress(os.Stderr, items, true)

	progress, result := builder.BuildAsync(root)

	processed := 0
	for p := range progress {
		walk.Observe(p)
		processed = p.Processed
	}

	res := <-result
	if res.Err != nil {
		fmt.Fprintln(os.Stderr)
		return "", res.Err
	}

	walk.Finish(processed)
	return res.XML, nil
}

// recordRun opens the history store just long enough to insert one row.
func recordRun(ctx context.Context, dbPath string, run *history.Run) error {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.RecordRun(ctx, run)
}

// loadConfigFromFlag loads configuration from --config, falling back to
// .xmlfolder/config.yaml in the working directory.
func loadConfigFromFlag(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadConfigFromDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// resolveRootDir resolves the argument to an absolute path and verifies it
// is a directory.
func resolveRootDir(arg string) (string, error) {
	root, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", arg, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("failed to access %s: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", root)
	}

	return root, nil
}

// confirmPrompt asks for a y/N answer on the given streams.
func confirmPrompt(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "Continue? [y/N]: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// outputDestination names the sink recorded in history rows.
func outputDestination(outputPath string) string {
	if outputPath == "" {
		return "stdout"
	}
	return outputPath
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
