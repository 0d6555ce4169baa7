package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/filemerge/internal/config"
	"github.com/eykd/filemerge/internal/diag"
	"github.com/eykd/filemerge/internal/merge"
)

const defaultConfigDir = "config"

// mergeOptions holds the flags shared by merge and the root command.
type mergeOptions struct {
	configDir string
	verbose   bool
	toStdout  bool
	jsonMode  bool
}

// NewMergeCmd creates the merge subcommand.
func NewMergeCmd(io MergeIO) *cobra.Command {
	var opts mergeOptions

	cmd := &cobra.Command{
		Use:          "merge",
		Short:        "Merge the configured project into a single document",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, io, opts)
		},
	}

	addConfigFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.toStdout, "stdout", false, "write the document to stdout instead of the output file")
	cmd.Flags().BoolVar(&opts.jsonMode, "json", false, "print run statistics as JSON")

	return cmd
}

func addConfigFlags(cmd *cobra.Command, opts *mergeOptions) {
	cmd.Flags().StringVar(&opts.configDir, "config-dir", defaultConfigDir, "directory holding the configuration documents")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
}

func runMerge(cmd *cobra.Command, io MergeIO, opts mergeOptions) error {
	if opts.toStdout && opts.jsonMode {
		return errors.New("--stdout and --json cannot be combined")
	}

	logger := newRunLogger(opts.verbose)
	cfg, err := loadConfig(cmd, io, opts.configDir, logger)
	if err != nil {
		return err
	}

	m := merge.New(cfg, io, logger)
	var stats merge.Stats
	if opts.toStdout {
		stats, err = m.Stream(cmd.Context(), cmd.OutOrStdout())
	} else {
		stats, err = m.Run(cmd.Context())
	}
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	switch {
	case opts.jsonMode:
		if err := json.NewEncoder(cmd.OutOrStdout()).Encode(stats); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
	case !opts.toStdout:
		fmt.Fprintf(cmd.OutOrStdout(), "Merged %d files into %s\n", stats.FilesMerged, sanitizePath(stats.Output))
	}

	if n := stats.DirErrors + stats.ReadErrors; n > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d entries could not be read; see log\n", n)
	}
	return nil
}

// loadConfig loads the configuration in dir, printing a diagnostic for
// configuration errors and warning about an unrecognised language.
func loadConfig(cmd *cobra.Command, io MergeIO, dir string, logger merge.Logger) (config.Config, error) {
	cfg, err := io.LoadConfig(dir)
	if err != nil {
		if d, ok := configDiagnostic(err); ok {
			printDiagnostics(cmd, []diag.Diagnostic{d})
		}
		return config.Config{}, fmt.Errorf("loading configuration from %s: %w", dir, err)
	}
	if !cfg.LanguageKnown {
		logger.Warnf("unknown project language %q; using %s %s and %s",
			cfg.Language, cfg.Syntax.BlockOpen, cfg.Syntax.BlockClose, cfg.Syntax.Inline)
	}
	return cfg, nil
}
