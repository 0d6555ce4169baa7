package cmd

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/eykd/filemerge/internal/merge"
)

// NewCheckCmd creates the check subcommand, which reports whether the
// output document matches what merge would write now.
func NewCheckCmd(io MergeIO) *cobra.Command {
	var opts mergeOptions
	var quiet bool

	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Report whether the merged document is up to date",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newRunLogger(opts.verbose)
			cfg, err := loadConfig(cmd, io, opts.configDir, logger)
			if err != nil {
				return err
			}

			var fresh bytes.Buffer
			if _, err := merge.New(cfg, io, logger).Stream(cmd.Context(), &fresh); err != nil {
				return fmt.Errorf("building document: %w", err)
			}

			current, exists, err := io.ReadFile(cfg.OutputPath())
			if err != nil {
				return fmt.Errorf("reading output: %w", err)
			}
			out := sanitizePath(cfg.OutputPath())
			if !exists {
				return fmt.Errorf("%s does not exist; run 'fmerge merge'", out)
			}
			if bytes.Equal(current, fresh.Bytes()) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", out)
				return nil
			}

			if !quiet {
				fmt.Fprint(cmd.OutOrStdout(), lineDiff(string(current), fresh.String()))
			}
			return fmt.Errorf("%s is out of date; run 'fmerge merge'", out)
		},
	}

	addConfigFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not print the diff")

	return cmd
}

// lineDiff renders the changed lines between oldText and newText, prefixing
// removed lines with "-" and added lines with "+". Unchanged lines are
// omitted.
func lineDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
