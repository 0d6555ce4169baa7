package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eykd/filemerge/internal/syntax"
)

// NewLanguagesCmd creates the languages subcommand.
func NewLanguagesCmd() *cobra.Command {
	var jsonMode bool

	cmd := &cobra.Command{
		Use:          "languages",
		Short:        "List recognised project languages and their comment syntax",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := syntax.Languages()
			if jsonMode {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(langs); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LANGUAGE\tALIASES\tBLOCK\tINLINE")
			for _, l := range langs {
				fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\n",
					l.Name, strings.Join(l.Aliases, ","), l.Comment.BlockOpen, l.Comment.BlockClose, l.Comment.Inline)
			}
			d := syntax.Default
			fmt.Fprintf(tw, "(other)\t\t%s %s\t%s\n", d.BlockOpen, d.BlockClose, d.Inline)
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonMode, "json", false, "output as JSON")

	return cmd
}
