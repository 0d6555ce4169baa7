package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/filemerge/internal/config"
	"github.com/eykd/filemerge/internal/diag"
)

// NewDoctorCmd creates the doctor subcommand.
func NewDoctorCmd(io MergeIO) *cobra.Command {
	var configDir string
	var jsonMode bool

	cmd := &cobra.Command{
		Use:          "doctor",
		Short:        "Validate the configuration and report likely mistakes",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var diags []diag.Diagnostic

			cfg, err := io.LoadConfig(configDir)
			if err != nil {
				d, ok := configDiagnostic(err)
				if !ok {
					return fmt.Errorf("loading configuration from %s: %w", configDir, err)
				}
				diags = append(diags, d)
			} else {
				diags = config.Check(cfg, io.Stat)
			}

			if jsonMode {
				if diags == nil {
					diags = []diag.Diagnostic{}
				}
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(diags); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
			} else {
				printDiagnostics(cmd, diags)
				if len(diags) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
				}
			}

			if diag.HasError(diags) {
				return fmt.Errorf("configuration has errors")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", defaultConfigDir, "directory holding the configuration documents")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output diagnostics as JSON")

	return cmd
}
