package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/filemerge/internal/config"
	"github.com/eykd/filemerge/internal/diag"
)

// printDiagnostics writes each diagnostic to stderr in human-readable form.
func printDiagnostics(cmd *cobra.Command, diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s (%s)\n", d.Severity, sanitizePath(d.Message), d.Code)
	}
}

// configDiagnostic extracts the diagnostic carried by a configuration error.
// The bool is false when err is not a *config.Error.
func configDiagnostic(err error) (diag.Diagnostic, bool) {
	var cerr *config.Error
	if !errors.As(err, &cerr) {
		return diag.Diagnostic{}, false
	}
	return cerr.Diagnostic(), true
}
