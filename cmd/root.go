// Package cmd implements the fmerge CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root fmerge command with all subcommands
// registered. Run without a subcommand, it behaves like merge.
func NewRootCmd() *cobra.Command {
	return newRootCmdWithIO(newDefaultMergeIO(), newDefaultInitIO())
}

func newRootCmdWithIO(mio MergeIO, iio InitIO) *cobra.Command {
	var opts mergeOptions

	root := &cobra.Command{
		Use:           "fmerge",
		Short:         "fmerge - merge a project's source files into one document",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, mio, opts)
		},
	}
	addConfigFlags(root, &opts)

	root.AddCommand(NewMergeCmd(mio))
	root.AddCommand(NewCheckCmd(mio))
	root.AddCommand(NewDoctorCmd(mio))
	root.AddCommand(NewInitCmd(iio))
	root.AddCommand(NewLanguagesCmd())
	return root
}
