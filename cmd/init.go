package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/eykd/filemerge/internal/config"
)

// InitIO handles I/O for the init command.
type InitIO interface {
	StatFile(path string) (bool, error)
	MkdirAll(path string) error
	WriteFileAtomic(path, content string) error
}

// NewInitCmd creates the init subcommand.
func NewInitCmd(io InitIO) *cobra.Command {
	var (
		configDir string
		force     bool
	)

	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Write starter configuration documents",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := config.DefaultDocuments()
			names := make([]string, 0, len(docs))
			for name := range docs {
				names = append(names, name)
			}
			sort.Strings(names)

			var existing []string
			for _, name := range names {
				path := filepath.Join(configDir, name)
				exists, err := io.StatFile(path)
				if err != nil {
					return fmt.Errorf("checking %s: %w", path, err)
				}
				if exists {
					existing = append(existing, name)
				}
			}
			if len(existing) > 0 && !force {
				return fmt.Errorf("%s already exists in %s; use --force to overwrite", existing[0], configDir)
			}

			if err := io.MkdirAll(configDir); err != nil {
				return fmt.Errorf("creating %s: %w", configDir, err)
			}
			for _, name := range names {
				if err := io.WriteFileAtomic(filepath.Join(configDir, name), docs[name]); err != nil {
					return fmt.Errorf("writing %s (partial init; re-run with --force to recover): %w", name, err)
				}
			}

			if len(existing) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: overwriting existing files")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Initialized "+configDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config-dir", defaultConfigDir, "directory to write the configuration documents to")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")

	return cmd
}

// fileInitIO implements InitIO using OS file I/O.
type fileInitIO struct{}

func newDefaultInitIO() *fileInitIO {
	return &fileInitIO{}
}

// StatFile returns true if the file at path exists, false if it does not.
// Returns an error only for unexpected OS errors.
func (f *fileInitIO) StatFile(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *fileInitIO) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFileAtomic stages content in a hidden file next to path and renames
// it over path, so a configuration document is either fully written or left
// as it was. The staged file is removed on any failure.
func (f *fileInitIO) WriteFileAtomic(path, content string) (err error) {
	staged, err := os.CreateTemp(filepath.Dir(path), ".fmerge-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("staging %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(staged.Name())
		}
	}()

	_, err = io.WriteString(staged, content)
	if cerr := staged.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("staging %s: %w", filepath.Base(path), err)
	}
	// CreateTemp opens with 0o600; config documents are meant to be shared.
	if err = os.Chmod(staged.Name(), 0o644); err != nil {
		return fmt.Errorf("staging %s: %w", filepath.Base(path), err)
	}
	if err = os.Rename(staged.Name(), path); err != nil {
		return fmt.Errorf("installing %s: %w", filepath.Base(path), err)
	}
	return nil
}
