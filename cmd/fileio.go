package cmd

import (
	"os"

	"github.com/eykd/filemerge/internal/config"
	"github.com/eykd/filemerge/internal/merge"
)

// MergeIO handles I/O for the merge, check and doctor commands.
type MergeIO interface {
	merge.FileIO
	// LoadConfig reads the configuration documents in dir.
	LoadConfig(dir string) (config.Config, error)
	// ReadFile returns the content of path. The bool reports whether the
	// file exists.
	ReadFile(path string) ([]byte, bool, error)
}

// fileMergeIO implements MergeIO using OS file I/O.
type fileMergeIO struct {
	merge.FileIO
}

func newDefaultMergeIO() *fileMergeIO {
	return &fileMergeIO{FileIO: merge.NewOSFileIO()}
}

// LoadConfig loads the configuration documents from dir on disk.
func (f *fileMergeIO) LoadConfig(dir string) (config.Config, error) {
	return config.Load(os.DirFS(dir))
}

// ReadFile reads path, reporting a missing file as (nil, false, nil).
func (f *fileMergeIO) ReadFile(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, true, nil
	}
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	return nil, false, err
}
