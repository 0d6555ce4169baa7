package merge

import (
	"io"
	"io/fs"
	"os"
)

// FileIO is the filesystem surface the merger needs.
type FileIO interface {
	// ReadDir lists a directory, sorted by file name.
	ReadDir(name string) ([]fs.DirEntry, error)
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)
	// Open opens a source file for reading.
	Open(name string) (io.ReadCloser, error)
	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error
	// Create creates or truncates the output file.
	Create(name string) (io.WriteCloser, error)
}

// Logger receives the merger's progress and per-entry failures.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// osFileIO implements FileIO using OS file I/O.
type osFileIO struct{}

// NewOSFileIO returns a FileIO backed by the os package.
func NewOSFileIO() FileIO {
	return osFileIO{}
}

func (osFileIO) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (osFileIO) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFileIO) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func (osFileIO) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (osFileIO) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
