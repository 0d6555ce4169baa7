package merge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eykd/filemerge/internal/config"
	"github.com/eykd/filemerge/internal/syntax"
)

// recLogger records formatted log lines by level.
type recLogger struct {
	debugs, infos, warns, errs []string
}

func (l *recLogger) Debugf(format string, args ...any) {
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}

func (l *recLogger) Infof(format string, args ...any) {
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recLogger) Errorf(format string, args ...any) {
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

// faultyIO wraps the OS implementation and fails selected operations by path.
type faultyIO struct {
	FileIO
	readDirErr map[string]error
	openErr    map[string]error
	midReadErr map[string]error
	mkdirErr   error
	createErr  error
	writeErr   error
}

func newFaultyIO() *faultyIO {
	return &faultyIO{
		FileIO:     NewOSFileIO(),
		readDirErr: make(map[string]error),
		openErr:    make(map[string]error),
		midReadErr: make(map[string]error),
	}
}

func (f *faultyIO) ReadDir(name string) ([]fs.DirEntry, error) {
	if err, ok := f.readDirErr[name]; ok {
		return nil, err
	}
	return f.FileIO.ReadDir(name)
}

func (f *faultyIO) Open(name string) (io.ReadCloser, error) {
	if err, ok := f.openErr[name]; ok {
		return nil, err
	}
	rc, err := f.FileIO.Open(name)
	if err != nil {
		return nil, err
	}
	if err, ok := f.midReadErr[name]; ok {
		return &failingReader{rc: rc, err: err}, nil
	}
	return rc, nil
}

func (f *faultyIO) MkdirAll(path string) error {
	if f.mkdirErr != nil {
		return f.mkdirErr
	}
	return f.FileIO.MkdirAll(path)
}

func (f *faultyIO) Create(name string) (io.WriteCloser, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.writeErr != nil {
		return failingWriter{err: f.writeErr}, nil
	}
	return f.FileIO.Create(name)
}

// failingReader returns the first line of the underlying file, then err.
type failingReader struct {
	rc   io.ReadCloser
	err  error
	done bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, r.err
	}
	r.done = true
	data, err := io.ReadAll(r.rc)
	if err != nil {
		return 0, err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return copy(p, line+"\n"), nil
}

func (r *failingReader) Close() error { return r.rc.Close() }

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
func (w failingWriter) Close() error              { return nil }

var errBoom = errors.New("boom")

// writeTree creates files under root. Keys are slash-separated relative
// paths; a key ending in "/" creates an empty directory.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(p, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

// pythonConfig returns a config that walks root and writes to out/merged.txt
// inside a separate temp dir.
func pythonConfig(t *testing.T, root string) config.Config {
	t.Helper()
	c, _ := syntax.Lookup("python")
	return config.Config{
		Project: config.Project{
			RootPath:        root,
			ProjectDir:      "",
			OutputDir:       filepath.Join(t.TempDir(), "out"),
			OutputFilename:  "merged",
			OutputExtension: "txt",
			Language:        "python",
		},
		Filters: config.Filters{
			AllowedExtensions: []string{".py"},
		},
		Syntax:        c,
		LanguageKnown: true,
	}
}

func pyBlock(path, body string) string {
	return "```\n###\nfile: " + path + "\n###\n" + body + "\n```\n\n"
}

func runMerge(t *testing.T, cfg config.Config, fio FileIO) (string, Stats, *recLogger) {
	t.Helper()
	log := &recLogger{}
	stats, err := New(cfg, fio, log).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	got, err := os.ReadFile(cfg.OutputPath())
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return string(got), stats, log
}
