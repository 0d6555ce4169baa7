// Package merge walks a project tree and streams the selected files into a
// single document, one fenced block per file.
package merge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eykd/filemerge/internal/config"
	"github.com/eykd/filemerge/internal/diag"
)

// Stats summarizes one run.
type Stats struct {
	Output         string `json:"output"`
	FilesMerged    int    `json:"files_merged"`
	FilesSkipped   int    `json:"files_skipped"`
	FoldersSkipped int    `json:"folders_skipped"`
	LinesStripped  int    `json:"lines_stripped"`
	DirErrors      int    `json:"dir_errors"`
	ReadErrors     int    `json:"read_errors"`
}

// WriteError is returned when the output cannot be created or written.
// It ends the run.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("writing output: %v", e.Err)
	}
	return fmt.Sprintf("writing output %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Merger runs the walk → filter → transform → write pipeline for one
// Config. A Merger is not safe for concurrent use.
type Merger struct {
	cfg    config.Config
	io     FileIO
	log    Logger
	filter filter
	stats  Stats

	// outInfo identifies the output file on disk, when it exists, so that
	// aliases reached through links are excluded from the walk.
	outInfo fs.FileInfo
}

// New creates a Merger. cfg is not modified.
func New(cfg config.Config, fio FileIO, log Logger) *Merger {
	return &Merger{
		cfg:    cfg,
		io:     fio,
		log:    log,
		filter: newFilter(cfg.Filters),
	}
}

// Run writes the merged document to cfg.OutputPath(), creating the output
// directory if needed and overwriting any previous document. Directory and
// file read failures are logged and skipped; a *WriteError is returned when
// the output cannot be produced.
func (m *Merger) Run(ctx context.Context) (Stats, error) {
	out := m.cfg.OutputPath()

	if err := m.io.MkdirAll(m.cfg.OutputDir); err != nil {
		return m.stats, m.writeFailed(out, fmt.Errorf("creating output directory: %w", err))
	}
	f, err := m.io.Create(out)
	if err != nil {
		return m.stats, m.writeFailed(out, err)
	}
	m.outInfo = m.statOutput()

	stats, err := m.stream(ctx, f, out)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = m.writeFailed(out, cerr)
	}
	return stats, err
}

// Stream writes the merged document to w instead of the output file. The
// output file is still excluded from the walk.
func (m *Merger) Stream(ctx context.Context, w io.Writer) (Stats, error) {
	m.outInfo = m.statOutput()
	return m.stream(ctx, w, "")
}

func (m *Merger) stream(ctx context.Context, w io.Writer, dest string) (Stats, error) {
	m.stats = Stats{Output: dest}
	src := m.cfg.SourceDir()
	m.log.Infof("merging %s into %s", src, m.cfg.OutputPath())

	sink := &lineSink{w: bufio.NewWriter(w)}
	err := m.walk(ctx, src, func(path string) error {
		m.writeBlock(sink, path)
		m.stats.FilesMerged++
		return sink.err
	})
	if err == nil {
		err = sink.flush()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return m.stats, err
		}
		return m.stats, m.writeFailed(dest, err)
	}
	return m.stats, nil
}

func (m *Merger) writeFailed(path string, err error) error {
	werr := &WriteError{Path: path, Err: err}
	m.log.Errorf("%v (%s)", werr, diag.MRG003)
	return werr
}

// statOutput returns the output file's info, or nil when it does not exist.
func (m *Merger) statOutput() fs.FileInfo {
	fi, err := m.io.Stat(m.cfg.OutputPath())
	if err != nil {
		return nil
	}
	return fi
}

// isOutput reports whether path is the output document itself. Once the
// output exists it is matched by file identity, which also catches symlinked
// directories, hard links and case-folded names.
func (m *Merger) isOutput(path string) bool {
	if m.outInfo != nil {
		if fi, err := m.io.Stat(path); err == nil && os.SameFile(fi, m.outInfo) {
			return true
		}
	}
	out := m.cfg.OutputPath()
	if filepath.Base(path) != filepath.Base(out) {
		return false
	}
	return absPath(path) == absPath(out)
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
