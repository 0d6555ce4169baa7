package merge

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/eykd/filemerge/internal/diag"
)

// walk visits every accepted file below dir, depth-first in ReadDir order.
// A directory is descended into at the point it is listed, so its files are
// visited before its later siblings. An unlistable directory is logged and
// treated as empty; only visit errors and context cancellation stop the walk.
func (m *Merger) walk(ctx context.Context, dir string, visit func(path string) error) error {
	entries, err := m.io.ReadDir(dir)
	if err != nil {
		m.stats.DirErrors++
		m.log.Errorf("accessing directory %s: %v (%s)", dir, err, diag.MRG001)
		return nil
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := e.Name()
		path := filepath.Join(dir, name)

		if m.isDir(path, e) {
			if m.filter.skipFolder(name) {
				m.stats.FoldersSkipped++
				m.log.Debugf("skipping folder %s", path)
				continue
			}
			if err := m.walk(ctx, path, visit); err != nil {
				return err
			}
			continue
		}

		if !m.filter.acceptFile(name) || m.isOutput(path) {
			m.stats.FilesSkipped++
			continue
		}
		if err := visit(path); err != nil {
			return err
		}
	}
	return nil
}

// isDir resolves symlinks so that a link to a directory is walked like the
// directory itself. A dangling link counts as a file.
func (m *Merger) isDir(path string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.IsDir()
	}
	fi, err := m.io.Stat(path)
	return err == nil && fi.IsDir()
}
