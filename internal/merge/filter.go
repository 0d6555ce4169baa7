package merge

import (
	"strings"

	"github.com/eykd/filemerge/internal/config"
)

// filter makes the per-entry include decisions. All checks are on the bare
// entry name, never on the path.
type filter struct {
	skipFolders map[string]bool
	skipFiles   map[string]bool
	extensions  []string
}

func newFilter(f config.Filters) filter {
	return filter{
		skipFolders: toSet(f.SkipFolders),
		skipFiles:   toSet(f.SkipFiles),
		extensions:  f.AllowedExtensions,
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// skipFolder reports whether a directory named name is pruned.
func (f filter) skipFolder(name string) bool {
	return f.skipFolders[name]
}

// acceptFile reports whether a non-directory entry named name is merged:
// it must not be a skipped file and must end with an allowed extension.
func (f filter) acceptFile(name string) bool {
	if f.skipFiles[name] {
		return false
	}
	for _, ext := range f.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
