// Package config loads and validates the configuration record consumed by
// the merge pipeline.
package config

import (
	"path/filepath"

	"github.com/eykd/filemerge/internal/syntax"
)

// Project holds the project settings document.
type Project struct {
	// RootPath is the directory the project lives under.
	RootPath string
	// ProjectDir is the directory below RootPath that is walked.
	ProjectDir string
	// OutputDir is the directory the merged document is written to.
	OutputDir string
	// OutputFilename is the merged document's name without extension.
	OutputFilename string
	// OutputExtension is the merged document's extension without the dot.
	OutputExtension string
	// Language is the configured project language, as written.
	Language string
}

// Filters holds the three name-based filter lists. A nil or empty list
// skips nothing (SkipFolders, SkipFiles) or allows nothing
// (AllowedExtensions).
type Filters struct {
	SkipFolders       []string
	SkipFiles         []string
	AllowedExtensions []string
}

// Config is the complete, immutable record for one merge run.
type Config struct {
	Project
	Filters
	// Syntax is the comment syntax resolved from Project.Language.
	Syntax syntax.Comment
	// LanguageKnown is false when Language was not found and Syntax holds
	// syntax.Default.
	LanguageKnown bool
}

// SourceDir returns the directory the merge walks.
func (c Config) SourceDir() string {
	return filepath.Join(c.RootPath, c.ProjectDir)
}

// OutputPath returns <output_dir>/<output_filename>.<output_extension>.
func (c Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.OutputFilename+"."+c.OutputExtension)
}
