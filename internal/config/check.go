package config

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/eykd/filemerge/internal/diag"
)

// Check inspects a loaded Config for likely misconfiguration and returns
// diagnostics sorted by severity (errors first) then code. stat is used to
// look at the source and output directories; it is typically os.Stat.
func Check(cfg Config, stat func(string) (fs.FileInfo, error)) []diag.Diagnostic {
	var diags []diag.Diagnostic

	if !cfg.LanguageKnown {
		diags = append(diags, diag.Diagnostic{
			Code:     diag.CFGW001,
			Severity: diag.SeverityWarning,
			Message: fmt.Sprintf("unknown project language %q; using %s %s and %s",
				cfg.Language, cfg.Syntax.BlockOpen, cfg.Syntax.BlockClose, cfg.Syntax.Inline),
			Path: KeyProjectLanguage,
		})
	}

	if len(cfg.AllowedExtensions) == 0 {
		diags = append(diags, diag.Diagnostic{
			Code:     diag.CFGW002,
			Severity: diag.SeverityWarning,
			Message:  "allowed_extensions is empty; no file will be merged",
			Path:     AllowedExtensionsDoc,
		})
	}
	for _, ext := range cfg.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			diags = append(diags, diag.Diagnostic{
				Code:     diag.CFGW003,
				Severity: diag.SeverityWarning,
				Message:  fmt.Sprintf("allowed extension %q does not start with \".\" and matches any name ending in it", ext),
				Path:     AllowedExtensionsDoc,
			})
		}
	}

	src := cfg.SourceDir()
	if fi, err := stat(src); err != nil || !fi.IsDir() {
		diags = append(diags, diag.Diagnostic{
			Code:     diag.CFGW004,
			Severity: diag.SeverityWarning,
			Message:  fmt.Sprintf("source directory %s is not a readable directory", src),
			Path:     src,
		})
	}

	if fi, err := stat(cfg.OutputDir); err == nil && !fi.IsDir() {
		diags = append(diags, diag.Diagnostic{
			Code:     diag.CFG005,
			Severity: diag.SeverityError,
			Message:  fmt.Sprintf("output_dir %s exists and is not a directory", cfg.OutputDir),
			Path:     KeyOutputDir,
		})
	}

	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Severity != diags[j].Severity {
			return diags[i].Severity == diag.SeverityError
		}
		return diags[i].Code < diags[j].Code
	})
	return diags
}
