package cmd

import (
	"strings"
	"testing"

	"github.com/eykd/filemerge/internal/diag"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain output path", "out/merged.txt", "out/merged.txt"},
		{"escape sequence", "out/\x1b[2J/merged.txt", "out/?[2J/merged.txt"},
		{"null byte", "src/\x00.py", "src/?.py"},
		{"newline", "src/a\nb.py", "src/a?b.py"},
		{"tab", "src/a\tb.py", "src/a?b.py"},
		{"DEL", "src/\x7f.py", "src/?.py"},
		{"non-ASCII kept", "src/café.py", "src/café.py"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizePath(tt.input); got != tt.want {
				t.Errorf("sanitizePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPrintDiagnostics_SanitizesMessage(t *testing.T) {
	c := NewLanguagesCmd()
	var stderr strings.Builder
	c.SetErr(&stderr)

	printDiagnostics(c, []diag.Diagnostic{{
		Code:     diag.CFGW004,
		Severity: diag.SeverityWarning,
		Message:  "source directory src/\x1b[31m does not exist",
	}})

	if strings.Contains(stderr.String(), "\x1b") {
		t.Errorf("stderr contains raw escape: %q", stderr.String())
	}
	if want := "warning: source directory src/?[31m does not exist (CFGW004)\n"; stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
}
