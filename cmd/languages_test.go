package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/eykd/filemerge/internal/syntax"
)

func TestNewLanguagesCmd_Table(t *testing.T) {
	stdout, _, err := execute(NewLanguagesCmd())
	if err != nil {
		t.Fatalf("languages failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if want := len(syntax.Languages()) + 2; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, stdout)
	}
	if !strings.HasPrefix(lines[0], "LANGUAGE") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(stdout, "python") || !strings.Contains(stdout, "###") {
		t.Errorf("table missing python row:\n%s", stdout)
	}
	if last := lines[len(lines)-1]; !strings.HasPrefix(last, "(other)") || !strings.Contains(last, "/* */") {
		t.Errorf("last row = %q, want default syntax row", last)
	}
}

func TestNewLanguagesCmd_JSON(t *testing.T) {
	stdout, _, err := execute(NewLanguagesCmd(), "--json")
	if err != nil {
		t.Fatalf("languages failed: %v", err)
	}

	var langs []syntax.Language
	if err := json.Unmarshal([]byte(stdout), &langs); err != nil {
		t.Fatalf("stdout is not JSON: %v", err)
	}
	if len(langs) != len(syntax.Languages()) {
		t.Errorf("got %d languages, want %d", len(langs), len(syntax.Languages()))
	}
}
