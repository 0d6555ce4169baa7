package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/eykd/filemerge/internal/config"
)

// fixture is a project tree plus a config dir pointing at it.
type fixture struct {
	root      string
	configDir string
	outPath   string
}

// newFixture writes files under a fresh project root and a matching python
// configuration. project overrides keys of the project config document.
func newFixture(t *testing.T, files map[string]string, project map[string]string) fixture {
	t.Helper()
	base := t.TempDir()
	root := filepath.Join(base, "project")
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	proj := map[string]string{
		config.KeyRootPath:        root,
		config.KeyProjectDir:      "",
		config.KeyOutputDir:       filepath.Join(base, "out"),
		config.KeyOutputFilename:  "merged",
		config.KeyOutputExtension: "txt",
		config.KeyProjectLanguage: "python",
	}
	for k, v := range project {
		proj[k] = v
	}

	configDir := filepath.Join(base, "config")
	writeJSON(t, filepath.Join(configDir, config.SkipFoldersDoc+".json"), []string{"node_modules"})
	writeJSON(t, filepath.Join(configDir, config.SkipFilesDoc+".json"), []string{"secrets.py"})
	writeJSON(t, filepath.Join(configDir, config.AllowedExtensionsDoc+".json"), []string{".py"})
	writeJSON(t, filepath.Join(configDir, config.ProjectDoc+".json"), proj)

	out := filepath.Join(proj[config.KeyOutputDir], proj[config.KeyOutputFilename]+"."+proj[config.KeyOutputExtension])
	return fixture{root: root, configDir: configDir, outPath: out}
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
}

// execute runs c with args and returns captured stdout and stderr. args is
// never nil so that cobra does not fall back to os.Args.
func execute(c *cobra.Command, args ...string) (string, string, error) {
	if args == nil {
		args = []string{}
	}
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	c.SetOut(out)
	c.SetErr(errOut)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), errOut.String(), err
}

func pyBlock(path, body string) string {
	return "```\n###\nfile: " + path + "\n###\n" + body + "\n```\n\n"
}
