package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/eykd/filemerge/internal/diag"
	"github.com/eykd/filemerge/internal/syntax"
)

// Document stems, looked up in the configuration directory.
const (
	SkipFoldersDoc       = "skip_folders"
	SkipFilesDoc         = "skip_files"
	AllowedExtensionsDoc = "allowed_extensions"
	ProjectDoc           = "project_config"
)

// Project document keys.
const (
	KeyRootPath        = "root_path"
	KeyProjectDir      = "project_dir"
	KeyOutputDir       = "output_dir"
	KeyOutputFilename  = "output_filename"
	KeyOutputExtension = "output_extension"
	KeyProjectLanguage = "project_language"
)

// docExtensions lists the accepted document extensions in lookup order.
var docExtensions = []string{".json", ".yaml", ".yml"}

// Load reads the four configuration documents from fsys and builds a
// Config. The first problem found is returned as an *Error; documents are
// checked in the order skip_folders, skip_files, allowed_extensions,
// project_config.
func Load(fsys fs.FS) (Config, error) {
	var cfg Config

	lists := []struct {
		stem string
		dst  *[]string
	}{
		{SkipFoldersDoc, &cfg.SkipFolders},
		{SkipFilesDoc, &cfg.SkipFiles},
		{AllowedExtensionsDoc, &cfg.AllowedExtensions},
	}
	for _, l := range lists {
		n, name, err := readDocument(fsys, l.stem)
		if err != nil {
			return Config{}, err
		}
		vals, err := stringList(n, l.stem, name)
		if err != nil {
			return Config{}, err
		}
		*l.dst = vals
	}

	n, name, err := readDocument(fsys, ProjectDoc)
	if err != nil {
		return Config{}, err
	}
	proj, err := projectSettings(n, name)
	if err != nil {
		return Config{}, err
	}
	cfg.Project = proj
	cfg.Syntax, cfg.LanguageKnown = syntax.Lookup(proj.Language)
	return cfg, nil
}

// readDocument finds stem under fsys and decodes it into a yaml.Node.
// JSON documents are decoded with encoding/json so that strict JSON rules
// apply, then re-encoded as a node; YAML documents are decoded directly.
func readDocument(fsys fs.FS, stem string) (*yaml.Node, string, error) {
	for _, ext := range docExtensions {
		name := stem + ext
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, name, &Error{Code: diag.CFG001, Key: stem, Path: name, Msg: "cannot read document", Err: err}
		}
		n, err := decode(name, data)
		if err != nil {
			return nil, name, &Error{Code: diag.CFG001, Key: stem, Path: name, Msg: "malformed document", Err: err}
		}
		return n, name, nil
	}
	return nil, "", &Error{
		Code: diag.CFG001,
		Key:  stem,
		Msg:  fmt.Sprintf("document not found (looked for %s.json, %s.yaml, %s.yml)", stem, stem, stem),
	}
}

func decode(name string, data []byte) (*yaml.Node, error) {
	if path.Ext(name) == ".json" {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		return &n, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty document")
	}
	return doc.Content[0], nil
}

func isString(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!str"
}

func stringList(n *yaml.Node, key, name string) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, &Error{Code: diag.CFG003, Key: key, Path: name, Msg: "expected an array of strings"}
	}
	out := make([]string, 0, len(n.Content))
	for i, item := range n.Content {
		if !isString(item) {
			return nil, &Error{
				Code: diag.CFG003,
				Key:  fmt.Sprintf("%s[%d]", key, i),
				Path: name,
				Msg:  "expected a string",
			}
		}
		out = append(out, item.Value)
	}
	return out, nil
}

func projectSettings(n *yaml.Node, name string) (Project, error) {
	if n.Kind != yaml.MappingNode {
		return Project{}, &Error{Code: diag.CFG004, Key: ProjectDoc, Path: name, Msg: "expected an object"}
	}

	var p Project
	fields := []struct {
		key      string
		dst      *string
		nonEmpty bool
	}{
		{KeyRootPath, &p.RootPath, false},
		{KeyProjectDir, &p.ProjectDir, false},
		{KeyOutputDir, &p.OutputDir, true},
		{KeyOutputFilename, &p.OutputFilename, true},
		{KeyOutputExtension, &p.OutputExtension, true},
		{KeyProjectLanguage, &p.Language, false},
	}

	values := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		values[n.Content[i].Value] = n.Content[i+1]
	}

	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.key] = true
		v, ok := values[f.key]
		if !ok {
			return Project{}, &Error{Code: diag.CFG002, Key: f.key, Path: name, Msg: "required key is missing"}
		}
		if !isString(v) {
			return Project{}, &Error{Code: diag.CFG003, Key: f.key, Path: name, Msg: "expected a string"}
		}
		if f.nonEmpty && v.Value == "" {
			return Project{}, &Error{Code: diag.CFG005, Key: f.key, Path: name, Msg: "must not be empty"}
		}
		*f.dst = v.Value
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		if k := n.Content[i].Value; !known[k] {
			return Project{}, &Error{Code: diag.CFG006, Key: k, Path: name, Msg: "unknown key"}
		}
	}
	return p, nil
}
