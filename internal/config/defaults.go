package config

// DefaultDocuments returns the starter configuration written by
// `fmerge init`, keyed by file name.
func DefaultDocuments() map[string]string {
	return map[string]string{
		SkipFoldersDoc + ".json": `[
  ".git",
  "node_modules",
  "__pycache__",
  ".venv",
  "build",
  "dist"
]
`,
		SkipFilesDoc + ".json": `[
  "__init__.py"
]
`,
		AllowedExtensionsDoc + ".json": `[
  ".py"
]
`,
		ProjectDoc + ".json": `{
  "root_path": ".",
  "project_dir": "",
  "output_dir": "output",
  "output_filename": "merged",
  "output_extension": "txt",
  "project_language": "python"
}
`,
	}
}
