// Package syntax maps project language names to their comment syntax.
package syntax

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Comment is the comment syntax of one language.
type Comment struct {
	// BlockOpen opens a multi-line comment and starts each file header.
	BlockOpen string `json:"block_open"`
	// BlockClose closes a multi-line comment and ends each file header.
	BlockClose string `json:"block_close"`
	// Inline is the single-line comment marker used to strip comment lines.
	Inline string `json:"inline"`
}

// Default is used for languages missing from the table.
var Default = Comment{BlockOpen: "/*", BlockClose: "*/", Inline: "//"}

// Language is one entry of the language table.
type Language struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Comment Comment  `json:"comment"`
}

var cStyle = Comment{BlockOpen: "/*", BlockClose: "*/", Inline: "//"}

var languages = []Language{
	{Name: "python", Aliases: []string{"py"}, Comment: Comment{BlockOpen: "###", BlockClose: "###", Inline: "#"}},
	{Name: "javascript", Aliases: []string{"js", "jsx"}, Comment: cStyle},
	{Name: "typescript", Aliases: []string{"ts", "tsx"}, Comment: cStyle},
	{Name: "go", Aliases: []string{"golang"}, Comment: cStyle},
	{Name: "java", Comment: cStyle},
	{Name: "kotlin", Aliases: []string{"kt"}, Comment: cStyle},
	{Name: "c", Aliases: []string{"h"}, Comment: cStyle},
	{Name: "c++", Aliases: []string{"cpp", "cxx"}, Comment: cStyle},
	{Name: "c#", Aliases: []string{"csharp", "cs"}, Comment: cStyle},
	{Name: "rust", Aliases: []string{"rs"}, Comment: cStyle},
	{Name: "swift", Comment: cStyle},
	{Name: "php", Comment: cStyle},
	{Name: "ruby", Aliases: []string{"rb"}, Comment: Comment{BlockOpen: "=begin", BlockClose: "=end", Inline: "#"}},
	{Name: "lua", Comment: Comment{BlockOpen: "--[[", BlockClose: "]]", Inline: "--"}},
	{Name: "sql", Comment: Comment{BlockOpen: "/*", BlockClose: "*/", Inline: "--"}},
	{Name: "haskell", Aliases: []string{"hs"}, Comment: Comment{BlockOpen: "{-", BlockClose: "-}", Inline: "--"}},
}

var index = buildIndex()

func buildIndex() map[string]Comment {
	idx := make(map[string]Comment)
	for _, l := range languages {
		idx[fold(l.Name)] = l.Comment
		for _, a := range l.Aliases {
			idx[fold(a)] = l.Comment
		}
	}
	return idx
}

// fold normalizes a language name for case-insensitive lookup.
func fold(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Lookup returns the comment syntax registered for name or one of its
// aliases. Matching ignores case and surrounding whitespace. The bool is
// false when name is unknown, in which case Default is returned.
func Lookup(name string) (Comment, bool) {
	c, ok := index[fold(name)]
	if !ok {
		return Default, false
	}
	return c, true
}

// Languages returns the language table sorted by name.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
