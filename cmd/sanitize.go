package cmd

import (
	"strings"
	"unicode"
)

// sanitizePath makes s safe to echo to a terminal. Paths in the merge
// summary, doctor diagnostics and check messages come from configuration
// and from file names in the walked tree; any ASCII control byte in them is
// shown as '?'. The merged document keeps paths verbatim.
func sanitizePath(s string) string {
	if strings.IndexFunc(s, isASCIIControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isASCIIControl(r) {
			return '?'
		}
		return r
	}, s)
}

func isASCIIControl(r rune) bool {
	return r <= unicode.MaxASCII && unicode.IsControl(r)
}
