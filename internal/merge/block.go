package merge

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/eykd/filemerge/internal/diag"
)

const (
	fence       = "```"
	headerLabel = "file: "
)

// writeBlock writes one file as
//
//	```
//	<block open>
//	file: <path>
//	<block close>
//	<body>
//
//	```
//
// followed by a blank line. Comment-only body lines are dropped. A file that
// cannot be read still gets its block, with whatever body was read before
// the failure.
func (m *Merger) writeBlock(s *lineSink, path string) {
	c := m.cfg.Syntax
	s.write(fence + "\n" + c.BlockOpen + "\n" + headerLabel + path + "\n" + c.BlockClose + "\n")
	m.copyBody(s, path)
	s.write("\n" + fence + "\n\n")
}

func (m *Merger) copyBody(s *lineSink, path string) {
	f, err := m.io.Open(path)
	if err != nil {
		m.readFailed(path, err)
		return
	}
	defer f.Close()

	token := m.cfg.Syntax.Inline
	r := bufio.NewReader(f)
	for s.err == nil {
		line, err := readLine(r)
		if line != "" {
			if isCommentLine(line, token) {
				m.stats.LinesStripped++
			} else {
				s.write(line)
			}
		}
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			m.readFailed(path, err)
			return
		}
	}
}

// readLine returns the next line with its terminator, which is "\n",
// "\r\n" or a lone "\r". At end of input it returns the unterminated rest
// together with io.EOF.
func readLine(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		sb.WriteByte(b)
		switch b {
		case '\n':
			return sb.String(), nil
		case '\r':
			next, err := r.Peek(1)
			if err == nil && next[0] == '\n' {
				_, _ = r.Discard(1)
				sb.WriteByte('\n')
			} else if err != nil && !errors.Is(err, io.EOF) {
				return sb.String(), err
			}
			return sb.String(), nil
		}
	}
}

func (m *Merger) readFailed(path string, err error) {
	m.stats.ReadErrors++
	m.log.Errorf("reading file %s: %v (%s)", path, err, diag.MRG002)
}

// isCommentLine reports whether line, ignoring leading whitespace, starts
// with token. Only whole lines are considered; trailing comments are kept.
// An empty token matches nothing.
func isCommentLine(line, token string) bool {
	if token == "" {
		return false
	}
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), token)
}
