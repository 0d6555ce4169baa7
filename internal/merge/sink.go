package merge

import "bufio"

// lineSink is a buffered writer that remembers its first error and ignores
// writes after it.
type lineSink struct {
	w   *bufio.Writer
	err error
}

func (s *lineSink) write(str string) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.WriteString(str)
}

func (s *lineSink) flush() error {
	if s.err != nil {
		return s.err
	}
	s.err = s.w.Flush()
	return s.err
}
