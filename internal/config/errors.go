package config

import (
	"fmt"

	"github.com/eykd/filemerge/internal/diag"
)

// Error is a fatal configuration error. Key names the document or key at
// fault; Path is the document file when one was found.
type Error struct {
	Code diag.Code
	Key  string
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	s := "config"
	if e.Path != "" {
		s += " " + e.Path
	}
	if e.Key != "" {
		s += ": " + e.Key
	}
	s += ": " + e.Msg
	if e.Err != nil {
		s += fmt.Sprintf(": %v", e.Err)
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic converts e into an error-severity diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	path := e.Key
	if e.Path != "" {
		path = e.Path
	}
	return diag.Diagnostic{
		Code:     e.Code,
		Severity: diag.SeverityError,
		Message:  e.Error(),
		Path:     path,
	}
}
