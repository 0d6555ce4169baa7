package cmd

import (
	"fortio.org/log"
	"github.com/google/uuid"
)

// runLogger adapts fortio's package-level logger to merge.Logger and tags
// every line with the id of the current run.
type runLogger struct {
	prefix string
}

// newRunLogger creates a logger for one run. verbose enables debug output.
func newRunLogger(verbose bool) *runLogger {
	if verbose {
		log.SetLogLevel(log.Debug)
	}
	prefix := ""
	if id, err := uuid.NewV7(); err == nil {
		prefix = "[" + id.String() + "] "
	}
	return &runLogger{prefix: prefix}
}

func (l *runLogger) Debugf(format string, args ...any) {
	log.Debugf(l.prefix+format, args...)
}

func (l *runLogger) Infof(format string, args ...any) {
	log.Infof(l.prefix+format, args...)
}

func (l *runLogger) Warnf(format string, args ...any) {
	log.Warnf(l.prefix+format, args...)
}

func (l *runLogger) Errorf(format string, args ...any) {
	log.Errf(l.prefix+format, args...)
}
