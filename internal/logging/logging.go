// Package logging builds the charmbracelet loggers used across colorx.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a stderr logger with timestamps and the given prefix.
func New(prefix string, level log.Level) *log.Logger {
	return NewWithWriter(os.Stderr, prefix, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, prefix string, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
