// Package logger provides charmbracelet/log loggers preconfigured for wordsplit components.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a charm log on stderr that respects the global log level.
// stdout is reserved for results and IPC frames.
func New(prefix string) *log.Logger {
	return NewTo(os.Stderr, prefix)
}

// NewTo is New writing to w.
func NewTo(w io.Writer, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: log.GetLevel() == log.DebugLevel,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a new charm log with custom config
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, fmt log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       fmt,
	})
}
