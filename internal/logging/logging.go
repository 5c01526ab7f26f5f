// Package logging builds the leveled console logger.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "taskeasy"

// New returns a text logger writing to w. debug forces the debug level;
// otherwise level is parsed and unknown names fall back to warn.
func New(w io.Writer, level string, debug bool) *log.Logger {
	lvl := ParseLevel(level)
	if debug {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.TextFormatter,
		ReportTimestamp: debug,
		Prefix:          Prefix,
	})
}

// ParseLevel parses a level name to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning", "":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}
