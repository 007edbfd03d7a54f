// Package logging builds the structured logger shared by all commands.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is prepended to every log line.
const Prefix = "lucky"

// New returns a logger writing to w, at debug level when debug is set and
// info level otherwise.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: Prefix,
		Level:  log.InfoLevel,
	})

	if debug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}

	return logger
}
