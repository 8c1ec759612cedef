package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// InitLogger initializes and configures a Charm logger on stderr
func InitLogger(verbose bool) *log.Logger {
	return NewLogger(os.Stderr, verbose)
}

// NewLogger configures a Charm logger writing to w. The TUI passes a log
// file or io.Discard so output does not tear the screen.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportCaller:    verbose,
		ReportTimestamp: verbose,
	})

	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}

	return logger
}
