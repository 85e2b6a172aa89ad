package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// NewLogger returns a slog logger rendered by charmbracelet/log. verbose
// enables debug records.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	h := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	return slog.New(h)
}
