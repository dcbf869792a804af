package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a timestamped logger with the given prefix.
// The level comes from LASERDODGE_LOG_LEVEL (debug, info, warn, error); unknown
// values fall back to info.
func NewLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(GetEnv("LASERDODGE_LOG_LEVEL", "info"))
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}
