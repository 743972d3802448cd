// internal/logging/logging.go
package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps the console quiet unless something goes wrong.
// The tool's own output is human-readable text on stdout.
const DefaultLevel = "warn"

// NewLogger creates a logger with a specific level.
func NewLogger(level string) *logrus.Logger {

	var log = logrus.New()

	// Set the log format.
	// Using JSON format for structured logging.
	log.SetFormatter(&logrus.JSONFormatter{})

	// Stdout carries the report (and the key), so logs go to stderr.
	log.SetOutput(os.Stderr)
	log.SetLevel(ParseLevel(level))

	return log
}

// ParseLevel maps a level name to a logrus level, falling back to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
