package logward

import (
	"io"

	"github.com/logward/go-logward/internal/logger"
)

// Logger is the interface that groups the logging methods used by the
// client.  Loggers must be safe for use in multiple goroutines.
//
// For adapters to common logging frameworks, see the lwlogrus and lwzap
// packages.
type Logger interface {
	Error(msg string, context map[string]interface{})
	Warn(msg string, context map[string]interface{})
	Info(msg string, context map[string]interface{})
	Debug(msg string, context map[string]interface{})
	DebugEnabled() bool
}

// NewLogger creates a basic Logger at info level.
func NewLogger(w io.Writer) Logger {
	return logger.New(w, false)
}

// NewDebugLogger creates a basic Logger at debug level.
func NewDebugLogger(w io.Writer) Logger {
	return logger.New(w, true)
}
