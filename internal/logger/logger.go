// Package logger contains the Logger implementations used by the client.
package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger matches the logward.Logger interface.  It exists here to prevent an
// import cycle.
type Logger interface {
	Error(msg string, context map[string]interface{})
	Warn(msg string, context map[string]interface{})
	Info(msg string, context map[string]interface{})
	Debug(msg string, context map[string]interface{})
	DebugEnabled() bool
}

// ShimLogger implements Logger and does nothing.
type ShimLogger struct {
	// IsDebugEnabled is useful in tests.
	IsDebugEnabled bool
}

// Error allows ShimLogger to implement Logger.
func (s ShimLogger) Error(string, map[string]interface{}) {}

// Warn allows ShimLogger to implement Logger.
func (s ShimLogger) Warn(string, map[string]interface{}) {}

// Info allows ShimLogger to implement Logger.
func (s ShimLogger) Info(string, map[string]interface{}) {}

// Debug allows ShimLogger to implement Logger.
func (s ShimLogger) Debug(string, map[string]interface{}) {}

// DebugEnabled allows ShimLogger to implement Logger.
func (s ShimLogger) DebugEnabled() bool { return s.IsDebugEnabled }

type logrusLogger struct {
	l *logrus.Logger
}

// New creates a basic Logger backed by logrus writing JSON lines to w.
func New(w io.Writer, doDebug bool) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	if doDebug {
		l.SetLevel(logrus.DebugLevel)
	}
	return &logrusLogger{l: l}
}

func (lg *logrusLogger) fire(level logrus.Level, msg string, ctx map[string]interface{}) {
	lg.l.WithFields(logrus.Fields(ctx)).Log(level, msg)
}

func (lg *logrusLogger) Error(msg string, ctx map[string]interface{}) {
	lg.fire(logrus.ErrorLevel, msg, ctx)
}
func (lg *logrusLogger) Warn(msg string, ctx map[string]interface{}) {
	lg.fire(logrus.WarnLevel, msg, ctx)
}
func (lg *logrusLogger) Info(msg string, ctx map[string]interface{}) {
	lg.fire(logrus.InfoLevel, msg, ctx)
}
func (lg *logrusLogger) Debug(msg string, ctx map[string]interface{}) {
	lg.fire(logrus.DebugLevel, msg, ctx)
}
func (lg *logrusLogger) DebugEnabled() bool {
	return lg.l.GetLevel() >= logrus.DebugLevel
}
