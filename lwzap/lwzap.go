// Package lwzap supports https://github.com/uber-go/zap.
//
// Use NewCore to forward zap entries to Logward alongside your existing
// core:
//
//	client, _ := logward.NewClient(logward.NewConfig("API_KEY", "LOG_ID"))
//	log := zap.New(zapcore.NewTee(existingCore, lwzap.NewCore(client, zap.ErrorLevel)))
//
// Wrap your zap Logger using Transform to send the client's own log
// messages to zap.
package lwzap

import (
	"time"

	"github.com/logward/go-logward"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type core struct {
	zapcore.LevelEnabler
	client *logward.Client
	fields []zapcore.Field
}

// NewCore creates a zapcore.Core which ships entries at or above enab to
// Logward.  Tee it with your primary core; it performs no local output.
func NewCore(client *logward.Client, enab zapcore.LevelEnabler) zapcore.Core {
	if nil == enab {
		enab = zap.ErrorLevel
	}
	return &core{LevelEnabler: enab, client: client}
}

func (c *core) With(fs []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(clone.fields[:len(clone.fields):len(clone.fields)], fs...)
	return &clone
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fs []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fs {
		f.AddTo(enc)
	}

	fields := enc.Fields
	if "" != ent.LoggerName {
		if _, ok := fields["logger"]; !ok {
			fields["logger"] = ent.LoggerName
		}
	}

	c.client.NotifyEvent(ent.Message, severityFromLevel(ent.Level), ent.Time, fields)
	return nil
}

func (c *core) Sync() error {
	c.client.Flush(5 * time.Second)
	return nil
}

func severityFromLevel(l zapcore.Level) logward.Severity {
	switch l {
	case zapcore.DebugLevel:
		return logward.SeverityDebug
	case zapcore.InfoLevel:
		return logward.SeverityInformation
	case zapcore.WarnLevel:
		return logward.SeverityWarning
	case zapcore.ErrorLevel:
		return logward.SeverityError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return logward.SeverityFatal
	}
	return logward.SeverityInformation
}

type shim struct{ logger *zap.Logger }

func transformAttributes(atts map[string]interface{}) []zap.Field {
	fs := make([]zap.Field, 0, len(atts))
	for key, val := range atts {
		fs = append(fs, zap.Any(key, val))
	}
	return fs
}

func (s *shim) Error(msg string, c map[string]interface{}) {
	s.logger.Error(msg, transformAttributes(c)...)
}
func (s *shim) Warn(msg string, c map[string]interface{}) {
	s.logger.Warn(msg, transformAttributes(c)...)
}
func (s *shim) Info(msg string, c map[string]interface{}) {
	s.logger.Info(msg, transformAttributes(c)...)
}
func (s *shim) Debug(msg string, c map[string]interface{}) {
	s.logger.Debug(msg, transformAttributes(c)...)
}
func (s *shim) DebugEnabled() bool {
	ce := s.logger.Check(zap.DebugLevel, "debugging")
	return ce != nil
}

// Transform turns a *zap.Logger into a logward.Logger.
func Transform(l *zap.Logger) logward.Logger { return &shim{logger: l} }
