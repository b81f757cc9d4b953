// Package lwlogrus supports https://github.com/sirupsen/logrus.
//
// Use NewHook to forward logrus entries to Logward:
//
//	client, _ := logward.NewClient(logward.NewConfig("API_KEY", "LOG_ID"))
//	log := logrus.New()
//	log.AddHook(lwlogrus.NewHook(client))
//
// Entry fields are mapped onto the standard message fields by the client's
// field cascade:  fields named hostname, user, url, statusCode, cookies,
// form, queryString, serverVariables and so on populate the corresponding
// message field, and everything else lands in the message's data list.
//
// Use this package's Transform if you are using logrus in your application
// and would like the client's own log messages to end up in the same place:
//
//	cfg := logward.NewConfig("API_KEY", "LOG_ID")
//	cfg.Logger = lwlogrus.StandardLogger()
package lwlogrus

import (
	"github.com/logward/go-logward"
	"github.com/sirupsen/logrus"
)

// Hook forwards logrus entries to a logward.Client.  It implements
// logrus.Hook.
type Hook struct {
	client *logward.Client
	levels []logrus.Level
}

// NewHook creates a Hook.  With no levels the hook fires on error level and
// above, which is the usual choice for an error tracker.
func NewHook(client *logward.Client, levels ...logrus.Level) *Hook {
	if 0 == len(levels) {
		levels = []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		}
	}
	return &Hook{client: client, levels: levels}
}

// Levels returns the levels the hook fires on.
func (h *Hook) Levels() []logrus.Level { return h.levels }

// Fire ships a single entry.  It never returns an error:  submission
// failures are reported through the client's OnError callback.
func (h *Hook) Fire(e *logrus.Entry) error {
	fields := make(map[string]interface{}, len(e.Data))
	for k, v := range e.Data {
		fields[k] = v
	}

	h.client.NotifyEvent(e.Message, severityFromLevel(e.Level), e.Time, fields)
	return nil
}

func severityFromLevel(l logrus.Level) logward.Severity {
	switch l {
	case logrus.TraceLevel:
		return logward.SeverityVerbose
	case logrus.DebugLevel:
		return logward.SeverityDebug
	case logrus.InfoLevel:
		return logward.SeverityInformation
	case logrus.WarnLevel:
		return logward.SeverityWarning
	case logrus.ErrorLevel:
		return logward.SeverityError
	case logrus.FatalLevel, logrus.PanicLevel:
		return logward.SeverityFatal
	}
	return logward.SeverityInformation
}

type shim struct {
	e *logrus.Entry
	l *logrus.Logger
}

func (s *shim) Error(msg string, c map[string]interface{}) {
	s.e.WithFields(c).Error(msg)
}
func (s *shim) Warn(msg string, c map[string]interface{}) {
	s.e.WithFields(c).Warn(msg)
}
func (s *shim) Info(msg string, c map[string]interface{}) {
	s.e.WithFields(c).Info(msg)
}
func (s *shim) Debug(msg string, c map[string]interface{}) {
	s.e.WithFields(c).Debug(msg)
}
func (s *shim) DebugEnabled() bool {
	lvl := s.l.GetLevel()
	return lvl >= logrus.DebugLevel
}

// StandardLogger returns a logward.Logger which forwards client log messages
// to the logrus package-level exported logger.
func StandardLogger() logward.Logger {
	return Transform(logrus.StandardLogger())
}

// Transform turns a *logrus.Logger into a logward.Logger.
func Transform(l *logrus.Logger) logward.Logger {
	return &shim{
		l: l,
		e: l.WithFields(logrus.Fields{
			"component": "logward",
		}),
	}
}
