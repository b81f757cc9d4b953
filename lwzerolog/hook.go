// Package lwzerolog supports https://github.com/rs/zerolog.
//
// Wrap your zerolog Logger using the Hook to forward events to Logward:
//
//	client, _ := logward.NewClient(logward.NewConfig("API_KEY", "LOG_ID"))
//	log := zerolog.New(os.Stdout).Hook(lwzerolog.Hook{Client: client})
//
// The zerolog hook contract exposes only the level and the message, so
// messages shipped this way carry no request fields beyond the hostname.
package lwzerolog

import (
	"time"

	"github.com/logward/go-logward"
	"github.com/rs/zerolog"
)

// Hook forwards zerolog events to a logward.Client.  It implements
// zerolog.Hook.
type Hook struct {
	Client *logward.Client
	// MinLevel discards events below it.  The zero value ships debug level
	// and above; an error tracker usually wants zerolog.ErrorLevel here.
	MinLevel zerolog.Level
}

// Run implements zerolog.Hook.
func (h Hook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if level != zerolog.NoLevel && level < h.MinLevel {
		return
	}

	h.Client.NotifyEvent(msg, severityFromLevel(level), time.Now(), nil)
}

func severityFromLevel(l zerolog.Level) logward.Severity {
	switch l {
	case zerolog.TraceLevel:
		return logward.SeverityVerbose
	case zerolog.DebugLevel:
		return logward.SeverityDebug
	case zerolog.InfoLevel:
		return logward.SeverityInformation
	case zerolog.WarnLevel:
		return logward.SeverityWarning
	case zerolog.ErrorLevel:
		return logward.SeverityError
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return logward.SeverityFatal
	}
	return logward.SeverityInformation
}
