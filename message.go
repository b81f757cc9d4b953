package logward

import (
	"strings"
	"time"

	"github.com/logward/go-logward/internal"
)

// Severity indicates how severe a message is.  The values match the
// severities accepted by the messages API.
type Severity string

const (
	SeverityVerbose     Severity = "Verbose"
	SeverityDebug       Severity = "Debug"
	SeverityInformation Severity = "Information"
	SeverityWarning     Severity = "Warning"
	SeverityError       Severity = "Error"
	SeverityFatal       Severity = "Fatal"
)

// ParseSeverity turns the level names used by common logging frameworks into
// a Severity.  Unrecognized input maps to SeverityInformation.
func ParseSeverity(s string) Severity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "trace":
		return SeverityVerbose
	case "debug":
		return SeverityDebug
	case "info", "information", "informational":
		return SeverityInformation
	case "warn", "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	case "fatal", "critical", "panic":
		return SeverityFatal
	}
	return SeverityInformation
}

// Message is a single log message in the form expected by the messages API.
// Fields not set are omitted from the submitted JSON.
type Message struct {
	// ID is assigned by the client when empty.  It identifies the message
	// in the OnError callback.
	ID string `json:"id,omitempty"`
	// Title is the text of the log message itself.
	Title         string    `json:"title"`
	Hostname      string    `json:"hostname,omitempty"`
	Type          string    `json:"type,omitempty"`
	Source        string    `json:"source,omitempty"`
	Method        string    `json:"method,omitempty"`
	Version       string    `json:"version,omitempty"`
	URL           string    `json:"url,omitempty"`
	User          string    `json:"user,omitempty"`
	Severity      Severity  `json:"severity,omitempty"`
	DateTime      time.Time `json:"dateTime"`
	Detail        string    `json:"detail,omitempty"`
	Application   string    `json:"application,omitempty"`
	StatusCode    int       `json:"statusCode,omitempty"`
	CorrelationID string    `json:"correlationId,omitempty"`
	Category      string    `json:"category,omitempty"`
	// Data holds the event properties that did not map to one of the
	// fields above.
	Data            []Item `json:"data,omitempty"`
	Cookies         []Item `json:"cookies,omitempty"`
	Form            []Item `json:"form,omitempty"`
	QueryString     []Item `json:"queryString,omitempty"`
	ServerVariables []Item `json:"serverVariables,omitempty"`

	// attempts counts failed submissions of this message.
	attempts int
}

func truncateString(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	// Avoid cutting a multi-byte rune in half.
	for limit > 0 && s[limit]&0xc0 == 0x80 {
		limit--
	}
	return s[:limit]
}

func (m *Message) truncate() {
	m.Title = truncateString(m.Title, internal.TitleLengthLimit)
	m.Detail = truncateString(m.Detail, internal.DetailLengthLimit)
	if len(m.Data) > internal.MaxDataItems {
		m.Data = m.Data[:internal.MaxDataItems]
	}
}
