package internal

import "os"

var (
	// DebugLogging turns on debug logging to stdout when no Logger has been
	// configured.
	DebugLogging = os.Getenv("LOGWARD_DEBUG_LOGGING")
	// DefaultAPIHost is the host messages are submitted to.
	DefaultAPIHost = func() string {
		if s := os.Getenv("LOGWARD_HOST"); "" != s {
			return s
		}
		return "api.logward.io"
	}()
)
