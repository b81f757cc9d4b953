package logward

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/logward/go-logward/internal"
)

// Config contains Client and target behavior settings.  Use NewConfig to
// create a Config with proper defaults.
type Config struct {
	// APIKey authenticates against the messages API.
	APIKey string

	// LogID identifies the log that messages are written to.  It must be a
	// UUID.
	LogID string

	// Application is reported on every message.  Event properties named
	// application, appname or app are used when this is empty.
	Application string

	// Enabled controls whether the client submits messages and spawns
	// goroutines.  Setting this to be false is useful in testing and
	// staging situations.
	Enabled bool

	// Transport customizes the underlying http.RoundTripper.
	Transport http.RoundTripper

	// Logger controls client logging.  For info level logging to stdout:
	//
	//	cfg.Logger = logward.NewLogger(os.Stdout)
	//
	// For debug level logging to stdout:
	//
	//	cfg.Logger = logward.NewDebugLogger(os.Stdout)
	//
	// To route client log messages into logrus or zap, see
	// lwlogrus.Transform and lwzap.Transform.
	Logger Logger

	// Batch controls bulk submission.
	Batch struct {
		// Size is the maximum number of messages submitted per bulk
		// request.
		Size int
		// Period is how often pending messages are flushed.
		Period time.Duration
	}

	// OnMessage is called with every message before it is enqueued.  Use it
	// to decorate or scrub messages.
	OnMessage func(*Message)

	// OnFilter is called after OnMessage.  Returning true drops the
	// message.
	OnFilter func(*Message) bool

	// OnError is called when a message is dropped because the API rejected
	// it or repeated submissions failed.
	OnError func(*Message, error)

	// The fields below override the standard field cascade.  Each is a
	// template rendered against the event's properties: ${name} expands to
	// the property called name (compared case-insensitively), unknown names
	// expand to nothing.  A template that renders empty falls through to
	// the built-in property-name cascade.
	Hostname      string
	User          string
	URL           string
	Method        string
	Version       string
	Source        string
	StatusCode    string
	CorrelationID string
}

// NewConfig creates a Config populated with default settings.
func NewConfig(apiKey, logID string) Config {
	c := Config{}

	c.APIKey = apiKey
	c.LogID = logID
	c.Enabled = true
	c.Batch.Size = internal.MaxBatchMessages
	c.Batch.Period = internal.BatchPeriod

	return c
}

const (
	apiKeyLengthLimit = 255
)

// Validate checks the config for improper fields.  Validate is called by
// NewClient.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if "" == c.APIKey {
		return fmt.Errorf("api key required")
	}
	if len(c.APIKey) > apiKeyLengthLimit {
		return fmt.Errorf("api key longer than %d bytes", apiKeyLengthLimit)
	}
	if _, err := uuid.Parse(c.LogID); nil != err {
		return fmt.Errorf("log id must be a UUID: %v", err)
	}
	if c.Batch.Size < 1 || c.Batch.Size > internal.MaxBatchMessages {
		return fmt.Errorf("batch size must be between 1 and %d", internal.MaxBatchMessages)
	}
	if c.Batch.Period <= 0 {
		return fmt.Errorf("batch period must be positive")
	}
	return nil
}
