package internal

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/logward/go-logward/internal/logger"
	"github.com/logward/go-logward/version"
)

const (
	userAgent = "Logward-Go/" + version.Version

	contentType = "application/json"
)

// Cmd is a single request against the messages API.
type Cmd struct {
	APIHost string
	APIKey  string
	LogID   string
	// Bulk selects the bulk endpoint.  Data must then be a JSON array of
	// messages rather than a single message object.
	Bulk bool
	Data []byte
}

// Controls specifies the behavior of the API request.
type Controls struct {
	Client *http.Client
	Logger logger.Logger
}

func apiURL(cmd Cmd) string {
	var u url.URL

	u.Scheme = "https"
	u.Host = cmd.APIHost
	u.Path = "/v3/messages/" + cmd.LogID
	if cmd.Bulk {
		u.Path += "/bulk"
	}

	query := url.Values{}
	query.Set("api_key", cmd.APIKey)
	u.RawQuery = query.Encode()

	return u.String()
}

// APIResponse contains a response from the messages API.
type APIResponse struct {
	statusCode int
	// Err is populated if the request was not successful.
	Err error
}

var (
	// ErrInvalidAPIKey means the API rejected the configured api key.
	ErrInvalidAPIKey = errors.New("api key rejected")
	// ErrPaymentRequired means the account is out of quota.
	ErrPaymentRequired = errors.New("subscription limit reached")
	// ErrPayloadTooLarge means the request body exceeded the API's size
	// limit.
	ErrPayloadTooLarge = errors.New("payload too large")
	// ErrThrottled means the API asked us to slow down.
	ErrThrottled = errors.New("request throttled")
)

type unexpectedStatusCodeErr struct {
	code int
}

func (e unexpectedStatusCodeErr) Error() string {
	return fmt.Sprintf("unexpected response code: %d", e.code)
}

func newAPIResponse(code int) APIResponse {
	var err error

	switch code {
	case 200, 201, 202:
		// success
	case 401:
		err = ErrInvalidAPIKey
	case 402:
		err = ErrPaymentRequired
	case 413:
		err = ErrPayloadTooLarge
	case 429:
		err = ErrThrottled
	default:
		err = unexpectedStatusCodeErr{code: code}
	}

	return APIResponse{statusCode: code, Err: err}
}

// IsAuthFailure indicates that the API key was rejected or the account is
// out of quota.  The client stops submitting when it sees this.
func (resp APIResponse) IsAuthFailure() bool {
	return 401 == resp.statusCode || 402 == resp.statusCode
}

// IsPayloadTooLarge indicates that the request body exceeded the API's size
// limit.  Bulk payloads may be split and retried.
func (resp APIResponse) IsPayloadTooLarge() bool {
	return 413 == resp.statusCode
}

// ShouldSaveData indicates that the messages should be merged into the next
// batch.  This happens on hopefully-intermittent errors: timeouts,
// throttling, and server errors.
func (resp APIResponse) ShouldSaveData() bool {
	switch resp.statusCode {
	case 408, 429:
		return true
	case 0:
		// 0 indicates that the request could not be completed at all, eg.
		// a transport error.
		return nil != resp.Err
	}
	return resp.statusCode >= 500
}

func collectorRequestInternal(ctx context.Context, requestURL string, cmd Cmd, cs Controls) APIResponse {
	var body bytes.Buffer
	gz := gzip.NewWriter(&body)
	if _, err := gz.Write(cmd.Data); nil != err {
		return APIResponse{Err: err}
	}
	if err := gz.Close(); nil != err {
		return APIResponse{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", requestURL, &body)
	if nil != err {
		return APIResponse{Err: err}
	}

	req.Header.Add("Content-Type", contentType)
	req.Header.Add("User-Agent", userAgent)
	req.Header.Add("Content-Encoding", "gzip")

	resp, err := cs.Client.Do(req)
	if nil != err {
		return APIResponse{Err: err}
	}

	defer resp.Body.Close()

	// The body is read and discarded so that the connection may be reused.
	io.Copy(io.Discard, resp.Body)

	return newAPIResponse(resp.StatusCode)
}

// CollectorRequest makes a request to the messages API.
func CollectorRequest(ctx context.Context, cmd Cmd, cs Controls) APIResponse {
	requestURL := apiURL(cmd)

	if cs.Logger.DebugEnabled() {
		cs.Logger.Debug("messages request", map[string]interface{}{
			"url":     requestURL,
			"bulk":    cmd.Bulk,
			"payload": JSONString(cmd.Data),
		})
	}

	resp := collectorRequestInternal(ctx, requestURL, cmd, cs)

	if nil != resp.Err {
		cs.Logger.Debug("messages request failure", map[string]interface{}{
			"url":   requestURL,
			"error": resp.Err.Error(),
		})
	}

	return resp
}
