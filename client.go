package logward

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/logward/go-logward/internal"
	"github.com/logward/go-logward/internal/logger"
	"github.com/logward/go-logward/version"
)

// Client submits messages to the messages API.  Messages recorded with
// Notify are batched and submitted in bulk by a background goroutine; use
// CreateMessage or CreateBulk for synchronous submission.
type Client struct {
	config  Config
	client  *http.Client
	logger  Logger
	apiHost string

	batchTicker *time.Ticker
	batchChan   <-chan time.Time
	msgChan     chan *Message
	flushChan   chan chan struct{}

	shutdownStarted chan struct{}
	shutdownDone    chan struct{}
	shutdownOnce    sync.Once

	// disabled is set when the API rejects our credentials.  Once set, all
	// submission stops.  It should be accessed using isDisabled and
	// setDisabled.
	disabled bool
	sync.RWMutex
}

// NewClient creates a Client.  A disabled config produces an inert client
// which spawns no goroutines and whose methods do nothing.
func NewClient(c Config) (*Client, error) {
	if err := c.Validate(); nil != err {
		return nil, err
	}

	cl := &Client{
		config:          c,
		apiHost:         internal.DefaultAPIHost,
		msgChan:         make(chan *Message, internal.MessageChanSize),
		flushChan:       make(chan chan struct{}),
		shutdownStarted: make(chan struct{}),
		shutdownDone:    make(chan struct{}),
		client: &http.Client{
			Transport: c.Transport,
			Timeout:   internal.CollectorTimeout,
		},
	}

	cl.logger = c.Logger
	if nil == cl.logger {
		if "" != internal.DebugLogging {
			cl.logger = NewDebugLogger(os.Stdout)
		} else {
			cl.logger = logger.ShimLogger{}
		}
	}

	if !c.Enabled {
		return cl, nil
	}

	cl.batchTicker = time.NewTicker(c.Batch.Period)
	cl.batchChan = cl.batchTicker.C

	go cl.process()

	cl.logger.Info("client created", map[string]interface{}{
		"logID":   c.LogID,
		"version": version.Version,
	})

	return cl, nil
}

func (cl *Client) isDisabled() bool {
	cl.RLock()
	defer cl.RUnlock()

	return cl.disabled
}

func (cl *Client) setDisabled() {
	cl.Lock()
	defer cl.Unlock()

	cl.disabled = true
}

func (cl *Client) prepare(m *Message) {
	if "" == m.ID {
		m.ID = uuid.NewString()
	}
	if m.DateTime.IsZero() {
		m.DateTime = time.Now().UTC()
	} else {
		m.DateTime = m.DateTime.UTC()
	}
	if "" == m.Severity {
		m.Severity = SeverityInformation
	}
	if "" == m.Application {
		m.Application = cl.config.Application
	}
	m.truncate()
}

// Notify enqueues a message for asynchronous bulk submission.  Notify never
// blocks:  when the queue is full the message is dropped.
func (cl *Client) Notify(m *Message) {
	if nil == m || !cl.config.Enabled || cl.isDisabled() {
		return
	}

	cl.prepare(m)

	if nil != cl.config.OnMessage {
		cl.config.OnMessage(m)
	}
	if nil != cl.config.OnFilter && cl.config.OnFilter(m) {
		return
	}

	select {
	case cl.msgChan <- m:
	default:
		cl.logger.Debug("message queue full, dropping message", map[string]interface{}{
			"title": m.Title,
		})
	}
}

// NotifyEvent builds a message from a log event's properties using the
// standard field cascade and enqueues it.  This is the entry point used by
// the logging framework targets.
func (cl *Client) NotifyEvent(title string, severity Severity, when time.Time, fields map[string]interface{}) {
	if !cl.config.Enabled || cl.isDisabled() {
		return
	}
	cl.Notify(FromFields(title, severity, when, fields, &cl.config))
}

var (
	errClientDisabled = fmt.Errorf("client disabled")
)

// CreateMessage submits a single message synchronously.
func (cl *Client) CreateMessage(ctx context.Context, m *Message) error {
	if !cl.config.Enabled || cl.isDisabled() {
		return errClientDisabled
	}

	cl.prepare(m)

	data, err := json.Marshal(m)
	if nil != err {
		return err
	}
	resp := cl.request(ctx, data, false)
	if resp.IsAuthFailure() {
		cl.setDisabled()
	}
	return resp.Err
}

// CreateBulk submits messages synchronously using the bulk endpoint.
func (cl *Client) CreateBulk(ctx context.Context, msgs []*Message) error {
	if !cl.config.Enabled || cl.isDisabled() {
		return errClientDisabled
	}
	if 0 == len(msgs) {
		return nil
	}

	for _, m := range msgs {
		cl.prepare(m)
	}

	data, err := json.Marshal(msgs)
	if nil != err {
		return err
	}
	resp := cl.request(ctx, data, true)
	if resp.IsAuthFailure() {
		cl.setDisabled()
	}
	return resp.Err
}

// Flush submits all pending messages and waits for the submission to
// complete.  It reports whether the flush finished within the timeout.
func (cl *Client) Flush(timeout time.Duration) bool {
	if !cl.config.Enabled || cl.isDisabled() {
		return true
	}

	done := make(chan struct{})
	tm := time.NewTimer(timeout)
	defer tm.Stop()

	select {
	case cl.flushChan <- done:
	case <-cl.shutdownDone:
		return true
	case <-tm.C:
		return false
	}

	select {
	case <-done:
		return true
	case <-tm.C:
		return false
	}
}

// Close flushes pending messages and stops the background goroutine.  The
// client must not be used after Close.
func (cl *Client) Close() {
	if !cl.config.Enabled {
		return
	}
	cl.shutdownOnce.Do(func() {
		cl.batchTicker.Stop()
		close(cl.shutdownStarted)
	})
	<-cl.shutdownDone
}

func (cl *Client) process() {
	pending := newPendingMessages(internal.MaxPendingMessages)

	for {
		select {
		case <-cl.batchChan:
			cl.drainInto(pending)
			cl.submitPending(pending)
		case m := <-cl.msgChan:
			cl.addPending(pending, m)
			if pending.NumPending() >= cl.config.Batch.Size {
				cl.submitPending(pending)
			}
		case done := <-cl.flushChan:
			cl.drainInto(pending)
			cl.submitPending(pending)
			close(done)
		case <-cl.shutdownStarted:
			cl.drainInto(pending)
			cl.submitPending(pending)
			close(cl.shutdownDone)
			return
		}
	}
}

func (cl *Client) addPending(pending *pendingMessages, m *Message) {
	if !pending.Add(m) {
		cl.logger.Debug("pending buffer full, dropping message", map[string]interface{}{
			"title":   m.Title,
			"dropped": pending.NumDropped(),
		})
	}
}

func (cl *Client) drainInto(pending *pendingMessages) {
	for {
		select {
		case m := <-cl.msgChan:
			cl.addPending(pending, m)
		default:
			return
		}
	}
}

// submitPending submits everything in the buffer in batches.  A batch that
// fails with a hopefully-intermittent error is returned to the buffer for
// the next flush; submission stops until then.
func (cl *Client) submitPending(pending *pendingMessages) {
	if cl.isDisabled() {
		cl.failBatch(pending.TakeAll(), errClientDisabled)
		return
	}

	for pending.NumPending() > 0 {
		batch := pending.TakeBatch(cl.config.Batch.Size)

		resp := cl.submit(batch, true)

		if nil == resp.Err {
			continue
		}

		if resp.IsAuthFailure() {
			cl.setDisabled()
			cl.logger.Error("client disabled", map[string]interface{}{
				"error": resp.Err.Error(),
			})
			cl.failBatch(batch, resp.Err)
			cl.failBatch(pending.TakeAll(), resp.Err)
			return
		}

		if resp.ShouldSaveData() {
			cl.logger.Warn("bulk submit failure", map[string]interface{}{
				"error":    resp.Err.Error(),
				"messages": len(batch),
			})
			for _, m := range pending.MergeFailed(batch) {
				cl.failMessage(m, resp.Err)
			}
			return
		}

		cl.failBatch(batch, resp.Err)
	}
}

// submit marshals and posts one batch.  An oversize bulk payload is split in
// half and each half submitted once more.
func (cl *Client) submit(batch []*Message, allowSplit bool) internal.APIResponse {
	var data []byte
	var err error

	bulk := len(batch) > 1
	if bulk {
		data, err = json.Marshal(batch)
	} else {
		data, err = json.Marshal(batch[0])
	}
	if nil != err {
		return internal.APIResponse{Err: err}
	}

	resp := cl.request(context.Background(), data, bulk)

	if resp.IsPayloadTooLarge() && allowSplit && len(batch) > 1 {
		half := len(batch) / 2
		first := cl.submit(batch[:half], false)
		second := cl.submit(batch[half:], false)
		if nil != first.Err {
			return first
		}
		return second
	}

	return resp
}

func (cl *Client) request(ctx context.Context, data []byte, bulk bool) internal.APIResponse {
	return internal.CollectorRequest(ctx, internal.Cmd{
		APIHost: cl.apiHost,
		APIKey:  cl.config.APIKey,
		LogID:   cl.config.LogID,
		Bulk:    bulk,
		Data:    data,
	}, internal.Controls{
		Client: cl.client,
		Logger: cl.logger,
	})
}

func (cl *Client) failMessage(m *Message, err error) {
	if nil != cl.config.OnError {
		cl.config.OnError(m, err)
	}
}

func (cl *Client) failBatch(batch []*Message, err error) {
	for _, m := range batch {
		cl.failMessage(m, err)
	}
}
