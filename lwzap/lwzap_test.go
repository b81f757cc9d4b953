package lwzap

import (
	"sync"
	"testing"
	"time"

	"github.com/logward/go-logward"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	testAPIKey = "test-api-key"
	testLogID  = "0c525b06-2f81-4e12-82e7-e9e32c3ea9a4"
)

func captureClient(t *testing.T) (*logward.Client, func() []*logward.Message) {
	t.Helper()

	var mu sync.Mutex
	var msgs []*logward.Message

	cfg := logward.NewConfig(testAPIKey, testLogID)
	cfg.Batch.Period = time.Hour
	cfg.OnFilter = func(m *logward.Message) bool {
		mu.Lock()
		defer mu.Unlock()
		msgs = append(msgs, m)
		return true
	}

	client, err := logward.NewClient(cfg)
	if nil != err {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)

	return client, func() []*logward.Message {
		mu.Lock()
		defer mu.Unlock()
		return msgs
	}
}

func TestCoreWrite(t *testing.T) {
	client, captured := captureClient(t)

	log := zap.New(NewCore(client, zap.ErrorLevel))

	log.Error("payment failed",
		zap.String("url", "/checkout"),
		zap.Int("statusCode", 502),
	)
	log.Info("not shipped")

	msgs := captured()
	if 1 != len(msgs) {
		t.Fatal(msgs)
	}
	m := msgs[0]
	if "payment failed" != m.Title {
		t.Error(m.Title)
	}
	if logward.SeverityError != m.Severity {
		t.Error(m.Severity)
	}
	if "/checkout" != m.URL {
		t.Error(m.URL)
	}
	if 502 != m.StatusCode {
		t.Error(m.StatusCode)
	}
}

func TestCoreWith(t *testing.T) {
	client, captured := captureClient(t)

	log := zap.New(NewCore(client, zap.ErrorLevel)).With(
		zap.String("user", "alice"),
	)

	log.Error("boom")

	msgs := captured()
	if 1 != len(msgs) {
		t.Fatal(msgs)
	}
	if "alice" != msgs[0].User {
		t.Error(msgs[0].User)
	}
}

func TestCoreNamedLogger(t *testing.T) {
	client, captured := captureClient(t)

	log := zap.New(NewCore(client, zap.ErrorLevel)).Named("checkout")

	log.Error("boom")

	msgs := captured()
	if 1 != len(msgs) {
		t.Fatal(msgs)
	}
	if "checkout" != msgs[0].Source {
		t.Error(msgs[0].Source)
	}
}

func TestSeverityFromLevel(t *testing.T) {
	testcases := []struct {
		level  zapcore.Level
		expect logward.Severity
	}{
		{zapcore.DebugLevel, logward.SeverityDebug},
		{zapcore.InfoLevel, logward.SeverityInformation},
		{zapcore.WarnLevel, logward.SeverityWarning},
		{zapcore.ErrorLevel, logward.SeverityError},
		{zapcore.DPanicLevel, logward.SeverityFatal},
		{zapcore.FatalLevel, logward.SeverityFatal},
	}
	for _, tc := range testcases {
		if got := severityFromLevel(tc.level); got != tc.expect {
			t.Error(tc.level, got)
		}
	}
}

func TestTransform(t *testing.T) {
	lg := Transform(zap.NewNop())
	lg.Info("hello", map[string]interface{}{"a": 1})
	if lg.DebugEnabled() {
		t.Error("nop logger should not have debug enabled")
	}
}
