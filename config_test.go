package logward

import (
	"strings"
	"testing"
)

const (
	testAPIKey = "test-api-key"
	testLogID  = "0c525b06-2f81-4e12-82e7-e9e32c3ea9a4"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig(testAPIKey, testLogID)
	if testAPIKey != c.APIKey || testLogID != c.LogID {
		t.Error(c.APIKey, c.LogID)
	}
	if !c.Enabled {
		t.Error("config should default to enabled")
	}
	if c.Batch.Size <= 0 || c.Batch.Period <= 0 {
		t.Error(c.Batch.Size, c.Batch.Period)
	}
	if err := c.Validate(); nil != err {
		t.Error(err)
	}
}

func TestConfigValidate(t *testing.T) {
	c := NewConfig("", testLogID)
	if err := c.Validate(); nil == err {
		t.Error("missing api key should not validate")
	}

	c = NewConfig(strings.Repeat("k", apiKeyLengthLimit+1), testLogID)
	if err := c.Validate(); nil == err {
		t.Error("oversize api key should not validate")
	}

	c = NewConfig(testAPIKey, "not-a-uuid")
	if err := c.Validate(); nil == err {
		t.Error("malformed log id should not validate")
	}

	c = NewConfig(testAPIKey, testLogID)
	c.Batch.Size = 0
	if err := c.Validate(); nil == err {
		t.Error("zero batch size should not validate")
	}

	c = NewConfig(testAPIKey, testLogID)
	c.Batch.Size = 10000
	if err := c.Validate(); nil == err {
		t.Error("oversize batch should not validate")
	}

	// A disabled config is valid regardless of contents.
	c = Config{}
	if err := c.Validate(); nil != err {
		t.Error(err)
	}
}
