package logward

import (
	"errors"
	"net/http"
	"reflect"
	"testing"
	"time"
)

var testTime = time.Date(2024, time.May, 4, 12, 0, 0, 0, time.UTC)

func TestFromFieldsWellKnownNames(t *testing.T) {
	fields := map[string]interface{}{
		"hostname":   "web-1",
		"User":       "alice",
		"RequestUrl": "/orders/17",
		"HttpMethod": "POST",
		"StatusCode": 404,
		"version":    "1.2.3",
		"logger":     "checkout",
		"requestId":  "abc-123",
		"category":   "payments",
	}

	m := FromFields("order failed", SeverityError, testTime, fields, nil)

	if "web-1" != m.Hostname {
		t.Error(m.Hostname)
	}
	if "alice" != m.User {
		t.Error(m.User)
	}
	if "/orders/17" != m.URL {
		t.Error(m.URL)
	}
	if "POST" != m.Method {
		t.Error(m.Method)
	}
	if 404 != m.StatusCode {
		t.Error(m.StatusCode)
	}
	if "1.2.3" != m.Version {
		t.Error(m.Version)
	}
	if "checkout" != m.Source {
		t.Error(m.Source)
	}
	if "abc-123" != m.CorrelationID {
		t.Error(m.CorrelationID)
	}
	if "payments" != m.Category {
		t.Error(m.Category)
	}
	if "order failed" != m.Title || SeverityError != m.Severity {
		t.Error(m.Title, m.Severity)
	}
	// Everything mapped, so nothing lands in data.
	if 0 != len(m.Data) {
		t.Error(m.Data)
	}
}

func TestFromFieldsHostnameDefault(t *testing.T) {
	m := FromFields("hello", SeverityInformation, testTime, nil, nil)
	if "" == m.Hostname {
		t.Error("expected os.Hostname fallback")
	}
}

func TestFromFieldsTemplates(t *testing.T) {
	cfg := NewConfig("key", "log")
	cfg.Hostname = "${machine}-prod"
	cfg.User = "${missing}"

	fields := map[string]interface{}{
		"machine": "web1",
		"user":    "bob",
	}

	m := FromFields("hello", SeverityInformation, testTime, fields, &cfg)

	if "web1-prod" != m.Hostname {
		t.Error(m.Hostname)
	}
	// An empty template rendering falls through to the cascade.
	if "bob" != m.User {
		t.Error(m.User)
	}
	// Properties consumed by a template do not reappear in data.
	if 0 != len(m.Data) {
		t.Error(m.Data)
	}
}

func TestFromFieldsError(t *testing.T) {
	fields := map[string]interface{}{
		"error": errors.New("connection reset"),
	}

	m := FromFields("request failed", SeverityError, testTime, fields, nil)

	if "connection reset" != m.Detail {
		t.Error(m.Detail)
	}
	if "*errors.errorString" != m.Type {
		t.Error(m.Type)
	}
	if m.Source != m.Type {
		t.Error(m.Source)
	}
	if 500 != m.StatusCode {
		t.Error(m.StatusCode)
	}
}

func TestFromFieldsErrorKeepsExplicitStatusCode(t *testing.T) {
	fields := map[string]interface{}{
		"error":      errors.New("not found"),
		"statusCode": "404",
	}

	m := FromFields("request failed", SeverityError, testTime, fields, nil)

	if 404 != m.StatusCode {
		t.Error(m.StatusCode)
	}
}

func TestFromFieldsNonNumericStatusCode(t *testing.T) {
	fields := map[string]interface{}{
		"statusCode": "teapot",
	}

	m := FromFields("hello", SeverityInformation, testTime, fields, nil)

	if 0 != m.StatusCode {
		t.Error(m.StatusCode)
	}
	// The unparseable value stays in data rather than vanishing.
	expect := []Item{{"statusCode", "teapot"}}
	if !reflect.DeepEqual(m.Data, expect) {
		t.Error(m.Data)
	}
}

func TestFromFieldsErrorString(t *testing.T) {
	fields := map[string]interface{}{
		"err": "boom",
	}

	m := FromFields("oops", SeverityError, testTime, fields, nil)

	if "boom" != m.Detail {
		t.Error(m.Detail)
	}
	if "" != m.Type {
		t.Error(m.Type)
	}
	if 500 != m.StatusCode {
		t.Error(m.StatusCode)
	}
}

func TestFromFieldsItems(t *testing.T) {
	fields := map[string]interface{}{
		"cookies":     "sid=xyz&theme=dark",
		"form":        map[string]string{"q": "books"},
		"queryString": "page=2",
		"headers":     http.Header{"Accept": {"application/json"}},
	}

	m := FromFields("hello", SeverityInformation, testTime, fields, nil)

	if expect := []Item{{"sid", "xyz"}, {"theme", "dark"}}; !reflect.DeepEqual(m.Cookies, expect) {
		t.Error(m.Cookies)
	}
	if expect := []Item{{"q", "books"}}; !reflect.DeepEqual(m.Form, expect) {
		t.Error(m.Form)
	}
	if expect := []Item{{"page", "2"}}; !reflect.DeepEqual(m.QueryString, expect) {
		t.Error(m.QueryString)
	}
	if expect := []Item{{"Accept", "application/json"}}; !reflect.DeepEqual(m.ServerVariables, expect) {
		t.Error(m.ServerVariables)
	}
}

func TestFromFieldsLeftoverData(t *testing.T) {
	fields := map[string]interface{}{
		"zebra":  "stripes",
		"apple":  1,
		"url":    "/",
		"detail": "stack",
	}

	m := FromFields("hello", SeverityInformation, testTime, fields, nil)

	if "/" != m.URL || "stack" != m.Detail {
		t.Error(m.URL, m.Detail)
	}
	expect := []Item{{"apple", "1"}, {"zebra", "stripes"}}
	if !reflect.DeepEqual(m.Data, expect) {
		t.Error(m.Data)
	}
}

func TestFromFieldsApplication(t *testing.T) {
	cfg := NewConfig("key", "log")
	cfg.Application = "storefront"

	fields := map[string]interface{}{"appName": "ignored"}

	m := FromFields("hello", SeverityInformation, testTime, fields, &cfg)
	if "storefront" != m.Application {
		t.Error(m.Application)
	}

	m = FromFields("hello", SeverityInformation, testTime, fields, nil)
	if "ignored" != m.Application {
		t.Error(m.Application)
	}
}
