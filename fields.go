package logward

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Well-known property names.  Each standard Message field is located by
// rendering the corresponding Config template when one is set, and otherwise
// by trying a fixed list of property names, compared case-insensitively.
var (
	hostnameKeys    = []string{"hostname", "host", "machinename", "computername"}
	userKeys        = []string{"user", "username", "userid", "identity"}
	urlKeys         = []string{"url", "requesturl", "absoluteuri", "path"}
	methodKeys      = []string{"method", "httpmethod", "verb"}
	statusCodeKeys  = []string{"statuscode", "status", "responsestatuscode"}
	versionKeys     = []string{"version", "appversion"}
	sourceKeys      = []string{"source", "logger", "loggername"}
	correlationKeys = []string{"correlationid", "requestid", "traceid"}
	typeKeys        = []string{"type", "errortype"}
	categoryKeys    = []string{"category"}
	applicationKeys = []string{"application", "appname", "app"}
	detailKeys      = []string{"detail", "stacktrace"}
	cookiesKeys     = []string{"cookies"}
	formKeys        = []string{"form", "formdata"}
	queryStringKeys = []string{"querystring", "query"}
	serverVarsKeys  = []string{"servervariables", "headers"}
	errorKeys       = []string{"error", "err", "exception"}
)

type eventField struct {
	key      string
	value    interface{}
	consumed bool
}

// eventFields indexes a log event's properties for case-insensitive lookup.
// Properties consumed by a standard field do not reappear in Message.Data.
type eventFields struct {
	fields []*eventField
	index  map[string]*eventField
}

func newEventFields(m map[string]interface{}) *eventFields {
	ef := &eventFields{index: make(map[string]*eventField, len(m))}
	for k, v := range m {
		f := &eventField{key: k, value: v}
		ef.fields = append(ef.fields, f)
		ef.index[strings.ToLower(k)] = f
	}
	return ef
}

func (ef *eventFields) take(keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if f, ok := ef.index[k]; ok && !f.consumed {
			f.consumed = true
			return f.value, true
		}
	}
	return nil, false
}

func (ef *eventFields) takeString(keys ...string) string {
	if v, ok := ef.take(keys...); ok {
		return stringify(v)
	}
	return ""
}

// takeInt consumes the first matching property only when it parses as an
// integer.  A non-numeric value stays behind for the data list.
func (ef *eventFields) takeInt(keys ...string) (int, bool) {
	for _, k := range keys {
		if f, ok := ef.index[k]; ok && !f.consumed {
			n, err := strconv.Atoi(strings.TrimSpace(stringify(f.value)))
			if nil != err {
				return 0, false
			}
			f.consumed = true
			return n, true
		}
	}
	return 0, false
}

// expand renders a ${name} template against the event's properties.
func (ef *eventFields) expand(tmpl string) string {
	return os.Expand(tmpl, func(name string) string {
		if f, ok := ef.index[strings.ToLower(name)]; ok {
			f.consumed = true
			return stringify(f.value)
		}
		return ""
	})
}

func (ef *eventFields) leftovers() []Item {
	var items []Item
	for _, f := range ef.fields {
		if !f.consumed {
			items = append(items, Item{Key: f.key, Value: stringify(f.value)})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}

// FromFields builds a Message from a log event by applying the standard
// field cascade.  The templates in cfg take precedence over the well-known
// property names; an empty template falls through to the cascade.  Fields is
// typically the structured data attached to the log entry by the logging
// framework, and may be nil.
func FromFields(title string, severity Severity, when time.Time, fields map[string]interface{}, cfg *Config) *Message {
	if nil == cfg {
		cfg = &Config{}
	}
	ef := newEventFields(fields)

	m := &Message{
		Title:    title,
		Severity: severity,
		DateTime: when.UTC(),
	}

	var errText, errType string
	if v, ok := ef.take(errorKeys...); ok {
		if err, isErr := v.(error); isErr {
			errText = err.Error()
			errType = fmt.Sprintf("%T", err)
		} else {
			errText = stringify(v)
		}
	}

	lookup := func(tmpl string, keys ...string) string {
		if "" != tmpl {
			if s := ef.expand(tmpl); "" != s {
				return s
			}
		}
		return ef.takeString(keys...)
	}

	m.Hostname = lookup(cfg.Hostname, hostnameKeys...)
	if "" == m.Hostname {
		if h, err := os.Hostname(); nil == err {
			m.Hostname = h
		}
	}

	m.User = lookup(cfg.User, userKeys...)
	m.URL = lookup(cfg.URL, urlKeys...)
	m.Method = lookup(cfg.Method, methodKeys...)
	m.Version = lookup(cfg.Version, versionKeys...)
	m.Source = lookup(cfg.Source, sourceKeys...)
	m.CorrelationID = lookup(cfg.CorrelationID, correlationKeys...)
	m.Category = ef.takeString(categoryKeys...)
	m.Type = ef.takeString(typeKeys...)

	m.Application = cfg.Application
	if "" == m.Application {
		m.Application = ef.takeString(applicationKeys...)
	}

	if "" != cfg.StatusCode {
		if s := ef.expand(cfg.StatusCode); "" != s {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); nil == err {
				m.StatusCode = n
			}
		}
	}
	if 0 == m.StatusCode {
		if n, ok := ef.takeInt(statusCodeKeys...); ok {
			m.StatusCode = n
		}
	}

	if "" != errText {
		m.Detail = errText
		if "" == m.Type {
			m.Type = errType
		}
		if "" == m.Source {
			m.Source = m.Type
		}
		// An error with no explicit code reports as a server error.
		if 0 == m.StatusCode {
			m.StatusCode = 500
		}
	}
	if "" == m.Detail {
		m.Detail = ef.takeString(detailKeys...)
	}

	if v, ok := ef.take(cookiesKeys...); ok {
		m.Cookies = itemsFromValue(v)
	}
	if v, ok := ef.take(formKeys...); ok {
		m.Form = itemsFromValue(v)
	}
	if v, ok := ef.take(queryStringKeys...); ok {
		m.QueryString = itemsFromValue(v)
	}
	if v, ok := ef.take(serverVarsKeys...); ok {
		m.ServerVariables = itemsFromValue(v)
	}

	m.Data = ef.leftovers()

	return m
}
