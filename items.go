package logward

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Item is a key/value pair.  The cookies, form, queryString, serverVariables
// and data fields of a Message are uniform lists of items.
type Item struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DecodeItems converts the semi-structured forms found in log event
// properties into a list of items.  Three forms are accepted: a JSON array
// of {"key":...,"value":...} objects, a JSON object, and k=v pairs
// separated by '&' or ','.  Input that matches none of the forms yields a
// single item with an empty value.
func DecodeItems(s string) []Item {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil
	}

	if strings.HasPrefix(s, "[") {
		var items []Item
		if err := json.Unmarshal([]byte(s), &items); nil == err {
			return items
		}
	}

	if strings.HasPrefix(s, "{") {
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(s), &m); nil == err {
			return itemsFromMap(m)
		}
	}

	sep := "&"
	if !strings.Contains(s, "&") && strings.Contains(s, ",") {
		sep = ","
	}

	var items []Item
	for _, pair := range strings.Split(s, sep) {
		pair = strings.TrimSpace(pair)
		if "" == pair {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		item := Item{Key: strings.TrimSpace(kv[0])}
		if 2 == len(kv) {
			item.Value = strings.TrimSpace(kv[1])
		}
		items = append(items, item)
	}
	return items
}

// EncodeItems renders items in the k=v&k=v text form.
func EncodeItems(items []Item) string {
	if 0 == len(items) {
		return ""
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Key + "=" + item.Value
	}
	return strings.Join(parts, "&")
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

func itemsFromMap(m map[string]interface{}) []Item {
	items := make([]Item, 0, len(m))
	for k, v := range m {
		items = append(items, Item{Key: k, Value: stringify(v)})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}

func itemsFromMultimap(m map[string][]string) []Item {
	items := make([]Item, 0, len(m))
	for k, vs := range m {
		items = append(items, Item{Key: k, Value: strings.Join(vs, ",")})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key < items[j].Key })
	return items
}

// itemsFromValue accepts the property types that logging frameworks commonly
// attach request data as.
func itemsFromValue(v interface{}) []Item {
	switch t := v.(type) {
	case nil:
		return nil
	case []Item:
		return t
	case string:
		return DecodeItems(t)
	case url.Values:
		return itemsFromMultimap(t)
	case http.Header:
		return itemsFromMultimap(t)
	case map[string][]string:
		return itemsFromMultimap(t)
	case map[string]string:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[k] = val
		}
		return itemsFromMap(m)
	case map[string]interface{}:
		return itemsFromMap(t)
	case []*http.Cookie:
		items := make([]Item, len(t))
		for i, c := range t {
			items[i] = Item{Key: c.Name, Value: c.Value}
		}
		return items
	case fmt.Stringer:
		return DecodeItems(t.String())
	}
	return nil
}
