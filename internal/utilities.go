package internal

import (
	"bytes"
	"encoding/json"
)

// JSONString assists in logging JSON:  Based on the formatter used to log
// Context contents, the contents could be obscured by quote characters.
func JSONString(js []byte) string {
	if nil == js {
		return ""
	}
	return string(js)
}

func compactJSON(js []byte) []byte {
	buf := new(bytes.Buffer)
	if err := json.Compact(buf, js); err != nil {
		return nil
	}
	return buf.Bytes()
}

// CompactJSONString removes the whitespace from a JSON string.  This function
// will panic if the string provided is not valid JSON.
func CompactJSONString(js string) string {
	out := compactJSON([]byte(js))
	if nil == out {
		panic("invalid JSON: " + js)
	}
	return string(out)
}
