package internal

import "testing"

func TestJSONString(t *testing.T) {
	if s := JSONString(nil); "" != s {
		t.Error(s)
	}
	if s := JSONString([]byte(`{"a":1}`)); `{"a":1}` != s {
		t.Error(s)
	}
}

func TestCompactJSONString(t *testing.T) {
	out := CompactJSONString(`{
		"a": 1,
		"b": [ "x" ]
	}`)
	if `{"a":1,"b":["x"]}` != out {
		t.Error(out)
	}
}
