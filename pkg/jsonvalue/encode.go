package jsonvalue

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Inline encodes v on a single line with ", " between elements and ": "
// between keys and values, e.g. {"title": "foo", "tags": [1, 2]}.
func (v Value) Inline() []byte {
	var buf bytes.Buffer
	v.encode(&buf, "", 0)
	return buf.Bytes()
}

// Indent encodes v across lines, nesting each level by indent. Empty arrays
// and objects stay on one line as [] and {}.
func (v Value) Indent(indent string) []byte {
	if indent == "" {
		return v.Inline()
	}
	var buf bytes.Buffer
	v.encode(&buf, indent, 0)
	return buf.Bytes()
}

// MarshalJSON emits the compact form, so a Value can be logged or embedded
// with encoding/json without losing member order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, v.Inline()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer, indent string, depth int) {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(v.text)
	case String:
		writeString(buf, v.text)
	case Array:
		if len(v.items) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, item := range v.items {
			separate(buf, indent, depth+1, i > 0)
			item.encode(buf, indent, depth+1)
		}
		closeContainer(buf, indent, depth)
		buf.WriteByte(']')
	case Object:
		if len(v.members) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i, m := range v.members {
			separate(buf, indent, depth+1, i > 0)
			writeString(buf, m.Key)
			buf.WriteString(": ")
			m.Value.encode(buf, indent, depth+1)
		}
		closeContainer(buf, indent, depth)
		buf.WriteByte('}')
	}
}

func separate(buf *bytes.Buffer, indent string, depth int, notFirst bool) {
	if indent == "" {
		if notFirst {
			buf.WriteString(", ")
		}
		return
	}
	if notFirst {
		buf.WriteByte(',')
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

func closeContainer(buf *bytes.Buffer, indent string, depth int) {
	if indent == "" {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(indent, depth))
}

func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}
