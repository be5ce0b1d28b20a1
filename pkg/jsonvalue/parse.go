package jsonvalue

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalid is returned when the input is not a single well-formed JSON value.
var ErrInvalid = errors.New("invalid JSON")

// Parse decodes data into a Value, keeping object member order and number
// literals as they appear in data. Invalid UTF-8 in strings and keys is
// replaced with U+FFFD.
func Parse(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, ErrInvalid
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// ParseString is Parse for string input.
func ParseString(s string) (Value, error) {
	return Parse([]byte(s))
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.True:
		return BoolValue(true)
	case gjson.False:
		return BoolValue(false)
	case gjson.Number:
		return NumberValue(r.Raw)
	case gjson.String:
		return StringValue(validUTF8(r.Str))
	case gjson.JSON:
		if r.IsArray() {
			out := Value{kind: Array, items: []Value{}}
			r.ForEach(func(_, item gjson.Result) bool {
				out.items = append(out.items, fromResult(item))
				return true
			})
			return out
		}
		out := Value{kind: Object, members: []Member{}}
		r.ForEach(func(key, item gjson.Result) bool {
			out.set(validUTF8(key.String()), fromResult(item))
			return true
		})
		return out
	default:
		return NullValue()
	}
}

func validUTF8(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}
