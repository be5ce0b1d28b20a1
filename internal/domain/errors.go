package domain

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the client can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnsupportedMethod
	KindTransport
	KindHTTP
	KindUnsupportedOutputFormat
	KindDecode
	KindMalformedInputData
	KindEmptyResult
	KindNotTabular
	KindOutput
	KindConfig
	KindUsage
)

var kindNames = map[Kind]string{
	KindUnknown:                 "unknown",
	KindUnsupportedMethod:       "unsupported_method",
	KindTransport:               "transport_error",
	KindHTTP:                    "http_error",
	KindUnsupportedOutputFormat: "unsupported_output_format",
	KindDecode:                  "decode_error",
	KindMalformedInputData:      "malformed_input_data",
	KindEmptyResult:             "empty_result",
	KindNotTabular:              "not_tabular",
	KindOutput:                  "output_error",
	KindConfig:                  "config_error",
	KindUsage:                   "usage_error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error carries a Kind alongside the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case e.Op != "":
		return e.Op + ": " + e.Kind.String()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error of the given kind with a formatted cause.
func Errorf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// Wrap tags err with kind. A nil err stays nil.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
