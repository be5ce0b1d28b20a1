package domain

import (
	"fmt"
	"strings"

	"github.com/Adda-Baaj/restful/pkg/jsonvalue"
)

// Method is an HTTP verb the client is allowed to send.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// ParseMethod normalizes a user supplied verb ("get", "Post") and rejects
// anything other than GET or POST.
func ParseMethod(raw string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(raw)))
	switch m {
	case MethodGet, MethodPost:
		return m, nil
	default:
		return "", &Error{
			Kind: KindUnsupportedMethod,
			Op:   "parse method",
			Err:  fmt.Errorf("unsupported method %q: only GET and POST are allowed", raw),
		}
	}
}

// Request is one outgoing call. It is built once and not changed afterwards.
type Request struct {
	method Method
	url    string
	body   *jsonvalue.Value
}

// NewRequest joins baseURL and endpoint by plain concatenation; no slash
// cleanup is applied.
func NewRequest(method Method, baseURL, endpoint string, body *jsonvalue.Value) Request {
	req := Request{method: method, url: baseURL + endpoint}
	if body != nil {
		cp := *body
		req.body = &cp
	}
	return req
}

func (r Request) Method() Method { return r.method }
func (r Request) URL() string    { return r.url }

// Body returns the JSON payload and whether one was given.
func (r Request) Body() (jsonvalue.Value, bool) {
	if r.body == nil {
		return jsonvalue.Value{}, false
	}
	return *r.body, true
}

// Response is the raw result of a request, before any decoding.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK mirrors the usual client notion of success: anything below 400.
func (r *Response) OK() bool {
	return r != nil && r.StatusCode < 400
}

// Text returns the body as a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}
