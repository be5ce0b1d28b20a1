// Package executor sends a single request to the configured API.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/Adda-Baaj/restful/internal/domain"
	"github.com/Adda-Baaj/restful/internal/logger"
	"github.com/Adda-Baaj/restful/pkg/httpclient"
	"github.com/Adda-Baaj/restful/pkg/jsonvalue"
)

const contentTypeJSON = "application/json"

// Executor builds requests against a fixed base URL and sends them.
type Executor struct {
	baseURL string
	client  httpclient.Client
	log     logger.Logger
}

// New returns an Executor. baseURL is prepended verbatim to every endpoint.
func New(baseURL string, client httpclient.Client, log logger.Logger) *Executor {
	return &Executor{
		baseURL: baseURL,
		client:  client,
		log:     logger.Ensure(log),
	}
}

// NewRequest parses method and joins the endpoint onto the base URL.
func (e *Executor) NewRequest(method, endpoint string, body *jsonvalue.Value) (domain.Request, error) {
	m, err := domain.ParseMethod(method)
	if err != nil {
		return domain.Request{}, err
	}
	return domain.NewRequest(m, e.baseURL, endpoint, body), nil
}

// Execute sends req. GET carries no body; POST carries the JSON payload, or
// null when none was supplied.
func (e *Executor) Execute(ctx context.Context, req domain.Request) (*domain.Response, error) {
	if e == nil || e.client == nil {
		return nil, fmt.Errorf("executor is not initialized")
	}

	meta := map[string]any{
		"method": req.Method(),
		"url":    req.URL(),
	}
	if body, ok := req.Body(); ok {
		meta["body"] = body
	}
	e.log.DebugObj("sending request", "request_meta", meta)

	start := time.Now()
	var (
		resp httpclient.Response
		err  error
	)
	switch req.Method() {
	case domain.MethodGet:
		if _, ok := req.Body(); ok {
			e.log.DebugObj("ignoring request body on GET", "url", req.URL())
		}
		resp, err = e.client.Get(ctx, req.URL(), nil)
	case domain.MethodPost:
		body, _ := req.Body()
		headers := map[string]string{"Content-Type": contentTypeJSON}
		resp, err = e.client.Post(ctx, req.URL(), body.Inline(), headers)
	default:
		return nil, domain.Errorf(domain.KindUnsupportedMethod, "execute",
			"unsupported method %q: only GET and POST are allowed", req.Method())
	}
	if err != nil {
		return nil, domain.Wrap(domain.KindTransport, "request failed", err)
	}

	out := &domain.Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Body(),
	}
	e.log.DebugObj("response received", "response_meta", map[string]any{
		"status":     out.StatusCode,
		"bytes":      len(out.Body),
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return out, nil
}
