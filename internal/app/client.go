package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Adda-Baaj/restful/internal/config"
	"github.com/Adda-Baaj/restful/internal/domain"
	"github.com/Adda-Baaj/restful/internal/executor"
	"github.com/Adda-Baaj/restful/internal/logger"
	"github.com/Adda-Baaj/restful/internal/render"
	"github.com/Adda-Baaj/restful/pkg/httpclient"
	"github.com/Adda-Baaj/restful/pkg/jsonvalue"
)

// Invocation is what the user asked for on the command line.
type Invocation struct {
	Method   string
	Endpoint string
	// Data is the raw -d value; HasData distinguishes an empty string from no flag.
	Data    string
	HasData bool
	Output  string
}

// Client wires configuration, transport, executor and renderer for one request.
type Client struct {
	cfg      *config.Config
	executor *executor.Executor
	renderer *render.Renderer
	log      logger.Logger
}

type options struct {
	httpClient httpclient.Client
	out        io.Writer
}

type Option func(*options)

// WithHTTPClient replaces the resty transport.
func WithHTTPClient(c httpclient.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithOutput redirects status lines and printed documents away from stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// NewClient builds a client runtime from config.
func NewClient(cfg *config.Config, log logger.Logger, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)
	if err := cfg.Validate(); err != nil {
		return nil, domain.Wrap(domain.KindConfig, "validate config", err)
	}

	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = httpclient.NewRestyClient(cfg.Timeout)
	}

	log.DebugObj("client initialized", "client_config", map[string]any{
		"base_url":        cfg.BaseURL,
		"timeout_seconds": int(cfg.Timeout / time.Second),
		"no_color":        cfg.NoColor,
	})

	return &Client{
		cfg:      cfg,
		executor: executor.New(cfg.BaseURL, o.httpClient, log),
		renderer: render.New(
			render.WithWriter(o.out),
			render.WithLogger(log),
			render.WithNoColor(cfg.NoColor),
		),
		log: log,
	}, nil
}

// Run parses the payload, sends the request and renders the response. Every
// failure is returned as a *domain.Error.
func (c *Client) Run(ctx context.Context, inv Invocation) error {
	if c == nil || c.executor == nil {
		return fmt.Errorf("client is not initialized")
	}

	var body *jsonvalue.Value
	if inv.HasData {
		parsed, err := ParseData(inv.Data)
		if err != nil {
			return err
		}
		body = &parsed
	}

	req, err := c.executor.NewRequest(inv.Method, inv.Endpoint, body)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.executor.Execute(ctx, req)
	if err != nil {
		c.log.DebugObj("request failed", "error", err.Error())
		return err
	}

	if err := c.renderer.Render(resp, inv.Output); err != nil {
		return err
	}
	c.log.DebugObj("invocation completed", "invocation_meta", map[string]any{
		"method":     req.Method(),
		"url":        req.URL(),
		"status":     resp.StatusCode,
		"output":     inv.Output,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

// ParseData decodes the -d flag value.
func ParseData(raw string) (jsonvalue.Value, error) {
	v, err := jsonvalue.ParseString(strings.TrimSpace(raw))
	if err != nil {
		return jsonvalue.Value{}, domain.Errorf(domain.KindMalformedInputData, "parse --data",
			"invalid JSON %q: %w", raw, err)
	}
	return v, nil
}
