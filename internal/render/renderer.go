// Package render prints a response or saves it as JSON or CSV.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/Adda-Baaj/restful/internal/domain"
	"github.com/Adda-Baaj/restful/internal/logger"
	"github.com/Adda-Baaj/restful/pkg/jsonvalue"
	"github.com/fatih/color"
)

// Renderer reports a response on out and optionally hands it to a file sink.
type Renderer struct {
	out     io.Writer
	sinks   Registry
	log     logger.Logger
	noColor bool
}

type Option func(*Renderer)

func WithWriter(w io.Writer) Option {
	return func(r *Renderer) {
		r.out = w
	}
}

func WithRegistry(reg Registry) Option {
	return func(r *Renderer) {
		r.sinks = reg
	}
}

func WithLogger(log logger.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

// WithNoColor disables ANSI colours on the status line.
func WithNoColor(v bool) Option {
	return func(r *Renderer) {
		r.noColor = v
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		out:   os.Stdout,
		sinks: DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = logger.Ensure(r.log)
	return r
}

// Render prints the status line, then either stops on a failed status
// (printing the raw body, never decoding it) or decodes the body and prints
// it or writes it to outputPath.
func (r *Renderer) Render(resp *domain.Response, outputPath string) error {
	if resp == nil {
		return fmt.Errorf("render: nil response")
	}

	fmt.Fprintf(r.out, "HTTP Status: %s\n", r.statusColor(resp.StatusCode).Sprint(resp.StatusCode))

	if !resp.OK() {
		fmt.Fprintln(r.out, "Error: ", resp.Text())
		return domain.Errorf(domain.KindHTTP, "request", "server responded with status %d", resp.StatusCode)
	}

	doc, err := jsonvalue.Parse(resp.Body)
	if err != nil {
		return domain.Wrap(domain.KindDecode, "decode response body", err)
	}

	if outputPath == "" {
		fmt.Fprintf(r.out, "%s\n", doc.Indent(indent))
		return nil
	}
	return r.Save(doc, outputPath)
}

// Save writes doc with the sink registered for outputPath's extension.
func (r *Renderer) Save(doc jsonvalue.Value, outputPath string) error {
	sink, err := r.sinks.SinkFor(outputPath)
	if err != nil {
		return err
	}
	r.log.DebugObj("output sink selected", "output_meta", map[string]any{
		"type": sink.Type(),
		"path": outputPath,
	})

	if err := sink.Write(outputPath, doc); err != nil {
		return err
	}
	r.log.DebugObj("response saved", "path", outputPath)
	fmt.Fprintf(r.out, "Response saved to %s\n", outputPath)
	return nil
}

func (r *Renderer) statusColor(code int) *color.Color {
	var c *color.Color
	switch {
	case code < 300:
		c = color.New(color.FgGreen)
	case code < 400:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed)
	}
	if r.noColor {
		c.DisableColor()
	}
	return c
}
