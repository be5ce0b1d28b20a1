package render

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/Adda-Baaj/restful/internal/domain"
	"github.com/Adda-Baaj/restful/pkg/jsonvalue"
)

const (
	// Supported output extensions.
	ExtJSON = ".json"
	ExtCSV  = ".csv"
)

// Sink writes a decoded response document to a file.
type Sink interface {
	Type() string
	Write(path string, doc jsonvalue.Value) error
}

// Builder creates a Sink.
type Builder func() Sink

// Registry maps output file extensions to sink builders.
type Registry interface {
	Register(ext string, builder Builder)
	SinkFor(path string) (Sink, error)
}

type registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns a registry with optional pre-registered builders.
func NewRegistry(builders map[string]Builder) Registry {
	r := &registry{
		builders: make(map[string]Builder),
	}
	for ext, b := range builders {
		r.Register(ext, b)
	}
	return r
}

// Register associates a builder with a file extension such as ".json".
func (r *registry) Register(ext string, builder Builder) {
	if ext = strings.TrimSpace(ext); ext == "" || builder == nil {
		return
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	r.mu.Lock()
	r.builders[ext] = builder
	r.mu.Unlock()
}

// SinkFor picks the sink whose extension path ends with. Matching is case
// sensitive; the longest registered extension wins.
func (r *registry) SinkFor(path string) (Sink, error) {
	r.mu.RLock()
	exts := make([]string, 0, len(r.builders))
	for ext := range r.builders {
		exts = append(exts, ext)
	}
	r.mu.RUnlock()

	sort.Slice(exts, func(i, j int) bool {
		if len(exts[i]) != len(exts[j]) {
			return len(exts[i]) > len(exts[j])
		}
		return exts[i] < exts[j]
	})

	for _, ext := range exts {
		if !strings.HasSuffix(path, ext) {
			continue
		}
		r.mu.RLock()
		builder := r.builders[ext]
		r.mu.RUnlock()
		return builder(), nil
	}

	sort.Strings(exts)
	return nil, domain.Errorf(domain.KindUnsupportedOutputFormat, "select output",
		"unsupported output format %q: use %s", path, strings.Join(exts, " or "))
}

// DefaultRegistry wires up the .json and .csv sinks.
func DefaultRegistry() Registry {
	builders := map[string]Builder{
		ExtJSON: func() Sink { return jsonSink{} },
		ExtCSV:  func() Sink { return csvSink{} },
	}
	return NewRegistry(builders)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.Wrap(domain.KindOutput, fmt.Sprintf("write %s", path), err)
	}
	return nil
}
