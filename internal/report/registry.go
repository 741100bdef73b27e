package report

import (
	"slices"
	"strings"
	"sync"
	"time"
)

// Format identifiers of the built-in encoders.
const (
	FormatCSV      = "csv"
	FormatJSON     = "json"
	FormatPDF      = "pdf"
	FormatMarkdown = "md"
	FormatXLSX     = "xlsx"
)

// DefaultTitle is the document title used by the PDF and Markdown encoders.
const DefaultTitle = "Transaction Report"

// Registry maps format identifiers to encoders.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	encoders map[string]Encoder
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{encoders: make(map[string]Encoder)}
}

// Register associates format with enc, replacing any previous encoder.
// Format identifiers are case-insensitive.
func (r *Registry) Register(format string, enc Encoder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.encoders[normalizeFormat(format)] = enc
}

// Resolve returns the encoder registered for format, or an
// *UnsupportedFormatError if there is none.
func (r *Registry) Resolve(format string) (Encoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enc, ok := r.encoders[normalizeFormat(format)]
	if !ok {
		return nil, &UnsupportedFormatError{Format: format}
	}
	return enc, nil
}

// Formats returns the registered format identifiers in sorted order.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.encoders))
	for f := range r.encoders {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}

// registryConfig holds the options of DefaultRegistry.
type registryConfig struct {
	title      string
	clock      func() time.Time
	jsonIndent string
}

// RegistryOption configures DefaultRegistry.
type RegistryOption func(*registryConfig)

// WithTitle sets the title of documents that have one (PDF, Markdown).
func WithTitle(title string) RegistryOption {
	return func(c *registryConfig) {
		if title != "" {
			c.title = title
		}
	}
}

// WithRegistryClock sets the clock used for the generation date of
// documents that print one.
func WithRegistryClock(clock func() time.Time) RegistryOption {
	return func(c *registryConfig) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithPrettyJSON makes the JSON encoder indent its output by two spaces.
func WithPrettyJSON() RegistryOption {
	return func(c *registryConfig) {
		c.jsonIndent = "  "
	}
}

// DefaultRegistry returns a Registry holding every built-in encoder.
func DefaultRegistry(opts ...RegistryOption) *Registry {
	cfg := &registryConfig{
		title: DefaultTitle,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var jsonOpts []JSONEncoderOption
	if cfg.jsonIndent != "" {
		jsonOpts = append(jsonOpts, WithJSONIndent("", cfg.jsonIndent))
	}

	r := NewRegistry()
	r.Register(FormatCSV, NewCSVEncoder())
	r.Register(FormatJSON, NewJSONEncoder(jsonOpts...))
	r.Register(FormatPDF, NewPDFEncoder(WithPDFTitle(cfg.title), WithPDFClock(cfg.clock)))
	r.Register(FormatMarkdown, NewMarkdownEncoder(WithMarkdownTitle(cfg.title), WithMarkdownClock(cfg.clock)))
	r.Register(FormatXLSX, NewXLSXEncoder())
	return r
}
