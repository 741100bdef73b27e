package report

import (
	"bytes"
	"encoding/json"

	"github.com/nao1215/txreport/internal/model"
)

// JSONEncoder writes the records as a JSON array of objects.
//
// The payload is exactly the array, with no wrapper object. Dates are
// yyyy-mm-dd and values are plain JSON numbers with '.' as decimal point.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because the wire form is defined by model.Transaction's
// MarshalJSON and needs nothing beyond what the standard encoder offers.
type JSONEncoder struct {
	baseEncoder

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONEncoderOption configures a JSONEncoder.
type JSONEncoderOption func(*JSONEncoder)

// WithJSONIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithJSONIndent(prefix, indent string) JSONEncoderOption {
	return func(e *JSONEncoder) {
		e.indent = true
		e.indentPrefix = prefix
		e.indentString = indent
	}
}

// NewJSONEncoder creates a JSONEncoder. Output is compact unless
// WithJSONIndent is given.
func NewJSONEncoder(opts ...JSONEncoderOption) *JSONEncoder {
	e := &JSONEncoder{
		baseEncoder: newBaseEncoder("application/json", model.DispositionInline, FormatJSON),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encode renders records as a JSON array.
func (e *JSONEncoder) Encode(records []model.Transaction) ([]byte, error) {
	if records == nil {
		records = []model.Transaction{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if e.indent {
		enc.SetIndent(e.indentPrefix, e.indentString)
	}

	if err := enc.Encode(records); err != nil {
		return nil, e.encodingError(err)
	}

	// Encoder appends a newline; the payload is the bare array.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
