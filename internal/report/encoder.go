package report

import (
	"context"

	"github.com/nao1215/txreport/internal/model"
)

// Source provides the transactions a report is built from.
// The returned order is the row order of the report.
type Source interface {
	FetchAll(ctx context.Context) ([]model.Transaction, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) ([]model.Transaction, error)

// FetchAll calls f(ctx).
func (f SourceFunc) FetchAll(ctx context.Context) ([]model.Transaction, error) {
	return f(ctx)
}

// Encoder converts transactions into one output format.
//
// Design decision: We use an interface so the registry can hold encoders for
// unrelated formats side by side, and so callers can register their own
// formats without touching this package.
type Encoder interface {
	// MediaType returns the MIME type of the encoded payload.
	MediaType() string

	// Disposition returns model.DispositionInline or model.DispositionAttachment.
	Disposition() string

	// Extension returns the file extension of the payload, without a dot.
	Extension() string

	// Encode renders records in the given order. It never returns a partial
	// payload: on failure the returned bytes are nil.
	Encode(records []model.Transaction) ([]byte, error)
}

// baseEncoder provides the static metadata shared by all encoders.
type baseEncoder struct {
	mediaType   string
	disposition string
	extension   string
}

// newBaseEncoder creates a baseEncoder with the given metadata.
func newBaseEncoder(mediaType, disposition, extension string) baseEncoder {
	return baseEncoder{
		mediaType:   mediaType,
		disposition: disposition,
		extension:   extension,
	}
}

// MediaType returns the MIME type of the encoded payload.
func (b baseEncoder) MediaType() string { return b.mediaType }

// Disposition returns the disposition hint of the encoded payload.
func (b baseEncoder) Disposition() string { return b.disposition }

// Extension returns the file extension of the encoded payload.
func (b baseEncoder) Extension() string { return b.extension }

// encodingError wraps err as an EncodingError for this encoder's format.
func (b baseEncoder) encodingError(err error) error {
	return &EncodingError{Format: b.extension, Err: err}
}
