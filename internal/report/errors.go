package report

import "fmt"

// GenerationError is returned by Generate when a report cannot be produced,
// either because there is nothing to report or because fetching or encoding
// failed.
//
// GenerationError carries only a message. It does not implement Unwrap; the
// cause is visible through the message alone.
type GenerationError struct {
	msg string
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return e.msg
}

// newGenerationError builds a GenerationError from the cause's message.
func newGenerationError(cause error) *GenerationError {
	return &GenerationError{msg: "failed to generate report: " + cause.Error()}
}

// errNoTransactions is the GenerationError for an empty data set.
func errNoTransactions() *GenerationError {
	return &GenerationError{msg: "no transactions found"}
}

// UnsupportedFormatError is returned when no encoder is registered for a
// format identifier.
type UnsupportedFormatError struct {
	Format string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported report format: %q", e.Format)
}

// EncodingError is returned by an Encoder when serialization fails.
type EncodingError struct {
	Format string
	Err    error
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error.
func (e *EncodingError) Unwrap() error {
	return e.Err
}
