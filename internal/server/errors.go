package server

import (
	"net/http"

	"github.com/go-chi/render"
)

// Error codes returned in API error bodies.
const (
	CodeUnsupportedFormat      = "UNSUPPORTED_FORMAT"
	CodeReportGenerationFailed = "REPORT_GENERATION_FAILED"
	CodeRateLimited            = "RATE_LIMITED"
	CodeInternal               = "INTERNAL_ERROR"
	CodeNotFound               = "NOT_FOUND"
	CodeMethodNotAllowed       = "METHOD_NOT_ALLOWED"
)

// APIError represents a structured API error response.
type APIError struct {
	// StatusCode is the HTTP status; it is not part of the body.
	StatusCode int `json:"-"`

	// Body is the JSON payload.
	Body ErrorBody `json:"error"`
}

// ErrorBody is the content of the "error" member of an error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Body.Message
}

// Render implements the render.Renderer interface for chi/render.
func (e *APIError) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

// newAPIError creates an APIError with the given parameters.
func newAPIError(statusCode int, code, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body: ErrorBody{
			Code:    code,
			Message: message,
		},
	}
}

// writeError renders err as the response.
func writeError(w http.ResponseWriter, r *http.Request, err *APIError) {
	_ = render.Render(w, r, err)
}

// notFound handles unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, newAPIError(http.StatusNotFound, CodeNotFound, "resource not found"))
}

// methodNotAllowed handles known routes with the wrong method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, newAPIError(http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed"))
}
