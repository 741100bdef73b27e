package server

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/nao1215/txreport/internal/report"
)

// ReportHandler serves report generation endpoints.
type ReportHandler struct {
	registry *report.Registry
	source   report.Source
	metrics  *Metrics
	logger   *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(registry *report.Registry, source report.Source, metrics *Metrics, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		registry: registry,
		source:   source,
		metrics:  metrics,
		logger:   logger.With(slog.String("handler", "report")),
	}
}

// FormatsResponse lists the supported format identifiers.
type FormatsResponse struct {
	Formats []string `json:"formats"`
}

// ListFormats handles GET /reports.
func (h *ReportHandler) ListFormats(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, FormatsResponse{Formats: h.registry.Formats()})
}

// GetReport handles GET /reports/{format}. The encoder is resolved before
// any data is read, so an unknown format never touches the data source.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	format := chi.URLParam(r, "format")

	enc, err := h.registry.Resolve(format)
	if err != nil {
		h.metrics.observeUnsupported()
		h.logger.WarnContext(ctx, "unsupported report format", slog.String("format", format))
		writeError(w, r, newAPIError(http.StatusBadRequest, CodeUnsupportedFormat, err.Error()))
		return
	}

	start := time.Now()
	out, err := report.Generate(ctx, h.source, enc)
	elapsed := time.Since(start)
	if err != nil {
		h.metrics.observeFailure(enc.Extension(), elapsed)
		h.logger.ErrorContext(ctx, "report generation failed",
			slog.String("format", enc.Extension()),
			slog.String("error", err.Error()),
		)
		writeError(w, r, newAPIError(http.StatusInternalServerError, CodeReportGenerationFailed, err.Error()))
		return
	}
	h.metrics.observeSuccess(enc.Extension(), elapsed, len(out.Content))

	h.logger.InfoContext(ctx, "report generated",
		slog.String("format", enc.Extension()),
		slog.Int("bytes", len(out.Content)),
		slog.Duration("duration", elapsed),
	)

	w.Header().Set("Content-Type", out.MediaType)
	w.Header().Set("Content-Disposition", out.ContentDisposition())
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out.Content); err != nil {
		h.logger.DebugContext(ctx, "failed to write report body", slog.String("error", err.Error()))
	}
}

// HealthHandler serves the liveness check.
type HealthHandler struct {
	logger *slog.Logger
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger: logger.With(slog.String("handler", "health")),
	}
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health handles GET /healthz.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "health check", slog.String("remote_addr", r.RemoteAddr))
	render.JSON(w, r, HealthResponse{Status: "ok"})
}
