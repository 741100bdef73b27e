package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nao1215/txreport/internal/report"
)

// Options holds the HTTP settings of a Server.
type Options struct {
	// Addr is the listen address, for example ":8080".
	Addr string

	// ReadTimeout bounds reading a request, headers included.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing a response. It must cover the slowest
	// report generation.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout time.Duration

	// RateLimitRPS is the per-client request rate. Zero disables limiting.
	RateLimitRPS float64

	// RateLimitBurst is the per-client burst size.
	RateLimitBurst int
}

// Server is the report HTTP server.
type Server struct {
	opts       Options
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a Server generating reports from source with the encoders of
// registry.
func New(opts Options, registry *report.Registry, source report.Source, logger *slog.Logger) *Server {
	s := &Server{
		opts:   opts,
		logger: logger.With(slog.String("component", "server")),
	}

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           NewRouter(opts, registry, source, NewMetrics(), logger),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
	return s
}

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(opts Options, registry *report.Registry, source report.Source, metrics *Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(StructuredLogger(logger))
	r.Use(Recoverer(logger))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	health := NewHealthHandler(logger)
	r.Get("/healthz", health.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	reports := NewReportHandler(registry, source, metrics, logger)
	r.Group(func(r chi.Router) {
		if opts.RateLimitRPS > 0 {
			r.Use(RateLimiter(opts.RateLimitRPS, opts.RateLimitBurst))
		}
		r.Get("/reports", reports.ListFormats)
		r.Get("/reports/{format}", reports.GetReport)
	})

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run listens on the configured address and serves until ctx is canceled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("addr", ln.Addr().String()))
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
