package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/txreport/internal/report"
	"github.com/nao1215/txreport/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over HTTP",
		Long: `Serve starts an HTTP server that generates reports from the transaction
database on request.

Endpoints:
  GET /reports            list supported formats
  GET /reports/{format}   download a report (csv, json, pdf, md, xlsx)
  GET /healthz            liveness check
  GET /metrics            Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.

Examples:
  # Listen on the configured address (default :8080)
  txreport serve

  # Listen on another port
  txreport serve --addr :9000`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().String("addr", "", "Listen address (overrides configuration)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := setupLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := report.DefaultRegistry(report.WithTitle(cfg.ReportTitle))
	srv := server.New(server.Options{
		Addr:            cfg.Addr,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
		RateLimitRPS:    cfg.RateLimitRPS,
		RateLimitBurst:  cfg.RateLimitBurst,
	}, registry, db, logger)

	return srv.Run(ctx)
}
