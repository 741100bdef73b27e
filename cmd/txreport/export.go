package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nao1215/txreport/internal/model"
	"github.com/nao1215/txreport/internal/report"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <format> [format...]",
		Short: "Export transactions as one or more reports",
		Long: `Export generates reports from the transaction database.

Supported formats: csv, json, pdf, md, xlsx.

With a single format the report is written to standard output, or to the
file given with --output. With several formats, or when --dir is set, every
report is written to <dir>/report.<format>, generated concurrently.

Examples:
  # Print a CSV report
  txreport export csv

  # Write a PDF report
  txreport export pdf -o monthly.pdf

  # Write all formats into ./out
  txreport export csv json pdf md xlsx --dir out

  # Indented JSON
  txreport export json --pretty`,
		Args: cobra.MinimumNArgs(1),
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("output", "o", "",
		"Write a single report to the specified file path (creates directories if needed)")
	cmd.Flags().StringP("dir", "d", "",
		"Write reports as report.<format> into the specified directory")
	cmd.Flags().Bool("pretty", false, "Indent JSON output")
	cmd.Flags().StringP("title", "t", "", "Report title for PDF and Markdown (overrides configuration)")

	return cmd
}

// exportJob pairs a requested format with its resolved encoder.
type exportJob struct {
	format  string
	encoder report.Encoder
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, logger, err := prepare(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	output, err := flags.GetString("output")
	if err != nil {
		return err
	}
	dir, err := flags.GetString("dir")
	if err != nil {
		return err
	}
	pretty, err := flags.GetBool("pretty")
	if err != nil {
		return err
	}
	title, err := flags.GetString("title")
	if err != nil {
		return err
	}
	if title == "" {
		title = cfg.ReportTitle
	}

	if output != "" && dir != "" {
		return errors.New("--output cannot be combined with --dir")
	}

	opts := []report.RegistryOption{report.WithTitle(title)}
	if pretty {
		opts = append(opts, report.WithPrettyJSON())
	}
	registry := report.DefaultRegistry(opts...)

	// Every format is resolved before the database is opened. Identifiers
	// naming the same format, such as csv and CSV, export once.
	jobs := make([]exportJob, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, format := range args {
		enc, err := registry.Resolve(format)
		if err != nil {
			return err
		}
		if seen[enc.Extension()] {
			continue
		}
		seen[enc.Extension()] = true
		jobs = append(jobs, exportJob{format: format, encoder: enc})
	}
	if output != "" && len(jobs) > 1 {
		return errors.New("--output can only be used with a single format")
	}

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(jobs) == 1 && dir == "" {
		out, err := report.Generate(ctx, db, jobs[0].encoder)
		if err != nil {
			return err
		}
		if output == "" {
			_, err := cmd.OutOrStdout().Write(out.Content)
			return err
		}
		if err := writeFile(output, out.Content); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to: %s\n", output)
		return nil
	}

	if dir == "" {
		dir = "."
	}
	return exportAll(ctx, db, jobs, dir, cmd.ErrOrStderr(), logger)
}

// exportAll generates every job concurrently and writes report.<format>
// files into dir. The first failure cancels the remaining jobs. All jobs
// encode the same snapshot: src is read once.
func exportAll(ctx context.Context, src report.Source, jobs []exportJob, dir string, w io.Writer, logger *slog.Logger) error {
	fetch := sync.OnceValues(func() ([]model.Transaction, error) {
		return src.FetchAll(ctx)
	})
	snapshot := report.SourceFunc(func(context.Context) ([]model.Transaction, error) {
		return fetch()
	})

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	outputs := make([]*model.Output, len(jobs))
	for i, job := range jobs {
		eg.Go(func() error {
			out, err := report.Generate(ctx, snapshot, job.encoder)
			if err != nil {
				return fmt.Errorf("%s: %w", strings.ToLower(job.format), err)
			}
			path := filepath.Join(dir, out.Filename())
			if err := writeFile(path, out.Content); err != nil {
				return err
			}
			logger.Debug("report written",
				slog.String("format", job.encoder.Extension()),
				slog.String("path", path),
				slog.Int("bytes", len(out.Content)),
			)
			outputs[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for _, out := range outputs {
		fmt.Fprintf(w, "Report written to: %s\n", filepath.Join(dir, out.Filename()))
	}
	return nil
}

// writeFile writes content to path, creating parent directories if needed.
func writeFile(path string, content []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
