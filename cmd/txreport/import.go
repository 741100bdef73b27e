package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nao1215/txreport/internal/ingest"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a delimited file",
		Long: `Import reads transactions from a semicolon-separated file and stores them
in the transaction database as one batch.

The file must start with the header

  date;description;value;category

followed by one transaction per line. Dates are dd/mm/yyyy, values use a
comma as decimal separator and the category may be empty. The file is fully
validated first; any invalid row aborts the import and nothing is stored.

Examples:
  txreport import transactions.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}

	return cmd
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, logger, err := prepare(cmd)
	if err != nil {
		return err
	}

	records, err := ingest.NewReader().ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("import aborted: %w", err)
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

	batchID := uuid.NewString()
	n, err := db.InsertTransactions(ctx, batchID, records)
	if err != nil {
		return err
	}

	logger.Info("transactions imported",
		slog.String("batch", batchID),
		slog.Int("count", n),
		slog.String("file", args[0]),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transaction(s) in batch %s\n", n, batchID)
	return nil
}
