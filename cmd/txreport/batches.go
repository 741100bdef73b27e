package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// batchTimeLayout is the layout of the import time column.
const batchTimeLayout = "2006-01-02 15:04:05"

// NewBatchesCmd creates the batches command.
func NewBatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batches",
		Short: "List import batches",
		Long: `Batches lists every import batch stored in the transaction database, in
import order, with its transaction count and import time.`,
		Args: cobra.NoArgs,
		RunE: runBatchesCmd,
	}
}

// runBatchesCmd executes the batches command.
func runBatchesCmd(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := prepare(cmd)
	if err != nil {
		return err
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

	batches, err := db.ListBatches(ctx)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(batches) == 0 {
		fmt.Fprintln(w, "No import batches found.")
		return nil
	}

	total, err := db.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%-36s  %8s  %s\n", "BATCH", "COUNT", "IMPORTED AT")
	for _, b := range batches {
		fmt.Fprintf(w, "%-36s  %8d  %s\n", b.ID, b.Count, b.ImportedAt.Format(batchTimeLayout))
	}
	fmt.Fprintf(w, "\n%d transaction(s) in %d batch(es)\n", total, len(batches))
	return nil
}
