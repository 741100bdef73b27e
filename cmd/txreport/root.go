package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for txreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "txreport",
		Short: "Export financial transactions as reports",
		Long: `txreport exports a dataset of financial transactions into CSV, JSON, PDF,
Markdown or XLSX reports.

Transactions are imported from semicolon-separated files into a local SQLite
database and can be exported from the command line or served over HTTP.

Settings are read from a .txreport file (current directory, then home
directory, then $XDG_CONFIG_HOME/txreport/config.yaml), then from TXREPORT_* environment variables and a .env file,
then from command line flags.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .txreport in current or home directory)")
	cmd.PersistentFlags().String("env-file", "",
		"Dotenv file with TXREPORT_* variables (default: .env if present)")
	cmd.PersistentFlags().String("db-dir", "",
		"Directory of the transaction database (default: XDG data directory)")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewBatchesCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
