package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/txreport/internal/config"
	"github.com/nao1215/txreport/internal/database"
	txlog "github.com/nao1215/txreport/internal/log"
)

// loadConfig builds the configuration from defaults, the config file, the
// environment and finally the global flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	envFile, err := flags.GetString("env-file")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.Verbose, err = flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}
	dbDir, err := flags.GetString("db-dir")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	return cfg, nil
}

// validateConfig runs Validate and wraps its error for display.
func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	return nil
}

// setupLogger creates the structured logger described by cfg.
func setupLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := txlog.ParseLevel(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return txlog.NewLogger(w, txlog.Options{
		Level:  level,
		Format: cfg.LogFormat,
	}), nil
}

// openDatabase opens the transaction database in cfg.DBDir.
func openDatabase(cfg *config.Config, logger *slog.Logger) (*database.TransactionDB, error) {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", slog.String("path", db.Path()))
	return db, nil
}

// prepare loads and validates the configuration and builds the logger.
func prepare(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, nil, err
	}
	logger, err := setupLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
