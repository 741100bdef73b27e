package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment variable read by txreport,
// e.g. TXREPORT_ADDR.
const EnvPrefix = "TXREPORT"

// envOverlay lists the settings that can come from the environment.
// Pointer fields stay nil when the variable is unset.
type envOverlay struct {
	Addr            *string        `envconfig:"ADDR"`
	ReadTimeout     *time.Duration `envconfig:"READ_TIMEOUT"`
	WriteTimeout    *time.Duration `envconfig:"WRITE_TIMEOUT"`
	ShutdownTimeout *time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
	DBDir           *string        `envconfig:"DB_DIR"`
	ReportTitle     *string        `envconfig:"REPORT_TITLE"`
	LogLevel        *string        `envconfig:"LOG_LEVEL"`
	LogFormat       *string        `envconfig:"LOG_FORMAT"`
	RateLimitRPS    *float64       `envconfig:"RATE_LIMIT_RPS"`
	RateLimitBurst  *int           `envconfig:"RATE_LIMIT_BURST"`
}

// LoadEnv applies TXREPORT_* environment variables to cfg.
//
// envFile is loaded first with godotenv. Variables already present in the
// process environment win over the file. When envFile is empty, ".env" is
// tried and silently skipped if it does not exist.
func LoadEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	var env envOverlay
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("failed to load config from env: %w", err)
	}
	env.apply(cfg)

	return nil
}

func (e *envOverlay) apply(cfg *Config) {
	if e.Addr != nil {
		cfg.Addr = *e.Addr
	}
	if e.ReadTimeout != nil {
		cfg.ReadTimeout = *e.ReadTimeout
	}
	if e.WriteTimeout != nil {
		cfg.WriteTimeout = *e.WriteTimeout
	}
	if e.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = *e.ShutdownTimeout
	}
	if e.DBDir != nil {
		cfg.DBDir = *e.DBDir
	}
	if e.ReportTitle != nil {
		cfg.ReportTitle = *e.ReportTitle
	}
	if e.LogLevel != nil {
		cfg.LogLevel = *e.LogLevel
	}
	if e.LogFormat != nil {
		cfg.LogFormat = *e.LogFormat
	}
	if e.RateLimitRPS != nil {
		cfg.RateLimitRPS = *e.RateLimitRPS
	}
	if e.RateLimitBurst != nil {
		cfg.RateLimitBurst = *e.RateLimitBurst
	}
}
