package config

import (
	"net"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "txreport"

	// DefaultAddr is the listen address of the HTTP server.
	DefaultAddr = ":8080"

	// DefaultReadTimeout bounds how long the server waits for a request.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout bounds how long writing a response may take.
	// Large PDF and XLSX reports take longer to render than typical API
	// responses, so this is more generous than the read timeout.
	DefaultWriteTimeout = 60 * time.Second

	// DefaultShutdownTimeout is how long in-flight requests may take to
	// finish after a shutdown signal.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultReportTitle is the title of PDF and Markdown reports.
	DefaultReportTitle = "Transaction Report"

	// DefaultLogLevel is the minimum level of emitted log records.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the log output format.
	DefaultLogFormat = "text"

	// DefaultRateLimitBurst is the token bucket size used when rate
	// limiting is enabled.
	DefaultRateLimitBurst = 10
)

// Config holds all configuration options for txreport.
// This struct is populated from defaults, the config file, the environment
// and CLI flags, in that order, and passed through the application via
// dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// Addr is the HTTP listen address in "host:port" form.
	Addr string

	// ReadTimeout is the maximum duration for reading an HTTP request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration for writing an HTTP response.
	WriteTimeout time.Duration

	// ShutdownTimeout is the grace period for in-flight requests on shutdown.
	ShutdownTimeout time.Duration

	// DBDir is the directory holding the SQLite database.
	// Defaults to XDG data directory (~/.local/share/txreport on Linux).
	DBDir string

	// ReportTitle is printed at the top of PDF and Markdown reports.
	ReportTitle string

	// LogLevel is one of debug, info, warn or error.
	LogLevel string

	// LogFormat is text or json.
	LogFormat string

	// RateLimitRPS is the sustained number of requests per second allowed
	// per client IP. Zero disables rate limiting.
	RateLimitRPS float64

	// RateLimitBurst is the number of requests a client may make at once.
	RateLimitBurst int

	// Verbose enables detailed log output using slog.LevelDebug,
	// overriding LogLevel.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .txreport in the current directory
	// and then in the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeouts, address).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Addr:            DefaultAddr,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		DBDir:           XDGDataDir(),
		ReportTitle:     DefaultReportTitle,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		RateLimitBurst:  DefaultRateLimitBurst,
	}
}

// XDGDataDir returns the XDG data directory for txreport.
// On Linux: ~/.local/share/txreport
// On macOS: ~/Library/Application Support/txreport
// On Windows: %LOCALAPPDATA%\txreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for txreport.
// On Linux: ~/.config/txreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as one of the sentinel errors in
// errors.go.
func (c *Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		return ErrInvalidAddr
	}

	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	if strings.TrimSpace(c.DBDir) == "" {
		return ErrEmptyDBDir
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return ErrInvalidLogFormat
	}

	if c.RateLimitRPS < 0 {
		return ErrInvalidRateLimit
	}

	// A burst of zero would reject every request once limiting is on
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		return ErrInvalidRateLimitBurst
	}

	return nil
}
