package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidAddr is returned when the listen address is not "host:port".
	ErrInvalidAddr = errors.New("invalid listen address: expected host:port (e.g. :8080)")

	// ErrInvalidTimeout is returned when the read or write timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: read and write timeouts must be positive")

	// ErrInvalidShutdownTimeout is returned when the shutdown timeout is not positive.
	ErrInvalidShutdownTimeout = errors.New("invalid shutdown timeout: must be positive")

	// ErrEmptyDBDir is returned when no database directory is configured.
	ErrEmptyDBDir = errors.New("database directory must not be empty")

	// ErrInvalidLogLevel is returned for a level other than debug, info, warn or error.
	ErrInvalidLogLevel = errors.New("invalid log level: must be debug, info, warn or error")

	// ErrInvalidLogFormat is returned for a format other than text or json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrInvalidRateLimit is returned when the requests-per-second limit is negative.
	// Use 0 to disable rate limiting.
	ErrInvalidRateLimit = errors.New("invalid rate limit: must be non-negative")

	// ErrInvalidRateLimitBurst is returned when rate limiting is enabled with
	// a burst that is not positive.
	ErrInvalidRateLimitBurst = errors.New("invalid rate limit burst: must be positive when rate limiting is enabled")
)
