// Package log provides logging with automatic redaction of sensitive
// information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic redaction of credentials and payment identifiers
//   - Text or JSON output selected by configuration
//   - Configurable log levels with verbose mode support
//
// # Redaction
//
// The RedactingHandler masks attribute values before they reach the output:
//   - HTTP headers (Authorization, Cookie, Set-Cookie, X-Api-Key)
//   - Secrets detected by key name (password, token, secret)
//   - Account, card and IBAN numbers, detected by key name or value shape
//
// Transaction descriptions and amounts are not masked; they are the
// product of this service, not secrets.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, log.Options{Level: slog.LevelInfo, Format: log.FormatJSON})
//	logger.Info("request", "authorization", "Bearer abc") // authorization=***REDACTED***
//	slog.SetDefault(logger)
package log
