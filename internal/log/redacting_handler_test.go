package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// TestRedactingHandler_RedactsSensitiveKeys tests that sensitive keys are redacted.
func TestRedactingHandler_RedactsSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{name: "cookie key is redacted", key: "cookie", value: "session=abc123", wantMask: true},
		{name: "Authorization key (mixed case) is redacted", key: "Authorization", value: "Bearer abc", wantMask: true},
		{name: "password key is redacted", key: "password", value: "hunter2", wantMask: true},
		{name: "key containing token is redacted", key: "csrf_token_value", value: "abc", wantMask: true},
		{name: "iban key is redacted", key: "iban", value: "whatever", wantMask: true},
		{name: "card_number key is redacted", key: "customer_card_number", value: "card-ending-x", wantMask: true},
		{name: "format key is kept", key: "format", value: "pdf", wantMask: false},
		{name: "primary_key is kept", key: "primary_key", value: "42", wantMask: false},
		{name: "description is kept", key: "description", value: "Groceries", wantMask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", tt.key, tt.value)

			output := buf.String()
			masked := strings.Contains(output, MaskValue)
			if masked != tt.wantMask {
				t.Errorf("expected masked=%v, got output %q", tt.wantMask, output)
			}
			if tt.wantMask && strings.Contains(output, tt.value) {
				t.Errorf("expected value %q to be removed, got %q", tt.value, output)
			}
		})
	}
}

// TestRedactingHandler_RedactsSensitiveValues tests value pattern matching.
func TestRedactingHandler_RedactsSensitiveValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		wantMask bool
	}{
		{name: "bearer token", value: "Bearer abc.def", wantMask: true},
		{name: "jwt", value: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.sig", wantMask: true},
		{name: "card number with spaces", value: "4111 1111 1111 1111", wantMask: true},
		{name: "iban", value: "DE89370400440532013000", wantMask: true},
		{name: "decimal amount", value: "123,45", wantMask: false},
		{name: "date", value: "15/03/2024", wantMask: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", "value", tt.value)

			if masked := strings.Contains(buf.String(), MaskValue); masked != tt.wantMask {
				t.Errorf("expected masked=%v, got output %q", tt.wantMask, buf.String())
			}
		})
	}
}

// TestRedactingHandler_Groups tests that redaction applies inside groups and WithAttrs.
func TestRedactingHandler_Groups(t *testing.T) {
	t.Parallel()

	t.Run("redacts inside group attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewRedactingHandler(slog.NewJSONHandler(&buf, nil)))
		logger.Info("request", slog.Group("headers", slog.String("cookie", "sid=1"), slog.String("accept", "text/csv")))

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("invalid json output: %v", err)
		}
		headers, ok := entry["headers"].(map[string]any)
		if !ok {
			t.Fatalf("expected headers group, got %v", entry)
		}
		if headers["cookie"] != MaskValue {
			t.Errorf("expected cookie to be redacted, got %v", headers["cookie"])
		}
		if headers["accept"] != "text/csv" {
			t.Errorf("expected accept to be kept, got %v", headers["accept"])
		}
	})

	t.Run("redacts attributes added with With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(NewRedactingHandler(slog.NewTextHandler(&buf, nil))).
			With("token", "abc").
			WithGroup("req")
		logger.Info("done", "secret", "xyz")

		output := buf.String()
		if strings.Contains(output, "abc") || strings.Contains(output, "xyz") {
			t.Errorf("expected secrets to be redacted, got %q", output)
		}
		if !strings.Contains(output, "req.secret="+MaskValue) {
			t.Errorf("expected grouped key, got %q", output)
		}
	})
}

// TestNewLogger tests format and level selection.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		NewLogger(&buf, Options{Level: slog.LevelInfo, Format: FormatJSON}).Info("hello")
		if !json.Valid(bytes.TrimSpace(buf.Bytes())) {
			t.Errorf("expected json output, got %q", buf.String())
		}
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewLogger(&buf, Options{Level: slog.LevelWarn})
		logger.Info("hidden")
		logger.Warn("shown")

		if strings.Contains(buf.String(), "hidden") {
			t.Error("expected info record to be filtered")
		}
		if !strings.Contains(buf.String(), "shown") {
			t.Error("expected warn record to be written")
		}
	})
}

// TestParseLevel tests level name parsing.
func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		verbose bool
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "error", verbose: true, want: slog.LevelDebug},
		{input: "trace", wantErr: true, want: slog.LevelInfo},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input, tt.verbose)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q): unexpected error state %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
