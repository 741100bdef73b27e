package locale

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatDecimal(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"two decimal places", "123.45", "123,45"},
		{"trailing zero is kept", "123.40", "123,40"},
		{"integer", "1000", "1000"},
		{"exponent is expanded", "1E+3", "1000"},
		{"negative", "-0.5", "-0,5"},
		{"no grouping for large values", "1234567.89", "1234567,89"},
		{"small fraction", "0.000001", "0,000001"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatDecimal(decimal.RequireFromString(tc.input))
			if got != tc.expected {
				t.Errorf("FormatDecimal(%s) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestPlainDecimal(t *testing.T) {
	t.Parallel()

	t.Run("uses dot as decimal point", func(t *testing.T) {
		t.Parallel()
		if got := PlainDecimal(decimal.RequireFromString("123.45")); got != "123.45" {
			t.Errorf("expected 123.45, got %q", got)
		}
	})

	t.Run("never uses exponent notation", func(t *testing.T) {
		t.Parallel()
		if got := PlainDecimal(decimal.New(15, 6)); got != "15000000" {
			t.Errorf("expected 15000000, got %q", got)
		}
	})
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	if got := FormatDate(date); got != "15/03/2024" {
		t.Errorf("FormatDate = %q, expected 15/03/2024", got)
	}
	if got := FormatISODate(date); got != "2024-03-15" {
		t.Errorf("FormatISODate = %q, expected 2024-03-15", got)
	}
}

func TestParseDecimal(t *testing.T) {
	t.Parallel()

	t.Run("parses comma decimals", func(t *testing.T) {
		t.Parallel()
		d, err := ParseDecimal("1234,56")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Equal(decimal.RequireFromString("1234.56")) {
			t.Errorf("expected 1234.56, got %s", d)
		}
	})

	t.Run("round trips with FormatDecimal", func(t *testing.T) {
		t.Parallel()
		original := decimal.RequireFromString("-98.10")
		d, err := ParseDecimal(FormatDecimal(original))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Equal(original) || d.Exponent() != original.Exponent() {
			t.Errorf("expected %s with same scale, got %s", original, d)
		}
	})

	t.Run("rejects dot", func(t *testing.T) {
		t.Parallel()
		_, err := ParseDecimal("1.234,56")
		if !errors.Is(err, ErrGroupedDecimal) {
			t.Errorf("expected ErrGroupedDecimal, got %v", err)
		}
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseDecimal("  "); err == nil {
			t.Error("expected error for empty input")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseDecimal("12,3,4"); err == nil {
			t.Error("expected error for malformed input")
		}
	})
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	t.Run("parses day first", func(t *testing.T) {
		t.Parallel()
		got, err := ParseDate("01/02/2024")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Month() != time.February || got.Day() != 1 {
			t.Errorf("expected 1 February, got %s", got)
		}
	})

	t.Run("rejects ISO input", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseDate("2024-02-01"); err == nil {
			t.Error("expected error for ISO date")
		}
	})

	t.Run("parses ISO date", func(t *testing.T) {
		t.Parallel()
		got, err := ParseISODate("2024-02-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if FormatDate(got) != "01/02/2024" {
			t.Errorf("unexpected date %s", got)
		}
	})
}
