package locale

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the regional day/month/year layout used by every
	// human-facing format (CSV, PDF, Markdown, XLSX).
	DateLayout = "02/01/2006"

	// ISODateLayout is the machine-readable year-month-day layout used by JSON.
	ISODateLayout = "2006-01-02"

	// DecimalSeparator separates the integer and fractional parts of a value
	// in regional output.
	DecimalSeparator = ","
)

// ErrGroupedDecimal is returned by ParseDecimal when the input contains a '.'.
// Regional values never use digit grouping, so a dot is either a grouping
// separator or a canonical decimal point; both are rejected as ambiguous.
var ErrGroupedDecimal = errors.New("unexpected '.' in value: use ',' as the decimal separator and no digit grouping")

// PlainDecimal renders d in plain notation with a '.' decimal point.
// The scale of d is preserved, so 123.40 stays "123.40", and exponents are
// expanded ("1E+3" becomes "1000").
func PlainDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// FormatDecimal renders d in plain notation with ',' as decimal separator.
func FormatDecimal(d decimal.Decimal) string {
	return strings.Replace(PlainDecimal(d), ".", DecimalSeparator, 1)
}

// FormatDate renders t as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatISODate renders t as yyyy-mm-dd.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ParseDecimal parses a regional value such as "1234,56" or "-0,5".
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errors.New("empty value")
	}
	if strings.Contains(s, ".") {
		return decimal.Decimal{}, ErrGroupedDecimal
	}
	d, err := decimal.NewFromString(strings.Replace(s, DecimalSeparator, ".", 1))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid value %q: %w", s, err)
	}
	return d, nil
}

// ParseDate parses a dd/mm/yyyy date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected dd/mm/yyyy): %w", s, err)
	}
	return t, nil
}

// ParseISODate parses a yyyy-mm-dd date into UTC midnight.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected yyyy-mm-dd): %w", s, err)
	}
	return t, nil
}
