package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nao1215/txreport/internal/locale"
)

// Transaction represents one financial event.
//
// Date, Description and Value are always present on records that reach an
// encoder. Category is optional; the empty string means "no category".
type Transaction struct {
	// Date is the calendar date of the transaction. Only year, month and day
	// are meaningful; use NewDate to build one.
	Date time.Time

	// Description is free text describing the transaction.
	Description string

	// Value is the exact amount. It is a fixed-point decimal so that no
	// rounding error is introduced by any output format.
	Value decimal.Decimal

	// Category is an optional free-text classification.
	Category string
}

// NewDate returns the calendar date as UTC midnight.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether t and other hold the same date, description,
// value and category. Values are compared numerically, so 1.50 equals 1.5.
func (t Transaction) Equal(other Transaction) bool {
	ty, tm, td := t.Date.Date()
	oy, om, od := other.Date.Date()
	return ty == oy && tm == om && td == od &&
		t.Description == other.Description &&
		t.Value.Equal(other.Value) &&
		t.Category == other.Category
}

// transactionJSON is the wire form of a Transaction. Field order is the
// column order of every report: date, description, value, category.
type transactionJSON struct {
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Value       json.Number `json:"value"`
	Category    *string     `json:"category"`
}

// MarshalJSON writes the transaction as
// {"date":"2024-03-15","description":"...","value":123.45,"category":"..."}.
// The value is a bare JSON number in plain notation; an empty category is null.
func (t Transaction) MarshalJSON() ([]byte, error) {
	wire := transactionJSON{
		Date:        locale.FormatISODate(t.Date),
		Description: t.Description,
		Value:       json.Number(locale.PlainDecimal(t.Value)),
	}
	if t.Category != "" {
		category := t.Category
		wire.Category = &category
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON reads the form written by MarshalJSON. The value may be a
// JSON number or a numeric string; it is parsed without going through float64.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var wire transactionJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	if wire.Date == "" {
		return errors.New("transaction date is required")
	}
	date, err := locale.ParseISODate(wire.Date)
	if err != nil {
		return err
	}

	if wire.Value == "" {
		return errors.New("transaction value is required")
	}
	value, err := decimal.NewFromString(wire.Value.String())
	if err != nil {
		return fmt.Errorf("invalid transaction value %q: %w", wire.Value, err)
	}

	*t = Transaction{
		Date:        date,
		Description: wire.Description,
		Value:       value,
	}
	if wire.Category != nil {
		t.Category = *wire.Category
	}
	return nil
}
