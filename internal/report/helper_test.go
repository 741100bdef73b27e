package report

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nao1215/txreport/internal/model"
)

// fixedClock returns a clock that always reports 20 March 2024.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.March, 20, 10, 30, 0, 0, time.UTC)
	}
}

// exampleTransaction is the single record used by format examples.
func exampleTransaction() model.Transaction {
	return model.Transaction{
		Date:        model.NewDate(2024, time.March, 15),
		Description: "Groceries",
		Value:       decimal.RequireFromString("123.45"),
		Category:    "Food",
	}
}

// createTestTransactions returns records covering the awkward cases:
// separators and quotes in text, missing category, negative and large values.
func createTestTransactions() []model.Transaction {
	return []model.Transaction{
		exampleTransaction(),
		{
			Date:        model.NewDate(2024, time.March, 16),
			Description: `Dinner; "Chez Léa"`,
			Value:       decimal.RequireFromString("-45.10"),
		},
		{
			Date:        model.NewDate(2024, time.April, 1),
			Description: "Salary\nApril",
			Value:       decimal.RequireFromString("1234567.89"),
			Category:    "Income",
		},
		{
			Date:        model.NewDate(2024, time.April, 2),
			Description: "Coffee",
			Value:       decimal.RequireFromString("3"),
			Category:    "Food",
		},
	}
}

// countingSource is a Source that records how often it was called.
type countingSource struct {
	records []model.Transaction
	err     error
	calls   atomic.Int32
}

func (s *countingSource) FetchAll(_ context.Context) ([]model.Transaction, error) {
	s.calls.Add(1)
	return s.records, s.err
}

// failingEncoder is an Encoder whose Encode always fails.
type failingEncoder struct {
	baseEncoder
	err error
}

func (e *failingEncoder) Encode(_ []model.Transaction) ([]byte, error) {
	return nil, e.encodingError(e.err)
}
