package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nao1215/txreport/internal/model"
)

func TestPDFEncoder(t *testing.T) {
	t.Parallel()

	t.Run("encodes a single record", func(t *testing.T) {
		t.Parallel()

		got, err := NewPDFEncoder(WithPDFClock(fixedClock())).Encode([]model.Transaction{exampleTransaction()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(got, []byte("%PDF-")) {
			t.Errorf("expected PDF signature, got %q", got[:min(len(got), 8)])
		}
	})

	t.Run("is deterministic for a fixed clock", func(t *testing.T) {
		t.Parallel()

		enc := NewPDFEncoder(WithPDFClock(fixedClock()), WithPDFTitle("Monthly Statement"))
		first, err := enc.Encode(createTestTransactions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := enc.Encode(createTestTransactions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Error("expected identical output for identical input and date")
		}
	})

	t.Run("spans several pages for many records", func(t *testing.T) {
		t.Parallel()

		records := make([]model.Transaction, 300)
		for i := range records {
			records[i] = model.Transaction{
				Date:        model.NewDate(2024, 1, 1+i%28),
				Description: strings.Repeat("long description ", 1+i%5),
				Value:       decimal.New(int64(i), -2),
				Category:    "Misc",
			}
		}

		got, err := NewPDFEncoder(WithPDFClock(fixedClock())).Encode(records)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(got, []byte("%PDF-")) {
			t.Error("expected PDF signature")
		}
		pages := bytes.Count(got, []byte("/Type /Page")) - bytes.Count(got, []byte("/Type /Pages"))
		if pages < 2 {
			t.Error("expected more than one page")
		}
	})

	t.Run("accepts text outside the core font encoding", func(t *testing.T) {
		t.Parallel()

		records := []model.Transaction{{
			Date:        model.NewDate(2024, 5, 1),
			Description: "Café ☕ 東京 " + strings.Repeat("x", 200),
			Value:       decimal.RequireFromString("-0.01"),
		}}

		got, err := NewPDFEncoder(WithPDFClock(fixedClock())).Encode(records)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) == 0 {
			t.Error("expected non-empty payload")
		}
	})
}

func TestPDFTableWriteRow(t *testing.T) {
	t.Parallel()

	newTable := func() *pdfTable {
		pdf := newPDFDocument(DefaultTitle, fixedClock()())
		pdf.AddPage()
		table := newPDFTable(pdf)
		table.writeHeaderRow()
		return table
	}

	t.Run("splits a row taller than a page across pages", func(t *testing.T) {
		t.Parallel()

		table := newTable()
		description := strings.Repeat("word ", 3000)

		table.pdf.SetFont(pdfFontFamily, "", pdfBodySize)
		total := len(table.wrap(description, table.widths[1]-2*pdfCellPadding))
		perPage := int((table.bottom - table.top - headerRowHeight - 2*pdfCellPadding) / pdfLineHeight)
		minPages := (total + perPage - 1) / perPage

		table.writeRow(0, [4]string{"15/03/2024", description, "1,00", "Misc"})

		if err := table.pdf.Error(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := table.pdf.PageNo(); got < minPages {
			t.Errorf("expected at least %d pages for %d lines, got %d", minPages, total, got)
		}
		if y := table.pdf.GetY(); y > table.bottom {
			t.Errorf("row ends at y=%.1f below the page limit %.1f", y, table.bottom)
		}
	})

	t.Run("moves a row that does not fit to the next page", func(t *testing.T) {
		t.Parallel()

		table := newTable()
		table.pdf.SetY(table.bottom - pdfLineHeight)

		table.writeRow(0, [4]string{"15/03/2024", "Groceries", "1,00", "Food"})

		if got := table.pdf.PageNo(); got != 2 {
			t.Errorf("expected row on page 2, got page %d", got)
		}
		expectedY := table.top + headerRowHeight + rowHeight(1)
		if y := table.pdf.GetY(); y != expectedY {
			t.Errorf("expected row to end at y=%.1f, got %.1f", expectedY, y)
		}
	})

	t.Run("keeps short rows on the current page", func(t *testing.T) {
		t.Parallel()

		table := newTable()
		for i := range 3 {
			table.writeRow(i, [4]string{"15/03/2024", "Groceries", "1,00", "Food"})
		}

		if got := table.pdf.PageNo(); got != 1 {
			t.Errorf("expected one page, got %d", got)
		}
	})
}

func TestRowFill(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		index    int
		expected rgb
	}{
		{"first row is even", 0, rgb{252, 252, 252}},
		{"second row is odd", 1, rgb{245, 245, 245}},
		{"third row is even again", 2, rgb{252, 252, 252}},
		{"large odd index", 101, rgb{245, 245, 245}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := rowFill(tc.index); got != tc.expected {
				t.Errorf("rowFill(%d) = %v, expected %v", tc.index, got, tc.expected)
			}
		})
	}
}

func TestToWinAnsi(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"ascii is unchanged", "Groceries", "Groceries"},
		{"latin accents map to single bytes", "Léa", "L\xe9a"},
		{"euro sign maps to 0x80", "€", "\x80"},
		{"unmappable runes become question marks", "東京", "??"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := toWinAnsi(tc.input); got != tc.expected {
				t.Errorf("toWinAnsi(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}
