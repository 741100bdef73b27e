package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/nao1215/txreport/internal/model"
)

func TestXLSXEncoder(t *testing.T) {
	t.Parallel()

	t.Run("writes header and one row per record", func(t *testing.T) {
		t.Parallel()

		records := createTestTransactions()
		got, err := NewXLSXEncoder().Encode(records)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f, err := excelize.OpenReader(bytes.NewReader(got))
		if err != nil {
			t.Fatalf("failed to reopen workbook: %v", err)
		}
		defer f.Close()

		rows, err := f.GetRows(xlsxSheet)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != len(records)+1 {
			t.Fatalf("expected %d rows, got %d", len(records)+1, len(rows))
		}
		if rows[0][0] != "Date" || rows[0][3] != "Category" {
			t.Errorf("unexpected header %v", rows[0])
		}

		first := rows[1]
		expected := []string{"15/03/2024", "Groceries", "123,45", "Food"}
		for i := range expected {
			if first[i] != expected[i] {
				t.Errorf("column %d: expected %q, got %q", i, expected[i], first[i])
			}
		}
	})

	t.Run("reports attachment disposition", func(t *testing.T) {
		t.Parallel()

		enc := NewXLSXEncoder()
		if enc.Disposition() != model.DispositionAttachment {
			t.Errorf("expected attachment, got %q", enc.Disposition())
		}
	})
}
