package report

import (
	"strings"
	"testing"

	"github.com/nao1215/txreport/internal/model"
)

func TestMarkdownEncoder(t *testing.T) {
	t.Parallel()

	t.Run("writes title date and table row", func(t *testing.T) {
		t.Parallel()

		got, err := NewMarkdownEncoder(WithMarkdownClock(fixedClock()), WithMarkdownTitle("March")).
			Encode([]model.Transaction{exampleTransaction()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := string(got)
		if !strings.Contains(output, "# March") {
			t.Error("expected output to contain title")
		}
		if !strings.Contains(output, "Generated on 20/03/2024") {
			t.Error("expected output to contain generation date")
		}
		for _, cell := range []string{"15/03/2024", "Groceries", "123,45", "Food"} {
			if !strings.Contains(output, cell) {
				t.Errorf("expected output to contain %q", cell)
			}
		}
	})

	t.Run("writes category pie chart", func(t *testing.T) {
		t.Parallel()

		got, err := NewMarkdownEncoder(WithMarkdownClock(fixedClock())).Encode(createTestTransactions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := string(got)
		if !strings.Contains(output, "```mermaid") {
			t.Error("expected mermaid code block")
		}
		if !strings.Contains(output, "Uncategorized") {
			t.Error("expected uncategorized slice for record without category")
		}
		if !strings.Contains(output, "4 transaction(s)") {
			t.Error("expected footer with record count")
		}
	})

	t.Run("escapes pipes and newlines in cells", func(t *testing.T) {
		t.Parallel()

		if got := escapeTableCell("a|b\nc"); got != `a\|b c` {
			t.Errorf("unexpected escape result %q", got)
		}
	})
}
