package report

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/txreport/internal/locale"
	"github.com/nao1215/txreport/internal/model"
)

// uncategorized labels records without a category in the category chart.
const uncategorized = "Uncategorized"

// MarkdownEncoder outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables and code blocks
// 3. Mermaid charts through its piechart subpackage
type MarkdownEncoder struct {
	baseEncoder

	// title is the H1 heading of the document.
	title string

	// clock returns the generation date printed under the title.
	clock func() time.Time
}

// MarkdownEncoderOption configures a MarkdownEncoder.
type MarkdownEncoderOption func(*MarkdownEncoder)

// WithMarkdownTitle sets the document heading.
func WithMarkdownTitle(title string) MarkdownEncoderOption {
	return func(e *MarkdownEncoder) {
		e.title = title
	}
}

// WithMarkdownClock sets the clock used for the generation date.
func WithMarkdownClock(clock func() time.Time) MarkdownEncoderOption {
	return func(e *MarkdownEncoder) {
		e.clock = clock
	}
}

// NewMarkdownEncoder creates a MarkdownEncoder.
func NewMarkdownEncoder(opts ...MarkdownEncoderOption) *MarkdownEncoder {
	e := &MarkdownEncoder{
		baseEncoder: newBaseEncoder("text/markdown;charset=UTF-8", model.DispositionInline, FormatMarkdown),
		title:       DefaultTitle,
		clock:       time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encode renders records as a Markdown document.
func (e *MarkdownEncoder) Encode(records []model.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	// Header
	md.H1(e.title)
	md.PlainText("")
	md.PlainTextf("Generated on %s", locale.FormatDate(e.clock()))
	md.PlainText("")

	// Transactions
	e.writeTable(md, records)

	// Category distribution
	e.writePieChart(md, records)

	// Footer
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*%d transaction(s)*", len(records))

	if err := md.Build(); err != nil {
		return nil, e.encodingError(err)
	}
	return buf.Bytes(), nil
}

// writeTable writes one table row per record in input order.
func (e *MarkdownEncoder) writeTable(md *markdown.Markdown, records []model.Transaction) {
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			locale.FormatDate(r.Date),
			escapeTableCell(r.Description),
			locale.FormatDecimal(r.Value),
			escapeTableCell(r.Category),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Date", "Description", "Value", "Category"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of record counts per category.
// Slices appear in order of first occurrence.
func (e *MarkdownEncoder) writePieChart(md *markdown.Markdown, records []model.Transaction) {
	var order []string
	counts := make(map[string]uint64)
	for _, r := range records {
		label := r.Category
		if strings.TrimSpace(label) == "" {
			label = uncategorized
		}
		label = strings.ReplaceAll(label, `"`, "'")
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Transactions by Category"),
		piechart.WithShowData(true),
	)
	for _, label := range order {
		chart.LabelAndIntValue(label, counts[label])
	}

	md.H2("Transactions by Category")
	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// escapeTableCell keeps free text from breaking the table layout.
func escapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
