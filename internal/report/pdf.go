package report

import (
	"bytes"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/nao1215/txreport/internal/locale"
	"github.com/nao1215/txreport/internal/model"
)

// Page geometry and typography of the PDF report, in points.
const (
	pdfMargin        = 36.0
	pdfFontFamily    = "Helvetica"
	pdfTitleSize     = 18.0
	pdfTitleHeight   = 22.0
	pdfBodySize      = 10.0
	pdfLineHeight    = 12.0
	pdfDateSpacing   = 10.0
	pdfTableSpacing  = 15.0
	pdfHeaderPadding = 8.0
	pdfCellPadding   = 6.0
	pdfBorderWidth   = 0.5
)

// pdfColumnRatios are the relative widths of Date, Description, Value and
// Category.
var pdfColumnRatios = [4]float64{1.5, 3, 1.5, 2}

// pdfColumnTitles are the header cells of the table.
var pdfColumnTitles = [4]string{"Date", "Description", "Value", "Category"}

type rgb struct{ r, g, b int }

var (
	pdfHeaderFill  = rgb{240, 240, 240}
	pdfEvenRowFill = rgb{252, 252, 252}
	pdfOddRowFill  = rgb{245, 245, 245}
)

// PDFEncoder renders the records as an A4 document with a title, the
// generation date and a zebra-striped table.
//
// The document uses the PDF core fonts, which only cover Windows-1252.
// Characters outside that code page are printed as '?'.
type PDFEncoder struct {
	baseEncoder

	// title is printed at the top of the first page.
	title string

	// clock returns the generation date printed under the title. It is
	// also used as the document's creation date, so a fixed clock yields
	// byte-identical output for identical input.
	clock func() time.Time
}

// PDFEncoderOption configures a PDFEncoder.
type PDFEncoderOption func(*PDFEncoder)

// WithPDFTitle sets the document title.
func WithPDFTitle(title string) PDFEncoderOption {
	return func(e *PDFEncoder) {
		e.title = title
	}
}

// WithPDFClock sets the clock used for the generation date.
func WithPDFClock(clock func() time.Time) PDFEncoderOption {
	return func(e *PDFEncoder) {
		e.clock = clock
	}
}

// NewPDFEncoder creates a PDFEncoder.
func NewPDFEncoder(opts ...PDFEncoderOption) *PDFEncoder {
	e := &PDFEncoder{
		baseEncoder: newBaseEncoder("application/pdf", model.DispositionAttachment, FormatPDF),
		title:       DefaultTitle,
		clock:       time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encode renders records as a PDF document. The document is written out
// only after the whole table is laid out.
func (e *PDFEncoder) Encode(records []model.Transaction) ([]byte, error) {
	now := e.clock()

	pdf := newPDFDocument(e.title, now)
	pdf.AddPage()
	layout := newPDFTable(pdf)

	layout.writeHeading(e.title, locale.FormatDate(now))
	layout.writeHeaderRow()
	for i, r := range records {
		layout.writeRow(i, [4]string{
			locale.FormatDate(r.Date),
			r.Description,
			locale.FormatDecimal(r.Value),
			r.Category,
		})
	}

	if err := pdf.Error(); err != nil {
		return nil, e.encodingError(err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, e.encodingError(err)
	}
	return buf.Bytes(), nil
}

// newPDFDocument creates an empty A4 document dated now.
func newPDFDocument(title string, now time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	// The table decides where pages break.
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.SetCellMargin(0)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(title, true)
	pdf.SetCreator("txreport", false)
	return pdf
}

// pdfTable lays out the report on one fpdf document.
type pdfTable struct {
	pdf    *fpdf.Fpdf
	left   float64
	top    float64
	width  float64
	bottom float64
	widths [4]float64
}

func newPDFTable(pdf *fpdf.Fpdf) *pdfTable {
	pageW, pageH := pdf.GetPageSize()
	left, top, right, bottom := pdf.GetMargins()

	t := &pdfTable{
		pdf:    pdf,
		left:   left,
		top:    top,
		width:  pageW - left - right,
		bottom: pageH - bottom,
	}

	var total float64
	for _, r := range pdfColumnRatios {
		total += r
	}
	for i, r := range pdfColumnRatios {
		t.widths[i] = t.width * r / total
	}
	return t
}

// headerRowHeight is the height of the column title row.
const headerRowHeight = pdfLineHeight + 2*pdfHeaderPadding

// writeHeading writes the title, the date line, a rule and a blank line.
func (t *pdfTable) writeHeading(title, date string) {
	pdf := t.pdf

	pdf.SetFont(pdfFontFamily, "B", pdfTitleSize)
	pdf.CellFormat(t.width, pdfTitleHeight, toWinAnsi(title), "", 1, "L", false, 0, "")

	pdf.SetFont(pdfFontFamily, "", pdfBodySize)
	pdf.CellFormat(t.width, pdfLineHeight, date, "", 1, "L", false, 0, "")
	pdf.Ln(pdfDateSpacing)

	y := pdf.GetY()
	pdf.SetLineWidth(pdfBorderWidth)
	pdf.Line(t.left, y, t.left+t.width, y)

	pdf.Ln(pdfLineHeight)
	pdf.Ln(pdfTableSpacing)
}

// writeHeaderRow writes the gray, bold, centered column titles.
func (t *pdfTable) writeHeaderRow() {
	pdf := t.pdf

	pdf.SetFont(pdfFontFamily, "B", pdfBodySize)
	pdf.SetFillColor(pdfHeaderFill.r, pdfHeaderFill.g, pdfHeaderFill.b)
	pdf.SetLineWidth(pdfBorderWidth)

	pdf.SetX(t.left)
	for i, title := range pdfColumnTitles {
		pdf.CellFormat(t.widths[i], headerRowHeight, title, "1", 0, "CM", true, 0, "")
	}
	pdf.Ln(headerRowHeight)
}

// newPage continues the table on a fresh page, repeating the column titles.
func (t *pdfTable) newPage() {
	t.pdf.AddPage()
	t.writeHeaderRow()
}

// rowFill returns the zebra background of the row at the zero-based index.
func rowFill(index int) rgb {
	if index%2 == 1 {
		return pdfOddRowFill
	}
	return pdfEvenRowFill
}

// rowHeight is the height of a row showing n lines of text.
func rowHeight(n int) float64 {
	return float64(n)*pdfLineHeight + 2*pdfCellPadding
}

// writeRow writes one data row. index is the zero-based position of the
// record and selects the zebra background.
//
// A row that fits on a fresh page is never split; it moves to the next
// page instead. A row taller than a whole page is split between lines and
// continues on the following pages with the same background.
func (t *pdfTable) writeRow(index int, cells [4]string) {
	pdf := t.pdf
	pdf.SetFont(pdfFontFamily, "", pdfBodySize)

	var lines [4][]string
	for i, cell := range cells {
		lines[i] = t.wrap(toWinAnsi(cell), t.widths[i]-2*pdfCellPadding)
	}
	fill := rowFill(index)
	pageSpace := t.bottom - t.top - headerRowHeight

	// fresh is set once the row starts at the top of a page; from then on
	// it is split rather than moved again.
	fresh := false
	for {
		n := maxLines(lines)
		if pdf.GetY()+rowHeight(n) <= t.bottom {
			t.drawRow(fill, lines, n)
			return
		}

		fit := int((t.bottom - pdf.GetY() - 2*pdfCellPadding) / pdfLineHeight)
		if !fresh && (rowHeight(n) <= pageSpace || fit < 1) {
			t.newPage()
			pdf.SetFont(pdfFontFamily, "", pdfBodySize)
			fresh = true
			continue
		}

		fit = max(fit, 1)
		t.drawRow(fill, lines, fit)
		for i := range lines {
			lines[i] = lines[i][min(fit, len(lines[i])):]
		}
		t.newPage()
		pdf.SetFont(pdfFontFamily, "", pdfBodySize)
		fresh = true
	}
}

// maxLines returns the line count of the tallest cell, at least one.
func maxLines(lines [4][]string) int {
	n := 1
	for _, cellLines := range lines {
		n = max(n, len(cellLines))
	}
	return n
}

// drawRow draws a row segment holding up to n lines of every cell at the
// current position and moves below it.
func (t *pdfTable) drawRow(fill rgb, lines [4][]string, n int) {
	pdf := t.pdf
	h := rowHeight(n)

	pdf.SetFillColor(fill.r, fill.g, fill.b)
	pdf.SetLineWidth(pdfBorderWidth)

	x, y := t.left, pdf.GetY()
	for i, cellLines := range lines {
		cellLines = cellLines[:min(n, len(cellLines))]
		w := t.widths[i]
		pdf.Rect(x, y, w, h, "F")
		pdf.Line(x, y+h, x+w, y+h)

		top := y + (h-float64(len(cellLines))*pdfLineHeight)/2
		for k, line := range cellLines {
			pdf.SetXY(x+pdfCellPadding, top+float64(k)*pdfLineHeight)
			pdf.CellFormat(w-2*pdfCellPadding, pdfLineHeight, line, "", 0, "LM", false, 0, "")
		}
		x += w
	}
	pdf.SetXY(t.left, y+h)
}

// wrap breaks s into lines no wider than width in the current font.
// Words longer than a line are broken at the character level.
// s must already be Windows-1252 encoded.
func (t *pdfTable) wrap(s string, width float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		lines = append(lines, t.wrapParagraph(paragraph, width)...)
	}
	return lines
}

func (t *pdfTable) wrapParagraph(s string, width float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines   []string
		current string
	)
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if t.pdf.GetStringWidth(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		// A single word wider than the cell is split byte by byte; every
		// Windows-1252 character is one byte.
		for t.pdf.GetStringWidth(word) > width && len(word) > 1 {
			cut := 1
			for cut < len(word) && t.pdf.GetStringWidth(word[:cut+1]) <= width {
				cut++
			}
			lines = append(lines, word[:cut])
			word = word[cut:]
		}
		current = word
	}
	return append(lines, current)
}

// toWinAnsi converts UTF-8 text to the Windows-1252 bytes expected by the
// core fonts. Characters without a Windows-1252 code become '?'.
func toWinAnsi(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
