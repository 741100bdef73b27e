package report

import (
	"bytes"
	"encoding/csv"

	"github.com/nao1215/txreport/internal/locale"
	"github.com/nao1215/txreport/internal/model"
)

// csvHeader is the fixed column set of every tabular report.
var csvHeader = []string{"date", "description", "value", "category"}

// CSVEncoder writes a ';' separated table with one header row.
//
// Values use ',' as decimal separator and dates are dd/mm/yyyy, following
// the regional convention in package locale. Fields that contain the
// separator, a quote or a line break are quoted.
type CSVEncoder struct {
	baseEncoder
}

// NewCSVEncoder creates a CSVEncoder.
func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{
		baseEncoder: newBaseEncoder("text/csv;charset=UTF-8", model.DispositionInline, FormatCSV),
	}
}

// Encode renders records as CSV.
func (e *CSVEncoder) Encode(records []model.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	w.UseCRLF = false

	if err := w.Write(csvHeader); err != nil {
		return nil, e.encodingError(err)
	}
	for _, r := range records {
		if err := w.Write(csvRow(r)); err != nil {
			return nil, e.encodingError(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, e.encodingError(err)
	}
	return buf.Bytes(), nil
}

// csvRow renders one record in column order.
func csvRow(r model.Transaction) []string {
	return []string{
		locale.FormatDate(r.Date),
		r.Description,
		locale.FormatDecimal(r.Value),
		r.Category,
	}
}
