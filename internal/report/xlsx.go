package report

import (
	"github.com/xuri/excelize/v2"

	"github.com/nao1215/txreport/internal/locale"
	"github.com/nao1215/txreport/internal/model"
)

// xlsxSheet is the name of the only worksheet in the workbook.
const xlsxSheet = "Transactions"

// xlsxColumnWidths are the widths of Date, Description, Value and Category,
// keeping the 1.5 : 3 : 1.5 : 2 proportions of the PDF table.
var xlsxColumnWidths = [4]float64{12, 40, 14, 20}

// XLSXEncoder writes the records to a single-sheet Excel workbook.
//
// Cells hold the same regional text as the CSV report (dd/mm/yyyy dates,
// comma decimals) so the sheet reads the same regardless of the locale of
// the spreadsheet application.
type XLSXEncoder struct {
	baseEncoder
}

// NewXLSXEncoder creates an XLSXEncoder.
func NewXLSXEncoder() *XLSXEncoder {
	return &XLSXEncoder{
		baseEncoder: newBaseEncoder(
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			model.DispositionAttachment,
			FormatXLSX,
		),
	}
}

// Encode renders records as an XLSX workbook.
func (e *XLSXEncoder) Encode(records []model.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), xlsxSheet); err != nil {
		return nil, e.encodingError(err)
	}

	if err := e.writeHeader(f); err != nil {
		return nil, e.encodingError(err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, e.encodingError(err)
		}
		row := []interface{}{
			locale.FormatDate(r.Date),
			r.Description,
			locale.FormatDecimal(r.Value),
			r.Category,
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return nil, e.encodingError(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, e.encodingError(err)
	}
	return buf.Bytes(), nil
}

// writeHeader writes the bold header row and sets column widths.
func (e *XLSXEncoder) writeHeader(f *excelize.File) error {
	header := []interface{}{"Date", "Description", "Value", "Category"}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F0F0F0"}},
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", "D1", style); err != nil {
		return err
	}

	for i, width := range xlsxColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(xlsxSheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
