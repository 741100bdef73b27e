package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nao1215/txreport/internal/locale"
	"github.com/nao1215/txreport/internal/model"
)

// Header is the expected first row of an input file.
var Header = []string{"date", "description", "value", "category"}

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("input is empty")

// RowError reports an invalid row. Line is the 1-based line number in the
// input, counting the header as line 1.
type RowError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *RowError) Unwrap() error {
	return e.Err
}

// row is one input record before conversion.
type row struct {
	Date        string `csv:"date" validate:"required,regional_date"`
	Description string `csv:"description" validate:"required,max=1024"`
	Value       string `csv:"value" validate:"required,regional_decimal"`
	Category    string `csv:"category" validate:"max=1024"`
}

// Reader parses and validates delimited transaction files.
// A Reader is safe for concurrent use.
type Reader struct {
	validate *validator.Validate
}

// NewReader creates a Reader.
func NewReader() *Reader {
	v := validator.New()

	// Register custom validators
	_ = v.RegisterValidation("regional_date", isRegionalDate)
	_ = v.RegisterValidation("regional_decimal", isRegionalDecimal)

	// Use column names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("csv")
	})

	return &Reader{validate: v}
}

// ReadFile reads transactions from the file at path.
func (r *Reader) ReadFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return r.Read(f)
}

// Read reads transactions from in. It returns every record or an error;
// never a partial result.
func (r *Reader) Read(in io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(in)
	cr.Comma = ';'
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, &RowError{Line: 1, Err: err}
	}
	if err := checkHeader(header); err != nil {
		return nil, &RowError{Line: 1, Err: err}
	}

	var records []model.Transaction
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &RowError{Line: parseErr.StartLine, Err: parseErr.Err}
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		rec, err := r.parseRow(fields)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		records = append(records, rec)
	}

	return records, nil
}

// parseRow validates fields and converts them to a Transaction.
func (r *Reader) parseRow(fields []string) (model.Transaction, error) {
	in := row{
		Date:        strings.TrimSpace(fields[0]),
		Description: fields[1],
		Value:       strings.TrimSpace(fields[2]),
		Category:    fields[3],
	}
	if strings.TrimSpace(in.Description) == "" {
		in.Description = ""
	}

	if err := r.validate.Struct(in); err != nil {
		return model.Transaction{}, formatValidationError(err)
	}

	date, err := locale.ParseDate(in.Date)
	if err != nil {
		return model.Transaction{}, err
	}
	value, err := locale.ParseDecimal(in.Value)
	if err != nil {
		return model.Transaction{}, err
	}

	// Text fields keep their surrounding space; a blank category is none.
	category := in.Category
	if strings.TrimSpace(category) == "" {
		category = ""
	}

	return model.Transaction{
		Date:        date,
		Description: in.Description,
		Value:       value,
		Category:    category,
	}, nil
}

// checkHeader verifies the column names, ignoring case and surrounding space.
func checkHeader(header []string) error {
	for i, name := range Header {
		got := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff")))
		if got != name {
			return fmt.Errorf("expected column %d to be %q, got %q", i+1, name, header[i])
		}
	}
	return nil
}

// formatValidationError turns validator errors into one readable error.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		case "regional_date":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a dd/mm/yyyy date", fe.Field(), fe.Value()))
		case "regional_decimal":
			msgs = append(msgs, fmt.Sprintf("%s %q is not a decimal with ',' separator", fe.Field(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

func isRegionalDate(fl validator.FieldLevel) bool {
	_, err := locale.ParseDate(fl.Field().String())
	return err == nil
}

func isRegionalDecimal(fl validator.FieldLevel) bool {
	_, err := locale.ParseDecimal(fl.Field().String())
	return err == nil
}
