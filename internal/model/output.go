package model

// Disposition hints tell a client whether to render a payload in place or to
// download it as a file.
const (
	// DispositionInline asks the client to render the payload in place.
	DispositionInline = "inline"

	// DispositionAttachment asks the client to save the payload as a file.
	DispositionAttachment = "attachment"
)

// Output is the result of a single report generation.
type Output struct {
	// Content is the encoded report.
	Content []byte

	// MediaType is the MIME type of Content (e.g. "application/pdf").
	MediaType string

	// Disposition is DispositionInline or DispositionAttachment.
	Disposition string

	// Extension is the file extension without the leading dot.
	Extension string
}

// Filename returns the suggested file name for the report.
func (o *Output) Filename() string {
	return "report." + o.Extension
}

// ContentDisposition returns the value for a Content-Disposition header,
// e.g. "attachment; filename=report.pdf".
func (o *Output) ContentDisposition() string {
	return o.Disposition + "; filename=" + o.Filename()
}
