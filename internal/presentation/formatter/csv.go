package formatter

import (
	"encoding/csv"
	"io"
)

// CSVFormatter renders a document as CSV, headers first.
type CSVFormatter struct {
	w io.Writer
}

// NewCSVFormatter creates a CSV formatter writing to w.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{w: w}
}

// Format renders the document.
func (f *CSVFormatter) Format(doc *Document) error {
	cw := csv.NewWriter(f.w)
	defer cw.Flush()

	if err := cw.Write(doc.Headers); err != nil {
		return err
	}
	for _, row := range doc.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
