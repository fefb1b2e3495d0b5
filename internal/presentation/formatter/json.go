package formatter

import (
	"io"

	"github.com/bytedance/sonic"
)

// JSONFormatter renders the structured rows of a document as indented JSON.
type JSONFormatter struct {
	w io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{w: w}
}

// Format renders the document.
func (f *JSONFormatter) Format(doc *Document) error {
	value := doc.Raw
	if value == nil {
		value = doc.Rows
	}

	data, err := sonic.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	_, err = f.w.Write(append(data, '\n'))
	return err
}
