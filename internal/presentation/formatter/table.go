package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// TableFormatter renders a document as a box-drawing table with columns
// sized to their content.
type TableFormatter struct {
	w        io.Writer
	maxWidth int
}

// NewTableFormatter creates a table formatter writing to w.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{w: w}
}

// SetMaxWidth caps the total rendered width. Cells in oversized columns are
// truncated with an ellipsis. Zero means no cap.
func (f *TableFormatter) SetMaxWidth(width int) {
	f.maxWidth = width
}

// Format renders the document.
func (f *TableFormatter) Format(doc *Document) error {
	widths := f.calculateColumnWidths(doc)

	f.printBorder(widths, "top")
	f.printRow(doc.Headers, widths, doc.RightAlign)
	f.printBorder(widths, "middle")

	for _, row := range doc.Rows {
		f.printRow(row, widths, doc.RightAlign)
	}

	f.printBorder(widths, "bottom")
	return nil
}

// calculateColumnWidths determines the width for each column based on content
func (f *TableFormatter) calculateColumnWidths(doc *Document) []int {
	widths := make([]int, len(doc.Headers))
	for i, header := range doc.Headers {
		widths[i] = runewidth.StringWidth(header)
	}

	for _, row := range doc.Rows {
		for i, value := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(value); w > widths[i] {
				widths[i] = w
			}
		}
	}

	// Minimum width keeps short columns readable.
	for i := range widths {
		if widths[i] < 4 {
			widths[i] = 4
		}
	}

	if f.maxWidth > 0 {
		f.clampWidths(widths)
	}
	return widths
}

// clampWidths shrinks the widest columns until the table fits maxWidth.
func (f *TableFormatter) clampWidths(widths []int) {
	// Each column costs width+3 ("│ value "), plus the closing border.
	total := func() int {
		t := 1
		for _, w := range widths {
			t += w + 3
		}
		return t
	}

	for total() > f.maxWidth {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 4 {
			return
		}
		widths[widest]--
	}
}

// printBorder prints table borders (top, middle, bottom)
func (f *TableFormatter) printBorder(widths []int, borderType string) {
	var left, middle, right, separator string

	switch borderType {
	case "top":
		left, middle, right, separator = "┌", "┬", "┐", "─"
	case "middle":
		left, middle, right, separator = "├", "┼", "┤", "─"
	case "bottom":
		left, middle, right, separator = "└", "┴", "┘", "─"
	}

	fmt.Fprint(f.w, left)
	for i, width := range widths {
		fmt.Fprint(f.w, strings.Repeat(separator, width+2)) // +2 for padding spaces
		if i < len(widths)-1 {
			fmt.Fprint(f.w, middle)
		}
	}
	fmt.Fprintln(f.w, right)
}

// printRow prints a data row with proper alignment
func (f *TableFormatter) printRow(values []string, widths []int, rightAlign []bool) {
	fmt.Fprint(f.w, "│")
	for i, width := range widths {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		if runewidth.StringWidth(value) > width {
			value = runewidth.Truncate(value, width, "…")
		}

		pad := width - runewidth.StringWidth(value)
		if i < len(rightAlign) && rightAlign[i] {
			fmt.Fprintf(f.w, " %s%s │", strings.Repeat(" ", pad), value)
		} else {
			fmt.Fprintf(f.w, " %s%s │", value, strings.Repeat(" ", pad))
		}
	}
	fmt.Fprintln(f.w)
}
