// Package formatter renders summary documents as tables, CSV, or JSON.
package formatter

import (
	"fmt"
	"io"

	"github.com/penwyp/tasktally/internal/core/model"
	"github.com/penwyp/tasktally/internal/util"
)

// Document is a rendered view of summary data: column headers, stringified
// rows, and the structured rows for JSON output.
type Document struct {
	Headers []string
	Rows    [][]string
	// RightAlign marks numeric columns; unmarked columns are left-aligned.
	RightAlign []bool
	// Raw carries the structured rows for the JSON formatter.
	Raw interface{}
}

// Formatter renders a document to its output.
type Formatter interface {
	Format(doc *Document) error
}

// New returns the formatter for the given output format name; unknown names
// fall back to the table formatter.
func New(format string, w io.Writer) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter(w)
	case "csv":
		return NewCSVFormatter(w)
	default:
		return NewTableFormatter(w)
	}
}

// SummaryDocument builds a document from tabular summary rows. The first
// header names the bucket column for the grain ("Date", "Week Start", or
// "Month").
func SummaryDocument(bucketHeader string, rows []model.SummaryRow) *Document {
	doc := &Document{
		Headers:    []string{bucketHeader, "Day", "Duration"},
		RightAlign: []bool{false, false, true},
		Raw:        rows,
	}
	for _, row := range rows {
		doc.Rows = append(doc.Rows, []string{row.Bucket, row.Label, row.HMS})
	}
	return doc
}

// WindowDocument builds a document from chart-style window rows, with
// durations as fractional hours.
func WindowDocument(rows []model.WindowRow) *Document {
	doc := &Document{
		Headers:    []string{"Date", "Day", "Hours"},
		RightAlign: []bool{false, false, true},
		Raw:        rows,
	}
	for _, row := range rows {
		doc.Rows = append(doc.Rows, []string{row.Date, row.Weekday, util.FormatHours(row.Hours)})
	}
	return doc
}

// LogDocument builds a document from the enriched interval log.
func LogDocument(rows []model.EnrichedInterval) *Document {
	doc := &Document{
		Headers:    []string{"ID", "Activity", "Grouping", "Start", "Stop", "Duration", "Comment"},
		RightAlign: []bool{true, false, false, false, false, true, false},
		Raw:        rows,
	}
	for _, row := range rows {
		doc.Rows = append(doc.Rows, []string{
			fmt.Sprintf("%d", row.ID),
			row.Activity,
			row.Grouping,
			row.Start.Format("2006-01-02 15:04:05"),
			row.Stop.Format("2006-01-02 15:04:05"),
			util.FormatHMS(row.Seconds),
			row.Comment,
		})
	}
	return doc
}

// ActivityDocument builds a document from the activity catalog.
func ActivityDocument(rows []model.Activity) *Document {
	doc := &Document{
		Headers:    []string{"ID", "Activity", "Grouping"},
		RightAlign: []bool{true, false, false},
		Raw:        rows,
	}
	for _, row := range rows {
		doc.Rows = append(doc.Rows, []string{fmt.Sprintf("%d", row.ID), row.Name, row.Grouping})
	}
	return doc
}
