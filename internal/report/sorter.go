package report

import (
	"fmt"
	"sort"

	"github.com/penwyp/tasktally/internal/core/model"
)

// SortField represents the summary column to sort by
type SortField int

const (
	SortByBucket SortField = iota
	SortByLabel
	SortByDuration
)

// SortOrder represents the sort order
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// ParseSortField maps a column name to its SortField.
func ParseSortField(name string) (SortField, error) {
	switch name {
	case "bucket", "date":
		return SortByBucket, nil
	case "label", "day":
		return SortByLabel, nil
	case "duration", "hms":
		return SortByDuration, nil
	default:
		return SortByBucket, fmt.Errorf("unknown sort column: %s", name)
	}
}

// Sorter handles interactive sorting of summary rows. Requesting the same
// field twice flips the order, the way repeated clicks on a table column
// header toggle between ascending and descending.
type Sorter struct {
	field SortField
	order SortOrder
}

// NewSorter creates a sorter with the default ascending-by-bucket order.
func NewSorter() *Sorter {
	return &Sorter{
		field: SortByBucket,
		order: SortAscending,
	}
}

// Toggle selects a sort field. A repeated field reverses the current order;
// a new field starts ascending.
func (s *Sorter) Toggle(field SortField) {
	if s.field == field {
		if s.order == SortAscending {
			s.order = SortDescending
		} else {
			s.order = SortAscending
		}
		return
	}
	s.field = field
	s.order = SortAscending
}

// Sort sorts the rows based on current settings.
func (s *Sorter) Sort(rows []model.SummaryRow) {
	SortRows(rows, s.field, s.order == SortDescending)
}

// SortRows sorts summary rows by the given column, descending on request.
func SortRows(rows []model.SummaryRow, field SortField, descending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		var less bool

		switch field {
		case SortByBucket:
			less = rows[i].Bucket < rows[j].Bucket
		case SortByLabel:
			less = rows[i].Label < rows[j].Label
		case SortByDuration:
			less = rows[i].Seconds < rows[j].Seconds
		}

		if descending {
			return !less
		}
		return less
	})
}
