package report

import (
	"sort"

	"github.com/penwyp/tasktally/internal/util"
)

// canonicalWeekdays is the Monday-first axis order used for summaries and
// charts.
var canonicalWeekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayIndex returns the position of a weekday name in the Monday-first
// order, or -1 for names outside the canonical set.
func WeekdayIndex(name string) int {
	for i, day := range canonicalWeekdays {
		if day == name {
			return i
		}
	}
	return -1
}

// OrderWeekdays arranges the given weekday names into canonical Monday-first
// order. Sparse data is expected: a subset of the week keeps canonical order
// among the values present, and names outside the canonical set sort after
// known ones in their input order. The incomplete domain is logged and never
// treated as an error.
func OrderWeekdays(present []string) []string {
	seen := make(map[string]bool, len(present))
	unique := make([]string, 0, len(present))
	unknown := 0
	for _, name := range present {
		if seen[name] {
			continue
		}
		seen[name] = true
		unique = append(unique, name)
		if WeekdayIndex(name) < 0 {
			unknown++
		}
	}

	if len(unique)-unknown < len(canonicalWeekdays) {
		util.LogDebugf("Weekday domain incomplete: %d of %d present, ordering the subset",
			len(unique)-unknown, len(canonicalWeekdays))
	}
	if unknown > 0 {
		util.LogDebugf("Ignoring %d unknown weekday labels in ordering", unknown)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		a, b := WeekdayIndex(unique[i]), WeekdayIndex(unique[j])
		if a < 0 || b < 0 {
			// Unknown names keep their input order after known ones.
			return b < 0 && a >= 0
		}
		return a < b
	})
	return unique
}
