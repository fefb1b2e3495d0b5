package report

// Window selects how much recent history a windowed summary keeps.
// Days > 0 keeps buckets dated within the last Days calendar days,
// inclusive of the lower bound; zero keeps everything.
type Window struct {
	Days int
}

// Predefined windows matching the chart filters.
var (
	WindowWeek  = Window{Days: 7}
	WindowMonth = Window{Days: 30}
	WindowAll   = Window{}
)

// ParseWindow maps a chart filter value to a Window. The recognized values
// are "7" and "30"; anything else, including "all", means no date filter.
func ParseWindow(value string) Window {
	switch value {
	case "7":
		return WindowWeek
	case "30":
		return WindowMonth
	default:
		return WindowAll
	}
}
