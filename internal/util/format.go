package util

import (
	"fmt"
)

const secondsPerDay = 24 * 60 * 60

// FormatClock formats a second count as HH:MM:SS on a 24-hour clock face.
// The hour field wraps modulo 24; negative inputs and inputs beyond one day
// wrap onto the clock the same way.
func FormatClock(totalSeconds int64) string {
	s := totalSeconds % secondsPerDay
	if s < 0 {
		s += secondsPerDay
	}

	hours := s / 3600
	minutes := (s / 60) % 60
	seconds := s % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatHMS formats a second count as HH:MM:SS with no 24-hour rollover.
// The hour field grows past two digits for large totals ("120:00:00"),
// which is what summed durations across days or weeks need.
// Assumes a non-negative input.
func FormatHMS(totalSeconds int64) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds / 60) % 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// TotalSeconds converts an hours/minutes/seconds triple to total seconds.
// No range validation happens here; callers validate user input first.
func TotalSeconds(hours, minutes, seconds int) int64 {
	return int64(hours)*3600 + int64(minutes)*60 + int64(seconds)
}

// FormatHours renders a fractional hour count for chart-style output.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}
