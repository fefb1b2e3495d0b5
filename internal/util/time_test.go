package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedProvider(t *testing.T, now time.Time, timezone string) *TimeProvider {
	t.Helper()
	tp := &TimeProvider{nowFunc: func() time.Time { return now }}
	require.NoError(t, tp.SetTimezone(timezone))
	return tp
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 3, 15, 18, 45, 12, 0, time.UTC)
	tp := fixedProvider(t, now, "UTC")

	today := tp.Today()
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), today)
	assert.Equal(t, 0, today.Hour())
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)
	tp := fixedProvider(t, now, "UTC")

	tests := []struct {
		name     string
		days     int
		expected time.Time
	}{
		{
			name:     "seven days",
			days:     7,
			expected: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "thirty days crosses a month",
			days:     30,
			expected: time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "zero days is today",
			days:     0,
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tp.DaysAgo(tt.days))
		})
	}
}

func TestDaysAgoIndependentOfTimeOfDay(t *testing.T) {
	morning := fixedProvider(t, time.Date(2024, 3, 15, 0, 0, 1, 0, time.UTC), "UTC")
	evening := fixedProvider(t, time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC), "UTC")

	assert.Equal(t, morning.DaysAgo(7), evening.DaysAgo(7))
	assert.Equal(t, morning.DaysAgo(30), evening.DaysAgo(30))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "wednesday maps to monday three days prior",
			input:    time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "monday maps to itself",
			input:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sunday maps to monday six days prior",
			input:    time.Date(2024, 1, 7, 23, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekStart(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, time.Monday, got.Weekday())
		})
	}
}

func TestSetTimezoneInvalid(t *testing.T) {
	tp := &TimeProvider{nowFunc: time.Now}
	err := tp.SetTimezone("Not/AZone")
	assert.Error(t, err)
}
