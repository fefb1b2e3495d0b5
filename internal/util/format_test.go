package util

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "zero",
			input:    0,
			expected: "00:00:00",
		},
		{
			name:     "seconds only",
			input:    59,
			expected: "00:00:59",
		},
		{
			name:     "minute rollover",
			input:    60,
			expected: "00:01:00",
		},
		{
			name:     "mixed fields",
			input:    3*3600 + 25*60 + 7,
			expected: "03:25:07",
		},
		{
			name:     "just below one day",
			input:    86399,
			expected: "23:59:59",
		},
		{
			name:     "exactly one day wraps to zero",
			input:    86400,
			expected: "00:00:00",
		},
		{
			name:     "25 hours wraps hour only",
			input:    25 * 3600,
			expected: "01:00:00",
		},
		{
			name:     "negative wraps onto clock face",
			input:    -1,
			expected: "23:59:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.input))
		})
	}
}

func TestFormatClockShape(t *testing.T) {
	// Hour component is floor(s/3600) mod 24 and the output is always
	// three zero-padded two-digit fields.
	pattern := regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
	for _, s := range []int64{0, 1, 59, 60, 3599, 3600, 86399, 86400, 90000, 1234567} {
		got := FormatClock(s)
		assert.Regexp(t, pattern, got)
		assert.Equal(t, fmt.Sprintf("%02d", (s/3600)%24), got[:2], "hours for %d", s)
	}
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "zero",
			input:    0,
			expected: "00:00:00",
		},
		{
			name:     "ninety minutes",
			input:    90 * 60,
			expected: "01:30:00",
		},
		{
			name:     "no rollover at one day",
			input:    86400,
			expected: "24:00:00",
		},
		{
			name:     "hours grow past two digits",
			input:    120 * 3600,
			expected: "120:00:00",
		},
		{
			name:     "minutes and seconds still wrap",
			input:    120*3600 + 61,
			expected: "120:01:01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatHMS(tt.input))
		})
	}
}

func TestTotalSeconds(t *testing.T) {
	tests := []struct {
		name     string
		h, m, s  int
		expected int64
	}{
		{
			name:     "zero",
			expected: 0,
		},
		{
			name:     "one of each",
			h:        1,
			m:        1,
			s:        1,
			expected: 3661,
		},
		{
			name:     "countdown goal",
			h:        8,
			m:        30,
			s:        0,
			expected: 30600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalSeconds(tt.h, tt.m, tt.s))
		})
	}
}

func TestTotalSecondsRoundTrip(t *testing.T) {
	// Decomposing the total recovers the inputs when minutes and seconds
	// are already in their natural ranges.
	for _, tc := range []struct{ h, m, s int }{
		{0, 0, 0}, {1, 2, 3}, {48, 59, 59}, {7, 0, 30},
	} {
		total := TotalSeconds(tc.h, tc.m, tc.s)
		assert.Equal(t, int64(tc.h), total/3600)
		assert.Equal(t, int64(tc.m), (total/60)%60)
		assert.Equal(t, int64(tc.s), total%60)
		assert.Equal(t, fmt.Sprintf("%02d:%02d:%02d", tc.h, tc.m, tc.s), FormatHMS(total))
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1.50", FormatHours(1.5))
	assert.Equal(t, "0.00", FormatHours(0))
}
