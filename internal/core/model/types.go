// Package model defines the entities shared by the store and the reporting
// engine: activities, logged intervals, and the derived summary rows.
package model

import (
	"math"
	"time"
)

// DateLayout is the calendar-date form used for bucket keys.
const DateLayout = "2006-01-02"

// YearMonthLayout is the sortable month bucket key ("2024 01").
const YearMonthLayout = "2006 01"

// Activity is a nameable task grouped under a category. The identifier is
// stable and referenced by log entries; the presentation layer treats the
// (Name, Grouping) pair as logically unique for edit and delete matching.
type Activity struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Grouping string `json:"grouping"`
}

// Interval is one recorded start/stop timestamp pair tied to an activity.
type Interval struct {
	ID         uint64    `json:"id"`
	ActivityID uint64    `json:"activityId"`
	Start      time.Time `json:"start"`
	Stop       time.Time `json:"stop"`
	Comment    string    `json:"comment,omitempty"`
}

// DurationSeconds returns the elapsed seconds between Start and Stop,
// rounded to the nearest second, halves away from zero. Stop == Start
// yields zero.
func (iv Interval) DurationSeconds() int64 {
	return int64(math.Round(iv.Stop.Sub(iv.Start).Seconds()))
}

// EnrichedInterval is an Interval joined with its activity's name and
// grouping and annotated with derived duration/date/weekday fields. It is
// recomputed on every aggregation request and never persisted.
type EnrichedInterval struct {
	Interval
	Activity string `json:"activity"`
	Grouping string `json:"grouping"`
	// Seconds is the rounded elapsed duration of the interval.
	Seconds int64 `json:"seconds"`
	// Date is the calendar date of Start, at midnight.
	Date time.Time `json:"date"`
	// Weekday is the English weekday name of Start ("Monday").
	Weekday string `json:"weekday"`
}

// SummaryRow is one aggregation bucket for tabular display: a sortable
// bucket key (date, week-start date, or year-month), a display label
// (weekday name, "Monday", or month abbreviation), and the summed duration
// both as raw seconds and as an unrestricted HH:MM:SS string.
type SummaryRow struct {
	Bucket  string `json:"bucket"`
	Label   string `json:"label"`
	Seconds int64  `json:"seconds"`
	HMS     string `json:"hms"`
}

// WindowRow is one aggregation bucket for charting: duration as fractional
// hours rather than a formatted string.
type WindowRow struct {
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Hours   float64 `json:"hours"`
}

// Snapshot holds the store contents as read by a single transaction, so an
// aggregation never sees partially-mixed-version data.
type Snapshot struct {
	Activities []Activity
	Intervals  []Interval
}
