// Package report derives summary views from the interval store: the joined
// and enriched log, daily/weekly/monthly totals for tabular display, and
// windowed hour buckets for charting.
//
// The engine is stateless between calls. Every operation re-reads the store
// through a single snapshot, so results always reflect the latest edits and
// never mix two versions of the log.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/penwyp/tasktally/internal/core/model"
	"github.com/penwyp/tasktally/internal/store"
	"github.com/penwyp/tasktally/internal/util"
)

// Engine turns raw store snapshots into summary rows.
type Engine struct {
	store store.Store
	loc   *time.Location
	now   func() time.Time
}

// New creates an Engine reading from st, with dates computed in the
// provider's timezone.
func New(st store.Store, tp *util.TimeProvider) *Engine {
	return &Engine{
		store: st,
		loc:   tp.Location(),
		now:   tp.Now,
	}
}

// EnrichedLog joins intervals to activities and annotates each surviving row
// with its duration, calendar date, and weekday name. Intervals whose
// activity was deleted are silently dropped (inner-join semantics). An empty
// or unjoinable store yields an empty slice, not an error.
func (e *Engine) EnrichedLog() ([]model.EnrichedInterval, error) {
	snap, err := e.store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to read interval store: %w", err)
	}

	byID := make(map[uint64]model.Activity, len(snap.Activities))
	for _, act := range snap.Activities {
		byID[act.ID] = act
	}

	enriched := make([]model.EnrichedInterval, 0, len(snap.Intervals))
	dropped := 0
	for _, iv := range snap.Intervals {
		act, ok := byID[iv.ActivityID]
		if !ok {
			dropped++
			continue
		}

		start := iv.Start.In(e.loc)
		enriched = append(enriched, model.EnrichedInterval{
			Interval: iv,
			Activity: act.Name,
			Grouping: act.Grouping,
			Seconds:  iv.DurationSeconds(),
			Date:     util.StartOfDay(start),
			Weekday:  start.Weekday().String(),
		})
	}

	if dropped > 0 {
		util.LogDebugf("Dropped %d intervals with dangling activity references", dropped)
	}
	return enriched, nil
}

// dayBucket accumulates one (date, weekday) group.
type dayBucket struct {
	date    time.Time
	weekday string
	seconds int64
}

// groupByDay is the shared first stage for daily and windowed summaries:
// a map from date key to accumulator, reduced to a date-ascending slice.
func (e *Engine) groupByDay() ([]dayBucket, error) {
	enriched, err := e.EnrichedLog()
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*dayBucket)
	for _, row := range enriched {
		key := row.Date.Format(model.DateLayout)
		if _, ok := groups[key]; !ok {
			groups[key] = &dayBucket{date: row.Date, weekday: row.Weekday}
		}
		groups[key].seconds += row.Seconds
	}

	buckets := make([]dayBucket, 0, len(groups))
	for _, b := range groups {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].date.Before(buckets[j].date)
	})

	// Weekday is a categorical axis for downstream consumers; ordering a
	// sparse subset must degrade gracefully rather than fail.
	weekdays := make([]string, len(buckets))
	for i, b := range buckets {
		weekdays[i] = b.weekday
	}
	OrderWeekdays(weekdays)

	return buckets, nil
}

// DailySummary groups the enriched log by calendar date, summing durations
// and formatting each total as unrestricted HH:MM:SS. Rows ascend by date.
func (e *Engine) DailySummary() ([]model.SummaryRow, error) {
	buckets, err := e.groupByDay()
	if err != nil {
		return nil, err
	}

	rows := make([]model.SummaryRow, len(buckets))
	for i, b := range buckets {
		rows[i] = model.SummaryRow{
			Bucket:  b.date.Format(model.DateLayout),
			Label:   b.weekday,
			Seconds: b.seconds,
			HMS:     util.FormatHMS(b.seconds),
		}
	}
	return rows, nil
}

// WeeklySummary groups by the Monday on or before each interval's start
// date. The label is always "Monday" since every bucket key is a Monday.
func (e *Engine) WeeklySummary() ([]model.SummaryRow, error) {
	enriched, err := e.EnrichedLog()
	if err != nil {
		return nil, err
	}

	groups := make(map[string]int64)
	for _, row := range enriched {
		key := util.WeekStart(row.Date).Format(model.DateLayout)
		groups[key] += row.Seconds
	}

	rows := make([]model.SummaryRow, 0, len(groups))
	for key, seconds := range groups {
		rows = append(rows, model.SummaryRow{
			Bucket:  key,
			Label:   "Monday",
			Seconds: seconds,
			HMS:     util.FormatHMS(seconds),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Bucket < rows[j].Bucket
	})
	return rows, nil
}

// MonthlySummary groups by a sortable "YYYY MM" key, labelled with the
// 3-letter month abbreviation.
func (e *Engine) MonthlySummary() ([]model.SummaryRow, error) {
	enriched, err := e.EnrichedLog()
	if err != nil {
		return nil, err
	}

	groups := make(map[string]int64)
	labels := make(map[string]string)
	for _, row := range enriched {
		key := row.Date.Format(model.YearMonthLayout)
		groups[key] += row.Seconds
		labels[key] = row.Date.Format("Jan")
	}

	rows := make([]model.SummaryRow, 0, len(groups))
	for key, seconds := range groups {
		rows = append(rows, model.SummaryRow{
			Bucket:  key,
			Label:   labels[key],
			Seconds: seconds,
			HMS:     util.FormatHMS(seconds),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Bucket < rows[j].Bucket
	})
	return rows, nil
}

// WindowedSummary groups by calendar date like DailySummary, but reports
// fractional hours for charting and applies the recency window: the last
// 7 or 30 days keep dates on or after the inclusive lower bound, All keeps
// every bucket.
func (e *Engine) WindowedSummary(w Window) ([]model.WindowRow, error) {
	buckets, err := e.groupByDay()
	if err != nil {
		return nil, err
	}

	var cutoff time.Time
	if w.Days > 0 {
		cutoff = util.StartOfDay(e.now()).AddDate(0, 0, -w.Days)
	}

	rows := make([]model.WindowRow, 0, len(buckets))
	for _, b := range buckets {
		if w.Days > 0 && b.date.Before(cutoff) {
			continue
		}
		rows = append(rows, model.WindowRow{
			Date:    b.date.Format(model.DateLayout),
			Weekday: b.weekday,
			Hours:   float64(b.seconds) / 3600,
		})
	}
	return rows, nil
}
