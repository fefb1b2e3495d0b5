// Package store persists the activity catalog and the interval log.
//
// The reporting engine reads the store through Snapshot, which returns the
// contents of a single read transaction, so a summary never mixes data from
// two versions of the log.
package store

import (
	"time"

	"github.com/penwyp/tasktally/internal/core/model"
)

// Store is the durable source of activities and logged intervals.
type Store interface {
	// Snapshot returns activities and intervals as of one read transaction.
	Snapshot() (*model.Snapshot, error)

	// ListActivities returns all activities in insertion order.
	ListActivities() ([]model.Activity, error)

	// ListIntervals returns all logged intervals in insertion order.
	ListIntervals() ([]model.Interval, error)

	// AddActivity creates a new activity and returns it with its assigned ID.
	AddActivity(name, grouping string) (model.Activity, error)

	// UpdateActivity renames the activity matching the old (name, grouping)
	// pair. Returns ErrActivityNotFound if no activity matches.
	UpdateActivity(oldName, oldGrouping, newName, newGrouping string) error

	// DeleteActivity removes the activity matching the (name, grouping)
	// pair. Intervals referencing it are left in place; they drop out of
	// joined views as dangling references.
	DeleteActivity(name, grouping string) error

	// AppendInterval records one start/stop pair against an activity.
	AppendInterval(activityID uint64, start, stop time.Time, comment string) (model.Interval, error)

	// Close releases the underlying storage.
	Close() error
}
