package store

import (
	"sync"
	"time"

	"github.com/penwyp/tasktally/internal/core/model"
)

// MemoryStore implements Store with in-memory slices. Useful for testing.
type MemoryStore struct {
	mu             sync.RWMutex
	activities     []model.Activity
	intervals      []model.Interval
	nextActivityID uint64
	nextIntervalID uint64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Snapshot implements Store.Snapshot.
func (s *MemoryStore) Snapshot() (*model.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &model.Snapshot{
		Activities: make([]model.Activity, len(s.activities)),
		Intervals:  make([]model.Interval, len(s.intervals)),
	}
	copy(snap.Activities, s.activities)
	copy(snap.Intervals, s.intervals)
	return snap, nil
}

// ListActivities implements Store.ListActivities.
func (s *MemoryStore) ListActivities() ([]model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Activity, len(s.activities))
	copy(out, s.activities)
	return out, nil
}

// ListIntervals implements Store.ListIntervals.
func (s *MemoryStore) ListIntervals() ([]model.Interval, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Interval, len(s.intervals))
	copy(out, s.intervals)
	return out, nil
}

// AddActivity implements Store.AddActivity.
func (s *MemoryStore) AddActivity(name, grouping string) (model.Activity, error) {
	if name == "" {
		return model.Activity{}, ErrEmptyActivityName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextActivityID++
	act := model.Activity{ID: s.nextActivityID, Name: name, Grouping: grouping}
	s.activities = append(s.activities, act)
	return act, nil
}

// UpdateActivity implements Store.UpdateActivity.
func (s *MemoryStore) UpdateActivity(oldName, oldGrouping, newName, newGrouping string) error {
	if newName == "" {
		return ErrEmptyActivityName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].Name == oldName && s.activities[i].Grouping == oldGrouping {
			s.activities[i].Name = newName
			s.activities[i].Grouping = newGrouping
			return nil
		}
	}
	return ErrActivityNotFound
}

// DeleteActivity implements Store.DeleteActivity.
func (s *MemoryStore) DeleteActivity(name, grouping string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.activities {
		if s.activities[i].Name == name && s.activities[i].Grouping == grouping {
			s.activities = append(s.activities[:i], s.activities[i+1:]...)
			return nil
		}
	}
	return ErrActivityNotFound
}

// AppendInterval implements Store.AppendInterval.
func (s *MemoryStore) AppendInterval(activityID uint64, start, stop time.Time, comment string) (model.Interval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextIntervalID++
	iv := model.Interval{
		ID:         s.nextIntervalID,
		ActivityID: activityID,
		Start:      start,
		Stop:       stop,
		Comment:    comment,
	}
	s.intervals = append(s.intervals, iv)
	return iv, nil
}

// Close implements Store.Close.
func (s *MemoryStore) Close() error {
	return nil
}
