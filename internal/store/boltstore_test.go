package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tasktally.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenSeedsEmptyDatabase(t *testing.T) {
	s := openTestStore(t)

	activities, err := s.ListActivities()
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, seedActivityName, activities[0].Name)
	assert.Equal(t, seedActivityGrouping, activities[0].Grouping)

	intervals, err := s.ListIntervals()
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.Equal(t, activities[0].ID, intervals[0].ActivityID)
	assert.Equal(t, int64(0), intervals[0].DurationSeconds())
}

func TestOpenDoesNotReseed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasktally.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.AddActivity("writing", "deep work")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	activities, err := s.ListActivities()
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestActivityCRUD(t *testing.T) {
	s := openTestStore(t)

	act, err := s.AddActivity("reading", "learning")
	require.NoError(t, err)
	assert.NotZero(t, act.ID)

	require.NoError(t, s.UpdateActivity("reading", "learning", "reading papers", "research"))

	activities, err := s.ListActivities()
	require.NoError(t, err)
	var found bool
	for _, a := range activities {
		if a.ID == act.ID {
			found = true
			assert.Equal(t, "reading papers", a.Name)
			assert.Equal(t, "research", a.Grouping)
		}
	}
	assert.True(t, found)

	require.NoError(t, s.DeleteActivity("reading papers", "research"))
	activities, err = s.ListActivities()
	require.NoError(t, err)
	for _, a := range activities {
		assert.NotEqual(t, act.ID, a.ID)
	}
}

func TestActivityErrors(t *testing.T) {
	s := openTestStore(t)

	_, err := s.AddActivity("", "whatever")
	assert.ErrorIs(t, err, ErrEmptyActivityName)

	err = s.UpdateActivity("missing", "missing", "name", "group")
	assert.ErrorIs(t, err, ErrActivityNotFound)

	err = s.DeleteActivity("missing", "missing")
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestAppendIntervalAndSnapshot(t *testing.T) {
	s := openTestStore(t)

	act, err := s.AddActivity("writing", "deep work")
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	iv, err := s.AppendInterval(act.ID, start, start.Add(90*time.Minute), "draft one")
	require.NoError(t, err)
	assert.NotZero(t, iv.ID)
	assert.Equal(t, int64(5400), iv.DurationSeconds())

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Activities, 2) // seed + writing
	assert.Len(t, snap.Intervals, 2)  // seed + appended

	last := snap.Intervals[len(snap.Intervals)-1]
	assert.Equal(t, act.ID, last.ActivityID)
	assert.True(t, last.Start.Equal(start))
	assert.Equal(t, "draft one", last.Comment)
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := openTestStore(t)

	names := []string{"alpha", "beta", "gamma"}
	for _, n := range names {
		_, err := s.AddActivity(n, "order")
		require.NoError(t, err)
	}

	activities, err := s.ListActivities()
	require.NoError(t, err)
	require.Len(t, activities, 4)
	for i, n := range names {
		assert.Equal(t, n, activities[i+1].Name)
	}
}

func TestOpenReadOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasktally.db")

	rw, err := Open(path)
	require.NoError(t, err)
	_, err = rw.AddActivity("writing", "deep work")
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	activities, err := ro.ListActivities()
	require.NoError(t, err)
	assert.Len(t, activities, 2)

	_, err = ro.AddActivity("nope", "nope")
	assert.ErrorIs(t, err, ErrReadOnly)
	_, err = ro.AppendInterval(1, time.Now(), time.Now(), "")
	assert.ErrorIs(t, err, ErrReadOnly)
	assert.ErrorIs(t, ro.DeleteActivity("writing", "deep work"), ErrReadOnly)
}
