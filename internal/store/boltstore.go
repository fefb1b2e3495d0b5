package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
	bolt "go.etcd.io/bbolt"

	"github.com/penwyp/tasktally/internal/core/model"
	"github.com/penwyp/tasktally/internal/util"
)

var (
	bucketActivities = []byte("activities") // ID -> Activity
	bucketIntervals  = []byte("intervals")  // ID -> Interval
)

// seed values for a freshly-created database, so the first report and the
// first activity listing are never empty.
const (
	seedActivityName     = "Add your own activities"
	seedActivityGrouping = "getting started"
)

// BoltStore implements Store on a single-file bbolt database. Keys are
// big-endian sequence numbers, so cursor order is insertion order; values
// are JSON.
type BoltStore struct {
	db       *bolt.DB
	readOnly bool
}

// Open opens (creating if necessary) the database at path. A brand-new
// database is seeded with a starter activity and one zero-length interval.
func Open(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	s := &BoltStore{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenReadOnly opens an existing database without taking the write lock,
// which lets watch mode read while another process logs intervals.
func OpenReadOnly(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{ReadOnly: true, Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s read-only: %w", path, err)
	}
	return &BoltStore{db: db, readOnly: true}, nil
}

func (s *BoltStore) initialize() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		activities, err := tx.CreateBucketIfNotExists(bucketActivities)
		if err != nil {
			return fmt.Errorf("failed to create activities bucket: %w", err)
		}
		intervals, err := tx.CreateBucketIfNotExists(bucketIntervals)
		if err != nil {
			return fmt.Errorf("failed to create intervals bucket: %w", err)
		}

		// A fresh database gets one placeholder activity and a
		// zero-length interval against it.
		if activities.Stats().KeyN == 0 {
			act, seedErr := putActivity(activities, seedActivityName, seedActivityGrouping)
			if seedErr != nil {
				return seedErr
			}
			util.LogDebugf("Seeded new database with activity %d", act.ID)
		}
		if intervals.Stats().KeyN == 0 {
			now := time.Now()
			if _, seedErr := putInterval(intervals, 1, now, now, ""); seedErr != nil {
				return seedErr
			}
		}
		return nil
	})
}

// Snapshot implements Store.Snapshot with a single View transaction.
func (s *BoltStore) Snapshot() (*model.Snapshot, error) {
	snap := &model.Snapshot{}
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		if snap.Activities, err = readActivities(tx); err != nil {
			return err
		}
		snap.Intervals, err = readIntervals(tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// ListActivities implements Store.ListActivities.
func (s *BoltStore) ListActivities() ([]model.Activity, error) {
	var activities []model.Activity
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		activities, err = readActivities(tx)
		return err
	})
	return activities, err
}

// ListIntervals implements Store.ListIntervals.
func (s *BoltStore) ListIntervals() ([]model.Interval, error) {
	var intervals []model.Interval
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		intervals, err = readIntervals(tx)
		return err
	})
	return intervals, err
}

// AddActivity implements Store.AddActivity.
func (s *BoltStore) AddActivity(name, grouping string) (model.Activity, error) {
	if s.readOnly {
		return model.Activity{}, ErrReadOnly
	}
	if name == "" {
		return model.Activity{}, ErrEmptyActivityName
	}

	var act model.Activity
	err := s.db.Update(func(tx *bolt.Tx) error {
		var err error
		act, err = putActivity(tx.Bucket(bucketActivities), name, grouping)
		return err
	})
	return act, err
}

// UpdateActivity implements Store.UpdateActivity.
func (s *BoltStore) UpdateActivity(oldName, oldGrouping, newName, newGrouping string) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if newName == "" {
		return ErrEmptyActivityName
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketActivities)
		id, act, err := findActivity(b, oldName, oldGrouping)
		if err != nil {
			return err
		}

		act.Name = newName
		act.Grouping = newGrouping
		data, err := sonic.Marshal(act)
		if err != nil {
			return fmt.Errorf("failed to marshal activity: %w", err)
		}
		return b.Put(id, data)
	})
}

// DeleteActivity implements Store.DeleteActivity. Intervals that reference
// the deleted activity stay in the log and become dangling references.
func (s *BoltStore) DeleteActivity(name, grouping string) error {
	if s.readOnly {
		return ErrReadOnly
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketActivities)
		id, _, err := findActivity(b, name, grouping)
		if err != nil {
			return err
		}
		return b.Delete(id)
	})
}

// AppendInterval implements Store.AppendInterval.
func (s *BoltStore) AppendInterval(activityID uint64, start, stop time.Time, comment string) (model.Interval, error) {
	if s.readOnly {
		return model.Interval{}, ErrReadOnly
	}

	var iv model.Interval
	err := s.db.Update(func(tx *bolt.Tx) error {
		var err error
		iv, err = putInterval(tx.Bucket(bucketIntervals), activityID, start, stop, comment)
		return err
	})
	return iv, err
}

// Close implements Store.Close.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func putActivity(b *bolt.Bucket, name, grouping string) (model.Activity, error) {
	id, err := b.NextSequence()
	if err != nil {
		return model.Activity{}, fmt.Errorf("failed to allocate activity id: %w", err)
	}

	act := model.Activity{ID: id, Name: name, Grouping: grouping}
	data, err := sonic.Marshal(act)
	if err != nil {
		return model.Activity{}, fmt.Errorf("failed to marshal activity: %w", err)
	}
	if err := b.Put(itob(id), data); err != nil {
		return model.Activity{}, fmt.Errorf("failed to store activity: %w", err)
	}
	return act, nil
}

func putInterval(b *bolt.Bucket, activityID uint64, start, stop time.Time, comment string) (model.Interval, error) {
	id, err := b.NextSequence()
	if err != nil {
		return model.Interval{}, fmt.Errorf("failed to allocate interval id: %w", err)
	}

	iv := model.Interval{ID: id, ActivityID: activityID, Start: start, Stop: stop, Comment: comment}
	data, err := sonic.Marshal(iv)
	if err != nil {
		return model.Interval{}, fmt.Errorf("failed to marshal interval: %w", err)
	}
	if err := b.Put(itob(id), data); err != nil {
		return model.Interval{}, fmt.Errorf("failed to store interval: %w", err)
	}
	return iv, nil
}

func findActivity(b *bolt.Bucket, name, grouping string) ([]byte, model.Activity, error) {
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		var act model.Activity
		if err := sonic.Unmarshal(v, &act); err != nil {
			return nil, model.Activity{}, fmt.Errorf("failed to unmarshal activity: %w", err)
		}
		if act.Name == name && act.Grouping == grouping {
			return k, act, nil
		}
	}
	return nil, model.Activity{}, ErrActivityNotFound
}

func readActivities(tx *bolt.Tx) ([]model.Activity, error) {
	b := tx.Bucket(bucketActivities)
	if b == nil {
		return nil, nil
	}

	var activities []model.Activity
	err := b.ForEach(func(k, v []byte) error {
		var act model.Activity
		if err := sonic.Unmarshal(v, &act); err != nil {
			return fmt.Errorf("failed to unmarshal activity: %w", err)
		}
		activities = append(activities, act)
		return nil
	})
	return activities, err
}

func readIntervals(tx *bolt.Tx) ([]model.Interval, error) {
	b := tx.Bucket(bucketIntervals)
	if b == nil {
		return nil, nil
	}

	var intervals []model.Interval
	err := b.ForEach(func(k, v []byte) error {
		var iv model.Interval
		if err := sonic.Unmarshal(v, &iv); err != nil {
			return fmt.Errorf("failed to unmarshal interval: %w", err)
		}
		intervals = append(intervals, iv)
		return nil
	})
	return intervals, err
}

// itob converts a sequence number to a big-endian key, so cursor order
// matches insertion order.
func itob(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}
