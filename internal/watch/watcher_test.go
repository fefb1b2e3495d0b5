package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRefreshesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasktally.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))

	var refreshes atomic.Int32
	w, err := New(Config{Path: path, Debounce: 20 * time.Millisecond}, func() {
		refreshes.Add(1)
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Initial render fires without any write.
	require.Eventually(t, func() bool {
		return refreshes.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0644))

	require.Eventually(t, func() bool {
		return refreshes.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasktally.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0644))

	var refreshes atomic.Int32
	w, err := New(Config{Path: path, Debounce: 20 * time.Millisecond}, func() {
		refreshes.Add(1)
	})
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		return refreshes.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644))

	<-done
	// Only the initial render; the unrelated file never triggers one.
	assert.Equal(t, int32(1), refreshes.Load())
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(Config{Path: "/nonexistent-dir-tasktally/db"}, func() {})
	assert.Error(t, err)
}
