package manifest

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

func TestNewWatcher(t *testing.T) {
	w, err := NewWatcher("manifest.yaml", 0)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.Equal(t, DefaultDebounceInterval, w.debounceInterval)
}

func TestWatcher_ReappliesOnChange(t *testing.T) {
	path := writeManifest(t, browserManifest)
	w, err := NewWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(context.Context) { calls.Add(1) })
	}()

	// Give the watcher time to register before touching the file
	time.Sleep(100 * time.Millisecond)

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(path), "other.yaml"), []byte("x"), 0644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())

	// A burst of writes is debounced into one call
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte(browserManifest), 0644))
	}
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "manifest.yaml"), time.Millisecond)
	require.NoError(t, err)

	err = w.Watch(context.Background(), func(context.Context) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}
