package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/scribe-cli/internal/core/domain"
)

type recordingAnalyst struct {
	mu       sync.Mutex
	rebuilds int
}

func (r *recordingAnalyst) Ask(context.Context, string) (*domain.Answer, error) {
	return nil, domain.ErrNotReady
}

func (r *recordingAnalyst) State() domain.IndexState { return domain.StateReady }

func (r *recordingAnalyst) Stats() domain.IndexStats { return domain.IndexStats{} }

func (r *recordingAnalyst) Rebuild(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rebuilds++
	return nil
}

func (r *recordingAnalyst) rebuildCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rebuilds
}

func TestWatcher_RebuildsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	analyst := &recordingAnalyst{}
	w, err := New(analyst, path, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	// Give the watch loop a moment to start.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0600))

	require.Eventually(t, func() bool {
		return analyst.rebuildCount() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	<-done
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	analyst := &recordingAnalyst{}
	w, err := New(analyst, path, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("junk"), 0600))
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, 0, analyst.rebuildCount())

	cancel()
	<-done
}

func TestWatcher_RelevantEvents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w, err := New(&recordingAnalyst{}, path, 0)
	require.NoError(t, err)
	defer w.fsw.Close()

	assert.True(t, w.relevant(fsnotify.Event{Name: path, Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: path, Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: path, Op: fsnotify.Chmod}))
	assert.False(t, w.relevant(fsnotify.Event{Name: filepath.Join(dir, "x.txt"), Op: fsnotify.Write}))
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(&recordingAnalyst{}, filepath.Join(t.TempDir(), "missing", "t.txt"), 0)
	assert.Error(t, err)
}

func TestNew_DefaultDebounce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "t.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0600))

	w, err := New(&recordingAnalyst{}, path, 0)
	require.NoError(t, err)
	defer w.fsw.Close()

	assert.Equal(t, DefaultDebounce, w.debounce)
}
