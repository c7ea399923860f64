package service

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	var mu sync.Mutex
	var changed []string
	fw := NewFileWatcher(func(p string) {
		mu.Lock()
		changed = append(changed, p)
		mu.Unlock()
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer fw.Stop()

	require.NoError(t, fw.Watch(path))
	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("b"), 0644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(changed) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	for _, p := range changed {
		require.Equal(t, abs, p)
	}
}
