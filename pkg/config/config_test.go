package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))

	require.Error(t, err)
	assert.True(t, IsNotExist(err))
	assert.Equal(t, Default(), cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := Default()
	cfg.Language = "ru"
	cfg.AddRecent("/tmp/a.txt")

	require.NoError(t, SaveConfig(path, cfg))
	loaded, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	cfg, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestAddRecent(t *testing.T) {
	cfg := Default()
	for i := 0; i < 12; i++ {
		cfg.AddRecent(filepath.Join("/tmp", string(rune('a'+i))+".txt"))
	}
	cfg.AddRecent("/tmp/f.txt")

	require.Len(t, cfg.RecentFiles, maxRecentFiles)
	assert.Equal(t, "/tmp/f.txt", cfg.RecentFiles[0])
	assert.Equal(t, "/tmp/l.txt", cfg.RecentFiles[1])

	seen := map[string]bool{}
	for _, p := range cfg.RecentFiles {
		assert.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())

	cfg.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	cfg.LogLevel = "loud"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
