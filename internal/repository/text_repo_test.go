package repository

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/model"
)

func TestSaveThenLoadIsVerbatim(t *testing.T) {
	repo := NewTextRepository()
	path := filepath.Join(t.TempDir(), "a.txt")
	content := "line one\r\nline two\n\tno trailing newline"

	require.NoError(t, repo.Save(path, content))

	got, err := repo.Load(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSaveOverwritesShorterContent(t *testing.T) {
	repo := NewTextRepository()
	path := filepath.Join(t.TempDir(), "a.txt")

	require.NoError(t, repo.Save(path, "a much longer first version"))
	require.NoError(t, repo.Save(path, "short"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestLoadMissingFile(t *testing.T) {
	repo := NewTextRepository()
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := repo.Load(path)
	require.Error(t, err)

	var ioErr *model.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, path, ioErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, 1, strings.Count(err.Error(), path), err.Error())

	var pathErr *fs.PathError
	assert.False(t, errors.As(ioErr.Err, &pathErr))
}

func TestFailedSaveKeepsOriginal(t *testing.T) {
	repo := NewTextRepository()
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, repo.Save(path, "original content"))

	repo.write = func(w io.Writer, s string) (int, error) {
		n, _ := io.WriteString(w, s[:len(s)/2])
		return n, errors.New("file too large")
	}
	err := repo.Save(path, strings.Repeat("x", 64*1024))
	require.Error(t, err)

	var ioErr *model.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, 1, strings.Count(err.Error(), path), err.Error())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original content", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestSaveOverDirectoryFails(t *testing.T) {
	repo := NewTextRepository()
	dir := t.TempDir()
	path := filepath.Join(dir, "target")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0755))

	err := repo.Save(path, "text")

	var ioErr *model.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "rename", ioErr.Op)
	assert.DirExists(t, filepath.Join(path, "child"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveKeepsFileMode(t *testing.T) {
	repo := NewTextRepository()
	path := filepath.Join(t.TempDir(), "private.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))
	require.NoError(t, os.Chmod(path, 0600))

	require.NoError(t, repo.Save(path, "new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	repo := NewTextRepository()
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "a.txt")

	err := repo.Save(path, "x")

	var ioErr *model.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)
}
