package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/tedit/core"
)

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSave_CreatesAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")

	require.NoError(t, Save(path, "first\n"))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", got)

	require.NoError(t, Save(path, "second\n"))
	got, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestSave_KeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo hi\n"), 0o755))

	require.NoError(t, Save(path, "echo bye\n"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestSave_MissingDirectory(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "no", "such", "dir.txt"), "x")
	require.Error(t, err)
}

func TestSave_FollowsSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("old\n"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, Save(link, "new\n"))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink, "link is still a symlink")

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(got))
}

// read and write a file through the document without changing it
func TestReadWriteInvariance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gettysburg.txt")
	original := "Four score and seven years ago\n\nour fathers brought forth\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	text, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, Save(path, core.Parse(text).Serialize()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(got))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "notes.txt"), got)

	got, err = ExpandPath("/abs/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "/abs/notes.txt", got)
}
