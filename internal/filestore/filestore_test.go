package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	name, path, err := store.Save("receipt.pdf", strings.NewReader("payload"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(name, "_receipt.pdf"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestSaveSanitizesName(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	name, path, err := store.Save("../../etc/pass wd?.txt", strings.NewReader("x"))
	require.NoError(t, err)

	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, " ")
	assert.NotContains(t, name, "?")
	assert.FileExists(t, path)
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	_, path, err := store.Save("note.txt", strings.NewReader("x"))
	require.NoError(t, err)

	store.Delete(path)
	assert.NoFileExists(t, path)

	// missing file and empty path are quiet no-ops
	store.Delete(path)
	store.Delete("")
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := New(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
