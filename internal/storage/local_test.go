package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_SaveAndRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	relPath, err := store.Save("members", "photo.JPG", strings.NewReader("image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "members/"))
	assert.True(t, strings.HasSuffix(relPath, ".jpg"))

	data, err := os.ReadFile(filepath.Join(store.Dir(), relPath))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))

	require.NoError(t, store.Remove(relPath))
	_, err = os.Stat(filepath.Join(store.Dir(), relPath))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStore_RemoveMissingFile(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove("members/gone.png"))
	assert.NoError(t, store.Remove(""))
}

func TestDiskStore_PublicURL(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/uploads/members/a.png", store.PublicURL("members/a.png"))
}

func TestDiskStore_UniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("carousel", "slide.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("carousel", "slide.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
