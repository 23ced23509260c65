package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirAssetStoreResolve(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte{0x89, 'P', 'N', 'G'}, 0644))

	store := NewDirAssetStore(dir)

	asset, err := store.Resolve("logo.png")
	require.NoError(t, err)
	assert.Equal(t, "PNG", asset.Format)
	assert.Equal(t, filepath.Join(dir, "logo.png"), asset.Path)
}

func TestDirAssetStoreResolveFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.jpeg", "c.gif"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	store := NewDirAssetStore(dir)

	jpg, err := store.Resolve("a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "JPG", jpg.Format)

	jpeg, err := store.Resolve("b.jpeg")
	require.NoError(t, err)
	assert.Equal(t, "JPG", jpeg.Format)

	gif, err := store.Resolve("c.gif")
	require.NoError(t, err)
	assert.Equal(t, "GIF", gif.Format)
}

func TestDirAssetStoreResolveErrors(t *testing.T) {
	store := NewDirAssetStore(t.TempDir())

	_, err := store.Resolve("missing.png")
	assert.Error(t, err)

	_, err = store.Resolve("notes.txt")
	assert.Error(t, err, "unsupported format")

	_, err = store.Resolve("../escape.png")
	assert.Error(t, err, "traversal blocked")

	_, err = store.Resolve("")
	assert.Error(t, err)
}
