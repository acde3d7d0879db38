package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daddeck/internal/structures"
)

// Local compressor mock: testutil imports providers, which imports
// services, so services tests cannot use the shared mocks.
type wishlistTestCompressor struct {
	decompressFn func([]byte) ([]byte, error)
}

func (c *wishlistTestCompressor) Compress(val []byte) ([]byte, error) {
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (c *wishlistTestCompressor) Decompress(val []byte) ([]byte, error) {
	if c.decompressFn != nil {
		return c.decompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (c *wishlistTestCompressor) Close() {}

func newTestWishlist(t *testing.T) WishlistServiceInterface {
	conf := &structures.Config{
		Persistence: structures.Persistence{
			WishlistPath: filepath.Join(t.TempDir(), "wishlist.bin"),
		},
	}
	return NewWishlistService(conf, &wishlistTestCompressor{})
}

func TestWishlist_AddRemoveHas(t *testing.T) {
	ws := newTestWishlist(t)

	assert.True(t, ws.Add("bbq_dad_003"))
	assert.False(t, ws.Add("bbq_dad_003")) // already present
	assert.True(t, ws.Has("bbq_dad_003"))
	assert.Equal(t, 1, ws.Len())

	assert.True(t, ws.Remove("bbq_dad_003"))
	assert.False(t, ws.Remove("bbq_dad_003"))
	assert.False(t, ws.Has("bbq_dad_003"))
	assert.Equal(t, 0, ws.Len())
}

func TestWishlist_ListSorted(t *testing.T) {
	ws := newTestWishlist(t)
	ws.Add("zebra")
	ws.Add("alpha")
	ws.Add("mid")

	assert.Equal(t, []string{"alpha", "mid", "zebra"}, ws.List())
}

func TestWishlist_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Persistence: structures.Persistence{WishlistPath: filepath.Join(dir, "wishlist.bin")},
	}

	ws := NewWishlistService(conf, &wishlistTestCompressor{})
	ws.Add("curse_001")
	ws.Add("item_001")
	require.NoError(t, ws.Save())

	// tmp file cleaned up after atomic rename
	_, err := os.Stat(conf.Persistence.WishlistPath + ".tmp")
	assert.True(t, os.IsNotExist(err))

	ws2 := NewWishlistService(conf, &wishlistTestCompressor{})
	require.NoError(t, ws2.Load())
	assert.Equal(t, []string{"curse_001", "item_001"}, ws2.List())
}

func TestWishlist_LoadMissingFile(t *testing.T) {
	ws := newTestWishlist(t)
	require.NoError(t, ws.Load())
	assert.Equal(t, 0, ws.Len())
}

func TestWishlist_LoadCorruptFileLeavesEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wishlist.bin")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))

	conf := &structures.Config{
		Persistence: structures.Persistence{WishlistPath: path},
	}
	comp := &wishlistTestCompressor{
		decompressFn: func([]byte) ([]byte, error) { return nil, assert.AnError },
	}

	ws := NewWishlistService(conf, comp)
	require.NoError(t, ws.Load())
	assert.Equal(t, 0, ws.Len())
}
