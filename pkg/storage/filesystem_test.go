package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCacheRoundTrip(t *testing.T) {
	cache, err := NewPageCache(t.TempDir())
	require.NoError(t, err)

	_, ok, err := cache.Load("program-5522-2024.html")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Store("program-5522-2024.html", []byte("<html/>")))

	data, ok, err := cache.Load("program-5522-2024.html")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("<html/>"), data)

	require.NoError(t, cache.Invalidate("program-5522-2024.html"))
	_, ok, err = cache.Load("program-5522-2024.html")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPageCacheInvalidateMissingIsNoError(t *testing.T) {
	cache, err := NewPageCache(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, cache.Invalidate("never-stored.html"))
}

func TestPageCacheConfinesNamesToBaseDir(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewPageCache(filepath.Join(dir, "cache"))
	require.NoError(t, err)

	require.NoError(t, cache.Store("../escape.html", []byte("x")))

	_, err = os.Stat(filepath.Join(dir, "escape.html"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "cache", "escape.html"))
	assert.NoError(t, err)
}
