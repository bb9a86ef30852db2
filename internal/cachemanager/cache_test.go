package cachemanager

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type face struct {
	Size float64
}

func TestInMemoryCacheManager_SetGetDelete(t *testing.T) {
	c := NewInMemoryCacheManager[face]("faces", DefaultExpiration, DefaultCleanupInterval)

	_, ok := c.Get("16")
	require.False(t, ok)

	c.Set("16", face{Size: 16}, 0)
	got, ok := c.Get("16")
	require.True(t, ok)
	require.Equal(t, 16.0, got.Size)
	require.Equal(t, 1, c.Len())

	c.Delete("16")
	_, ok = c.Get("16")
	require.False(t, ok)
}

func TestInMemoryCacheManager_Expires(t *testing.T) {
	c := NewInMemoryCacheManager[string]("frames", DefaultExpiration, DefaultCleanupInterval)
	c.Set("k", "v", time.Millisecond)

	require.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	c := NewInMemoryCacheManager[int]("n", DefaultExpiration, DefaultCleanupInterval)
	c.Set("a", 1, NoExpiration)
	c.Set("b", 2, NoExpiration)
	c.Flush()
	require.Zero(t, c.Len())
}

func TestReadThroughCache(t *testing.T) {
	calls := 0
	loader := func(size float64) (face, error) {
		calls++
		if size <= 0 {
			return face{}, errors.New("bad size")
		}
		return face{Size: size}, nil
	}
	c := NewReadThroughCache[face, float64](
		NewInMemoryCacheManager[face]("faces", DefaultExpiration, DefaultCleanupInterval),
		NoExpiration, loader)

	got, err := c.Get("12", 12)
	require.NoError(t, err)
	require.Equal(t, 12.0, got.Size)

	_, err = c.Get("12", 12)
	require.NoError(t, err)
	require.Equal(t, 1, calls, "second lookup is served from cache")

	_, err = c.Get("0", 0)
	require.Error(t, err)
	_, err = c.Get("0", 0)
	require.Error(t, err)
	require.Equal(t, 3, calls, "errors are not cached")
}
