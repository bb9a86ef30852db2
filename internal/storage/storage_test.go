package storage

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "storage.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	}
	require.Equal(t, path, s.Path())
}

func TestGetItem_Missing(t *testing.T) {
	s := openTemp(t)
	_, err := s.GetItem(context.Background(), "theme")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	require.NoError(t, s.SetItem(ctx, "theme", "dark"))
	v, err := s.GetItem(ctx, "theme")
	require.NoError(t, err)
	require.Equal(t, "dark", v)

	require.NoError(t, s.SetItem(ctx, "theme", "light"))
	v, err = s.GetItem(ctx, "theme")
	require.NoError(t, err)
	require.Equal(t, "light", v)

	require.NoError(t, s.SetItem(ctx, "another", "x"))
	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"another", "theme"}, keys)

	require.NoError(t, s.RemoveItem(ctx, "theme"))
	require.NoError(t, s.RemoveItem(ctx, "theme"))
	_, err = s.GetItem(ctx, "theme")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSecondConnectionSeesWrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.db")
	a, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = a.Close() }()
	b, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = b.Close() }()

	require.NoError(t, a.SetItem(ctx, "theme", "system"))
	v, err := b.GetItem(ctx, "theme")
	require.NoError(t, err)
	require.Equal(t, "system", v)
}

func TestCancelledContext(t *testing.T) {
	s := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, s.SetItem(ctx, "theme", "dark"))
}
