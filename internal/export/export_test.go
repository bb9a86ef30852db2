package export

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/sketchpad/internal/pubsub"
	"github.com/zjrosen/sketchpad/internal/sketch"
	"github.com/zjrosen/sketchpad/internal/sketch/catalog"
)

func allSketches(t *testing.T) []sketch.Sketch {
	t.Helper()
	var out []sketch.Sketch
	for _, e := range catalog.Entries() {
		out = append(out, e.New(sketch.Options{Seed: 7}))
	}
	return out
}

func TestFileName(t *testing.T) {
	require.Equal(t, "tabs-component.png", FileName("tabs-component", false))
	require.Regexp(t, regexp.MustCompile(`^tabs-component-[0-9a-f]{8}\.png$`), FileName("tabs-component", true))
	require.NotEqual(t, FileName("x", true), FileName("x", true))
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())
	require.Error(t, Options{Width: 0, Height: 10, PixelRatio: 1}.Validate())
	require.Error(t, Options{Width: 10, Height: 10, PixelRatio: 0}.Validate())
}

func TestExport_WritesPNGAtPixelRatio(t *testing.T) {
	dir := t.TempDir()
	e := New(Options{Dir: dir, Width: 200, Height: 100, PixelRatio: 2}, nil)
	defer e.Close()

	sk, err := catalog.Create("radio", sketch.Options{Seed: 1})
	require.NoError(t, err)
	path, err := e.Export(context.Background(), sk)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "radio-buttons-component.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 400, cfg.Width)
	require.Equal(t, 200, cfg.Height)

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestExport_OverwritesUnlessUnique(t *testing.T) {
	dir := t.TempDir()
	sk, err := catalog.Create("tabs", sketch.Options{Seed: 1})
	require.NoError(t, err)

	plain := New(Options{Dir: dir, Width: 50, Height: 50, PixelRatio: 1}, nil)
	a, err := plain.Export(context.Background(), sk)
	require.NoError(t, err)
	b, err := plain.Export(context.Background(), sk)
	require.NoError(t, err)
	require.Equal(t, a, b)

	unique := New(Options{Dir: dir, Width: 50, Height: 50, PixelRatio: 1, Unique: true}, nil)
	c, err := unique.Export(context.Background(), sk)
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestExport_PublishesEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	e := New(Options{Dir: t.TempDir(), Width: 40, Height: 40, PixelRatio: 1}, nil)
	defer e.Close()
	events := e.Broker().Subscribe(ctx)

	sk, err := catalog.Create("newtabs", sketch.Options{Seed: 1})
	require.NoError(t, err)
	path, err := e.Export(ctx, sk)
	require.NoError(t, err)

	select {
	case ev := <-events:
		require.Equal(t, pubsub.ExportedEvent, ev.Type)
		require.Equal(t, path, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("no export event")
	}
}

func TestExport_FailureIsReported(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	e := New(Options{Dir: filepath.Join(blocker, "sub"), Width: 40, Height: 40, PixelRatio: 1}, nil)
	events := e.Broker().Subscribe(ctx)
	sk, err := catalog.Create("tabs", sketch.Options{Seed: 1})
	require.NoError(t, err)
	_, err = e.Export(ctx, sk)
	require.ErrorContains(t, err, "creating export directory")

	select {
	case ev := <-events:
		require.Equal(t, pubsub.FailedEvent, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("no failure event")
	}
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()
	e := New(Options{Dir: dir, Width: 120, Height: 90, PixelRatio: 1}, nil)
	var seen []int
	paths, err := e.ExportAll(context.Background(), allSketches(t), func(i int, _ string, err error) {
		require.NoError(t, err)
		seen = append(seen, i)
	})
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, seen)
	require.Len(t, paths, 4)
	for _, p := range paths {
		require.FileExists(t, p)
	}
}

func TestExportAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e := New(Options{Dir: t.TempDir(), Width: 10, Height: 10, PixelRatio: 1}, nil)
	paths, err := e.ExportAll(ctx, allSketches(t), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, paths)
}
