package tabs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

func render(t *testing.T, s sketch.Sketch) *canvas.Canvas {
	t.Helper()
	c := canvas.New(800, 400)
	t.Cleanup(func() { _ = c.Close() })
	s.Render(c)
	return c
}

func TestTabs_ClickActivates(t *testing.T) {
	s := New(sketch.Options{Seed: 1}).(*Sketch)
	render(t, s)

	// bar spans x 194..606, y 179..221; two tabs of 206 each
	require.True(t, s.Pointer(sketch.PointerEvent{Kind: sketch.PointerMove, X: 300, Y: 200}), "hover changed")
	require.False(t, s.Pointer(sketch.PointerEvent{Kind: sketch.PointerDown, X: 300, Y: 200}), "already active")
	require.True(t, s.Pointer(sketch.PointerEvent{Kind: sketch.PointerDown, X: 500, Y: 200}))
	require.Equal(t, 1, s.ActiveTab())
	require.Equal(t, sketch.CursorPointer, s.Cursor())

	require.True(t, s.Pointer(sketch.PointerEvent{Kind: sketch.PointerMove, X: 10, Y: 10}))
	require.Equal(t, sketch.CursorDefault, s.Cursor())
	require.Equal(t, 1, s.ActiveTab(), "leaving the bar keeps the selection")
}

func TestTabs_TabCountChangesHitAreas(t *testing.T) {
	s := New(sketch.Options{}).(*Sketch)
	require.NoError(t, s.Params().SetString("tabCount", "4"))
	render(t, s)

	s.Pointer(sketch.PointerEvent{Kind: sketch.PointerDown, X: 600, Y: 200})
	require.Equal(t, 3, s.ActiveTab())

	s.Reset()
	require.Equal(t, 0, s.ActiveTab())
	require.Equal(t, 2, s.Config().TabCount)
}

func TestTabs_IndicatorDrawnUnderActiveTab(t *testing.T) {
	s := New(sketch.Options{}).(*Sketch)
	require.NoError(t, s.Params().SetString("indicatorHeight", "10"))
	c := render(t, s)

	img := c.Image()
	r, g, b, _ := img.At(220, 217).RGBA()
	want := canvas.MustParse("#6A5ACD")
	wr, wg, wb, _ := want.RGBA()
	require.InDelta(t, wr, r, 0x200)
	require.InDelta(t, wg, g, 0x200)
	require.InDelta(t, wb, b, 0x200)
}
