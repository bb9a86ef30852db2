package newtabs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

func setup(t *testing.T) (*Sketch, *canvas.Canvas) {
	t.Helper()
	s := New(sketch.Options{}).(*Sketch)
	c := canvas.New(812, 400)
	t.Cleanup(func() { _ = c.Close() })
	s.Render(c)
	return s, c
}

// With the defaults the bar spans x 200..612, y 179..221 and each of the
// four tabs is 103 wide.

func TestNewTabs_HoverTintsInactiveTab(t *testing.T) {
	s, c := setup(t)

	require.True(t, s.Pointer(sketch.PointerEvent{Kind: sketch.PointerMove, X: 320, Y: 185}))
	require.Equal(t, 1, s.Hovered())
	s.Render(c)

	r, g, b, _ := c.Image().At(310, 183).RGBA()
	wr, wg, wb, _ := canvas.MustParse("#F7F2FA").RGBA()
	require.InDelta(t, wr, r, 0x200)
	require.InDelta(t, wg, g, 0x200)
	require.InDelta(t, wb, b, 0x200)
}

func TestNewTabs_ClickActivates(t *testing.T) {
	s, _ := setup(t)

	require.True(t, s.Pointer(sketch.PointerEvent{Kind: sketch.PointerDown, X: 560, Y: 200}))
	require.Equal(t, 3, s.ActiveTab())
	require.Equal(t, sketch.CursorPointer, s.Cursor())

	s.Pointer(sketch.PointerEvent{Kind: sketch.PointerDown, X: 20, Y: 20})
	require.Equal(t, 3, s.ActiveTab(), "clicking outside keeps the active tab")
	require.Equal(t, sketch.CursorDefault, s.Cursor())
}

func TestNewTabs_ClickGoesThroughParams(t *testing.T) {
	s, _ := setup(t)
	var seen []string
	s.Params().OnChange(func(key string) { seen = append(seen, key) })

	s.Pointer(sketch.PointerEvent{Kind: sketch.PointerDown, X: 320, Y: 200})
	require.Equal(t, 1, s.ActiveTab())
	require.Equal(t, []string{"activeTab"}, seen)
	require.Equal(t, "1", s.Params().Changed()["activeTab"])

	s.Pointer(sketch.PointerEvent{Kind: sketch.PointerDown, X: 320, Y: 200})
	require.Len(t, seen, 1, "clicking the active tab changes nothing")
}

func TestNewTabs_RendersWithIcons(t *testing.T) {
	s, c := setup(t)
	require.NoError(t, s.Params().SetString("showIcons", "true"))
	require.NoError(t, s.Params().SetString("cornerRadius", "30"))
	require.NotPanics(t, func() { s.Render(c) })

	s.Reset()
	require.False(t, s.Config().ShowIcons)
}
