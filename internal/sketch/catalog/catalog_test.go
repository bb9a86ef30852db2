package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/sketch"
)

func TestEntries_Order(t *testing.T) {
	require.Equal(t, []string{"tabs", "newtabs", "radio", "textfields"}, Names())
	for _, e := range Entries() {
		s := e.New(sketch.Options{Seed: 1})
		require.Equal(t, e.Name, s.Info().Name)
		require.NotEmpty(t, s.Info().ExportBase)
		require.Positive(t, s.Params().Len())
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup("Radio")
	require.NoError(t, err)
	require.Equal(t, "radio", e.Name)

	_, err = Lookup("sliders")
	require.ErrorContains(t, err, "available: tabs, newtabs, radio, textfields")

	s, err := Create("textfields", sketch.Options{Seed: 3})
	require.NoError(t, err)
	require.Equal(t, "textfield-component", s.Info().ExportBase)
}

// drawValue picks a raw value inside the declared bounds of p.
func drawValue(t *rapid.T, p params.Param) string {
	label := p.Key()
	switch v := p.(type) {
	case *params.IntParam:
		return fmt.Sprint(rapid.IntRange(v.Min, v.Max).Draw(t, label))
	case *params.FloatParam:
		return fmt.Sprint(rapid.Float64Range(v.Min, v.Max).Draw(t, label))
	case *params.BoolParam:
		return fmt.Sprint(rapid.Bool().Draw(t, label))
	case *params.ChoiceParam:
		return rapid.SampledFrom(v.Options).Draw(t, label)
	case *params.ColorParam:
		return rapid.StringMatching(`#[0-9a-fA-F]{6}`).Draw(t, label)
	default:
		return rapid.StringMatching(`[\p{L}\p{N} .,!?]{0,40}`).Draw(t, label)
	}
}

func TestRenderNeverPanics(t *testing.T) {
	for _, e := range Entries() {
		t.Run(e.Name, func(t *testing.T) {
			rapid.Check(t, func(t *rapid.T) {
				s := e.New(sketch.Options{Seed: rapid.Uint64Min(1).Draw(t, "seed")})
				for _, p := range s.Params().All() {
					if err := s.Params().SetString(p.Key(), drawValue(t, p)); err != nil {
						t.Fatalf("%s: %v", p.Key(), err)
					}
				}
				w := rapid.IntRange(1, 640).Draw(t, "w")
				h := rapid.IntRange(1, 480).Draw(t, "h")
				c := canvas.New(w, h)
				defer func() { _ = c.Close() }()

				s.Render(c)
				x := rapid.Float64Range(0, float64(w)).Draw(t, "x")
				y := rapid.Float64Range(0, float64(h)).Draw(t, "y")
				s.Pointer(sketch.PointerEvent{Kind: sketch.PointerMove, X: x, Y: y})
				s.Pointer(sketch.PointerEvent{Kind: sketch.PointerDown, X: x, Y: y})
				s.Pointer(sketch.PointerEvent{Kind: sketch.PointerUp, X: x, Y: y})
				s.Key(sketch.Rune('a'))
				s.Tick(time.Now())
				s.Render(c)
			})
		})
	}
}
