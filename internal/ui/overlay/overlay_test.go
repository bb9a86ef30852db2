package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlace_Positions(t *testing.T) {
	bg := strings.Repeat("AAAAA\n", 4) + "AAAAA"

	tests := []struct {
		name string
		cfg  Config
		row  int
	}{
		{"center", Config{Width: 5, Height: 5, Position: Center}, 2},
		{"top", Config{Width: 5, Height: 5, Position: Top}, 0},
		{"top padded", Config{Width: 5, Height: 5, Position: Top, PadY: 1}, 1},
		{"bottom", Config{Width: 5, Height: 5, Position: Bottom}, 4},
		{"bottom padded", Config{Width: 5, Height: 5, Position: Bottom, PadY: 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(Place(tt.cfg, "XX", bg), "\n")
			require.Len(t, lines, 5)
			for i, l := range lines {
				if i == tt.row {
					assert.Equal(t, "AXXAA", l)
				} else {
					assert.Equal(t, "AAAAA", l)
				}
			}
		})
	}
}

func TestPlace_LargeForegroundClampsToOrigin(t *testing.T) {
	lines := strings.Split(Place(Config{Width: 3, Height: 3}, "XXXXX\nXXXXX", "AAA\nAAA\nAAA"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "XXXXX", lines[0])
	assert.Equal(t, "XXXXX", lines[1])
	assert.Equal(t, "AAA", lines[2])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	out := Place(Config{Width: 6, Height: 3, Position: Bottom}, "XX", "A")
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "  XX  ", lines[2])
}

func TestPlace_KeepsBackgroundStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("AAAAAA")
	out := Place(Config{Width: 6, Height: 1}, "XX", styled)
	assert.Equal(t, "AAXXAA", ansi.Strip(out))
}

func TestFrame_ClipsToBounds(t *testing.T) {
	body := strings.Repeat("a very long line of help text\n", 20)
	box := Frame("Help", body, 20, 10)

	lines := strings.Split(box, "\n")
	assert.LessOrEqual(t, len(lines), 10)
	for _, l := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(l), 20)
	}
	assert.Contains(t, ansi.Strip(box), "Help")
	assert.Contains(t, ansi.Strip(box), "…")
}

func TestFrame_FitsSmallBody(t *testing.T) {
	box := Frame("Diff", "+ a: 1\n- a: 2", 80, 24)
	plain := ansi.Strip(box)
	assert.Contains(t, plain, "+ a: 1")
	assert.Contains(t, plain, "- a: 2")
	assert.Len(t, strings.Split(box, "\n"), 6)
}
