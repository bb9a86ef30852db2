package panel

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/params"
)

func init() {
	zone.NewGlobal()
}

type fixture struct {
	n    int
	f    float64
	b    bool
	s    string
	c    canvas.Color
	mode string
	set  *params.Set
}

func newFixture() *fixture {
	fx := &fixture{n: 5, f: 0.5, s: "hi", c: canvas.MustParse("#112233"), mode: "a"}
	fx.set = params.NewSet("Test").
		Group("Numbers",
			params.Int(&fx.n, "n", "Count", 0, 10, 1),
			params.Float(&fx.f, "f", "Speed", 0, 1, 0.1),
		).
		Group("Other",
			params.Bool(&fx.b, "b", "Enabled"),
			params.Text(&fx.s, "s", "Title"),
			params.Color(&fx.c, "c", "Fill"),
			params.Choice(&fx.mode, "mode", "Mode", "a", "b"),
		)
	return fx
}

func newPanel(fx *fixture) Model {
	m := New().SetParams(fx.set).SetSize(40, 20).Focus()
	// no blink ticks, so commands returned by the input resolve immediately
	m.input.Cursor.SetMode(cursor.CursorStatic)
	return m
}

func press(m Model, msgs ...tea.KeyMsg) (Model, []tea.Msg) {
	var out []tea.Msg
	for _, msg := range msgs {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd != nil {
			if res := cmd(); res != nil {
				out = append(out, res)
			}
		}
	}
	return m, out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	up        = tea.KeyMsg{Type: tea.KeyUp}
	down      = tea.KeyMsg{Type: tea.KeyDown}
	left      = tea.KeyMsg{Type: tea.KeyLeft}
	right     = tea.KeyMsg{Type: tea.KeyRight}
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func TestNavigation_SkipsHeadings(t *testing.T) {
	m := newPanel(newFixture())
	require.Equal(t, "n", m.Selected().Key())

	m, _ = press(m, down)
	require.Equal(t, "f", m.Selected().Key())
	m, _ = press(m, down)
	require.Equal(t, "b", m.Selected().Key(), "the Other heading is skipped")
	m, _ = press(m, up, up, up)
	require.Equal(t, "n", m.Selected().Key(), "cursor stops at the first param")
}

func TestStep_ClampsAndReportsChange(t *testing.T) {
	fx := newFixture()
	m := newPanel(fx)

	m, msgs := press(m, right)
	require.Equal(t, 6, fx.n)
	require.Equal(t, []tea.Msg{ChangedMsg{Key: "n"}}, msgs)

	for range 10 {
		m, _ = press(m, right)
	}
	require.Equal(t, 10, fx.n)

	_, _ = press(m, left)
	require.Equal(t, 9, fx.n)
}

func TestEdit_TypedValue(t *testing.T) {
	fx := newFixture()
	m := newPanel(fx)

	m, _ = press(m, enter)
	require.True(t, m.Editing())

	m, msgs := press(m, backspace, runes("8"), enter)
	require.False(t, m.Editing())
	require.Equal(t, 8, fx.n)
	require.Contains(t, msgs, tea.Msg(ChangedMsg{Key: "n"}))
}

func TestEdit_CancelKeepsValue(t *testing.T) {
	fx := newFixture()
	m := newPanel(fx)

	m, _ = press(m, enter, backspace, runes("9"), esc)
	require.False(t, m.Editing())
	require.Equal(t, 5, fx.n)
}

func TestEdit_InvalidColourShowsError(t *testing.T) {
	fx := newFixture()
	m := newPanel(fx)
	m, _ = press(m, down, down, down, down)
	require.Equal(t, "c", m.Selected().Key())

	m, _ = press(m, enter)
	for range 7 {
		m, _ = press(m, backspace)
	}
	m, msgs := press(m, runes("zz"), enter)

	require.Empty(t, msgs)
	require.NotEmpty(t, m.Err())
	require.Equal(t, "#112233", fx.c.Hex())
	require.Contains(t, ansi.Strip(zone.Scan(m.View())), m.Err()[:10])

	m, _ = press(m, up, up, right)
	require.Empty(t, m.Err(), "the next successful write clears the error")
}

func TestEnter_TogglesBoolAndCyclesChoice(t *testing.T) {
	fx := newFixture()
	m := newPanel(fx)

	m, _ = press(m, down, down, enter)
	require.False(t, m.Editing())
	require.True(t, fx.b)

	m, _ = press(m, down, down, down, enter)
	require.Equal(t, "mode", m.Selected().Key())
	require.Equal(t, "b", fx.mode)
}

func TestUnfocused_IgnoresKeys(t *testing.T) {
	fx := newFixture()
	m := newPanel(fx).Blur()

	m, msgs := press(m, right, enter)
	require.Empty(t, msgs)
	require.False(t, m.Editing())
	require.Equal(t, 5, fx.n)
}

func TestView_RendersRows(t *testing.T) {
	m := newPanel(newFixture())
	view := ansi.Strip(zone.Scan(m.View()))

	require.Contains(t, view, "Numbers")
	require.Contains(t, view, "Count")
	require.Contains(t, view, "0.5")
	require.Contains(t, view, "[ ]")
	require.Contains(t, view, `"hi"`)
	require.Contains(t, view, "#112233")
	require.Contains(t, view, "‹ a ›")
	require.Contains(t, view, "0–10", "footer shows the selected param's range")
	require.Len(t, strings.Split(view, "\n"), 20)
}

func TestView_ScrollsToCursor(t *testing.T) {
	m := New().SetParams(newFixture().set).SetSize(40, 5).Focus()

	m, _ = press(m, down, down, down, down, down)
	require.Equal(t, "mode", m.Selected().Key())

	view := ansi.Strip(zone.Scan(m.View()))
	require.Len(t, strings.Split(view, "\n"), 5)
	require.Contains(t, view, "Mode")
	require.NotContains(t, view, "Count")
}

func TestView_Empty(t *testing.T) {
	require.Contains(t, New().View(), "no parameters")
}

func TestMouse_ClickTogglesBool(t *testing.T) {
	fx := newFixture()
	m := newPanel(fx)

	z := waitZone(t, m, ZoneID("b"))
	m, cmd := m.HandleMouse(tea.MouseMsg{
		X: z.StartX + 1, Y: z.StartY,
		Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})
	require.NotNil(t, cmd)
	require.Equal(t, ChangedMsg{Key: "b"}, cmd())
	require.True(t, fx.b)
	require.Equal(t, "b", m.Selected().Key())
}

func TestMouse_WheelSteps(t *testing.T) {
	fx := newFixture()
	m := newPanel(fx)

	z := waitZone(t, m, ZoneID("n"))
	m, _ = m.HandleMouse(tea.MouseMsg{X: z.StartX + 1, Y: z.StartY, Button: tea.MouseButtonWheelUp})
	require.Equal(t, 6, fx.n)
	_, _ = m.HandleMouse(tea.MouseMsg{X: z.StartX + 1, Y: z.StartY, Button: tea.MouseButtonWheelDown})
	require.Equal(t, 5, fx.n)
}

// waitZone renders and scans until bubblezone's worker has registered id.
func waitZone(t *testing.T, m Model, id string) *zone.ZoneInfo {
	t.Helper()
	var z *zone.ZoneInfo
	require.Eventually(t, func() bool {
		_ = zone.Scan(m.View())
		z = zone.Get(id)
		return z != nil && !z.IsZero()
	}, time.Second, 5*time.Millisecond)
	return z
}
