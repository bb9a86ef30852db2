package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShowAndHide(t *testing.T) {
	m := New().Show("Exported tabs-component.png", StyleSuccess)
	assert.True(t, m.Visible())
	assert.Equal(t, "Exported tabs-component.png", m.Message())
	assert.Contains(t, ansi.Strip(m.View()), "✓ Exported tabs-component.png")

	m = m.Hide()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().Show("First", StyleSuccess).Show("Second", StyleError)
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "✗ Second")
	assert.NotContains(t, view, "First")
}

func TestStyles_Icons(t *testing.T) {
	assert.Contains(t, ansi.Strip(New().Show("x", StyleInfo).View()), "• x")
	assert.Contains(t, ansi.Strip(New().Show("x", StyleWarn).View()), "! x")
}

func TestDismiss_IgnoresStaleMessages(t *testing.T) {
	m := New().Show("First", StyleInfo)
	stale := m.ScheduleDismiss(time.Millisecond)().(DismissMsg)

	m = m.Show("Second", StyleInfo)
	m = m.Update(stale)
	require.True(t, m.Visible(), "dismiss for an older toast must not hide a newer one")

	current := m.ScheduleDismiss(time.Millisecond)().(DismissMsg)
	m = m.Update(current)
	require.False(t, m.Visible())
}

func TestOverlay_BottomCentre(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", 40)+"\n", 10), "\n")

	out := New().Overlay(bg, 40, 10)
	require.Equal(t, bg, out)

	out = New().Show("Saved", StyleSuccess).Overlay(bg, 40, 10)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Len(t, lines, 10)
	// box is three rows tall and sits one row above the bottom edge
	require.Contains(t, lines[7], "✓ Saved")
	require.Equal(t, strings.Repeat(" ", 40), lines[9])
}
