// Package overlay draws boxed content over an already rendered view without
// clearing it. The playground uses it for the help, diff and toast layers.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/sketchpad/internal/ui/styles"
)

// Position specifies where to place the overlay content.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Config controls overlay placement.
type Config struct {
	Width    int // viewport width
	Height   int // viewport height
	Position Position
	PadY     int // distance from the edge for Top/Bottom
}

// Place renders fg on top of bg. Both may contain ANSI styling; the
// background keeps its styling on either side of the foreground.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")
	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	x, y := origin(cfg, lipgloss.Width(fg), len(fgLines))
	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of bg starting at column x with fg.
func splice(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	var right string
	if end := x + ansi.StringWidth(fg); end < ansi.StringWidth(bg) {
		right = ansi.TruncateLeft(bg, end, "")
	}
	return left + fg + right
}

func origin(cfg Config, w, h int) (x, y int) {
	x = (cfg.Width - w) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - h - cfg.PadY
	default:
		y = (cfg.Height - h) / 2
	}
	return max(x, 0), max(y, 0)
}

// Frame wraps body in a rounded box with a title row and divider, clipped
// to maxWidth x maxHeight cells including the border. Lines that do not fit
// are dropped and replaced by a "…" row.
func Frame(title, body string, maxWidth, maxHeight int) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")

	inner := 0
	for _, l := range lines {
		inner = max(inner, ansi.StringWidth(l))
	}
	inner = max(inner, ansi.StringWidth(title)+2)
	inner = min(inner, max(maxWidth-2, 1))

	// border (2) + title + divider
	room := max(maxHeight-4, 1)
	if len(lines) > room {
		lines = append(lines[:room-1], styles.HintStyle.Render("…"))
	}
	for i, l := range lines {
		lines[i] = styles.Truncate(l, inner)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.PanelTitleColor).PaddingLeft(1)
	divider := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", inner))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Width(inner)

	return box.Render(titleStyle.Render(styles.Truncate(title, inner-1)) + "\n" + divider + "\n" + strings.Join(lines, "\n"))
}
