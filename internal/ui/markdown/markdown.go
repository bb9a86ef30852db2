// Package markdown renders sketch descriptions and help text for the TUI.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle removes document margins from the base style.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps glamour with a fixed light or dark style so output follows
// the sketchpad theme rather than terminal detection.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	dark     bool
}

// New creates a markdown renderer that wraps at width.
func New(width int, dark bool) (*Renderer, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width, dark: dark}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int { return r.width }

// Dark reports which style the renderer uses.
func (r *Renderer) Dark() bool { return r.dark }

// Render transforms markdown to styled terminal output without the
// trailing blank lines glamour adds.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
