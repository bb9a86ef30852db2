// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/sketchpad/internal/keys"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/sketch"
	"github.com/zjrosen/sketchpad/internal/ui/markdown"
	"github.com/zjrosen/sketchpad/internal/ui/overlay"
	"github.com/zjrosen/sketchpad/internal/ui/styles"
)

// sectionNames label the groups returned by keys.KeyMap.FullHelp.
var sectionNames = []string{"Actions", "View", "Sidebar", "Panel", "General"}

// Model holds the help view state.
type Model struct {
	keys   keys.KeyMap
	info   sketch.Info
	dark   bool
	width  int
	height int
}

// New creates a help view.
func New() Model {
	return Model{dark: true}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetSketch sets the sketch whose description heads the overlay.
func (m Model) SetSketch(info sketch.Info) Model {
	m.info = info
	return m
}

// SetDark selects the markdown style.
func (m Model) SetDark(dark bool) Model {
	m.dark = dark
	return m
}

// Dark reports whether the markdown uses the dark style.
func (m Model) Dark() bool { return m.dark }

// Overlay renders the help box on top of background.
func (m Model) Overlay(background string) string {
	box := overlay.Frame("Help · "+m.info.Title, m.renderContent(), m.width-4, m.height-2)
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}

func (m Model) renderContent() string {
	var b strings.Builder
	if desc := m.renderDescription(); desc != "" {
		b.WriteString(desc)
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderKeys())
	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle.Render("Press ? or esc to close"))
	return b.String()
}

// renderDescription renders the sketch's markdown description, falling back
// to plain text when glamour fails.
func (m Model) renderDescription() string {
	if m.info.Description == "" {
		return ""
	}
	width := max(min(m.width-8, 72), 20)
	r, err := markdown.New(width, m.dark)
	if err == nil {
		var out string
		if out, err = r.Render(m.info.Description); err == nil {
			return out
		}
	}
	log.ErrorErr(log.CatUI, "Rendering sketch description failed", err, "sketch", m.info.Name)
	return m.info.Description
}

func (m Model) renderKeys() string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.PanelTitleColor)
	columnStyle := lipgloss.NewStyle().MarginRight(3)

	var cols []string
	for i, group := range m.keys.FullHelp() {
		var col strings.Builder
		if i < len(sectionNames) {
			col.WriteString(sectionStyle.Render(sectionNames[i]))
		}
		for _, b := range group {
			col.WriteString("\n")
			col.WriteString(renderBinding(b))
		}
		cols = append(cols, columnStyle.Render(col.String()))
	}

	// three columns per row keeps the box narrow enough for 80 columns
	var rows []string
	for i := 0; i < len(cols); i += 3 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols[i:min(i+3, len(cols))]...))
	}
	return strings.Join(rows, "\n\n")
}

func renderBinding(b key.Binding) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.PanelNumberColor).Width(11)
	descStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc)
}
