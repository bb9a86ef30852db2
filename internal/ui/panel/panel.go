// Package panel is the parameter panel: a scrollable list of a sketch's
// parameters grouped under headings, edited by stepping or typing.
package panel

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/keys"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/ui/styles"
)

// ChangedMsg reports a parameter write so the owner can redraw.
type ChangedMsg struct {
	Key string
}

// zonePrefix namespaces row zones; the key follows.
const zonePrefix = "param:"

// footerLines is the hint plus one error line.
const footerLines = 2

type row struct {
	group string // set for heading rows
	param params.Param
}

// Model holds the panel state.
type Model struct {
	set     *params.Set
	rows    []row
	cursor  int // index into rows, always a param row when any exist
	offset  int // first visible row
	width   int
	height  int
	focused bool
	editing bool
	input   textinput.Model
	err     string
}

// New creates an empty panel.
func New() Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 120
	return Model{input: ti}
}

// SetParams replaces the parameter set and moves the cursor to the first
// parameter.
func (m Model) SetParams(set *params.Set) Model {
	m.set = set
	m.rows = buildRows(set)
	m.cursor = m.nextParam(-1, 1)
	m.offset = 0
	m.editing = false
	m.err = ""
	m.input.Blur()
	return m
}

func buildRows(set *params.Set) []row {
	if set == nil {
		return nil
	}
	var rows []row
	group := ""
	for _, p := range set.All() {
		if g := p.Group(); g != "" && g != group {
			rows = append(rows, row{group: g})
			group = g
		}
		rows = append(rows, row{param: p})
	}
	return rows
}

// SetSize sets the panel's inner dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.input.Width = max(m.valueWidth()-1, 1)
	m.scrollToCursor()
	return m
}

// Focus gives the panel keyboard focus.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes focus and abandons any edit in progress.
func (m Model) Blur() Model {
	m.focused = false
	m.editing = false
	m.input.Blur()
	return m
}

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.focused }

// Editing reports whether the text input is open. The playground routes all
// keys here while it is.
func (m Model) Editing() bool { return m.editing }

// Selected returns the parameter under the cursor.
func (m Model) Selected() params.Param {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].param
}

// Err is the last parse error shown in the footer.
func (m Model) Err() string { return m.err }

// Update handles key messages while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || m.set == nil {
		return m, nil
	}
	if m.editing {
		return m.updateEditing(kmsg)
	}

	switch {
	case key.Matches(kmsg, keys.Panel.Up):
		m.moveCursor(-1)
	case key.Matches(kmsg, keys.Panel.Down):
		m.moveCursor(1)
	case key.Matches(kmsg, keys.Panel.Decrement):
		return m.step(-1)
	case key.Matches(kmsg, keys.Panel.Increment):
		return m.step(1)
	case key.Matches(kmsg, keys.Panel.Edit):
		return m.beginEdit()
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Panel.Cancel):
		m.editing = false
		m.input.Blur()
		m.err = ""
		return m, nil
	case key.Matches(msg, keys.Panel.Confirm):
		p := m.Selected()
		m.editing = false
		m.input.Blur()
		if err := m.set.SetString(p.Key(), strings.TrimSpace(m.input.Value())); err != nil {
			log.Debug(log.CatUI, "Rejected parameter value", "key", p.Key(), "error", err)
			m.err = err.Error()
			return m, nil
		}
		m.err = ""
		return m, changed(p.Key())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// beginEdit opens the text input for typed kinds; bools and choices step
// instead.
func (m Model) beginEdit() (Model, tea.Cmd) {
	p := m.Selected()
	if p == nil {
		return m, nil
	}
	switch p.Kind() {
	case params.KindBool, params.KindChoice:
		return m.step(1)
	}
	m.editing = true
	m.err = ""
	m.input.SetValue(p.String())
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) step(dir int) (Model, tea.Cmd) {
	p := m.Selected()
	if p == nil {
		return m, nil
	}
	ok, err := m.set.Step(p.Key(), dir)
	if err != nil || !ok {
		return m, nil
	}
	m.err = ""
	return m, changed(p.Key())
}

func changed(key string) tea.Cmd {
	return func() tea.Msg { return ChangedMsg{Key: key} }
}

// HandleMouse selects the clicked row, toggles bools on click and steps
// numbers with the wheel. Zones must have been scanned by the caller.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.set == nil || m.editing {
		return m, nil
	}
	idx := -1
	for i := m.offset; i < min(len(m.rows), m.offset+m.listHeight()); i++ {
		r := m.rows[i]
		if r.param == nil {
			continue
		}
		if z := zone.Get(ZoneID(r.param.Key())); z != nil && z.InBounds(msg) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.cursor = idx
		return m.step(1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.cursor = idx
		return m.step(-1)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.cursor = idx
		if m.rows[idx].param.Kind() == params.KindBool {
			return m.step(1)
		}
	}
	return m, nil
}

// ZoneID is the bubblezone id of a parameter row.
func ZoneID(key string) string { return zonePrefix + key }

func (m *Model) moveCursor(dir int) {
	if next := m.nextParam(m.cursor, dir); next >= 0 {
		m.cursor = next
		m.scrollToCursor()
	}
}

// nextParam finds the next param row from i in direction dir, or -1.
func (m Model) nextParam(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(m.rows); j += dir {
		if m.rows[j].param != nil {
			return j
		}
	}
	return -1
}

func (m *Model) scrollToCursor() {
	h := m.listHeight()
	if h <= 0 || m.cursor < 0 {
		return
	}
	// keep the heading above the first param of a group visible
	top := m.cursor
	if top > 0 && m.rows[top-1].param == nil {
		top--
	}
	if top < m.offset {
		m.offset = top
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m Model) listHeight() int {
	return max(m.height-footerLines, 1)
}

func (m Model) labelWidth() int {
	return max(m.width*11/20, 4)
}

func (m Model) valueWidth() int {
	return max(m.width-m.labelWidth()-1, 1)
}

// View renders the visible rows and the footer.
func (m Model) View() string {
	if m.set == nil || len(m.rows) == 0 {
		return styles.HintStyle.Render("no parameters")
	}

	var lines []string
	end := min(len(m.rows), m.offset+m.listHeight())
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.renderRow(i))
	}
	for len(lines) < m.listHeight() {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderFooter()...)
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(i int) string {
	r := m.rows[i]
	if r.param == nil {
		return styles.PanelGroupStyle.Render(styles.Truncate(r.group, m.width))
	}

	lw := m.labelWidth()
	label := runewidth.FillRight(runewidth.Truncate(r.param.Label(), lw-1, "…"), lw)

	var value string
	if i == m.cursor && m.editing {
		value = m.input.View()
	} else {
		value = m.renderValue(r.param, m.valueWidth())
	}

	line := styles.PanelLabelStyle.Render(label) + " " + value
	if i == m.cursor && m.focused {
		line = styles.PanelCursorStyle.Width(m.width).Render(line)
	}
	return zone.Mark(ZoneID(r.param.Key()), line)
}

func (m Model) renderValue(p params.Param, width int) string {
	s := p.String()
	switch p.Kind() {
	case params.KindInt, params.KindFloat:
		return styles.PanelNumberStyle.Render(styles.Truncate(s, width))
	case params.KindBool:
		mark := "[ ]"
		if s == "true" {
			mark = "[x]"
		}
		return styles.PanelNumberStyle.Render(mark)
	case params.KindColor:
		swatch := "██ "
		if c, err := canvas.ParseColor(s); err == nil {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()[:7])).Render("██") + " "
		}
		return swatch + styles.PanelStringStyle.Render(styles.Truncate(s, max(width-3, 1)))
	case params.KindChoice:
		return styles.PanelStringStyle.Render(styles.Truncate("‹ "+s+" ›", width))
	default:
		return styles.PanelStringStyle.Render(styles.Truncate(`"`+s+`"`, width))
	}
}

// renderFooter shows the selected parameter's accepted values, or the last
// error, wrapped to the panel width.
func (m Model) renderFooter() []string {
	text, style := "", styles.HintStyle
	if m.err != "" {
		text, style = m.err, styles.ErrorStyle
	} else if p := m.Selected(); p != nil {
		text = p.Hint()
	}
	wrapped := strings.Split(wordwrap.String(text, max(m.width, 1)), "\n")
	out := make([]string, footerLines)
	for i := range out {
		if i < len(wrapped) {
			out[i] = style.Render(styles.Truncate(wrapped[i], m.width))
		}
	}
	return out
}
