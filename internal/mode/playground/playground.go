// Package playground is the interactive sketch browser: a sidebar of
// sketches, a live preview of the selected one and its parameter panel.
package playground

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/config"
	"github.com/zjrosen/sketchpad/internal/keys"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/mode"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/pubsub"
	"github.com/zjrosen/sketchpad/internal/sketch"
	"github.com/zjrosen/sketchpad/internal/theme"
	"github.com/zjrosen/sketchpad/internal/ui/help"
	"github.com/zjrosen/sketchpad/internal/ui/overlay"
	"github.com/zjrosen/sketchpad/internal/ui/panel"
	"github.com/zjrosen/sketchpad/internal/ui/preview"
	"github.com/zjrosen/sketchpad/internal/ui/styles"
	"github.com/zjrosen/sketchpad/internal/ui/toaster"
)

// FocusPane represents which pane has focus.
type FocusPane int

const (
	// FocusSidebar means the sketch list has focus.
	FocusSidebar FocusPane = iota
	// FocusPreview means keys go to the sketch.
	FocusPreview
	// FocusPanel means the parameter panel has focus.
	FocusPanel
)

const paneCount = 3

func (f FocusPane) String() string {
	switch f {
	case FocusPreview:
		return "preview"
	case FocusPanel:
		return "panel"
	}
	return "sidebar"
}

// zoomLevels are the preview scales, in canvas pixels per column, from
// closest to furthest.
var zoomLevels = []float64{2, 3, 4, 6, 8, 12, 16}

const footerHeight = 1

type tickMsg time.Time

// savedMsg reports the result of writing parameter overrides to the config
// file.
type savedMsg struct {
	name  string
	path  string
	count int
	err   error
}

// Model holds the playground state.
type Model struct {
	ctx context.Context
	svc mode.Services

	sketches []sketch.Sketch
	selected int
	focus    FocusPane

	// frame changes whenever the preview must be redrawn and keys the
	// renderer's frame cache.
	frame    int
	scale    float64
	fps      int
	dragging bool

	panelsHidden bool
	showHelp     bool
	showDiff     bool

	panel panel.Model
	help  help.Model
	toast toaster.Model

	themeEvents  *pubsub.ContinuousListener[theme.Mode]
	exportEvents *pubsub.ContinuousListener[string]

	width  int
	height int
}

// New creates a playground over svc.Sketches. Subscriptions to theme and
// export events end with ctx.
func New(ctx context.Context, svc mode.Services) Model {
	cfg := config.Defaults()
	if svc.Config != nil {
		cfg = *svc.Config
	}
	if svc.Renderer == nil {
		svc.Renderer = preview.New(lipgloss.ColorProfile())
	}

	m := Model{
		ctx:      ctx,
		svc:      svc,
		sketches: svc.Sketches,
		focus:    FocusSidebar,
		scale:    preview.ClampScale(cfg.Preview.Scale),
		fps:      cfg.Preview.FPS,
		panel:    panel.New(),
		help:     help.New(),
		toast:    toaster.New(),
	}
	if m.fps <= 0 {
		m.fps = 30
	}
	if svc.Theme != nil {
		m.themeEvents = pubsub.NewContinuousListener(ctx, svc.Theme.Broker(), pubsub.ChangedEvent)
		m.help = m.help.SetDark(svc.Theme.Effective() == theme.Dark)
	}
	if svc.Exporter != nil {
		m.exportEvents = pubsub.NewContinuousListener(ctx, svc.Exporter.Broker(), pubsub.ExportedEvent, pubsub.FailedEvent)
	}
	m.selectSketch(0)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick()}
	if m.themeEvents != nil {
		cmds = append(cmds, m.themeEvents.Listen())
	}
	if m.exportEvents != nil {
		cmds = append(cmds, m.exportEvents.Listen())
	}
	return tea.Batch(cmds...)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tickMsg:
		if sk := m.current(); sk != nil && sk.Tick(time.Time(msg)) {
			m.redraw()
		}
		return m, m.tick()

	case pubsub.Event[theme.Mode]:
		m.svc.Renderer.Invalidate()
		m.help = m.help.SetDark(m.svc.Theme.Effective() == theme.Dark)
		m.redraw()
		cmd := m.notify("Theme: "+string(msg.Payload), toaster.StyleInfo)
		return m, tea.Batch(cmd, m.themeEvents.Listen())

	case pubsub.Event[string]:
		var cmd tea.Cmd
		switch msg.Type {
		case pubsub.ExportedEvent:
			cmd = m.notify("Exported "+filepath.Base(msg.Payload), toaster.StyleSuccess)
		case pubsub.FailedEvent:
			cmd = m.notify("Export failed: "+msg.Payload, toaster.StyleError)
		}
		return m, tea.Batch(cmd, m.exportEvents.Listen())

	case savedMsg:
		switch {
		case msg.err != nil:
			return m, m.notify("Save failed: "+msg.err.Error(), toaster.StyleError)
		case msg.count == 0:
			return m, m.notify("Cleared saved parameters for "+msg.name, toaster.StyleInfo)
		}
		return m, m.notify(fmt.Sprintf("Saved %d parameters to %s", msg.count, filepath.Base(msg.path)), toaster.StyleSuccess)

	case clipboard.Result:
		if clipboard.Apply(msg) {
			m.redraw()
		}
		return m, nil

	case panel.ChangedMsg:
		log.Debug(log.CatUI, "Parameter changed", "sketch", m.current().Info().Name, "key", msg.Key)
		m.redraw()
		return m, nil

	case toaster.DismissMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// handleKey routes a key. Overlays and an open panel edit capture keys.
// While the preview has focus the sketch sees the key first and global
// bindings apply only when it neither redraws nor asks for the clipboard.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.App.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp || m.showDiff {
		switch {
		case key.Matches(msg, keys.App.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.App.Escape),
			m.showHelp && key.Matches(msg, keys.App.Help),
			m.showDiff && key.Matches(msg, keys.App.Diff):
			m.showHelp, m.showDiff = false, false
		}
		return m, nil
	}

	if m.panel.Editing() {
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}

	if m.focus == FocusPreview && !key.Matches(msg, keys.App.PrevPane) {
		if handled, cmd := m.sendKeys(msg); handled {
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, keys.App.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.App.Help):
		m.showHelp = true
	case key.Matches(msg, keys.App.Diff):
		m.showDiff = true
	case key.Matches(msg, keys.App.Export):
		return m, m.export()
	case key.Matches(msg, keys.App.Theme):
		return m, m.cycleTheme()
	case key.Matches(msg, keys.App.Reset):
		return m, m.reset()
	case key.Matches(msg, keys.App.Save):
		return m, m.save()
	case key.Matches(msg, keys.App.ZoomIn):
		m.zoom(-1)
	case key.Matches(msg, keys.App.ZoomOut):
		m.zoom(1)
	case key.Matches(msg, keys.App.TogglePanels):
		m.togglePanels()
	case key.Matches(msg, keys.App.NextPane):
		m.setFocus((m.focus + 1) % paneCount)
	case key.Matches(msg, keys.App.PrevPane):
		m.setFocus((m.focus + paneCount - 1) % paneCount)
	case key.Matches(msg, keys.App.Escape):
		if m.focus != FocusSidebar {
			m.setFocus(FocusSidebar)
		}
	case m.focus == FocusSidebar:
		m.handleSidebarKey(msg)
	case m.focus == FocusPanel:
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.Sidebar.Up):
		m.selectSketch(m.selected - 1)
	case key.Matches(msg, keys.Sidebar.Down):
		m.selectSketch(m.selected + 1)
	case key.Matches(msg, keys.Sidebar.Select):
		m.setFocus(FocusPreview)
	}
}

// sendKeys forwards msg to the current sketch and runs any clipboard work it
// asks for.
func (m *Model) sendKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	sk := m.current()
	events := keyEvents(msg)
	if sk == nil || len(events) == 0 {
		return false, nil
	}

	var reqs []clipboard.Request
	handled := false
	for _, ev := range events {
		r, redraw := sk.Key(ev)
		reqs = append(reqs, r...)
		handled = handled || redraw || len(r) > 0
	}
	if handled {
		m.redraw()
	}
	return handled, clipboard.Cmds(m.svc.Clipboard, reqs)
}

// handleMouse sends pointer events inside the preview to the sketch and
// clicks elsewhere to the sidebar and panel zones.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp || m.showDiff {
		return m, nil
	}

	x0, y0, cols, rows := m.previewRect()
	col, row := msg.X-x0, msg.Y-y0
	inside := preview.Hit(col, row, cols, rows)

	if sk := m.current(); sk != nil && (inside || m.dragging) {
		if kind, ok := pointerKind(msg, m.dragging); ok {
			switch kind {
			case sketch.PointerDown:
				m.dragging = true
				m.setFocus(FocusPreview)
			case sketch.PointerUp:
				m.dragging = false
			}
			if sk.Pointer(preview.PointerAt(kind, col, row, m.scale)) {
				m.redraw()
			}
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.zoom(-1)
		case tea.MouseButtonWheelDown:
			m.zoom(1)
		}
		return m, nil
	}

	if m.panelsHidden {
		return m, nil
	}

	press := msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress
	if press {
		for i, sk := range m.sketches {
			if z := zone.Get(sidebarZoneID(sk.Info().Name)); z != nil && z.InBounds(msg) {
				m.selectSketch(i)
				m.setFocus(FocusSidebar)
				return m, nil
			}
		}
	}

	sidebarW, previewW, _, _ := m.layout()
	if msg.X < sidebarW+previewW {
		return m, nil
	}
	if press {
		m.setFocus(FocusPanel)
	}
	var cmd tea.Cmd
	m.panel, cmd = m.panel.HandleMouse(msg)
	return m, cmd
}

// export renders the current sketch here and writes the PNG in a command.
// The result arrives through the exporter's broker.
func (m *Model) export() tea.Cmd {
	sk, ex := m.current(), m.svc.Exporter
	if sk == nil {
		return nil
	}
	if ex == nil {
		return m.notify("Export is not configured", toaster.StyleWarn)
	}
	c, err := ex.Snapshot(sk)
	if err != nil {
		log.ErrorErr(log.CatExport, "Snapshot failed", err, "sketch", sk.Info().Name)
		return m.notify("Export failed: "+err.Error(), toaster.StyleError)
	}
	// Snapshot laid the sketch out at the export size.
	if m.svc.Renderer != nil {
		m.svc.Renderer.Forget(sk)
	}
	m.redraw()
	info, ctx := sk.Info(), m.ctx
	return func() tea.Msg {
		_, _ = ex.Write(ctx, info.Name, info.ExportBase, c)
		return nil
	}
}

// cycleTheme moves to the next theme mode. The toast is shown when the
// manager's change event comes back.
func (m *Model) cycleTheme() tea.Cmd {
	if m.svc.Theme == nil {
		return nil
	}
	next := m.svc.Theme.Mode().Next()
	if err := m.svc.Theme.Set(m.ctx, next); err != nil {
		return m.notify("Theme not saved: "+err.Error(), toaster.StyleWarn)
	}
	return nil
}

func (m *Model) reset() tea.Cmd {
	sk := m.current()
	if sk == nil {
		return nil
	}
	sk.Reset()
	m.dragging = false
	m.redraw()
	log.Info(log.CatUI, "Reset sketch", "sketch", sk.Info().Name)
	return m.notify("Reset "+sk.Info().Title, toaster.StyleInfo)
}

// save writes the parameters that differ from their defaults under
// sketches.<name> in the config file.
func (m *Model) save() tea.Cmd {
	sk := m.current()
	if sk == nil {
		return nil
	}
	path := m.svc.ConfigPath
	if path == "" {
		return m.notify("No config file to save to", toaster.StyleWarn)
	}
	name, values := sk.Info().Name, sk.Params().Changed()
	return func() tea.Msg {
		err := config.SaveSketchParams(path, name, values)
		if err != nil {
			log.ErrorErr(log.CatConfig, "Saving sketch parameters failed", err, "sketch", name, "path", path)
		}
		return savedMsg{name: name, path: path, count: len(values), err: err}
	}
}

// zoom moves dir steps along zoomLevels; negative is closer.
func (m *Model) zoom(dir int) {
	i := 0
	for i < len(zoomLevels)-1 && zoomLevels[i] < m.scale {
		i++
	}
	i = min(max(i+dir, 0), len(zoomLevels)-1)
	if zoomLevels[i] != m.scale {
		m.scale = zoomLevels[i]
		m.redraw()
	}
}

func (m *Model) togglePanels() {
	m.panelsHidden = !m.panelsHidden
	if m.panelsHidden {
		m.setFocus(FocusPreview)
	}
	m.resize()
}

func (m *Model) setFocus(f FocusPane) {
	if m.panelsHidden {
		f = FocusPreview
	}
	m.focus = f
	if f == FocusPanel {
		m.panel = m.panel.Focus()
	} else {
		m.panel = m.panel.Blur()
	}
}

func (m *Model) selectSketch(i int) {
	n := len(m.sketches)
	if n == 0 {
		return
	}
	m.selected = (i%n + n) % n
	sk := m.sketches[m.selected]
	m.panel = m.panel.SetParams(sk.Params())
	m.help = m.help.SetSketch(sk.Info())
	m.dragging = false
	m.redraw()
}

func (m Model) current() sketch.Sketch {
	if m.selected < 0 || m.selected >= len(m.sketches) {
		return nil
	}
	return m.sketches[m.selected]
}

// Current returns the sketch shown in the preview.
func (m Model) Current() sketch.Sketch { return m.current() }

// Focus returns the focused pane.
func (m Model) Focus() FocusPane { return m.focus }

func (m *Model) redraw() { m.frame++ }

func (m *Model) notify(text string, style toaster.Style) tea.Cmd {
	m.toast = m.toast.Show(text, style)
	return m.toast.ScheduleDismiss(toaster.DefaultDuration)
}

func (m *Model) resize() {
	_, _, panelW, paneH := m.layout()
	m.panel = m.panel.SetSize(max(panelW-2, 1), max(paneH-2, 1))
	m.help = m.help.SetSize(m.width, m.height)
	m.redraw()
}

// layout splits the width into sidebar, preview and panel columns. The
// sidebar and panel widths are zero while the panels are hidden.
func (m Model) layout() (sidebarW, previewW, panelW, paneH int) {
	paneH = max(m.height-footerHeight, 3)
	if m.panelsHidden {
		return 0, m.width, 0, paneH
	}
	sidebarW = min(max(m.width*18/100, 16), 26)
	panelW = min(max(m.width*30/100, 28), 44)
	previewW = max(m.width-sidebarW-panelW, 4)
	return sidebarW, previewW, panelW, paneH
}

// previewRect is the screen position and size, in cells, of the canvas
// inside the preview border.
func (m Model) previewRect() (x, y, cols, rows int) {
	sidebarW, previewW, _, paneH := m.layout()
	return sidebarW + 1, 1, max(previewW-2, 0), max(paneH-2, 0)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	sidebarW, previewW, panelW, paneH := m.layout()
	_, _, cols, rows := m.previewRect()

	var frame, title string
	if sk := m.current(); sk != nil {
		frame = m.svc.Renderer.Render(sk, fmt.Sprintf("%s:%d", sk.Info().Name, m.frame), cols, rows, m.scale)
		title = sk.Info().Title
	}
	body := styles.RenderPane(frame, title, previewW, paneH, m.focus == FocusPreview)

	if !m.panelsHidden {
		sidebar := styles.RenderPane(renderSidebar(m.sketches, m.selected, sidebarW-2), "Sketches", sidebarW, paneH, m.focus == FocusSidebar)
		params := styles.RenderPane(m.panel.View(), "Parameters", panelW, paneH, m.focus == FocusPanel)
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, body, params)
	}

	view := body + "\n" + m.renderStatus()
	switch {
	case m.showHelp:
		view = m.help.Overlay(view)
	case m.showDiff:
		view = m.renderDiff(view)
	}
	view = m.toast.Overlay(view, m.width, m.height)
	return zone.Scan(view)
}

func (m Model) renderStatus() string {
	var parts []string
	if sk := m.current(); sk != nil {
		parts = append(parts, sk.Info().Name)
		if c := sk.Cursor(); c != sketch.CursorDefault {
			parts = append(parts, "cursor "+c.String())
		}
	}
	if m.svc.Theme != nil {
		parts = append(parts, "theme "+string(m.svc.Theme.Mode()))
	}
	parts = append(parts, fmt.Sprintf("%gpx/col", m.scale), "? help", "ctrl+c quit")
	return styles.StatusBarStyle.Width(m.width).Render(styles.Truncate(strings.Join(parts, " · "), max(m.width-2, 1)))
}

// renderDiff overlays the parameters that differ from their defaults.
func (m Model) renderDiff(background string) string {
	sk := m.current()
	if sk == nil {
		return background
	}

	var lines []string
	for _, l := range sk.Params().Diff() {
		switch l.Type {
		case params.LineAdded:
			lines = append(lines, styles.DiffAddedStyle.Render("+ "+l.Text))
		case params.LineRemoved:
			lines = append(lines, styles.DiffRemovedStyle.Render("- "+l.Text))
		}
	}
	body := strings.Join(lines, "\n")
	if len(lines) == 0 {
		body = styles.HintStyle.Render("No changes from defaults")
	}
	body += "\n\n" + styles.HintStyle.Render("ctrl+s saves these to the config file")

	box := overlay.Frame("Changes · "+sk.Info().Title, body, m.width-4, m.height-2)
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, box, background)
}
