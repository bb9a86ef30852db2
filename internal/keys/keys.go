// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// App holds the playground-wide bindings. While the preview has focus the
// sketch sees a key first and these apply only if it ignores it, except
// ForceQuit which always quits.
var App = struct {
	Export       key.Binding
	Theme        key.Binding
	Reset        key.Binding
	Save         key.Binding
	Help         key.Binding
	Diff         key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	TogglePanels key.Binding
	NextPane     key.Binding
	PrevPane     key.Binding
	Escape       key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}{
	Export: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "export png"),
	),
	Theme: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "cycle theme"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset sketch"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save params"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Diff: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "param diff"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	TogglePanels: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "hide panels"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next pane"),
	),
	PrevPane: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous pane"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close overlay"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("ctrl+q", "quit"),
	),
}

// Sidebar holds the sketch list bindings.
var Sidebar = struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous sketch"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next sketch"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open in preview"),
	),
}

// Panel holds the parameter panel bindings.
var Panel = struct {
	Up        key.Binding
	Down      key.Binding
	Decrement key.Binding
	Increment key.Binding
	Edit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous param"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next param"),
	),
	Decrement: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "decrease"),
	),
	Increment: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "increase"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit value"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel edit"),
	),
}

// KeyMap adapts the bindings to bubbles/help.
type KeyMap struct{}

// ShortHelp returns keybindings for the status bar.
func (KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{App.NextPane, App.Export, App.Theme, App.Help, App.Quit}
}

// FullHelp returns keybindings for the full help view.
func (KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{App.Export, App.Theme, App.Reset, App.Save, App.Diff},
		{App.ZoomIn, App.ZoomOut, App.TogglePanels, App.NextPane, App.PrevPane},
		{Sidebar.Up, Sidebar.Down, Sidebar.Select},
		{Panel.Up, Panel.Down, Panel.Decrement, Panel.Increment, Panel.Edit, Panel.Cancel},
		{App.Help, App.Escape, App.Quit, App.ForceQuit},
	}
}
