// Package mode holds the dependencies shared by the TUI front-end.
package mode

import (
	"github.com/zjrosen/sketchpad/internal/clipboard"
	"github.com/zjrosen/sketchpad/internal/config"
	"github.com/zjrosen/sketchpad/internal/export"
	"github.com/zjrosen/sketchpad/internal/sketch"
	"github.com/zjrosen/sketchpad/internal/theme"
	"github.com/zjrosen/sketchpad/internal/ui/preview"
)

// Services contains shared dependencies injected into the playground.
type Services struct {
	Config     *config.Config
	ConfigPath string

	// Sketches in sidebar order, already carrying any configured overrides.
	Sketches []sketch.Sketch

	Theme     *theme.Manager
	Exporter  *export.Exporter
	Clipboard clipboard.Clipboard
	Renderer  *preview.Renderer
}
