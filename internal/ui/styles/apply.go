// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/sketchpad/internal/canvas"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

var (
	applyMu sync.Mutex
	current = DefaultPreset.Name
)

// Current is the name of the most recently applied preset.
func Current() string {
	applyMu.Lock()
	defer applyMu.Unlock()
	return current
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with default colors
// 2. Apply preset (if specified)
// 3. Apply individual color overrides
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)
	name := DefaultPreset.Name

	if cfg.Preset != "" && cfg.Preset != DefaultPreset.Name {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
		name = preset.Name
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !IsValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !canvas.IsValidHex(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyMu.Lock()
	applyColors(colors)
	rebuildStyles()
	current = name
	applyMu.Unlock()

	for _, fn := range styleRebuilders {
		fn()
	}
	return nil
}

// tokenTargets maps each token to the color variable it drives.
func tokenTargets() map[ColorToken][]*lipgloss.AdaptiveColor {
	return map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:         {&TextPrimaryColor},
		TokenTextSecondary:       {&TextSecondaryColor},
		TokenTextMuted:           {&TextMutedColor},
		TokenBorderDefault:       {&BorderDefaultColor},
		TokenBorderFocus:         {&BorderFocusColor},
		TokenStatusSuccess:       {&StatusSuccessColor},
		TokenStatusWarning:       {&StatusWarningColor},
		TokenStatusError:         {&StatusErrorColor},
		TokenSelectionIndicator:  {&SelectionIndicatorColor},
		TokenSelectionBackground: {&SelectionBackgroundColor},
		TokenPanelBackground:     {&PanelBackgroundColor},
		TokenPanelTitle:          {&PanelTitleColor},
		TokenPanelWidget:         {&PanelWidgetColor},
		TokenPanelHover:          {&PanelHoverColor},
		TokenPanelFocus:          {&PanelFocusColor},
		TokenPanelNumber:         {&PanelNumberColor},
		TokenPanelString:         {&PanelStringColor},
		TokenDiffAdded:           {&DiffAddedColor},
		TokenDiffRemoved:         {&DiffRemovedColor},
		TokenPageBackground:      {&PageBackgroundColor},
	}
}

func applyColors(colors map[ColorToken]string) {
	// same color for both terminal backgrounds; the preset already picked
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}
	for token, targets := range tokenTargets() {
		c, ok := colors[token]
		if !ok {
			continue
		}
		for _, t := range targets {
			*t = makeColor(c)
		}
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// lipgloss.Style captures colors at creation time.
func rebuildStyles() {
	SidebarItemStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	SidebarSelectedStyle = lipgloss.NewStyle().Bold(true).
		Foreground(SelectionIndicatorColor).
		Background(SelectionBackgroundColor)

	PanelGroupStyle = lipgloss.NewStyle().Bold(true).Foreground(PanelTitleColor)
	PanelLabelStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	PanelNumberStyle = lipgloss.NewStyle().Foreground(PanelNumberColor)
	PanelStringStyle = lipgloss.NewStyle().Foreground(PanelStringColor)
	PanelCursorStyle = lipgloss.NewStyle().Background(PanelFocusColor)

	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	DiffAddedStyle = lipgloss.NewStyle().Foreground(DiffAddedColor)
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(DiffRemovedColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true)
}

// IsValidToken reports whether token names a themeable color.
func IsValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}
