// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextSecondary ColorToken = "text.secondary"
	TokenTextMuted     ColorToken = "text.muted"

	// Borders
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	// Status line
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Sidebar selection
	TokenSelectionIndicator  ColorToken = "selection.indicator"
	TokenSelectionBackground ColorToken = "selection.background"

	// Parameter panel
	TokenPanelBackground ColorToken = "panel.background"
	TokenPanelTitle      ColorToken = "panel.title"
	TokenPanelWidget     ColorToken = "panel.widget"
	TokenPanelHover      ColorToken = "panel.hover"
	TokenPanelFocus      ColorToken = "panel.focus"
	TokenPanelNumber     ColorToken = "panel.number"
	TokenPanelString     ColorToken = "panel.string"

	// Parameter diff overlay
	TokenDiffAdded   ColorToken = "diff.added"
	TokenDiffRemoved ColorToken = "diff.removed"

	// Page behind the preview canvas
	TokenPageBackground ColorToken = "page.background"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,

		TokenBorderDefault,
		TokenBorderFocus,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenSelectionIndicator,
		TokenSelectionBackground,

		TokenPanelBackground,
		TokenPanelTitle,
		TokenPanelWidget,
		TokenPanelHover,
		TokenPanelFocus,
		TokenPanelNumber,
		TokenPanelString,

		TokenDiffAdded,
		TokenDiffRemoved,

		TokenPageBackground,
	}
}
