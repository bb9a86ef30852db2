// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#EBEBEB"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // values, sidebar descriptions
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#696969"} // hints, footers

	// Borders
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9D9D9", Dark: "#424242"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#07AACF", Dark: "#2CC9FF"}

	// Status line
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#E0A100", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D63031", Dark: "#FF8787"}

	// Sidebar selection
	SelectionIndicatorColor  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#FFFFFF"}
	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#EAEAEA", Dark: "#424242"}

	// Parameter panel
	PanelBackgroundColor = lipgloss.AdaptiveColor{Light: "#F6F6F6", Dark: "#1F1F1F"}
	PanelTitleColor      = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#EBEBEB"}
	PanelWidgetColor     = lipgloss.AdaptiveColor{Light: "#EAEAEA", Dark: "#424242"}
	PanelHoverColor      = lipgloss.AdaptiveColor{Light: "#F0F0F0", Dark: "#4F4F4F"}
	PanelFocusColor      = lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#595959"}
	PanelNumberColor     = lipgloss.AdaptiveColor{Light: "#07AACF", Dark: "#2CC9FF"}
	PanelStringColor     = lipgloss.AdaptiveColor{Light: "#8DA300", Dark: "#A2DB3C"}

	// Diff overlay
	DiffAddedColor   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	DiffRemovedColor = lipgloss.AdaptiveColor{Light: "#D63031", Dark: "#FF8787"}

	PageBackgroundColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#121212"}

	// Sidebar rows
	SidebarItemStyle     = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	SidebarSelectedStyle = lipgloss.NewStyle().Bold(true).
				Foreground(SelectionIndicatorColor).
				Background(SelectionBackgroundColor)

	// Panel rows
	PanelGroupStyle  = lipgloss.NewStyle().Bold(true).Foreground(PanelTitleColor)
	PanelLabelStyle  = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	PanelNumberStyle = lipgloss.NewStyle().Foreground(PanelNumberColor)
	PanelStringStyle = lipgloss.NewStyle().Foreground(PanelStringColor)
	PanelCursorStyle = lipgloss.NewStyle().Background(PanelFocusColor)

	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	DiffAddedStyle   = lipgloss.NewStyle().Foreground(DiffAddedColor)
	DiffRemovedStyle = lipgloss.NewStyle().Foreground(DiffRemovedColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true)
)
