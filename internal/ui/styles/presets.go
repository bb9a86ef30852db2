// Package styles contains Lip Gloss style definitions.
package styles

import "sort"

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"dark":             DarkPreset,
	"light":            LightPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is applied before any other preset.
var DefaultPreset = DarkPreset

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for n := range Presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DarkPreset follows the lil-gui dark panel palette.
var DarkPreset = Preset{
	Name:        "dark",
	Description: "Dark panels on a #121212 page",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#EBEBEB",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault: "#424242",
		TokenBorderFocus:   "#2CC9FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenSelectionIndicator:  "#FFFFFF",
		TokenSelectionBackground: "#424242",

		TokenPanelBackground: "#1F1F1F",
		TokenPanelTitle:      "#EBEBEB",
		TokenPanelWidget:     "#424242",
		TokenPanelHover:      "#4F4F4F",
		TokenPanelFocus:      "#595959",
		TokenPanelNumber:     "#2CC9FF",
		TokenPanelString:     "#A2DB3C",

		TokenDiffAdded:   "#73F59F",
		TokenDiffRemoved: "#FF8787",

		TokenPageBackground: "#121212",
	},
}

// LightPreset follows the lil-gui light panel palette.
var LightPreset = Preset{
	Name:        "light",
	Description: "Light panels on a #FFFFFF page",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#3D3D3D",
		TokenTextSecondary: "#555555",
		TokenTextMuted:     "#8C8C8C",

		TokenBorderDefault: "#D9D9D9",
		TokenBorderFocus:   "#07AACF",

		TokenStatusSuccess: "#43BF6D",
		TokenStatusWarning: "#E0A100",
		TokenStatusError:   "#D63031",

		TokenSelectionIndicator:  "#3D3D3D",
		TokenSelectionBackground: "#EAEAEA",

		TokenPanelBackground: "#F6F6F6",
		TokenPanelTitle:      "#3D3D3D",
		TokenPanelWidget:     "#EAEAEA",
		TokenPanelHover:      "#F0F0F0",
		TokenPanelFocus:      "#FAFAFA",
		TokenPanelNumber:     "#07AACF",
		TokenPanelString:     "#8DA300",

		TokenDiffAdded:   "#43BF6D",
		TokenDiffRemoved: "#D63031",

		TokenPageBackground: "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#CDD6F4", // text
		TokenTextSecondary: "#BAC2DE", // subtext1
		TokenTextMuted:     "#6C7086", // overlay0

		TokenBorderDefault: "#45475A", // surface1
		TokenBorderFocus:   "#89B4FA", // blue

		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		TokenSelectionIndicator:  "#CDD6F4",
		TokenSelectionBackground: "#313244", // surface0

		TokenPanelBackground: "#181825", // mantle
		TokenPanelTitle:      "#CDD6F4",
		TokenPanelWidget:     "#313244",
		TokenPanelHover:      "#45475A",
		TokenPanelFocus:      "#585B70", // surface2
		TokenPanelNumber:     "#89DCEB", // sky
		TokenPanelString:     "#A6E3A1",

		TokenDiffAdded:   "#A6E3A1",
		TokenDiffRemoved: "#F38BA8",

		TokenPageBackground: "#1E1E2E", // base
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) theme.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#4C4F69", // text
		TokenTextSecondary: "#5C5F77", // subtext1
		TokenTextMuted:     "#9CA0B0", // overlay0

		TokenBorderDefault: "#BCC0CC", // surface1
		TokenBorderFocus:   "#1E66F5", // blue

		TokenStatusSuccess: "#40A02B", // green
		TokenStatusWarning: "#DF8E1D", // yellow
		TokenStatusError:   "#D20F39", // red

		TokenSelectionIndicator:  "#4C4F69",
		TokenSelectionBackground: "#CCD0DA", // surface0

		TokenPanelBackground: "#E6E9EF", // mantle
		TokenPanelTitle:      "#4C4F69",
		TokenPanelWidget:     "#CCD0DA",
		TokenPanelHover:      "#BCC0CC",
		TokenPanelFocus:      "#ACB0BE", // surface2
		TokenPanelNumber:     "#04A5E5", // sky
		TokenPanelString:     "#40A02B",

		TokenDiffAdded:   "#40A02B",
		TokenDiffRemoved: "#D20F39",

		TokenPageBackground: "#EFF1F5", // base
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#ECEFF4", // nord6
		TokenTextSecondary: "#D8DEE9", // nord4
		TokenTextMuted:     "#4C566A", // nord3

		TokenBorderDefault: "#434C5E", // nord2
		TokenBorderFocus:   "#88C0D0", // nord8

		TokenStatusSuccess: "#A3BE8C", // nord14
		TokenStatusWarning: "#EBCB8B", // nord13
		TokenStatusError:   "#BF616A", // nord11

		TokenSelectionIndicator:  "#ECEFF4",
		TokenSelectionBackground: "#434C5E",

		TokenPanelBackground: "#3B4252", // nord1
		TokenPanelTitle:      "#ECEFF4",
		TokenPanelWidget:     "#434C5E",
		TokenPanelHover:      "#4C566A",
		TokenPanelFocus:      "#5E81AC", // nord10
		TokenPanelNumber:     "#88C0D0",
		TokenPanelString:     "#A3BE8C",

		TokenDiffAdded:   "#A3BE8C",
		TokenDiffRemoved: "#BF616A",

		TokenPageBackground: "#2E3440", // nord0
	},
}

// HighContrastPreset maximises legibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#FFFFFF",
		TokenTextMuted:     "#C0C0C0",

		TokenBorderDefault: "#FFFFFF",
		TokenBorderFocus:   "#FFFF00",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenSelectionIndicator:  "#000000",
		TokenSelectionBackground: "#FFFF00",

		TokenPanelBackground: "#000000",
		TokenPanelTitle:      "#FFFFFF",
		TokenPanelWidget:     "#000000",
		TokenPanelHover:      "#333333",
		TokenPanelFocus:      "#0000FF",
		TokenPanelNumber:     "#00FFFF",
		TokenPanelString:     "#00FF00",

		TokenDiffAdded:   "#00FF00",
		TokenDiffRemoved: "#FF0000",

		TokenPageBackground: "#000000",
	},
}
