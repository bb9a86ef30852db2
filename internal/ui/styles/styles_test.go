package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTheme_Default(t *testing.T) {
	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, DefaultPreset.Colors[TokenTextPrimary], TextPrimaryColor.Dark)
	require.Equal(t, "dark", Current())
}

func TestApplyTheme_Preset(t *testing.T) {
	Presets["test"] = Preset{
		Name:   "test",
		Colors: map[ColorToken]string{TokenTextPrimary: "#FF0000"},
	}
	defer delete(Presets, "test")
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "test"}))
	require.Equal(t, "#FF0000", TextPrimaryColor.Dark)
	// tokens the preset leaves out keep their default
	require.Equal(t, DefaultPreset.Colors[TokenPanelNumber], PanelNumberColor.Dark)
}

func TestApplyTheme_PresetWithOverride(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })
	require.NoError(t, ApplyTheme(ThemeConfig{
		Preset: "light",
		Colors: map[string]string{"text.primary": "#00FF00"},
	}))
	require.Equal(t, "#00FF00", TextPrimaryColor.Dark)
	require.Equal(t, "#FFFFFF", PageBackgroundColor.Dark)
	require.Equal(t, "light", Current())
}

func TestApplyTheme_Errors(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Preset: "nonexistent"})
	require.ErrorContains(t, err, "unknown theme preset")

	err = ApplyTheme(ThemeConfig{Colors: map[string]string{"invalid.token": "#FF0000"}})
	require.ErrorContains(t, err, "unknown color token")

	err = ApplyTheme(ThemeConfig{Colors: map[string]string{"text.primary": "red"}})
	require.ErrorContains(t, err, "invalid hex color")
}

func TestApplyTheme_RunsRebuilders(t *testing.T) {
	calls := 0
	RegisterStyleRebuilder(func() { calls++ })
	defer func() { styleRebuilders = styleRebuilders[:len(styleRebuilders)-1] }()

	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, 1, calls)
}

func TestPresets_CoverEveryToken(t *testing.T) {
	for name, p := range Presets {
		for _, tok := range AllTokens() {
			_, ok := p.Colors[tok]
			assert.True(t, ok, "%s preset missing %s", name, tok)
		}
		for tok := range p.Colors {
			assert.True(t, IsValidToken(tok), "%s preset has unknown token %s", name, tok)
		}
		assert.Equal(t, name, p.Name)
	}
	require.Contains(t, PresetNames(), "light")
	require.Contains(t, PresetNames(), "dark")
}

func TestLightAndDarkPageBackgrounds(t *testing.T) {
	require.Equal(t, "#FFFFFF", LightPreset.Colors[TokenPageBackground])
	require.Equal(t, "#121212", DarkPreset.Colors[TokenPageBackground])
}

func TestRenderPane(t *testing.T) {
	out := RenderPane("first\nsecond line that is far too long to fit", "Params", 20, 5, true)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, l := range lines {
		require.Equal(t, 20, ansi.StringWidth(l), "line %q", ansi.Strip(l))
	}
	require.Contains(t, ansi.Strip(lines[0]), "╭─ Params ")
	require.Contains(t, ansi.Strip(lines[2]), "…")
	require.True(t, strings.HasPrefix(ansi.Strip(lines[4]), "╰"))
}

func TestRenderPane_TinyAndUntitled(t *testing.T) {
	out := RenderPane("", "A very long title", 5, 3, false)
	lines := strings.Split(ansi.Strip(out), "\n")
	require.Equal(t, "╭───╮", lines[0])
	require.Len(t, lines, 3)
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "", Truncate("abc", 0))
	require.Equal(t, "abc", Truncate("abc", 3))
	require.Equal(t, "ab…", Truncate("abcdef", 3))
}
