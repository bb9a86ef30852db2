package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSketchParams_CreatesNewFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	err := SaveSketchParams(configPath, "tabs", map[string]string{
		"tabCount":       "3",
		"indicatorColor": "#FF5722",
		"tab1Title":      "Home",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sketches:")
	assert.Contains(t, string(data), "tabCount: 3")
	assert.Contains(t, string(data), "indicatorColor: '#FF5722'")
	assert.Contains(t, string(data), "tab1Title: Home")
}

func TestSaveSketchParams_PreservesOtherConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# my settings
export:
  width: 640 # small
theme:
  preset: nord
sketches:
  radio:
    spacing: 70
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o644))

	require.NoError(t, SaveSketchParams(configPath, "tabs", map[string]string{"tabCount": "4"}))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# my settings")
	assert.Contains(t, content, "# small")
	assert.Contains(t, content, "preset: nord")
	assert.Contains(t, content, "spacing: 70")
	assert.Contains(t, content, "tabCount: 4")
}

func TestSaveSketchParams_Roundtrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	set, err := lookupSet("tabs")
	require.NoError(t, err)
	require.NoError(t, set.SetString("tabCount", "3"))
	require.NoError(t, set.SetString("tab2Title", "#hash: colon"))
	require.NoError(t, set.SetString("indicatorColor", "#FF5722"))

	require.NoError(t, SaveSketchParams(configPath, "tabs", set.Changed()))

	cfg := loadConfig(t, configPath)
	fresh, err := lookupSet("tabs")
	require.NoError(t, err)
	require.NoError(t, ApplySketchParams(fresh, cfg.Sketches["tabs"]))
	require.Equal(t, set.Changed(), fresh.Changed())
}

func TestSaveSketchParams_ReplacesExistingSection(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveSketchParams(configPath, "radio", map[string]string{"spacing": "70", "radioSize": "20"}))
	require.NoError(t, SaveSketchParams(configPath, "radio", map[string]string{"spacing": "90"}))

	cfg := loadConfig(t, configPath)
	require.Len(t, cfg.Sketches["radio"], 1)
	require.EqualValues(t, 90, cfg.Sketches["radio"]["spacing"])
}

func TestSaveSketchParams_EmptyRemovesSection(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("debug: true\n"), 0o644))

	require.NoError(t, SaveSketchParams(configPath, "radio", map[string]string{"spacing": "70"}))
	require.NoError(t, SaveSketchParams(configPath, "radio", nil))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sketches")
	assert.Contains(t, string(data), "debug: true")
}

func TestSaveSketchParams_EmptyOnMissingFileIsNoop(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveSketchParams(configPath, "radio", nil))
	_, err := os.Stat(configPath)
	require.True(t, os.IsNotExist(err))
}

func TestSaveSketchParams_RejectsNonMapping(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("- a\n- b\n"), 0o644))

	err := SaveSketchParams(configPath, "radio", map[string]string{"spacing": "70"})
	require.ErrorContains(t, err, "not a mapping")
}

func TestSaveSketchParams_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, SaveSketchParams(configPath, "radio", map[string]string{"spacing": "70"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
