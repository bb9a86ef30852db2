package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/sketchpad/internal/config"
)

// writeConfig writes a config that keeps storage and exports inside dir.
func writeConfig(t *testing.T, dir, extra string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`storage_path: %s
export:
  dir: %s
  width: 64
  height: 48
  pixel_ratio: 1
%s`, filepath.Join(dir, "storage.db"), filepath.Join(dir, "out"), extra)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// execute runs the root command the way main does and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetExportFlags()
	t.Cleanup(func() {
		cfgFile = ""
		resetExportFlags()
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetExportFlags() {
	exportFlags.all = false
	exportFlags.dir = ""
	exportFlags.sets = nil
	exportFlags.width = 0
	exportFlags.height = 0
	exportFlags.pixelRatio = 0
	exportFlags.unique = false
	exportFlags.seed = 1
	exportCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
}

func TestLoadConfig_MissingExplicitFileGetsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	c, used, err := loadConfig(viper.NewWithOptions(viper.KeyDelimiter("::")), path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.FileExists(t, path)

	defaults := config.Defaults()
	require.Equal(t, defaults.Export, c.Export)
	require.Equal(t, defaults.Preview, c.Preview)
}

func TestLoadConfig_ReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `preview:
  scale: 4
sketches:
  tabs:
    tabCount: 3
`)

	c, used, err := loadConfig(viper.NewWithOptions(viper.KeyDelimiter("::")), path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, 64, c.Export.Width)
	require.InDelta(t, 4.0, c.Preview.Scale, 1e-9)
	require.Equal(t, 30, c.Preview.FPS, "unset keys keep their defaults")
	require.Contains(t, c.Sketches, "tabs")
	require.NoError(t, c.Validate(lookupSet))
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export: [unclosed"), 0o644))

	_, _, err := loadConfig(viper.NewWithOptions(viper.KeyDelimiter("::")), path)
	require.ErrorContains(t, err, "reading config")
}

func TestBuildSketches_AppliesOverrides(t *testing.T) {
	prev := cfg
	t.Cleanup(func() { cfg = prev })
	cfg = config.Defaults()
	cfg.Sketches = map[string]map[string]any{"TABS": {"tabcount": 3}}

	sketches, err := buildSketches([]string{"tabs"}, 1)
	require.NoError(t, err)
	require.Len(t, sketches, 1)

	p, ok := sketches[0].Params().Get("tabCount")
	require.True(t, ok)
	require.Equal(t, "3", p.String())
	require.Equal(t, map[string]string{"tabCount": "3"}, sketches[0].Params().Changed())

	sketches[0].Reset()
	require.NotEqual(t, "3", p.String(), "reset returns to built-in defaults")
}

func TestBuildSketches_AllAndUnknown(t *testing.T) {
	prev := cfg
	t.Cleanup(func() { cfg = prev })
	cfg = config.Defaults()

	all, err := buildSketches(nil, 1)
	require.NoError(t, err)
	names := make([]string, len(all))
	for i, sk := range all {
		names[i] = sk.Info().Name
	}
	require.Equal(t, []string{"tabs", "newtabs", "radio", "textfields"}, names)

	_, err = buildSketches([]string{"nope"}, 1)
	require.ErrorContains(t, err, "unknown sketch")
}

func TestApplySets(t *testing.T) {
	prev := cfg
	t.Cleanup(func() { cfg = prev })
	cfg = config.Defaults()

	sketches, err := buildSketches([]string{"tabs", "newtabs"}, 1)
	require.NoError(t, err)

	require.NoError(t, applySets(sketches, []string{"tabCount=2", "tab1Title=Inbox"}))
	for _, sk := range sketches {
		p, ok := sk.Params().Get("tabCount")
		require.True(t, ok)
		require.Equal(t, "2", p.String(), sk.Info().Name)
	}

	tests := []struct {
		name    string
		sets    []string
		wantErr string
	}{
		{"missing equals", []string{"tabCount"}, "want key=value"},
		{"empty key", []string{"=3"}, "want key=value"},
		{"unknown key", []string{"bogus=1"}, "no selected sketch has parameter"},
		{"not a number", []string{"tabCount=many"}, "tabs.tabCount"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorContains(t, applySets(sketches, tt.sets), tt.wantErr)
		})
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")

	out, err := execute(t, "export", "radio", "--config", path, "--pixel-ratio", "2")
	require.NoError(t, err)

	lines := strings.Fields(out)
	require.Len(t, lines, 1)
	require.Equal(t, filepath.Join(dir, "out"), filepath.Dir(lines[0]))
	require.FileExists(t, lines[0])
}

func TestExportCommand_AllWithSet(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")
	outDir := filepath.Join(dir, "shots")

	out, err := execute(t, "export", "--all", "--config", path, "-o", outDir, "--set", "tabCount=2", "--unique")
	require.NoError(t, err)
	require.Len(t, strings.Fields(out), 4)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 4, "tabs and newtabs share a base name, --unique keeps both")
}

func TestExportCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "")

	_, err := execute(t, "export", "--config", path)
	require.ErrorContains(t, err, "name a sketch or pass --all")

	_, err = execute(t, "export", "radio", "--all", "--config", path)
	require.ErrorContains(t, err, "--all cannot be combined")

	_, err = execute(t, "export", "radio", "--config", path, "--width", "0")
	require.ErrorContains(t, err, "export.width")
}

func TestThemeCommand_SetThenGet(t *testing.T) {
	prev := stdinIsTerminal
	stdinIsTerminal = func() bool { return false }
	t.Cleanup(func() { stdinIsTerminal = prev })

	dir := t.TempDir()
	path := writeConfig(t, dir, "")

	out, err := execute(t, "theme", "dark", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "Theme set to dark\n", out)

	out, err = execute(t, "theme", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "dark\n", out)

	_, err = execute(t, "theme", "sepia", "--config", path)
	require.Error(t, err)
}

func TestSetup_RejectsInvalidOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `sketches:
  radio:
    nope: 1
`)

	_, err := execute(t, "export", "radio", "--config", path)
	require.ErrorContains(t, err, "invalid config")
}

func TestLookupSet(t *testing.T) {
	set, err := lookupSet("radio")
	require.NoError(t, err)
	require.Positive(t, set.Len())

	_, err = lookupSet("missing")
	require.Error(t, err)
}
