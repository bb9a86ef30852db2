// Package config provides configuration types and defaults for sketchpad.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/paths"
	"github.com/zjrosen/sketchpad/internal/tracing"
)

// Config holds all configuration options for sketchpad.
type Config struct {
	StoragePath string                    `mapstructure:"storage_path"`
	LogPath     string                    `mapstructure:"log_path"`
	Debug       bool                      `mapstructure:"debug"`
	Export      ExportConfig              `mapstructure:"export"`
	Preview     PreviewConfig             `mapstructure:"preview"`
	Theme       ThemeConfig               `mapstructure:"theme"`
	Sketches    map[string]map[string]any `mapstructure:"sketches"`
	Tracing     TracingConfig             `mapstructure:"tracing"`
}

// ExportConfig controls PNG export.
type ExportConfig struct {
	Dir         string  `mapstructure:"dir"`
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	PixelRatio  float64 `mapstructure:"pixel_ratio"`
	UniqueNames bool    `mapstructure:"unique_names"` // append a short random suffix instead of overwriting
}

// PreviewConfig controls the terminal preview.
type PreviewConfig struct {
	Scale float64 `mapstructure:"scale"` // canvas pixels per terminal column
	FPS   int     `mapstructure:"fps"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in panel theme as the base (optional).
	// "light" and "dark" follow the stored theme mode; any other preset
	// is kept regardless of mode.
	Preset string `mapstructure:"preset"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/sketchpad/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// Provider converts the config section into tracing.Config.
func (t TracingConfig) Provider() tracing.Config {
	cfg := tracing.DefaultConfig()
	cfg.Enabled = t.Enabled
	if t.Exporter != "" {
		cfg.Exporter = t.Exporter
	}
	cfg.FilePath = paths.Expand(t.FilePath)
	if cfg.FilePath == "" {
		cfg.FilePath = DefaultTracesFilePath()
	}
	if t.OTLPEndpoint != "" {
		cfg.OTLPEndpoint = t.OTLPEndpoint
	}
	if t.SampleRate > 0 {
		cfg.SampleRate = t.SampleRate
	}
	return cfg
}

// DefaultTracesFilePath returns ~/.config/sketchpad/traces/traces.jsonl.
func DefaultTracesFilePath() string {
	return filepath.Join(paths.UserConfigDir(), "traces", "traces.jsonl")
}

// Export limits shared by validation and the CLI flags.
const (
	MinExportSize = 1
	MaxExportSize = 8192
	MaxPixelRatio = 4.0
	MaxPreviewFPS = 60
)

// ValidateExport checks the export section.
func ValidateExport(e ExportConfig) error {
	if e.Width < MinExportSize || e.Width > MaxExportSize {
		return fmt.Errorf("export.width must be between %d and %d, got %d", MinExportSize, MaxExportSize, e.Width)
	}
	if e.Height < MinExportSize || e.Height > MaxExportSize {
		return fmt.Errorf("export.height must be between %d and %d, got %d", MinExportSize, MaxExportSize, e.Height)
	}
	if e.PixelRatio <= 0 || e.PixelRatio > MaxPixelRatio {
		return fmt.Errorf("export.pixel_ratio must be in (0, %g], got %v", MaxPixelRatio, e.PixelRatio)
	}
	return nil
}

// ValidatePreview checks the preview section.
func ValidatePreview(p PreviewConfig) error {
	if p.Scale <= 0 {
		return fmt.Errorf("preview.scale must be positive, got %v", p.Scale)
	}
	if p.FPS < 1 || p.FPS > MaxPreviewFPS {
		return fmt.Errorf("preview.fps must be between 1 and %d, got %d", MaxPreviewFPS, p.FPS)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t TracingConfig) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if t.Exporter != "" {
		switch t.Exporter {
		case tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
		}
	}

	// the file exporter falls back to DefaultTracesFilePath
	if t.Enabled && t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// SetLookup builds the parameter set of a sketch by name, used to validate
// overrides without importing the sketch packages.
type SetLookup func(name string) (*params.Set, error)

// ValidateSketches checks that every override names a known sketch and
// parameter and that each value parses.
func ValidateSketches(sketches map[string]map[string]any, lookup SetLookup) error {
	for _, name := range sortedKeys(sketches) {
		set, err := lookup(name)
		if err != nil {
			return fmt.Errorf("sketches.%s: %w", name, err)
		}
		if err := ApplySketchParams(set, sketches[name]); err != nil {
			return fmt.Errorf("sketches.%s: %w", name, err)
		}
	}
	return nil
}

// ApplySketchParams writes config overrides into set. Viper lowercases keys,
// so parameter names are matched case-insensitively.
func ApplySketchParams(set *params.Set, values map[string]any) error {
	resolved := make(map[string]string, len(values))
	for k, v := range values {
		key := k
		for _, p := range set.All() {
			if strings.EqualFold(p.Key(), k) {
				key = p.Key()
				break
			}
		}
		resolved[key] = fmt.Sprint(v)
	}
	return set.Apply(resolved)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate runs every section validator.
func (c Config) Validate(lookup SetLookup) error {
	if err := ValidateExport(c.Export); err != nil {
		return err
	}
	if err := ValidatePreview(c.Preview); err != nil {
		return err
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	if lookup != nil {
		return ValidateSketches(c.Sketches, lookup)
	}
	return nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		StoragePath: paths.DefaultStoragePath(),
		LogPath:     paths.DefaultLogPath(),
		Export: ExportConfig{
			Dir:        ".",
			Width:      1024,
			Height:     768,
			PixelRatio: 1,
		},
		Preview: PreviewConfig{
			Scale: 8,
			FPS:   30,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     tracing.ExporterFile,
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Sketchpad Configuration

# Where the theme preference is stored (sqlite)
# storage_path: ~/.config/sketchpad/storage.db

# Debug logging (also enabled by SKETCHPAD_DEBUG=1)
debug: false
# log_path: debug.log

# PNG export
export:
  dir: .
  width: 1024
  height: 768
  pixel_ratio: 1        # 2 for retina-sized output
  unique_names: false   # true appends a short random suffix instead of overwriting

# Terminal preview
preview:
  scale: 8              # canvas pixels per terminal column (+/- to zoom)
  fps: 30

# Panel theme
theme:
  # preset follows the stored light/dark mode when empty, "light" or "dark".
  # Other presets stay fixed:
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  # preset: nord
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   panel.focus: "#FF0000"

# Startup parameters per sketch (ctrl+s in the playground writes these)
# sketches:
#   tabs:
#     tabCount: 3
#     indicatorColor: "#FF5722"
#   radio:
#     spacing: 70

# Tracing for export and theme writes
tracing:
  enabled: false
  exporter: file        # none, file, stdout, otlp
  # file_path: ~/.config/sketchpad/traces/traces.jsonl
  # otlp_endpoint: localhost:4317
  sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file with default settings.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
