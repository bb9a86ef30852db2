// Package theme resolves the light/dark/system preference, persists it under
// the "theme" storage key and applies the matching panel palette.
package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/pubsub"
	"github.com/zjrosen/sketchpad/internal/storage"
	"github.com/zjrosen/sketchpad/internal/tracing"
	"github.com/zjrosen/sketchpad/internal/ui/styles"
)

// Mode is a theme preference.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// StorageKey is the key the preference is stored under.
const StorageKey = "theme"

// Page colours behind the canvas and the matching foreground.
var (
	LightBackground = canvas.MustParse("#FFFFFF")
	DarkBackground  = canvas.MustParse("#121212")
	LightForeground = canvas.MustParse("#000000")
	DarkForeground  = canvas.MustParse("#FFFFFF")
)

// Modes lists every mode in cycling order.
func Modes() []Mode { return []Mode{Light, Dark, System} }

// ParseMode validates s.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Light, Dark, System:
		return m, nil
	}
	return System, fmt.Errorf("invalid theme %q (want light, dark or system)", s)
}

// Normalize maps anything that is not a valid mode to System.
func Normalize(s string) Mode {
	m, _ := ParseMode(s)
	return m
}

// Next returns the mode after m in cycling order.
func (m Mode) Next() Mode {
	switch m {
	case Light:
		return Dark
	case Dark:
		return System
	}
	return Light
}

// Store is the subset of storage.Store the manager needs.
type Store interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// Detector reports whether the host prefers a dark appearance.
type Detector func() bool

// TerminalDetector asks the terminal for its background colour.
func TerminalDetector() Detector {
	return func() bool {
		return termenv.HasDarkBackground()
	}
}

// Manager owns the current mode.
type Manager struct {
	mu     sync.Mutex
	store  Store
	detect Detector
	base   styles.ThemeConfig
	tracer trace.Tracer
	broker *pubsub.Broker[Mode]
	mode   Mode
}

// Option configures a Manager.
type Option func(*Manager)

// WithDetector overrides system-appearance detection.
func WithDetector(d Detector) Option { return func(m *Manager) { m.detect = d } }

// WithBaseTheme sets the configured preset and token overrides. Presets
// "", "default", "light" and "dark" follow the effective mode.
func WithBaseTheme(cfg styles.ThemeConfig) Option { return func(m *Manager) { m.base = cfg } }

// WithTracer records theme writes as spans.
func WithTracer(t trace.Tracer) Option { return func(m *Manager) { m.tracer = t } }

// NewManager creates a manager in System mode. store may be nil, in which
// case the preference lives only in memory.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		detect: TerminalDetector(),
		tracer: tracing.Noop(),
		broker: pubsub.NewBroker[Mode](),
		mode:   System,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Load reads the stored preference. A missing or invalid value means
// System. Storage failures are logged and leave the manager in System mode.
func (m *Manager) Load(ctx context.Context) error {
	mode, err := m.read(ctx)
	m.mu.Lock()
	m.mode = mode
	m.mu.Unlock()
	m.apply()
	return err
}

func (m *Manager) read(ctx context.Context) (Mode, error) {
	if m.store == nil {
		return System, nil
	}
	raw, err := m.store.GetItem(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return System, nil
	}
	if err != nil {
		log.ErrorErr(log.CatTheme, "Failed to read theme", err)
		return System, fmt.Errorf("reading theme: %w", err)
	}
	return Normalize(raw), nil
}

// Set switches to mode, applies it and persists it. The new mode takes
// effect even when the write fails; the error is returned for display.
func (m *Manager) Set(ctx context.Context, mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	m.mu.Lock()
	prev := m.mode
	m.mode = mode
	m.mu.Unlock()

	m.apply()
	if prev != mode {
		m.broker.Publish(pubsub.ChangedEvent, mode)
	}

	return tracing.Run(ctx, m.tracer, tracing.SpanThemeSet, func(ctx context.Context, _ trace.Span) error {
		if m.store == nil {
			return nil
		}
		if err := m.store.SetItem(ctx, StorageKey, string(mode)); err != nil {
			log.ErrorErr(log.CatTheme, "Failed to persist theme", err, "mode", mode)
			return fmt.Errorf("saving theme: %w", err)
		}
		log.Info(log.CatTheme, "Theme set", "mode", mode, "previous", prev)
		return nil
	}, attribute.String(tracing.AttrThemeMode, string(mode)), attribute.String(tracing.AttrThemeFrom, string(prev)))
}

// Refresh re-reads the stored preference, typically after another instance
// wrote it. Reports whether the mode changed.
func (m *Manager) Refresh(ctx context.Context) (bool, error) {
	if m.store == nil {
		return false, nil
	}
	mode, err := m.read(ctx)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	changed := mode != m.mode
	m.mode = mode
	m.mu.Unlock()

	if changed {
		log.Info(log.CatTheme, "Theme changed externally", "mode", mode)
		m.apply()
		m.broker.Publish(pubsub.ChangedEvent, mode)
	}
	return changed, nil
}

// Watch calls Refresh for every signal on changes until ctx ends.
func (m *Manager) Watch(ctx context.Context, changes <-chan struct{}) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				if _, err := m.Refresh(ctx); err != nil {
					log.ErrorErr(log.CatTheme, "Theme refresh failed", err)
				}
			}
		}
	}()
}

// Mode is the stored preference.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// Effective resolves System to Light or Dark.
func (m *Manager) Effective() Mode {
	mode := m.Mode()
	if mode != System {
		return mode
	}
	if m.detect != nil && m.detect() {
		return Dark
	}
	return Light
}

// Background is the page colour for the effective mode.
func (m *Manager) Background() canvas.Color {
	if m.Effective() == Dark {
		return DarkBackground
	}
	return LightBackground
}

// Foreground contrasts with Background.
func (m *Manager) Foreground() canvas.Color {
	if m.Effective() == Dark {
		return DarkForeground
	}
	return LightForeground
}

// Subscribe delivers a ChangedEvent for every mode change.
func (m *Manager) Subscribe(ctx context.Context) <-chan pubsub.Event[Mode] {
	return m.broker.Subscribe(ctx)
}

// Broker exposes the change broker for bubbletea listeners.
func (m *Manager) Broker() *pubsub.Broker[Mode] { return m.broker }

// Close releases subscribers.
func (m *Manager) Close() { m.broker.Close() }

// apply installs the styles preset for the effective mode.
func (m *Manager) apply() {
	eff := m.Effective()
	cfg := m.base
	switch cfg.Preset {
	case "", "default", string(Light), string(Dark):
		cfg.Preset = string(eff)
	}
	if err := styles.ApplyTheme(cfg); err != nil {
		log.ErrorErr(log.CatTheme, "Failed to apply theme", err, "preset", cfg.Preset)
		return
	}
	lipgloss.SetHasDarkBackground(eff == Dark)
	log.Debug(log.CatTheme, "Applied theme", "mode", m.Mode(), "effective", eff, "preset", cfg.Preset)
}
