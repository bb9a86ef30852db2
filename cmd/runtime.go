package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/sketchpad/internal/config"
	"github.com/zjrosen/sketchpad/internal/export"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/params"
	"github.com/zjrosen/sketchpad/internal/paths"
	"github.com/zjrosen/sketchpad/internal/sketch"
	"github.com/zjrosen/sketchpad/internal/sketch/catalog"
	"github.com/zjrosen/sketchpad/internal/storage"
	"github.com/zjrosen/sketchpad/internal/theme"
	"github.com/zjrosen/sketchpad/internal/tracing"
	"github.com/zjrosen/sketchpad/internal/ui/styles"
	"github.com/zjrosen/sketchpad/internal/watcher"
)

// runtime holds the services shared by every command. Close releases them
// in reverse order of creation.
type runtime struct {
	tracer  trace.Tracer
	store   *storage.Store
	theme   *theme.Manager
	closers []func()
}

// lookupSet builds a throwaway sketch to validate overrides against.
func lookupSet(name string) (*params.Set, error) {
	sk, err := catalog.Create(name, sketch.Options{Seed: 1})
	if err != nil {
		return nil, err
	}
	return sk.Params(), nil
}

// setup validates the loaded config and starts logging, tracing, storage
// and the theme manager. With watch set, theme changes made by other
// processes are picked up from the storage file.
func setup(ctx context.Context, watch bool) (*runtime, error) {
	if cfgErr != nil {
		return nil, cfgErr
	}
	if err := cfg.Validate(lookupSet); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rt := &runtime{tracer: tracing.Noop()}
	if cfg.Debug {
		cleanup, err := log.InitWithTeaLog(paths.Expand(cfg.LogPath), "sketchpad")
		if err != nil {
			return nil, fmt.Errorf("opening debug log: %w", err)
		}
		rt.closers = append(rt.closers, cleanup)
		log.Info(log.CatConfig, "Config loaded", "path", cfgPath)
	}

	provider, err := tracing.NewProvider(cfg.Tracing.Provider())
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("starting tracing: %w", err)
	}
	rt.tracer = provider.Tracer()
	rt.closers = append(rt.closers, func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.ErrorErr(log.CatConfig, "Tracing shutdown failed", err)
		}
	})

	opts := []theme.Option{
		theme.WithTracer(rt.tracer),
		theme.WithBaseTheme(styles.ThemeConfig{
			Preset: cfg.Theme.Preset,
			Colors: cfg.Theme.FlattenedColors(),
		}),
	}
	store, err := storage.Open(paths.Expand(cfg.StoragePath))
	if err != nil {
		// The theme still works for this session, it just isn't remembered.
		log.ErrorErr(log.CatStorage, "Storage unavailable", err, "path", cfg.StoragePath)
		rt.theme = theme.NewManager(nil, opts...)
	} else {
		rt.store = store
		rt.closers = append(rt.closers, func() { _ = store.Close() })
		rt.theme = theme.NewManager(store, opts...)
	}
	rt.closers = append(rt.closers, rt.theme.Close)

	if err := rt.theme.Load(ctx); err != nil {
		log.ErrorErr(log.CatTheme, "Using system theme", err)
	}

	if watch && rt.store != nil {
		rt.watch(ctx)
	}
	return rt, nil
}

func (rt *runtime) watch(ctx context.Context) {
	w, err := watcher.New(watcher.DefaultConfig(rt.store.Path()))
	if err != nil {
		log.ErrorErr(log.CatWatcher, "Watcher unavailable", err)
		return
	}
	changes, err := w.Start()
	if err != nil {
		_ = w.Stop()
		log.ErrorErr(log.CatWatcher, "Watcher unavailable", err)
		return
	}
	rt.closers = append(rt.closers, func() { _ = w.Stop() })
	go rt.theme.Watch(ctx, changes)
}

func (rt *runtime) exporter(opts export.Options) *export.Exporter {
	return export.New(opts, rt.tracer)
}

// Close releases everything setup started.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}

func exportOptions(e config.ExportConfig) export.Options {
	return export.Options{
		Dir:        paths.Expand(e.Dir),
		Width:      e.Width,
		Height:     e.Height,
		PixelRatio: e.PixelRatio,
		Unique:     e.UniqueNames,
	}
}

// buildSketches creates the named sketches, or all of them when names is
// empty, and applies the config overrides for each.
func buildSketches(names []string, seed uint64) ([]sketch.Sketch, error) {
	if len(names) == 0 {
		names = catalog.Names()
	}
	out := make([]sketch.Sketch, 0, len(names))
	for _, name := range names {
		sk, err := catalog.Create(name, sketch.Options{Seed: seed})
		if err != nil {
			return nil, err
		}
		if values, ok := overridesFor(sk.Info().Name); ok {
			if err := config.ApplySketchParams(sk.Params(), values); err != nil {
				return nil, fmt.Errorf("sketches.%s: %w", sk.Info().Name, err)
			}
		}
		out = append(out, sk)
	}
	return out, nil
}

// overridesFor finds the config section for a sketch. Viper lowercases
// section names.
func overridesFor(name string) (map[string]any, bool) {
	for k, v := range cfg.Sketches {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

var errNoSketchHasKey = errors.New("no selected sketch has parameter")

// applySets applies "key=value" assignments to every sketch that has key.
// An assignment no sketch accepts is an error.
func applySets(sketches []sketch.Sketch, sets []string) error {
	values := make(map[string]string, len(sets))
	for _, s := range sets {
		key, value, ok := strings.Cut(s, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("--set %q: want key=value", s)
		}
		values[key] = value
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		matched := false
		for _, sk := range sketches {
			set := sk.Params()
			if _, ok := set.Get(key); !ok {
				continue
			}
			matched = true
			if err := set.SetString(key, values[key]); err != nil {
				return fmt.Errorf("%s.%s: %w", sk.Info().Name, key, err)
			}
		}
		if !matched {
			return fmt.Errorf("%w %q", errNoSketchHasKey, key)
		}
	}
	return nil
}
