// Package export rasterises sketches to PNG files.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/sketchpad/internal/canvas"
	"github.com/zjrosen/sketchpad/internal/log"
	"github.com/zjrosen/sketchpad/internal/pubsub"
	"github.com/zjrosen/sketchpad/internal/sketch"
	"github.com/zjrosen/sketchpad/internal/tracing"
)

// Options control the exported image.
type Options struct {
	Dir        string
	Width      int
	Height     int
	PixelRatio float64
	// Unique appends a short random suffix so exports never overwrite.
	Unique bool
}

// DefaultOptions exports 1024x768 at 1x into the working directory.
func DefaultOptions() Options {
	return Options{Dir: ".", Width: 1024, Height: 768, PixelRatio: 1}
}

// Validate rejects sizes the canvas cannot allocate.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("export size must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.PixelRatio <= 0 || o.PixelRatio > 4 {
		return fmt.Errorf("pixel ratio must be in (0, 4], got %g", o.PixelRatio)
	}
	return nil
}

// FileName is the PNG name for base.
func FileName(base string, unique bool) string {
	if unique {
		return fmt.Sprintf("%s-%s.png", base, strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	}
	return base + ".png"
}

// Exporter writes PNGs and announces them on a broker.
type Exporter struct {
	opts   Options
	tracer trace.Tracer
	broker *pubsub.Broker[string]
}

// New creates an exporter. A nil tracer disables spans.
func New(opts Options, tracer trace.Tracer) *Exporter {
	if tracer == nil {
		tracer = tracing.Noop()
	}
	return &Exporter{opts: opts, tracer: tracer, broker: pubsub.NewBroker[string]()}
}

// Options returns the exporter's settings.
func (e *Exporter) Options() Options { return e.opts }

// Broker publishes ExportedEvent with the file path or FailedEvent with the
// error text.
func (e *Exporter) Broker() *pubsub.Broker[string] { return e.broker }

// Snapshot renders sk onto a fresh canvas at the export size. It must run on
// the goroutine that owns sk.
func (e *Exporter) Snapshot(sk sketch.Sketch) (*canvas.Canvas, error) {
	if err := e.opts.Validate(); err != nil {
		return nil, err
	}
	c := canvas.New(e.opts.Width, e.opts.Height, canvas.WithPixelRatio(e.opts.PixelRatio))
	sk.Render(c)
	return c, nil
}

// Write encodes c to <Dir>/<base>.png through a temp file and rename, then
// closes c. Safe to call off the UI goroutine.
func (e *Exporter) Write(ctx context.Context, name, base string, c *canvas.Canvas) (string, error) {
	defer func() { _ = c.Close() }()
	path := filepath.Join(e.opts.Dir, FileName(base, e.opts.Unique))
	pw, ph := c.Size()

	err := tracing.Run(ctx, e.tracer, tracing.SpanExport, func(ctx context.Context, span trace.Span) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := writeAtomic(path, c)
		if err != nil {
			return err
		}
		span.SetAttributes(attribute.Int64(tracing.AttrBytes, n))
		return nil
	},
		attribute.String(tracing.AttrSketch, name),
		attribute.Int(tracing.AttrWidth, pw),
		attribute.Int(tracing.AttrHeight, ph),
		attribute.Float64(tracing.AttrPixelRatio, c.PixelRatio()),
		attribute.String(tracing.AttrPath, path),
	)
	if err != nil {
		log.ErrorErr(log.CatExport, "Export failed", err, "sketch", name, "path", path)
		e.broker.Publish(pubsub.FailedEvent, err.Error())
		return "", err
	}
	log.Info(log.CatExport, "Exported", "sketch", name, "path", path, "size", fmt.Sprintf("%dx%d", pw, ph))
	e.broker.Publish(pubsub.ExportedEvent, path)
	return path, nil
}

// Export renders and writes sk in one call.
func (e *Exporter) Export(ctx context.Context, sk sketch.Sketch) (string, error) {
	c, err := e.Snapshot(sk)
	if err != nil {
		return "", err
	}
	info := sk.Info()
	return e.Write(ctx, info.Name, info.ExportBase, c)
}

// ExportAll exports each sketch in order, calling progress after each one.
// It keeps going after a failure and returns every error joined.
func (e *Exporter) ExportAll(ctx context.Context, sketches []sketch.Sketch, progress func(i int, path string, err error)) ([]string, error) {
	var paths []string
	var errs []error
	err := tracing.Run(ctx, e.tracer, tracing.SpanExportAll, func(ctx context.Context, _ trace.Span) error {
		for i, sk := range sketches {
			if err := ctx.Err(); err != nil {
				errs = append(errs, err)
				break
			}
			path, err := e.Export(ctx, sk)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", sk.Info().Name, err))
			} else {
				paths = append(paths, path)
			}
			if progress != nil {
				progress(i, path, err)
			}
		}
		return errors.Join(errs...)
	})
	return paths, err
}

// Close releases broker subscribers.
func (e *Exporter) Close() { e.broker.Close() }

func writeAtomic(path string, c *canvas.Canvas) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return 0, fmt.Errorf("creating export directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := c.EncodePNG(tmp); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("encoding png: %w", err)
	}
	info, err := tmp.Stat()
	if err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("renaming export: %w", err)
	}
	return info.Size(), nil
}
