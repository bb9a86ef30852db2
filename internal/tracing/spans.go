package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span names.
const (
	SpanExport    = "export.png"
	SpanExportAll = "export.all"
	SpanThemeSet  = "theme.set"
	SpanThemeLoad = "theme.load"
)

// Span attribute keys.
const (
	AttrSketch     = "sketch.name"
	AttrWidth      = "canvas.width"
	AttrHeight     = "canvas.height"
	AttrPixelRatio = "canvas.pixel_ratio"
	AttrPath       = "file.path"
	AttrBytes      = "file.bytes"
	AttrThemeMode  = "theme.mode"
	AttrThemeFrom  = "theme.previous"
)

// Run wraps fn in a span named name. An error returned by fn is recorded on
// the span and marks it failed.
func Run(ctx context.Context, tracer trace.Tracer, name string, fn func(context.Context, trace.Span) error, attrs ...attribute.KeyValue) error {
	if tracer == nil {
		tracer = Noop()
	}
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	defer span.End()

	if err := fn(ctx, span); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}
