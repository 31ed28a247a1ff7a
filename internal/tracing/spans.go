package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys.
const (
	AttrFilePath        = "file.path"
	AttrFileBytes       = "file.bytes"
	AttrCommand         = "cli.command"
	AttrAtomSet         = "css.atoms"
	AttrTokenCount      = "css.tokens"
	AttrDiagnosticCount = "css.diagnostics"
	AttrCacheHit        = "cache.hit"
)

// Span names.
const (
	SpanCommand = "cli.command"
	SpanParse   = "css.parse"
	SpanCheck   = "css.check"
)

// StartCommand starts the root span for a CLI command.
func StartCommand(ctx context.Context, tracer trace.Tracer, name string) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanCommand, trace.WithAttributes(attribute.String(AttrCommand, name)))
}

// StartFile starts a span named name around work on one file.
func StartFile(ctx context.Context, tracer trace.Tracer, name, path string, size int) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String(AttrFilePath, path),
		attribute.Int(AttrFileBytes, size),
	))
}

// EndFile records the outcome of a file span and ends it. Diagnostics are
// results, not span errors; only err marks the span failed.
func EndFile(span trace.Span, diagnostics int, err error) {
	span.SetAttributes(attribute.Int(AttrDiagnosticCount, diagnostics))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
