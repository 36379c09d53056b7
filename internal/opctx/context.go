// Package opctx carries per-operation state, such as the tracer and the
// operation clock, through a context.
package opctx

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type ctxKey int

const key ctxKey = 1

// Values is what an operation knows about itself: the trace it belongs to,
// the tracer for child spans and the clock used to timestamp its effects.
type Values struct {
	TraceID string
	Tracer  trace.Tracer
	Now     time.Time
}

// GetValues returns the operation values stored in ctx. A context without
// them yields an untraced operation clocked at the current UTC time, so
// callers never need to check for absence.
func GetValues(ctx context.Context) *Values {
	v, ok := ctx.Value(key).(*Values)
	if !ok {
		return &Values{
			TraceID: trace.TraceID{}.String(),
			Tracer:  noop.NewTracerProvider().Tracer(""),
			Now:     time.Now().UTC(),
		}
	}

	return v
}

// SetValues attaches v to ctx.
func SetValues(ctx context.Context, v *Values) context.Context {
	return context.WithValue(ctx, key, v)
}

// Start begins a root span with tracer and stores the matching Values in
// the returned context. The caller must end the span.
func Start(ctx context.Context, tracer trace.Tracer, name string) (context.Context, trace.Span) {
	ctx, span := tracer.Start(ctx, name)

	v := Values{
		TraceID: span.SpanContext().TraceID().String(),
		Tracer:  tracer,
		Now:     time.Now().UTC(),
	}

	return SetValues(ctx, &v), span
}

// GetTraceID returns the trace id of the operation, or the zero trace id.
func GetTraceID(ctx context.Context) string {
	return GetValues(ctx).TraceID
}

// GetTime returns the operation clock.
func GetTime(ctx context.Context) time.Time {
	return GetValues(ctx).Now
}

// Tick advances the operation clock to the current time, so each step of a
// long-running operation gets its own timestamp.
func Tick(ctx context.Context) {
	v, ok := ctx.Value(key).(*Values)
	if !ok {
		return
	}
	v.Now = time.Now().UTC()
}

// AddSpan adds a OpenTelemetry span to the trace and context.
func AddSpan(ctx context.Context, spanName string, keyValues ...attribute.KeyValue) (context.Context, trace.Span) {
	v, ok := ctx.Value(key).(*Values)
	if !ok || v.Tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}

	ctx, span := v.Tracer.Start(ctx, spanName)
	for _, kv := range keyValues {
		span.SetAttributes(kv)
	}

	return ctx, span
}
