package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope name for plugin tracing.
const tracerName = "github.com/luna-assistant-ai/luna-assistant-ai-core"

// Tracing returns middleware that wraps each plugin invocation in an
// OpenTelemetry span. If no TracerProvider is configured globally, the
// default noop tracer is used and this middleware becomes a pass-through.
//
// Span attributes: luna.dispatch.id, luna.plugin.name, luna.plugin.index,
// luna.event.name.
func Tracing() Middleware {
	return TracingWithTracer(otel.Tracer(tracerName))
}

// TracingWithTracer returns tracing middleware using the provided tracer.
func TracingWithTracer(tracer trace.Tracer) Middleware {
	return func(ctx context.Context, c *Call, next Handler) error {
		ctx, span := tracer.Start(ctx, "luna.plugin.handle",
			trace.WithAttributes(
				attribute.String("luna.dispatch.id", c.DispatchID),
				attribute.String("luna.plugin.name", c.Plugin),
				attribute.Int("luna.plugin.index", c.Index),
				attribute.String("luna.event.name", c.Event.Name()),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return err
	}
}
