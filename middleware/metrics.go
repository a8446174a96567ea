package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name for plugin metrics.
const meterName = "github.com/luna-assistant-ai/luna-assistant-ai-core"

// Metrics returns middleware that records per-plugin execution metrics
// using the global OTel MeterProvider.
//
// Instruments:
//   - luna.plugin.duration (Float64Histogram): execution time in seconds
//   - luna.plugin.invocations (Int64Counter): total invocations
//
// Both carry the attributes plugin, event and status ("ok" or "error").
// Timed-out invocations are recorded when the abandoned plugin eventually
// returns, if ever.
func Metrics() Middleware {
	return MetricsWithMeter(otel.Meter(meterName))
}

// MetricsWithMeter returns metrics middleware using the provided meter.
func MetricsWithMeter(meter metric.Meter) Middleware {
	// On error the OTel API returns noop instruments.
	duration, _ := meter.Float64Histogram(
		"luna.plugin.duration",
		metric.WithDescription("Duration of plugin invocations in seconds"),
		metric.WithUnit("s"),
	)
	invocations, _ := meter.Int64Counter(
		"luna.plugin.invocations",
		metric.WithDescription("Total number of plugin invocations"),
		metric.WithUnit("{invocation}"),
	)

	return func(ctx context.Context, c *Call, next Handler) error {
		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start).Seconds()

		status := "ok"
		if err != nil {
			status = "error"
		}

		attrs := metric.WithAttributes(
			attribute.String("plugin", c.Plugin),
			attribute.String("event", c.Event.Name()),
			attribute.String("status", status),
		)

		// The invocation context may already be cancelled; recording must
		// not depend on it.
		recordCtx := context.WithoutCancel(ctx)
		duration.Record(recordCtx, elapsed, attrs)
		invocations.Add(recordCtx, 1, attrs)

		return err
	}
}
