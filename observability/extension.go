package observability

import (
	"context"
	"time"

	gu "github.com/xraph/go-utils/metrics"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/event"
	"github.com/luna-assistant-ai/luna-assistant-ai-core/ext"
)

// Compile-time interface checks.
var (
	_ ext.Extension         = (*MetricsExtension)(nil)
	_ ext.DispatchStarted   = (*MetricsExtension)(nil)
	_ ext.DispatchCompleted = (*MetricsExtension)(nil)
	_ ext.PluginCompleted   = (*MetricsExtension)(nil)
	_ ext.PluginFailed      = (*MetricsExtension)(nil)
	_ ext.PluginTimedOut    = (*MetricsExtension)(nil)
	_ ext.PluginCrashed     = (*MetricsExtension)(nil)
)

// MetricsExtension records dispatch lifecycle counters via go-utils
// MetricFactory. Register it as an extension to track dispatch volume and
// per-plugin success, failure, timeout, and crash counts.
type MetricsExtension struct {
	DispatchStarted   gu.Counter
	DispatchCompleted gu.Counter
	PluginCompleted   gu.Counter
	PluginFailed      gu.Counter
	PluginTimedOut    gu.Counter
	PluginCrashed     gu.Counter
}

// NewMetricsExtension creates a MetricsExtension using a default metrics
// collector.
func NewMetricsExtension() *MetricsExtension {
	return NewMetricsExtensionWithFactory(gu.NewMetricsCollector("luna/observability"))
}

// NewMetricsExtensionWithFactory creates a MetricsExtension with the
// provided MetricFactory.
func NewMetricsExtensionWithFactory(factory gu.MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		DispatchStarted:   factory.Counter("luna.dispatch.started"),
		DispatchCompleted: factory.Counter("luna.dispatch.completed"),
		PluginCompleted:   factory.Counter("luna.plugin.completed"),
		PluginFailed:      factory.Counter("luna.plugin.failed"),
		PluginTimedOut:    factory.Counter("luna.plugin.timed_out"),
		PluginCrashed:     factory.Counter("luna.plugin.crashed"),
	}
}

// Name implements ext.Extension.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// ── Dispatch lifecycle hooks ────────────────────────

// OnDispatchStarted implements ext.DispatchStarted.
func (m *MetricsExtension) OnDispatchStarted(_ context.Context, _ string, _ event.Event, _ []string) error {
	m.DispatchStarted.Inc()
	return nil
}

// OnDispatchCompleted implements ext.DispatchCompleted.
func (m *MetricsExtension) OnDispatchCompleted(_ context.Context, _ string, _ event.Event, _ []error, _ time.Duration) error {
	m.DispatchCompleted.Inc()
	return nil
}

// ── Plugin lifecycle hooks ──────────────────────────

// OnPluginCompleted implements ext.PluginCompleted.
func (m *MetricsExtension) OnPluginCompleted(_ context.Context, _, _ string, _ time.Duration) error {
	m.PluginCompleted.Inc()
	return nil
}

// OnPluginFailed implements ext.PluginFailed.
func (m *MetricsExtension) OnPluginFailed(_ context.Context, _, _ string, _ error) error {
	m.PluginFailed.Inc()
	return nil
}

// OnPluginTimedOut implements ext.PluginTimedOut.
func (m *MetricsExtension) OnPluginTimedOut(_ context.Context, _, _ string, _ time.Duration) error {
	m.PluginTimedOut.Inc()
	return nil
}

// OnPluginCrashed implements ext.PluginCrashed.
func (m *MetricsExtension) OnPluginCrashed(_ context.Context, _, _ string, _ error) error {
	m.PluginCrashed.Inc()
	return nil
}
