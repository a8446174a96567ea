// Package ext defines the extension system for the dispatcher.
// Extensions are notified of dispatch lifecycle events (dispatch started,
// plugin completed, failed, timed out, crashed, etc.) and can react to
// them, for example for metrics or auditing.
//
// Each lifecycle hook is a separate interface so extensions opt in only
// to the events they care about.
package ext

import (
	"context"
	"time"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/event"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// ──────────────────────────────────────────────────
// Dispatch lifecycle hooks
// ──────────────────────────────────────────────────

// DispatchStarted is called after plugins are selected and before any
// of them runs. selected lists the selected plugin names in order.
type DispatchStarted interface {
	OnDispatchStarted(ctx context.Context, dispatchID string, e event.Event, selected []string) error
}

// DispatchCompleted is called once every selected plugin has an outcome.
// outcomes[i] belongs to the i-th selected plugin.
type DispatchCompleted interface {
	OnDispatchCompleted(ctx context.Context, dispatchID string, e event.Event, outcomes []error, elapsed time.Duration) error
}

// ──────────────────────────────────────────────────
// Plugin lifecycle hooks
// ──────────────────────────────────────────────────

// PluginCompleted is called when a plugin returns success in time.
type PluginCompleted interface {
	OnPluginCompleted(ctx context.Context, dispatchID, plugin string, elapsed time.Duration) error
}

// PluginFailed is called when a plugin returns a failure in time.
type PluginFailed interface {
	OnPluginFailed(ctx context.Context, dispatchID, plugin string, err error) error
}

// PluginTimedOut is called when a plugin's timeout window closes first.
type PluginTimedOut interface {
	OnPluginTimedOut(ctx context.Context, dispatchID, plugin string, timeout time.Duration) error
}

// PluginCrashed is called when a plugin panicked or exited its goroutine.
type PluginCrashed interface {
	OnPluginCrashed(ctx context.Context, dispatchID, plugin string, err error) error
}
