package ext

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/event"
)

// Named entry types pair a hook implementation with the extension name
// captured at registration time.
type dispatchStartedEntry struct {
	name string
	hook DispatchStarted
}

type dispatchCompletedEntry struct {
	name string
	hook DispatchCompleted
}

type pluginCompletedEntry struct {
	name string
	hook PluginCompleted
}

type pluginFailedEntry struct {
	name string
	hook PluginFailed
}

type pluginTimedOutEntry struct {
	name string
	hook PluginTimedOut
}

type pluginCrashedEntry struct {
	name string
	hook PluginCrashed
}

// Registry holds registered extensions and dispatches lifecycle events
// to them. It type-caches extensions at registration time so emit calls
// iterate only over extensions that implement the relevant hook.
//
// Register is not safe to call concurrently with the emit methods;
// extensions are registered while the dispatcher is being built.
type Registry struct {
	extensions []Extension
	logger     *slog.Logger

	dispatchStarted   []dispatchStartedEntry
	dispatchCompleted []dispatchCompletedEntry
	pluginCompleted   []pluginCompletedEntry
	pluginFailed      []pluginFailedEntry
	pluginTimedOut    []pluginTimedOutEntry
	pluginCrashed     []pluginCrashedEntry
}

// NewRegistry creates an extension registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger}
}

// Register adds an extension and type-asserts it into all applicable
// hook caches. Extensions are notified in registration order.
func (r *Registry) Register(e Extension) {
	r.extensions = append(r.extensions, e)
	name := e.Name()

	if h, ok := e.(DispatchStarted); ok {
		r.dispatchStarted = append(r.dispatchStarted, dispatchStartedEntry{name, h})
	}
	if h, ok := e.(DispatchCompleted); ok {
		r.dispatchCompleted = append(r.dispatchCompleted, dispatchCompletedEntry{name, h})
	}
	if h, ok := e.(PluginCompleted); ok {
		r.pluginCompleted = append(r.pluginCompleted, pluginCompletedEntry{name, h})
	}
	if h, ok := e.(PluginFailed); ok {
		r.pluginFailed = append(r.pluginFailed, pluginFailedEntry{name, h})
	}
	if h, ok := e.(PluginTimedOut); ok {
		r.pluginTimedOut = append(r.pluginTimedOut, pluginTimedOutEntry{name, h})
	}
	if h, ok := e.(PluginCrashed); ok {
		r.pluginCrashed = append(r.pluginCrashed, pluginCrashedEntry{name, h})
	}
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []Extension { return r.extensions }

// EmitDispatchStarted notifies all extensions that implement DispatchStarted.
func (r *Registry) EmitDispatchStarted(ctx context.Context, dispatchID string, e event.Event, selected []string) {
	for _, x := range r.dispatchStarted {
		r.call("OnDispatchStarted", x.name, func() error {
			return x.hook.OnDispatchStarted(ctx, dispatchID, e, selected)
		})
	}
}

// EmitDispatchCompleted notifies all extensions that implement DispatchCompleted.
func (r *Registry) EmitDispatchCompleted(ctx context.Context, dispatchID string, e event.Event, outcomes []error, elapsed time.Duration) {
	for _, x := range r.dispatchCompleted {
		r.call("OnDispatchCompleted", x.name, func() error {
			return x.hook.OnDispatchCompleted(ctx, dispatchID, e, outcomes, elapsed)
		})
	}
}

// EmitPluginCompleted notifies all extensions that implement PluginCompleted.
func (r *Registry) EmitPluginCompleted(ctx context.Context, dispatchID, plugin string, elapsed time.Duration) {
	for _, x := range r.pluginCompleted {
		r.call("OnPluginCompleted", x.name, func() error {
			return x.hook.OnPluginCompleted(ctx, dispatchID, plugin, elapsed)
		})
	}
}

// EmitPluginFailed notifies all extensions that implement PluginFailed.
func (r *Registry) EmitPluginFailed(ctx context.Context, dispatchID, plugin string, pluginErr error) {
	for _, x := range r.pluginFailed {
		r.call("OnPluginFailed", x.name, func() error {
			return x.hook.OnPluginFailed(ctx, dispatchID, plugin, pluginErr)
		})
	}
}

// EmitPluginTimedOut notifies all extensions that implement PluginTimedOut.
func (r *Registry) EmitPluginTimedOut(ctx context.Context, dispatchID, plugin string, timeout time.Duration) {
	for _, x := range r.pluginTimedOut {
		r.call("OnPluginTimedOut", x.name, func() error {
			return x.hook.OnPluginTimedOut(ctx, dispatchID, plugin, timeout)
		})
	}
}

// EmitPluginCrashed notifies all extensions that implement PluginCrashed.
func (r *Registry) EmitPluginCrashed(ctx context.Context, dispatchID, plugin string, pluginErr error) {
	for _, x := range r.pluginCrashed {
		r.call("OnPluginCrashed", x.name, func() error {
			return x.hook.OnPluginCrashed(ctx, dispatchID, plugin, pluginErr)
		})
	}
}

// call runs one hook. Returned errors and panics are logged, never
// propagated.
func (r *Registry) call(hook, extName string, fn func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logHookError(hook, extName, fmt.Errorf("hook panicked: %v", rec))
		}
	}()
	if err := fn(); err != nil {
		r.logHookError(hook, extName, err)
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from hooks are never propagated.
func (r *Registry) logHookError(hook, extName string, err error) {
	r.logger.Warn("extension hook error",
		slog.String("hook", hook),
		slog.String("extension", extName),
		slog.String("error", err.Error()),
	)
}
