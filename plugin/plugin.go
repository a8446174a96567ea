package plugin

import (
	"context"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/event"
)

// Plugin is the base interface every dispatched plugin implements.
type Plugin interface {
	// Name identifies the plugin in logs and PluginNames. Names need not
	// be unique.
	Name() string
}

// Filter is implemented by plugins that only want some events.
// Accepts must be free of side effects and safe to call from any goroutine.
type Filter interface {
	Accepts(e event.Event) bool
}

// Handler processes an event synchronously.
type Handler interface {
	Handle(e event.Event) error
}

// ContextHandler processes an event and may block, for example on I/O.
// Implementations should return when ctx is done.
type ContextHandler interface {
	HandleContext(ctx context.Context, e event.Event) error
}

// InvokeFunc is a plugin's processing operation in its suspending shape.
type InvokeFunc func(ctx context.Context, e event.Event) error

// Invoker resolves the processing operation of p. ContextHandler takes
// precedence over Handler; a plugin implementing neither resolves to an
// operation that always fails with ErrNotImplemented.
func Invoker(p Plugin) InvokeFunc {
	if h, ok := p.(ContextHandler); ok {
		return h.HandleContext
	}
	if h, ok := p.(Handler); ok {
		return func(_ context.Context, e event.Event) error {
			return h.Handle(e)
		}
	}
	return func(context.Context, event.Event) error {
		return ErrNotImplemented
	}
}

// Accepts reports whether p wants e. Plugins without a Filter accept
// every event.
func Accepts(p Plugin, e event.Event) bool {
	if f, ok := p.(Filter); ok {
		return f.Accepts(e)
	}
	return true
}
