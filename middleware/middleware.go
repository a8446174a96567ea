// Package middleware provides composable middleware for plugin invocations.
// Middleware wraps each plugin call inside its own goroutine and can modify
// execution (recover from panics, log, add tracing, record metrics, etc.).
package middleware

import (
	"context"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/event"
)

// Handler is the terminal function that runs a plugin's processing.
type Handler func(ctx context.Context) error

// Call describes one plugin invocation within a dispatch.
type Call struct {
	// DispatchID identifies the dispatch the call belongs to.
	DispatchID string
	// Plugin is the name of the plugin being invoked.
	Plugin string
	// Index is the plugin's position among the plugins selected for the
	// dispatch.
	Index int
	// Event is the event being dispatched.
	Event event.Event
}

// Middleware wraps a Handler with cross-cutting logic.
// It receives the current context, the call being executed, and the
// next handler to call. Middleware MUST call next to continue the chain
// (unless short-circuiting on error).
type Middleware func(ctx context.Context, c *Call, next Handler) error

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(recover, logging, tracing) executes as:
//
//	recover → logging → tracing → handler
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, c *Call, next Handler) error {
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) error {
				return mw(ctx, c, prev)
			}
		}
		return h(ctx)
	}
}
