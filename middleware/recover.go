package middleware

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/plugin"
)

// Recover returns middleware that recovers from panics in the handler chain.
// Panics are converted to plugin.Crashed outcomes and logged with a stack
// trace.
func Recover(logger *slog.Logger) Middleware {
	return func(ctx context.Context, c *Call, next Handler) (retErr error) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("plugin panicked",
					slog.String("plugin", c.Plugin),
					slog.String("dispatch_id", c.DispatchID),
					slog.String("event", c.Event.Name()),
					slog.Any("panic", r),
					slog.String("stack", stack),
				)
				retErr = plugin.Crashed(r)
			}
		}()
		return next(ctx)
	}
}
