package middleware

import (
	"context"
	"log/slog"
	"time"
)

// Logging returns middleware that logs plugin start and completion.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, c *Call, next Handler) error {
		logger.Debug("plugin started",
			slog.String("plugin", c.Plugin),
			slog.String("dispatch_id", c.DispatchID),
			slog.String("event", c.Event.Name()),
		)

		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("plugin failed",
				slog.String("plugin", c.Plugin),
				slog.String("dispatch_id", c.DispatchID),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("plugin completed",
				slog.String("plugin", c.Plugin),
				slog.String("dispatch_id", c.DispatchID),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}
