// Package middleware provides composable middleware for plugin invocations.
//
// A [Middleware] is a function that wraps a single plugin call. Middleware
// are composed into a chain using [Chain] and run inside the goroutine the
// dispatcher starts for each selected plugin. They are applied
// right-to-left: the first middleware in the slice is the outermost wrapper.
//
//	// recover → logging → handler
//	chain := middleware.Chain(middleware.Recover(logger), middleware.Logging(logger))
//
// The dispatcher always installs [Recover] outermost; middleware passed to
// core.WithMiddleware run inside it.
//
// # Built-in Middleware
//
//   - [Recover]: catches panics and converts them to crash outcomes
//   - [Logging]: logs plugin name, dispatch ID, duration, and outcome
//   - [Tracing]: wraps each invocation in an OpenTelemetry span
//   - [Metrics]: records per-plugin duration and invocation counters
//
// # Writing Custom Middleware
//
//	func MyMiddleware() middleware.Middleware {
//	    return func(ctx context.Context, c *middleware.Call, next middleware.Handler) error {
//	        // pre-processing
//	        err := next(ctx)
//	        // post-processing
//	        return err
//	    }
//	}
package middleware
