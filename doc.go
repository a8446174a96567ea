// Package core provides a broadcast event dispatcher for Luna plugins.
// A single event is fanned out to every registered plugin that accepts it;
// plugins run concurrently, each bounded by its own timeout, and a failing,
// hung, or panicking plugin never affects the others.
//
// # Quick Start
//
//	d, err := core.New(
//	    core.WithTimeout(2*time.Second),
//	    core.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//	d.Register(plugin.Echo{})
//
//	outcomes := d.Dispatch(ctx, event.New("echo", "hello"))
//
// # Outcomes
//
// Dispatch returns one error per selected plugin, in selection order,
// regardless of which plugin finished first. A nil entry is a success.
// Failures are plugin.HandlerError values:
//
//   - the plugin's own failure message, unchanged
//   - plugin.ErrNotImplemented for plugins without a handler
//   - plugin.ErrTimedOut when the plugin's timeout window closed first
//   - plugin.Crashed(...) when the plugin panicked
//
// Dispatch itself never fails.
//
// # Architecture
//
// Plugin contracts and the ordered registry live in the plugin package.
// Cross-cutting behaviour per invocation is provided by the middleware
// package, and lifecycle hooks by the ext package.
package core
