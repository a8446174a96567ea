// Package ext defines the extension system for the dispatcher.
//
// Extensions are notified of dispatch lifecycle events and can react to
// them, for example to record metrics or write audit logs. Each lifecycle hook
// is a separate interface so extensions opt in only to the events they
// care about.
//
// # Implementing an Extension
//
//	type SlowPlugins struct{}
//
//	func (SlowPlugins) Name() string { return "slow-plugins" }
//
//	func (SlowPlugins) OnPluginTimedOut(ctx context.Context, dispatchID, plugin string, timeout time.Duration) error {
//	    log.Printf("%s exceeded %s in dispatch %s", plugin, timeout, dispatchID)
//	    return nil
//	}
//
// # Hooks
//
//   - [DispatchStarted]: plugins were selected for an event
//   - [PluginCompleted]: a plugin succeeded within its timeout
//   - [PluginFailed]: a plugin returned a failure within its timeout
//   - [PluginTimedOut]: a plugin's timeout window closed first
//   - [PluginCrashed]: a plugin panicked
//   - [DispatchCompleted]: every selected plugin has an outcome
//
// Hooks run on the dispatching goroutine after the plugin outcomes are
// collected, never on a plugin's goroutine. The [Registry] fans out each
// event to all registered extensions that implement the corresponding
// hook interface; hook errors are logged and otherwise ignored.
package ext
