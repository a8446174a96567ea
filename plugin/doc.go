// Package plugin defines the capability contract every dispatched plugin
// implements, the HandlerError outcome type, and the ordered Registry the
// dispatcher selects plugins from.
//
// # Contract
//
// A [Plugin] only has to report a [Plugin.Name]. Everything else is opt-in
// through separate interfaces, discovered once at registration time:
//
//   - [Filter]: Accepts(event) decides whether the plugin receives an event.
//     Plugins without a filter receive every event.
//   - [Handler]: synchronous processing: Handle(event) error.
//   - [ContextHandler]: processing that may block on I/O:
//     HandleContext(ctx, event) error. The context is cancelled when the
//     plugin's timeout window closes.
//
// A plugin implementing both handler shapes is invoked through
// [ContextHandler]. A plugin implementing neither fails every invocation
// with [ErrNotImplemented].
//
// # Writing a Plugin
//
//	type Greeter struct{}
//
//	func (Greeter) Name() string { return "greeter" }
//
//	func (Greeter) Accepts(e event.Event) bool { return e.Name() == "greet" }
//
//	func (Greeter) Handle(e event.Event) error {
//	    fmt.Println("hello,", e.Payload())
//	    return nil
//	}
//
// For one-off plugins, [Func] wraps a function.
package plugin
