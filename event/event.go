// Package event defines the immutable event record that the dispatcher
// broadcasts to plugins.
package event

// Event is a named payload broadcast to every plugin that accepts it.
//
// Fields are unexported so an Event cannot be modified after New returns.
// Events are passed by value; copies share the same immutable string data,
// so concurrently running plugins always observe the same event.
type Event struct {
	name    string
	payload string
}

// New creates an event. No validation is performed; empty strings are legal.
func New(name, payload string) Event {
	return Event{name: name, payload: payload}
}

// Name returns the event name plugins filter on.
func (e Event) Name() string { return e.name }

// Payload returns the event payload.
func (e Event) Payload() string { return e.payload }

// String renders the event as name(payload) for logs.
func (e Event) String() string {
	return e.name + "(" + e.payload + ")"
}
