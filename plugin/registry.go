package plugin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/event"
)

// Entry is a registered plugin with its name and processing operation
// captured at registration time.
type Entry struct {
	Plugin Plugin
	Name   string
	invoke InvokeFunc
}

// Invoke runs the plugin's processing operation.
func (e Entry) Invoke(ctx context.Context, evt event.Event) error {
	return e.invoke(ctx, evt)
}

// Registry is an ordered, append-only list of plugins.
// It is safe for concurrent use: Register may run while Select is in
// progress, and Select only sees plugins registered before it started.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	logger  *slog.Logger
}

// NewRegistry creates an empty plugin registry.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger}
}

// ErrInvalidPlugin is returned by Register for a plugin whose Name
// panics, such as a typed nil pointer.
var ErrInvalidPlugin = errors.New("plugin: invalid plugin")

// Register appends p and returns its entry. Duplicate names are allowed;
// each registration is invoked independently.
func (r *Registry) Register(p Plugin) (Entry, error) {
	name, err := nameOf(p)
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{Plugin: p, Name: name, invoke: Invoker(p)}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return entry, nil
}

func nameOf(p Plugin) (name string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %T.Name panicked: %v", ErrInvalidPlugin, p, rec)
		}
	}()
	return p.Name(), nil
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Names returns the plugin names in registration order.
func (r *Registry) Names() []string {
	snapshot := r.snapshot()
	names := make([]string, len(snapshot))
	for i, e := range snapshot {
		names[i] = e.Name
	}
	return names
}

// Select evaluates Accepts once per plugin, in registration order, and
// returns the accepting entries in that order. A filter that panics is
// logged and treated as rejecting the event.
func (r *Registry) Select(e event.Event) []Entry {
	snapshot := r.snapshot()
	selected := make([]Entry, 0, len(snapshot))
	for _, entry := range snapshot {
		if r.accepts(entry, e) {
			selected = append(selected, entry)
		}
	}
	return selected
}

func (r *Registry) accepts(entry Entry, e event.Event) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("plugin filter panicked",
				slog.String("plugin", entry.Name),
				slog.String("event", e.Name()),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())),
			)
			ok = false
		}
	}()
	return Accepts(entry.Plugin, e)
}

// snapshot returns the entries registered so far. Entries are never
// modified after append, so the capped slice can be read without the lock.
func (r *Registry) snapshot() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[:len(r.entries):len(r.entries)]
}
