package plugin

import (
	"context"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/event"
)

// FuncOption configures a plugin created by Func.
type FuncOption func(*funcPlugin)

// WithFilter restricts a Func plugin to events for which accept returns true.
func WithFilter(accept func(e event.Event) bool) FuncOption {
	return func(p *funcPlugin) { p.accept = accept }
}

type funcPlugin struct {
	name   string
	fn     InvokeFunc
	accept func(e event.Event) bool
}

// Func wraps fn as a Plugin named name. A nil fn yields a plugin that fails
// with ErrNotImplemented.
func Func(name string, fn func(ctx context.Context, e event.Event) error, opts ...FuncOption) Plugin {
	p := &funcPlugin{name: name, fn: fn}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *funcPlugin) Name() string { return p.name }

func (p *funcPlugin) Accepts(e event.Event) bool {
	if p.accept == nil {
		return true
	}
	return p.accept(e)
}

func (p *funcPlugin) HandleContext(ctx context.Context, e event.Event) error {
	if p.fn == nil {
		return ErrNotImplemented
	}
	return p.fn(ctx, e)
}
