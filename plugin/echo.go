package plugin

import "github.com/luna-assistant-ai/luna-assistant-ai-core/event"

// Compile-time interface checks.
var (
	_ Plugin  = Echo{}
	_ Filter  = Echo{}
	_ Handler = Echo{}
)

// Echo is the reference plugin. It accepts only events named "echo" and
// succeeds on them.
type Echo struct{}

// Name implements Plugin.
func (Echo) Name() string { return "echo" }

// Accepts implements Filter.
func (Echo) Accepts(e event.Event) bool { return e.Name() == "echo" }

// Handle implements Handler. Events other than "echo" only reach it when
// Accepts is bypassed.
func (Echo) Handle(e event.Event) error {
	if e.Name() != "echo" {
		return NewHandlerError("Echo plugin received unexpected event")
	}
	return nil
}
