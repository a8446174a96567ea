package core

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/ext"
	"github.com/luna-assistant-ai/luna-assistant-ai-core/middleware"
	"github.com/luna-assistant-ai/luna-assistant-ai-core/plugin"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher) error

// Dispatcher broadcasts events to registered plugins.
//
// Create one with New() and functional options, register plugins at setup
// time, then call Dispatch as often as needed. Dispatch does not modify the
// Dispatcher, so concurrent Dispatch calls are safe; Register may also be
// called concurrently, and each Dispatch sees the plugins registered before
// it started.
type Dispatcher struct {
	config     Config
	logger     *slog.Logger
	plugins    *plugin.Registry
	extensions *ext.Registry
	chain      middleware.Middleware

	// Collected by options and wired once all options have run, so
	// WithLogger may appear anywhere in the option list.
	mws  []middleware.Middleware
	exts []ext.Extension
}

// New creates a new Dispatcher with the given options.
// The default timeout is DefaultTimeout.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if err := d.config.Validate(); err != nil {
		return nil, err
	}

	if d.logger == nil {
		d.logger = d.config.newLogger()
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}

	d.plugins = plugin.NewRegistry(d.logger)
	d.extensions = ext.NewRegistry(d.logger)
	for _, e := range d.exts {
		d.extensions.Register(e)
	}

	// Recover is outermost so panics in user middleware are isolated too.
	d.chain = middleware.Chain(append([]middleware.Middleware{middleware.Recover(d.logger)}, d.mws...)...)
	d.mws, d.exts = nil, nil

	return d, nil
}

// NewWithTimeout is shorthand for New(WithTimeout(timeout)).
func NewWithTimeout(timeout time.Duration) (*Dispatcher, error) {
	return New(WithTimeout(timeout))
}

// Register appends a plugin. Plugins are selected and reported in
// registration order. Duplicate names are allowed.
func (d *Dispatcher) Register(p plugin.Plugin) error {
	if p == nil {
		return ErrNilPlugin
	}
	entry, err := d.plugins.Register(p)
	if err != nil {
		return fmt.Errorf("core: register: %w", err)
	}
	d.logger.Debug("plugin registered", slog.String("plugin", entry.Name))
	return nil
}

// PluginNames returns the names of registered plugins in registration order.
func (d *Dispatcher) PluginNames() []string { return d.plugins.Names() }

// Timeout returns the per-plugin timeout.
func (d *Dispatcher) Timeout() time.Duration { return d.config.Timeout }

// Logger returns the dispatcher's logger.
func (d *Dispatcher) Logger() *slog.Logger { return d.logger }

// Config returns a copy of the dispatcher's configuration.
func (d *Dispatcher) Config() Config { return d.config }

// Extensions returns the dispatcher's extension registry.
func (d *Dispatcher) Extensions() *ext.Registry { return d.extensions }

// WithTimeout sets the per-plugin timeout. It must be positive.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) error {
		if timeout <= 0 {
			return fmt.Errorf("%w: %s", ErrInvalidTimeout, timeout)
		}
		d.config.Timeout = timeout
		return nil
	}
}

// WithConfig replaces the dispatcher's configuration, typically one
// returned by LoadConfig.
func WithConfig(cfg Config) Option {
	return func(d *Dispatcher) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		d.config = cfg
		return nil
	}
}

// WithLogger sets the structured logger for the dispatcher.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) error {
		d.logger = l
		return nil
	}
}

// WithMiddleware appends middleware run around every plugin invocation,
// inside the goroutine of that invocation.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(d *Dispatcher) error {
		d.mws = append(d.mws, mws...)
		return nil
	}
}

// WithExtension registers a lifecycle extension.
func WithExtension(e ext.Extension) Option {
	return func(d *Dispatcher) error {
		if e == nil {
			return ErrNilExtension
		}
		d.exts = append(d.exts, e)
		return nil
	}
}
