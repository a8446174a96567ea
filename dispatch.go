package core

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/luna-assistant-ai/luna-assistant-ai-core/event"
	"github.com/luna-assistant-ai/luna-assistant-ai-core/id"
	"github.com/luna-assistant-ai/luna-assistant-ai-core/middleware"
	"github.com/luna-assistant-ai/luna-assistant-ai-core/plugin"
)

// result is the outcome of one plugin invocation plus what the hooks need.
type result struct {
	err     error
	elapsed time.Duration
	timeout bool
}

// Dispatch broadcasts e to every registered plugin whose filter accepts it
// and returns one outcome per selected plugin, in selection order.
//
// Each plugin runs in its own goroutine and races its own timeout, started
// when that plugin is launched. A plugin still running when its timeout
// elapses is abandoned: its context is cancelled, its outcome is
// plugin.ErrTimedOut, and Dispatch does not wait for it. Panics are
// converted to plugin.Crashed outcomes. If ctx is cancelled first, plugins
// still running get plugin.ErrCancelled. That includes a ctx deadline
// shorter than the plugin timeout: when the caller's deadline passes
// first, the outcome is plugin.ErrCancelled, not plugin.ErrTimedOut.
//
// Per-plugin and completion hooks run after every outcome is known. A hook
// that fails or panics is logged and does not change the outcomes.
//
// Dispatch never returns a call-level error; inspect each outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, e event.Event) []error {
	start := time.Now()
	dispatchID := id.NewDispatchID().String()

	selected := d.plugins.Select(e)
	names := make([]string, len(selected))
	for i, entry := range selected {
		names[i] = entry.Name
	}

	d.logger.Debug("dispatch started",
		slog.String("dispatch_id", dispatchID),
		slog.String("event", e.Name()),
		slog.Int("selected", len(selected)),
	)
	d.extensions.EmitDispatchStarted(ctx, dispatchID, e, names)

	results := make([]result, len(selected))
	var g errgroup.Group
	for i, entry := range selected {
		call := &middleware.Call{
			DispatchID: dispatchID,
			Plugin:     entry.Name,
			Index:      i,
			Event:      e,
		}
		g.Go(func() error {
			results[i] = d.invoke(ctx, call, entry)
			return nil
		})
	}
	_ = g.Wait() // invocations report through results, never through the group

	outcomes := make([]error, len(results))
	for i, r := range results {
		outcomes[i] = r.err
		d.report(ctx, dispatchID, names[i], r)
	}

	elapsed := time.Since(start)
	d.extensions.EmitDispatchCompleted(ctx, dispatchID, e, outcomes, elapsed)
	d.logger.Debug("dispatch completed",
		slog.String("dispatch_id", dispatchID),
		slog.String("event", e.Name()),
		slog.Duration("elapsed", elapsed),
	)

	return outcomes
}

// invoke runs one plugin through the middleware chain in a separate
// goroutine and waits for whichever comes first: the plugin's outcome, the
// end of its timeout window, or cancellation of the caller's context.
func (d *Dispatcher) invoke(parent context.Context, call *middleware.Call, entry plugin.Entry) result {
	start := time.Now()
	ctx, cancel := context.WithTimeout(parent, d.config.Timeout)
	defer cancel()

	// Buffered so an abandoned plugin can still deliver and exit.
	done := make(chan error, 1)
	go func() {
		returned := false
		defer func() {
			// Reached without a value only through runtime.Goexit, which
			// Recover cannot intercept.
			if !returned {
				done <- plugin.Crashed("plugin goroutine exited")
			}
		}()
		err := d.chain(ctx, call, func(ctx context.Context) error {
			return entry.Invoke(ctx, call.Event)
		})
		returned = true
		done <- err
	}()

	select {
	case err := <-done:
		// A plugin that gives up because its context ended reports the
		// same outcome as one the dispatcher stopped waiting for.
		if ctxErr := ctx.Err(); err != nil && ctxErr != nil && errors.Is(err, ctxErr) {
			return expired(parent, start)
		}
		return result{err: plugin.Normalize(err), elapsed: time.Since(start)}
	case <-ctx.Done():
		return expired(parent, start)
	}
}

// expired is the outcome of an invocation whose context ended first.
func expired(parent context.Context, start time.Time) result {
	if parent.Err() != nil {
		return result{err: plugin.ErrCancelled, elapsed: time.Since(start)}
	}
	return result{err: plugin.ErrTimedOut, elapsed: time.Since(start), timeout: true}
}

// report logs a plugin outcome and notifies extensions. It runs on the
// dispatching goroutine after all outcomes are collected.
func (d *Dispatcher) report(ctx context.Context, dispatchID, name string, r result) {
	switch {
	case r.err == nil:
		d.extensions.EmitPluginCompleted(ctx, dispatchID, name, r.elapsed)
	case r.timeout:
		d.logger.Warn("plugin timed out",
			slog.String("plugin", name),
			slog.String("dispatch_id", dispatchID),
			slog.Duration("timeout", d.config.Timeout),
		)
		d.extensions.EmitPluginTimedOut(ctx, dispatchID, name, d.config.Timeout)
	case plugin.IsCrash(r.err):
		d.extensions.EmitPluginCrashed(ctx, dispatchID, name, r.err)
	case errors.Is(r.err, plugin.ErrCancelled):
		d.logger.Warn("plugin abandoned, dispatch cancelled",
			slog.String("plugin", name),
			slog.String("dispatch_id", dispatchID),
		)
		d.extensions.EmitPluginFailed(ctx, dispatchID, name, r.err)
	default:
		d.extensions.EmitPluginFailed(ctx, dispatchID, name, r.err)
	}
}
