// Package observability provides a go-utils metrics extension for the
// dispatcher. The MetricsExtension implements lifecycle hooks to record
// counters for dispatches and for plugin completions, failures, timeouts,
// and crashes.
//
// For per-invocation tracing and duration histograms, see the middleware
// package: middleware.Tracing() and middleware.Metrics().
package observability
