package registry

import "go.trai.ch/shade/internal/core/ports"

// Option configures a Registry.
type Option func(*Registry)

// WithSuffix sets the suffix appended to a shader id to form its stub path.
// An empty suffix is ignored.
func WithSuffix(suffix string) Option {
	return func(r *Registry) {
		if suffix != "" {
			r.suffix = suffix
		}
	}
}

// WithListener registers the callback invoked when the shared mapping changes.
// It runs synchronously, at most once per Update or Delete, before any stub is written.
func WithListener(fn func()) Option {
	return func(r *Registry) {
		r.listener = fn
	}
}

// WithLogger sets the logger used for mapping changes and storage failures.
func WithLogger(logger ports.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTracer sets the tracer used to record reconciliation spans.
func WithTracer(tracer ports.Tracer) Option {
	return func(r *Registry) {
		if tracer != nil {
			r.tracer = tracer
		}
	}
}

// WithConcurrency bounds the number of stubs written in parallel. Zero means unbounded.
func WithConcurrency(n int) Option {
	return func(r *Registry) {
		if n >= 0 {
			r.concurrency = n
		}
	}
}
