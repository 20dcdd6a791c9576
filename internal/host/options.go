package host

import "go.trai.ch/shade/internal/core/ports"

// Option configures a Plugin.
type Option func(*Plugin)

// WithModuleGraph sets the module graph invalidated when the shared mapping changes.
func WithModuleGraph(graph ports.ModuleGraph) Option {
	return func(p *Plugin) {
		p.graph = graph
	}
}

// WithLogger sets the logger shared by the plugin and its registry.
func WithLogger(logger ports.Logger) Option {
	return func(p *Plugin) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTracer sets the tracer handed to the registry.
func WithTracer(tracer ports.Tracer) Option {
	return func(p *Plugin) {
		p.tracer = tracer
	}
}
