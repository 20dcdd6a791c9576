// Package host adapts the shader registry to a module-graph host: it resolves
// shader imports, serves the virtual mapping module and reacts to file changes.
package host

import (
	"context"
	"path/filepath"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
	"go.trai.ch/shade/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Resolution is the outcome of resolving a shader import.
type Resolution struct {
	// ID is the module id the host should load: the reserved virtual id, or the
	// declaration stub path for a shader.
	ID string
	// Source is the absolute shader path. It is empty for the virtual module.
	Source string
	// Result reports the reconciliation pass triggered by the import.
	Result registry.Result
}

// Plugin connects one Registry to the host.
type Plugin struct {
	settings  domain.Settings
	fs        ports.FileSystem
	registry  *registry.Registry
	digests   *DigestCache
	graph     ports.ModuleGraph
	logger    ports.Logger
	tracer    ports.Tracer
	virtualID string
}

// New creates a Plugin and the Registry behind it.
func New(
	settings domain.Settings,
	analyzer ports.Analyzer,
	fsys ports.FileSystem,
	gen ports.CodeGenerator,
	opts ...Option,
) *Plugin {
	p := &Plugin{
		settings:  settings,
		fs:        fsys,
		digests:   NewDigestCache(),
		virtualID: domain.ResolvedVirtualID(settings.Runtime.Specifier),
	}
	for _, opt := range opts {
		opt(p)
	}

	regOpts := []registry.Option{
		registry.WithSuffix(settings.Suffix),
		registry.WithConcurrency(settings.Concurrency),
		registry.WithListener(p.invalidateMappings),
	}
	if p.logger != nil {
		regOpts = append(regOpts, registry.WithLogger(p.logger))
	}
	if p.tracer != nil {
		regOpts = append(regOpts, registry.WithTracer(p.tracer))
	}
	p.registry = registry.New(analyzer, fsys, gen, regOpts...)
	return p
}

// Registry returns the registry owned by the plugin.
func (p *Plugin) Registry() *registry.Registry {
	return p.registry
}

// VirtualID returns the reserved id of the virtual mapping module.
func (p *Plugin) VirtualID() string {
	return p.virtualID
}

// ResolveID resolves an import of source from importer. It reports false when
// the import is not handled here or the analyzer dropped the shader.
func (p *Plugin) ResolveID(ctx context.Context, source, importer string) (Resolution, bool, error) {
	if source == p.settings.Runtime.Specifier {
		return Resolution{ID: p.virtualID}, true, nil
	}
	if !p.settings.IsShader(source) {
		return Resolution{}, false, nil
	}

	path := resolvePath(source, importer)
	content, ok, err := p.fs.ReadFile(path)
	if err != nil {
		return Resolution{}, false, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	if !ok {
		return Resolution{}, false, zerr.With(domain.ErrSourceNotFound, "path", path)
	}

	res, err := p.registry.Update(ctx, path, content)
	if err != nil {
		return Resolution{}, false, zerr.With(err, "path", path)
	}
	p.digests.Record(path, content)

	if !res.HasArtifact() {
		return Resolution{Source: path, Result: res}, false, nil
	}
	return Resolution{ID: res.ArtifactPath, Source: path, Result: res}, true, nil
}

// Load returns the module body for id when it is the virtual mapping module.
func (p *Plugin) Load(id string) (string, bool) {
	if id != p.virtualID {
		return "", false
	}
	return p.registry.SharedMappingModule(), true
}

// WatchChange reconciles the registry after path changed on disk. Paths that are
// not shaders are ignored. A write whose content hashes the same as the last
// reconciled content is skipped.
func (p *Plugin) WatchChange(ctx context.Context, path string, op ports.WatchOp) error {
	if !p.settings.IsShader(path) {
		return nil
	}

	if op.Removes() {
		return p.remove(ctx, path)
	}

	content, ok, err := p.fs.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	if !ok {
		return p.remove(ctx, path)
	}

	if p.digests.Unchanged(path, content) {
		p.debug("unchanged " + path)
		return nil
	}

	if _, err := p.registry.Update(ctx, path, content); err != nil {
		return zerr.With(err, "path", path)
	}
	p.digests.Record(path, content)
	return nil
}

func (p *Plugin) remove(ctx context.Context, path string) error {
	p.digests.Forget(path)
	if _, err := p.registry.Delete(ctx, path); err != nil {
		return zerr.With(err, "path", path)
	}
	return nil
}

// invalidateMappings drops the host's cached copy of the virtual module.
func (p *Plugin) invalidateMappings() {
	if p.graph == nil {
		return
	}
	p.graph.Invalidate(p.virtualID)
}

func (p *Plugin) debug(msg string) {
	if p.logger != nil {
		p.logger.Debug(msg)
	}
}

func resolvePath(source, importer string) string {
	if filepath.IsAbs(source) || importer == "" {
		return filepath.Clean(source)
	}
	return filepath.Join(filepath.Dir(importer), source)
}
