// Package registry keeps shader sources, their analysis and the generated
// declaration stubs consistent with each other and with storage.
package registry

import (
	"context"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
)

// Registry owns the source cache, the current analysis snapshot and the cache of
// declaration stubs last written to storage. One Registry serves one build session.
type Registry struct {
	analyzer    ports.Analyzer
	fs          ports.FileSystem
	gen         ports.CodeGenerator
	logger      ports.Logger
	tracer      ports.Tracer
	listener    func()
	suffix      string
	concurrency int

	// mu guards sources and derived. It is never held across analyzer or storage calls.
	mu      sync.Mutex
	sources map[string]string
	derived map[string]string

	// fileLocks serializes the compare-write-record step per shader id so the
	// derived cache always matches what this registry last put in storage.
	fileLocks sync.Map

	analysis atomic.Pointer[domain.AnalysisResult]
}

// New creates a Registry that analyzes with analyzer, persists stubs through fsys
// and renders text with gen.
func New(analyzer ports.Analyzer, fsys ports.FileSystem, gen ports.CodeGenerator, opts ...Option) *Registry {
	r := &Registry{
		analyzer: analyzer,
		fs:       fsys,
		gen:      gen,
		logger:   nopLogger{},
		tracer:   nopTracer{},
		suffix:   domain.DefaultDeclarationSuffix,
		sources:  make(map[string]string),
		derived:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.analysis.Store(domain.EmptyAnalysis())
	return r
}

// Update records rawSource for id and reconciles every known shader.
// The returned Result carries the stub path for id, or an empty path when the
// analyzer did not return id. Per-file storage failures are reported in the
// Result; only an analyzer failure is returned as an error, in which case no
// cache has been changed.
func (r *Registry) Update(ctx context.Context, id, rawSource string) (Result, error) {
	if id == "" {
		return Result{}, domain.ErrEmptyShaderID
	}

	ctx, span := r.tracer.Start(ctx, "registry.update")
	defer span.End()
	span.SetAttribute("shader.id", id)

	p, err := r.reconcile(ctx, mutation{id: id, source: rawSource})
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	res := p.result()
	if _, ok := p.analysis.Shader(id); ok {
		res.ArtifactPath = r.ArtifactPath(id)
	}
	return res, nil
}

// Delete forgets id, removes its stub from storage and reconciles the remaining shaders.
// Deleting an unknown id still removes any stub left at its path.
func (r *Registry) Delete(ctx context.Context, id string) (Result, error) {
	if id == "" {
		return Result{}, domain.ErrEmptyShaderID
	}

	ctx, span := r.tracer.Start(ctx, "registry.delete")
	defer span.End()
	span.SetAttribute("shader.id", id)

	// The stub is removed before analysis: once the source is gone no later
	// analysis will mention id, so nothing else would ever overwrite it.
	r.forceRemove(id)

	p, err := r.reconcile(ctx, mutation{id: id, remove: true})
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}
	return p.result(), nil
}

// DerivedArtifact returns the declaration stub implied by the current analysis for id.
func (r *Registry) DerivedArtifact(id string) (string, bool) {
	analysis := r.analysis.Load()
	minified, ok := analysis.Shader(id)
	if !ok {
		return "", false
	}
	return r.gen.Declaration(minified, analysis.Mappings), true
}

// SharedMappingModule renders the current shared mapping as the virtual module body.
func (r *Registry) SharedMappingModule() string {
	return r.gen.RuntimeModule(r.analysis.Load().Mappings)
}

// Mappings returns a copy of the current shared variable mapping.
func (r *Registry) Mappings() domain.VariableMapping {
	return r.analysis.Load().Mappings.Clone()
}

// ArtifactPath returns the storage path of the declaration stub for id.
func (r *Registry) ArtifactPath(id string) string {
	return id + r.suffix
}

// Sources returns the ids currently in the source cache, sorted.
func (r *Registry) Sources() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.sources))
}

// forceRemove deletes the stored stub for id ahead of reconciliation. On failure a
// tombstone stays in the derived cache so the following pass retries the removal.
func (r *Registry) forceRemove(id string) {
	unlock := r.lockFile(id)
	defer unlock()

	path := r.ArtifactPath(id)
	if err := r.fs.Remove(path); err != nil {
		r.logger.Debug("deferring removal of " + path + ": " + err.Error())
		r.mu.Lock()
		if _, ok := r.derived[id]; !ok {
			r.derived[id] = ""
		}
		r.mu.Unlock()
		return
	}

	r.mu.Lock()
	delete(r.derived, id)
	r.mu.Unlock()
}

// lockFile acquires the per-id lock and returns its release function.
func (r *Registry) lockFile(id string) func() {
	v, _ := r.fileLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
