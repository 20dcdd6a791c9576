package registry

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// mutation is the single source change a reconciliation pass applies.
type mutation struct {
	id     string
	source string
	remove bool
}

// pass is the outcome of one reconciliation.
type pass struct {
	analysis *domain.AnalysisResult
	diff     domain.MappingDiff
	failures []FileFailure
}

func (p pass) result() Result {
	return Result{
		MappingChanged: !p.diff.Empty(),
		Diff:           p.diff,
		Failures:       p.failures,
	}
}

// reconcile analyzes the source cache with m applied, publishes the new analysis
// and brings every tracked stub in storage up to date with it.
func (r *Registry) reconcile(ctx context.Context, m mutation) (pass, error) {
	ctx, span := r.tracer.Start(ctx, "registry.reconcile")
	defer span.End()

	staged := r.stage(m)
	span.SetAttribute("shader.count", len(staged))

	next, err := r.analyze(ctx, staged)
	if err != nil {
		span.RecordError(err)
		return pass{}, err
	}

	r.commit(m)
	prev := r.analysis.Swap(next)

	diff := domain.DiffMappings(prev.Mappings, next.Mappings)
	if !diff.Empty() {
		r.logger.Debug("shared mapping changed: " + describeDiff(diff))
		if r.listener != nil {
			r.listener()
		}
	}

	failures := r.sync(next)
	for _, f := range failures {
		r.logger.Warn(f.Error())
	}
	span.SetAttribute("failure.count", len(failures))

	return pass{analysis: next, diff: diff, failures: failures}, nil
}

// stage returns a copy of the source cache with m applied. The cache itself is
// left alone until the analyzer has accepted the staged sources.
func (r *Registry) stage(m mutation) map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := maps.Clone(r.sources)
	if staged == nil {
		staged = make(map[string]string)
	}
	if m.remove {
		delete(staged, m.id)
	} else {
		staged[m.id] = m.source
	}
	return staged
}

func (r *Registry) commit(m mutation) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.remove {
		delete(r.sources, m.id)
		return
	}
	r.sources[m.id] = m.source
}

// analyze runs the analyzer over sources and drops any shader it reports that was not asked for.
func (r *Registry) analyze(ctx context.Context, sources map[string]string) (*domain.AnalysisResult, error) {
	res, err := r.analyzer.Analyze(ctx, sources)
	if err != nil {
		return nil, errors.Join(domain.ErrAnalysisFailed, err)
	}
	if res == nil {
		return domain.EmptyAnalysis(), nil
	}

	next := res.Normalize()
	for id := range next.Shaders {
		if _, ok := sources[id]; !ok {
			r.logger.Warn("analyzer returned unknown shader " + id + ", ignoring it")
			delete(next.Shaders, id)
		}
	}
	return next, nil
}

// sync reconciles storage for every id in the source cache or the derived cache.
// Each id is handled independently; one failure never stops the others. Passes
// that overlap may leave a stub from the older analysis until the next pass.
func (r *Registry) sync(next *domain.AnalysisResult) []FileFailure {
	ids := r.trackedIDs()
	results := make([]*FileFailure, len(ids))

	var g errgroup.Group
	if r.concurrency > 0 {
		g.SetLimit(r.concurrency)
	}
	for i, id := range ids {
		g.Go(func() error {
			results[i] = r.syncFile(id, next)
			return nil
		})
	}
	_ = g.Wait()

	var failures []FileFailure
	for _, f := range results {
		if f != nil {
			failures = append(failures, *f)
		}
	}
	return failures
}

func (r *Registry) trackedIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make(map[string]struct{}, len(r.sources)+len(r.derived))
	for id := range r.sources {
		ids[id] = struct{}{}
	}
	for id := range r.derived {
		ids[id] = struct{}{}
	}
	return slices.Sorted(maps.Keys(ids))
}

// syncFile makes the stored stub for id match next. The derived cache entry is
// only updated after storage confirms the change.
func (r *Registry) syncFile(id string, next *domain.AnalysisResult) *FileFailure {
	unlock := r.lockFile(id)
	defer unlock()

	path := r.ArtifactPath(id)
	cached, hasCached := r.cached(id)

	minified, ok := next.Shader(id)
	if !ok {
		if !hasCached {
			return nil
		}
		if err := r.fs.Remove(path); err != nil {
			return &FileFailure{
				ID:   id,
				Path: path,
				Op:   OpRemove,
				Err:  zerr.With(zerr.Wrap(err, domain.ErrArtifactRemoveFailed.Error()), "path", path),
			}
		}
		r.mu.Lock()
		delete(r.derived, id)
		r.mu.Unlock()
		r.logger.Debug("removed " + path)
		return nil
	}

	text := r.gen.Declaration(minified, next.Mappings)
	if hasCached && cached == text {
		return nil
	}
	if err := r.fs.WriteFile(path, text); err != nil {
		return &FileFailure{
			ID:   id,
			Path: path,
			Op:   OpWrite,
			Err:  zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path),
		}
	}
	r.mu.Lock()
	r.derived[id] = text
	r.mu.Unlock()
	r.logger.Debug("wrote " + path)
	return nil
}

func (r *Registry) cached(id string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	text, ok := r.derived[id]
	return text, ok
}

func describeDiff(d domain.MappingDiff) string {
	var parts []string
	if len(d.Added) > 0 {
		parts = append(parts, "added "+strings.Join(d.Added, ", "))
	}
	if len(d.Removed) > 0 {
		parts = append(parts, "removed "+strings.Join(d.Removed, ", "))
	}
	if len(d.Changed) > 0 {
		parts = append(parts, "renamed "+strings.Join(d.Changed, ", "))
	}
	return strings.Join(parts, "; ")
}
