package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/shade/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
	"go.trai.ch/shade/internal/engine/registry"
	"golang.org/x/sync/errgroup"
)

// BuildSummary reports the outcome of a build.
type BuildSummary struct {
	// Shaders is the number of shader files discovered below the root.
	Shaders int
	// Stubs is the number of shaders that have a declaration stub.
	Stubs int
	// Variables is the size of the shared mapping.
	Variables int
	// Failures lists the storage operations that still failed after the last pass.
	Failures []registry.FileFailure
}

// Build discovers every shader below the configured root, reconciles them and
// writes the runtime module. In dry-run mode the changes are only reported.
func (a *App) Build(ctx context.Context, opts Options) (BuildSummary, error) {
	fsys := a.fs
	var overlay *fs.Overlay
	if opts.DryRun {
		overlay = fs.NewOverlay(a.fs)
		fsys = overlay
	}

	s, err := a.open(opts, fsys)
	if err != nil {
		return BuildSummary{}, err
	}

	summary, errs := a.discover(ctx, s)

	// The runtime module is emitted even when the mapping never changed.
	s.graph.Invalidate(s.plugin.VirtualID())
	if err := s.graph.Flush(s.plugin); err != nil {
		a.logger.Error(err)
		errs = append(errs, err)
	}

	a.logSummary(summary)

	if overlay != nil {
		for _, change := range overlay.Changes() {
			if change.Removed {
				a.logger.Info("would remove " + s.relative(change.Path))
				continue
			}
			a.logger.Info("would write " + s.relative(change.Path))
		}
	}

	for _, failure := range summary.Failures {
		errs = append(errs, failure)
	}
	if len(errs) > 0 {
		return summary, errors.Join(append([]error{domain.ErrBuildFailed}, errs...)...)
	}
	return summary, nil
}

// discover walks the root and resolves each shader. Walking runs concurrently
// with resolution, but shaders are resolved one at a time so every pass sees
// all sources resolved before it.
func (a *App) discover(ctx context.Context, s *session) (BuildSummary, []error) {
	paths := make(chan string)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(paths)
		for path := range a.walker.WalkFiles(s.settings.Root, s.settings.IsShader) {
			select {
			case paths <- path:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var (
		summary BuildSummary
		last    registry.Result
		errs    []error
	)
	g.Go(func() error {
		for path := range paths {
			summary.Shaders++
			res, ok, err := s.plugin.ResolveID(gctx, path, "")
			if err != nil {
				a.logger.Error(err)
				errs = append(errs, err)
				continue
			}
			last = res.Result
			if ok {
				a.logger.Debug("resolved " + s.relative(path))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		errs = append(errs, err)
	}

	for _, id := range s.plugin.Registry().Sources() {
		if _, ok := s.plugin.Registry().DerivedArtifact(id); ok {
			summary.Stubs++
		}
	}
	summary.Variables = len(s.plugin.Registry().Mappings())
	summary.Failures = last.Failures
	return summary, errs
}

func (a *App) logSummary(summary BuildSummary) {
	a.logger.Info(fmt.Sprintf("built %d of %d shaders (%d shared variables)",
		summary.Stubs, summary.Shaders, summary.Variables))
}

// apply feeds one batch of watch events to the plugin and re-emits the runtime module.
func (a *App) apply(ctx context.Context, s *session, batch []ports.WatchEvent) {
	for _, event := range batch {
		if err := s.plugin.WatchChange(ctx, event.Path, event.Operation); err != nil {
			a.logger.Error(err)
			continue
		}
		a.logger.Debug(event.Operation.String() + " " + s.relative(event.Path))
	}
	if err := s.graph.Flush(s.plugin); err != nil {
		a.logger.Error(err)
	}
}
