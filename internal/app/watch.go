package app

import (
	"context"
	"fmt"

	"go.trai.ch/shade/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const pendingBatches = 16

// Watch builds once and then keeps the registry in sync with the shader root
// until ctx is cancelled.
func (a *App) Watch(ctx context.Context, opts Options) error {
	s, err := a.open(opts, a.fs)
	if err != nil {
		return err
	}

	summary, errs := a.discover(ctx, s)
	s.graph.Invalidate(s.plugin.VirtualID())
	if err := s.graph.Flush(s.plugin); err != nil {
		a.logger.Error(err)
	}
	a.logSummary(summary)
	if len(errs) > 0 {
		a.logger.Warn(fmt.Sprintf("%d shaders failed to resolve, watching anyway", len(errs)))
	}

	if err := a.watcher.Start(ctx, s.settings.Root); err != nil {
		return zerr.With(err, "root", s.settings.Root)
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	a.logger.Info("watching " + s.settings.Root)

	g, ctx := errgroup.WithContext(ctx)
	batches := make(chan []ports.WatchEvent, pendingBatches)
	debouncer := watcher.NewDebouncer(s.settings.Debounce, func(batch []ports.WatchEvent) {
		select {
		case batches <- batch:
		case <-ctx.Done():
		}
	})

	done := make(chan struct{})

	// Events routine
	g.Go(func() error {
		defer close(done)
		for event := range a.watcher.Events() {
			if s.settings.IsShader(event.Path) {
				debouncer.Add(event)
			}
		}
		// Every drained batch is in batches once Flush returns.
		debouncer.Flush()
		return nil
	})

	// Reconcile routine
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case batch := <-batches:
				a.apply(ctx, s, batch)
			case <-done:
				for {
					select {
					case batch := <-batches:
						a.apply(ctx, s, batch)
					default:
						return nil
					}
				}
			}
		}
	})

	return g.Wait()
}
