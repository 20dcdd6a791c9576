package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/zerr"
)

// Clean removes every declaration stub below the shader root and the runtime
// module output. It returns the number of files removed.
func (a *App) Clean(_ context.Context, opts Options) (int, error) {
	settings, err := a.loadSettings(opts)
	if err != nil {
		return 0, err
	}

	isStub := func(path string) bool {
		shader, ok := strings.CutSuffix(path, settings.Suffix)
		return ok && settings.IsShader(shader)
	}

	var targets []string
	for path := range a.walker.WalkFiles(settings.Root, isStub) {
		targets = append(targets, path)
	}
	if settings.Runtime.Output != "" {
		targets = append(targets, settings.Runtime.Output)
	}

	removed := 0
	var errs error
	for _, path := range targets {
		if !a.exists(path) {
			continue
		}
		if opts.DryRun {
			a.logger.Info("would remove " + path)
			removed++
			continue
		}
		if err := a.fs.Remove(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path))
			continue
		}
		a.logger.Debug("removed " + path)
		removed++
	}

	a.logger.Info(fmt.Sprintf("removed %d generated files", removed))
	return removed, errs
}

func (a *App) exists(path string) bool {
	_, ok, err := a.fs.ReadFile(path)
	return err == nil && ok
}
