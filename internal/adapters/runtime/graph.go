// Package runtime writes virtual modules to disk for hosts without a module graph of their own.
package runtime

import (
	"errors"
	"maps"
	"slices"
	"sync"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleGraph = (*Graph)(nil)

// Loader returns the body of a module by id.
type Loader interface {
	Load(id string) (string, bool)
}

// Graph is a ports.ModuleGraph that tracks invalidated modules and re-emits them
// to their configured output files on Flush.
type Graph struct {
	fs      ports.FileSystem
	logger  ports.Logger
	outputs map[string]string

	mu    sync.Mutex
	dirty map[string]struct{}
}

// NewGraph creates a Graph that writes module id to outputs[id]. Ids without an
// output are tracked but never written.
func NewGraph(fsys ports.FileSystem, logger ports.Logger, outputs map[string]string) *Graph {
	return &Graph{
		fs:      fsys,
		logger:  logger,
		outputs: maps.Clone(outputs),
		dirty:   make(map[string]struct{}),
	}
}

// Invalidate marks id as stale.
func (g *Graph) Invalidate(id string) {
	g.mu.Lock()
	g.dirty[id] = struct{}{}
	g.mu.Unlock()
}

// Dirty returns the ids invalidated since the last Flush, sorted.
func (g *Graph) Dirty() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Sorted(maps.Keys(g.dirty))
}

// Flush reloads every stale module that has an output through loader and writes it.
// Modules that fail to write stay stale.
func (g *Graph) Flush(loader Loader) error {
	g.mu.Lock()
	ids := slices.Sorted(maps.Keys(g.dirty))
	clear(g.dirty)
	g.mu.Unlock()

	var errs []error
	for _, id := range ids {
		path, ok := g.outputs[id]
		if !ok {
			continue
		}
		body, ok := loader.Load(id)
		if !ok {
			continue
		}
		if err := g.fs.WriteFile(path, body); err != nil {
			g.Invalidate(id)
			errs = append(errs, zerr.With(zerr.Wrap(err, domain.ErrRuntimeModuleWriteFailed.Error()), "path", path))
			continue
		}
		g.logger.Debug("wrote " + path)
	}

	return errors.Join(errs...)
}
