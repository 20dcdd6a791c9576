package fs

import (
	"maps"
	"slices"
	"sync"

	"go.trai.ch/shade/internal/core/ports"
)

// Change is a pending modification recorded by an Overlay.
type Change struct {
	Path    string
	Removed bool
	Content string
}

// Overlay reads through to a base file system and keeps every write and removal in memory.
// It backs dry runs: nothing is ever written to the base.
type Overlay struct {
	base ports.FileSystem

	mu      sync.Mutex
	changes map[string]Change
}

// NewOverlay creates an Overlay on top of base.
func NewOverlay(base ports.FileSystem) *Overlay {
	return &Overlay{
		base:    base,
		changes: make(map[string]Change),
	}
}

// ReadFile returns the pending content of path, or the base content when path is untouched.
func (o *Overlay) ReadFile(path string) (string, bool, error) {
	o.mu.Lock()
	c, ok := o.changes[path]
	o.mu.Unlock()
	if ok {
		if c.Removed {
			return "", false, nil
		}
		return c.Content, true, nil
	}
	return o.base.ReadFile(path)
}

// WriteFile records content for path.
func (o *Overlay) WriteFile(path, content string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.changes[path] = Change{Path: path, Content: content}
	return nil
}

// Remove records the removal of path.
func (o *Overlay) Remove(path string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.changes[path] = Change{Path: path, Removed: true}
	return nil
}

// Changes returns the pending modifications sorted by path.
func (o *Overlay) Changes() []Change {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Change, 0, len(o.changes))
	for _, p := range slices.Sorted(maps.Keys(o.changes)) {
		out = append(out, o.changes[p])
	}
	return out
}
