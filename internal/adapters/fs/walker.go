// Package fs provides file system adapters for reading, writing and discovering shader files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker discovers files below a root directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root accepted by match, skipping VCS and
// dependency directories. Yielded paths include root.
func (w *Walker) WalkFiles(root string, match func(path string) bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if match != nil && !match(path) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(name string) bool {
	switch name {
	case ".git", ".jj", "node_modules":
		return true
	default:
		return false
	}
}
