package ports

import "iter"

// Walker discovers files below a root directory.
type Walker interface {
	// WalkFiles yields every file below root for which match returns true.
	WalkFiles(root string, match func(path string) bool) iter.Seq[string]
}
