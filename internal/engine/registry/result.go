package registry

import (
	"errors"

	"go.trai.ch/shade/internal/core/domain"
)

// Op names the storage operation that failed for a shader.
type Op string

const (
	// OpWrite is a declaration stub write.
	OpWrite Op = "write"
	// OpRemove is a declaration stub removal.
	OpRemove Op = "remove"
)

// FileFailure records a storage operation that failed for one shader during reconciliation.
// The derived cache entry for ID is left untouched, so the next pass retries it.
type FileFailure struct {
	ID   string
	Path string
	Op   Op
	Err  error
}

func (f FileFailure) Error() string {
	return string(f.Op) + " " + f.Path + ": " + f.Err.Error()
}

func (f FileFailure) Unwrap() error {
	return f.Err
}

// Result describes the outcome of an Update or Delete.
type Result struct {
	// ArtifactPath is the stub path for the updated shader, or empty when the
	// analyzer did not return it. Always empty for Delete.
	ArtifactPath string
	// MappingChanged reports whether the shared mapping differs from the previous analysis.
	MappingChanged bool
	// Diff lists the mapping names that changed.
	Diff domain.MappingDiff
	// Failures lists the stubs whose storage operation failed.
	Failures []FileFailure
}

// HasArtifact reports whether the analyzer produced output for the updated shader.
func (r Result) HasArtifact() bool {
	return r.ArtifactPath != ""
}

// Err joins every per-file failure, or returns nil when storage is fully in sync.
func (r Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}
