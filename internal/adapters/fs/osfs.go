package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/shade/internal/core/domain"
)

// OSFS implements ports.FileSystem on the host file system.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// ReadFile returns the content of path. A missing file is reported as ok=false, not as an error.
func (*OSFS) ReadFile(path string) (string, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from the configured shader root.
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

// WriteFile writes content to path, creating missing parent directories.
func (*OSFS) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), domain.FilePerm) //nolint:gosec // Generated stubs are meant to be readable.
}

// Remove deletes path. Removing a file that does not exist succeeds.
func (*OSFS) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
