package fs

import (
	"maps"
	"slices"
	"sync"
)

// MemFS is an in-memory ports.FileSystem. Failures can be injected per path.
type MemFS struct {
	mu        sync.Mutex
	files     map[string]string
	writeErrs map[string]error
	removeErr map[string]error
	writes    int
	removes   int
}

// NewMemFS creates an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		files:     make(map[string]string),
		writeErrs: make(map[string]error),
		removeErr: make(map[string]error),
	}
}

// ReadFile returns the content stored at path.
func (m *MemFS) ReadFile(path string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[path]
	return content, ok, nil
}

// WriteFile stores content at path unless a write failure is injected for it.
func (m *MemFS) WriteFile(path, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.writeErrs[path]; err != nil {
		return err
	}
	m.files[path] = content
	m.writes++
	return nil
}

// Remove deletes path unless a removal failure is injected for it.
func (m *MemFS) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.removeErr[path]; err != nil {
		return err
	}
	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		m.removes++
	}
	return nil
}

// FailWrites makes every write to path return err. A nil err clears the failure.
func (m *MemFS) FailWrites(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.writeErrs, path)
		return
	}
	m.writeErrs[path] = err
}

// FailRemoves makes every removal of path return err. A nil err clears the failure.
func (m *MemFS) FailRemoves(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.removeErr, path)
		return
	}
	m.removeErr[path] = err
}

// Paths returns the stored paths in sorted order.
func (m *MemFS) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.files))
}

// Writes returns the number of successful writes.
func (m *MemFS) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Removes returns the number of removals that deleted a stored file.
func (m *MemFS) Removes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removes
}
