package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shade/internal/adapters/fs"
	"go.trai.ch/shade/internal/core/ports"
)

var (
	_ ports.FileSystem = (*fs.OSFS)(nil)
	_ ports.FileSystem = (*fs.MemFS)(nil)
	_ ports.FileSystem = (*fs.Overlay)(nil)
)

func TestOSFS_ReadFile_Missing(t *testing.T) {
	osfs := fs.NewOSFS()

	content, ok, err := osfs.ReadFile(filepath.Join(t.TempDir(), "missing.vert"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, content)
}

func TestOSFS_WriteFile_CreatesParents(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "nested", "dir", "a.vert.d.ts")
	osfs := fs.NewOSFS()

	require.NoError(t, osfs.WriteFile(path, "export {};"))

	content, ok, err := osfs.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "export {};", content)
}

func TestOSFS_Remove(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.vert.d.ts")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	osfs := fs.NewOSFS()

	require.NoError(t, osfs.Remove(path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing again is not an error.
	require.NoError(t, osfs.Remove(path))
}

func TestMemFS_FailureInjection(t *testing.T) {
	m := fs.NewMemFS()
	boom := errors.New("disk full")

	m.FailWrites("b", boom)
	require.NoError(t, m.WriteFile("a", "1"))
	require.ErrorIs(t, m.WriteFile("b", "2"), boom)

	m.FailWrites("b", nil)
	require.NoError(t, m.WriteFile("b", "2"))

	m.FailRemoves("a", boom)
	require.ErrorIs(t, m.Remove("a"), boom)
	m.FailRemoves("a", nil)
	require.NoError(t, m.Remove("a"))
	require.NoError(t, m.Remove("missing"))

	assert.Equal(t, []string{"b"}, m.Paths())
	assert.Equal(t, 2, m.Writes())
	assert.Equal(t, 1, m.Removes())
}

func TestOverlay_KeepsBaseUntouched(t *testing.T) {
	base := fs.NewMemFS()
	require.NoError(t, base.WriteFile("a", "base-a"))
	require.NoError(t, base.WriteFile("b", "base-b"))
	o := fs.NewOverlay(base)

	require.NoError(t, o.WriteFile("a", "new-a"))
	require.NoError(t, o.Remove("b"))
	require.NoError(t, o.WriteFile("c", "new-c"))

	content, ok, err := o.ReadFile("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new-a", content)

	_, ok, err = o.ReadFile("b")
	require.NoError(t, err)
	assert.False(t, ok)

	content, ok, err = base.ReadFile("b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "base-b", content)

	assert.Equal(t, []fs.Change{
		{Path: "a", Content: "new-a"},
		{Path: "b", Removed: true},
		{Path: "c", Content: "new-c"},
	}, o.Changes())
	assert.Equal(t, 2, base.Writes())
}
