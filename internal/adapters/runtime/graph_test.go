package runtime_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shade/internal/adapters/fs"
	"go.trai.ch/shade/internal/adapters/runtime"
	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type staticLoader map[string]string

func (l staticLoader) Load(id string) (string, bool) {
	body, ok := l[id]
	return body, ok
}

func newGraph(t *testing.T, memfs *fs.MemFS) *runtime.Graph {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return runtime.NewGraph(memfs, mockLogger, map[string]string{
		"\x00virtual:shader-mappings": "/out/mappings.js",
	})
}

func TestGraph_FlushWritesInvalidatedModules(t *testing.T) {
	memfs := fs.NewMemFS()
	g := newGraph(t, memfs)
	loader := staticLoader{"\x00virtual:shader-mappings": "export const mappings = {};\n"}

	require.NoError(t, g.Flush(loader))
	assert.Empty(t, memfs.Paths(), "nothing is written before an invalidation")

	g.Invalidate("\x00virtual:shader-mappings")
	g.Invalidate("/src/untracked.js")
	assert.Equal(t, []string{"\x00virtual:shader-mappings", "/src/untracked.js"}, g.Dirty())

	require.NoError(t, g.Flush(loader))
	body, ok, err := memfs.ReadFile("/out/mappings.js")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "export const mappings = {};\n", body)
	assert.Empty(t, g.Dirty())
}

func TestGraph_FlushFailureKeepsModuleDirty(t *testing.T) {
	memfs := fs.NewMemFS()
	memfs.FailWrites("/out/mappings.js", errors.New("disk full"))
	g := newGraph(t, memfs)
	loader := staticLoader{"\x00virtual:shader-mappings": "export const mappings = {};\n"}

	g.Invalidate("\x00virtual:shader-mappings")
	err := g.Flush(loader)
	require.ErrorContains(t, err, domain.ErrRuntimeModuleWriteFailed.Error())
	require.ErrorContains(t, err, "disk full")
	assert.Equal(t, []string{"\x00virtual:shader-mappings"}, g.Dirty())

	memfs.FailWrites("/out/mappings.js", nil)
	require.NoError(t, g.Flush(loader))
	assert.Empty(t, g.Dirty())
}
