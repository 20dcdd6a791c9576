package host_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shade/internal/adapters/codegen"
	"go.trai.ch/shade/internal/adapters/fs"
	"go.trai.ch/shade/internal/adapters/minifier"
	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
	"go.trai.ch/shade/internal/core/ports/mocks"
	"go.trai.ch/shade/internal/host"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const vertexSource = "in vec2 uv;\nvoid main() {}\n"

type fixture struct {
	plugin *host.Plugin
	memfs  *fs.MemFS
	graph  *mocks.MockModuleGraph
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	graph := mocks.NewMockModuleGraph(ctrl)
	memfs := fs.NewMemFS()
	settings := domain.DefaultSettings("/src")

	plugin := host.New(
		settings,
		minifier.NewScanner(false, false),
		memfs,
		codegen.New(settings.Runtime.Specifier),
		host.WithModuleGraph(graph),
	)
	return &fixture{plugin: plugin, memfs: memfs, graph: graph}
}

func (f *fixture) seed(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, f.memfs.WriteFile(path, content))
}

func TestPlugin_ResolveID_VirtualModule(t *testing.T) {
	f := newFixture(t)

	res, ok, err := f.plugin.ResolveID(context.Background(), domain.DefaultRuntimeSpecifier, "/src/main.ts")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "\x00virtual:shader-mappings", res.ID)
	assert.Empty(t, res.Source)
}

func TestPlugin_ResolveID_DeclinesOtherModules(t *testing.T) {
	f := newFixture(t)

	_, ok, err := f.plugin.ResolveID(context.Background(), "./util.ts", "/src/main.ts")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, f.memfs.Paths())
}

func TestPlugin_ResolveID_MissingSource(t *testing.T) {
	f := newFixture(t)

	_, ok, err := f.plugin.ResolveID(context.Background(), "./missing.vert", "/src/main.ts")
	require.ErrorContains(t, err, "no such file")
	assert.False(t, ok)

	zErr, isZerr := err.(*zerr.Error)
	require.True(t, isZerr, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "/src/missing.vert", zErr.Metadata()["path"])
	assert.Empty(t, f.plugin.Registry().Sources())
}

func TestPlugin_ResolveID_RelativeShader(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "/src/shaders/a.vert", vertexSource)
	f.graph.EXPECT().Invalidate("\x00virtual:shader-mappings").Times(1)

	res, ok, err := f.plugin.ResolveID(context.Background(), "./shaders/a.vert", "/src/main.ts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/src/shaders/a.vert.d.ts", res.ID)
	assert.Equal(t, "/src/shaders/a.vert", res.Source)
	assert.Empty(t, res.Result.Failures)
	assert.True(t, res.Result.MappingChanged)

	stub, found, err := f.memfs.ReadFile(res.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, stub, `export const shaderVariables: {"uv":"uv"} = mappings;`)
}

func TestPlugin_ResolveID_AbsoluteWithoutImporter(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "/src/a.frag", "out vec4 color;\n")
	f.graph.EXPECT().Invalidate(gomock.Any()).Times(1)

	res, ok, err := f.plugin.ResolveID(context.Background(), "/src/a.frag", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/src/a.frag.d.ts", res.ID)
}

func TestPlugin_Load(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "/src/a.vert", vertexSource)
	f.graph.EXPECT().Invalidate(gomock.Any()).Times(1)

	_, _, err := f.plugin.ResolveID(context.Background(), "/src/a.vert", "")
	require.NoError(t, err)

	body, ok := f.plugin.Load(f.plugin.VirtualID())
	require.True(t, ok)
	assert.Contains(t, body, `export const mappings = {"uv":"uv"};`)

	_, ok = f.plugin.Load("/src/a.vert")
	assert.False(t, ok)
}

func TestPlugin_WatchChange_UnchangedContentIsSkipped(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "/src/a.vert", vertexSource)
	f.graph.EXPECT().Invalidate(gomock.Any()).Times(1)

	_, _, err := f.plugin.ResolveID(context.Background(), "/src/a.vert", "")
	require.NoError(t, err)
	writes := f.memfs.Writes()

	require.NoError(t, f.plugin.WatchChange(context.Background(), "/src/a.vert", ports.OpWrite))
	assert.Equal(t, writes, f.memfs.Writes())
}

func TestPlugin_WatchChange_WriteUpdatesStub(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "/src/a.vert", vertexSource)
	f.graph.EXPECT().Invalidate(gomock.Any()).Times(2)

	_, _, err := f.plugin.ResolveID(context.Background(), "/src/a.vert", "")
	require.NoError(t, err)

	f.seed(t, "/src/a.vert", "in vec2 uv;\nuniform float time;\n")
	require.NoError(t, f.plugin.WatchChange(context.Background(), "/src/a.vert", ports.OpWrite))

	stub, _, err := f.memfs.ReadFile("/src/a.vert.d.ts")
	require.NoError(t, err)
	assert.Contains(t, stub, `{"time":"time","uv":"uv"}`)
}

func TestPlugin_WatchChange_CreateAddsShader(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "/src/new.glsl", "uniform float time;\n")
	f.graph.EXPECT().Invalidate(gomock.Any()).Times(1)

	require.NoError(t, f.plugin.WatchChange(context.Background(), "/src/new.glsl", ports.OpCreate))
	assert.Equal(t, []string{"/src/new.glsl"}, f.plugin.Registry().Sources())
}

func TestPlugin_WatchChange_RemoveDeletesStub(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "/src/a.vert", vertexSource)
	f.graph.EXPECT().Invalidate("\x00virtual:shader-mappings").Times(2)

	_, _, err := f.plugin.ResolveID(context.Background(), "/src/a.vert", "")
	require.NoError(t, err)

	require.NoError(t, f.memfs.Remove("/src/a.vert"))
	require.NoError(t, f.plugin.WatchChange(context.Background(), "/src/a.vert", ports.OpRemove))

	_, found, err := f.memfs.ReadFile("/src/a.vert.d.ts")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, f.plugin.Registry().Sources())
}

func TestPlugin_WatchChange_VanishedFileIsDeleted(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "/src/a.vert", vertexSource)
	f.graph.EXPECT().Invalidate(gomock.Any()).Times(2)

	_, _, err := f.plugin.ResolveID(context.Background(), "/src/a.vert", "")
	require.NoError(t, err)

	require.NoError(t, f.memfs.Remove("/src/a.vert"))
	require.NoError(t, f.plugin.WatchChange(context.Background(), "/src/a.vert", ports.OpWrite))
	assert.Empty(t, f.plugin.Registry().Sources())
}

func TestPlugin_WatchChange_IgnoresNonShaders(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.plugin.WatchChange(context.Background(), "/src/a.vert.d.ts", ports.OpWrite))
	require.NoError(t, f.plugin.WatchChange(context.Background(), "/src/readme.md", ports.OpRemove))
	assert.Empty(t, f.plugin.Registry().Sources())
}

func TestPlugin_WithoutModuleGraph(t *testing.T) {
	memfs := fs.NewMemFS()
	settings := domain.DefaultSettings("/src")
	plugin := host.New(settings, minifier.NewScanner(false, false), memfs, codegen.New(""))
	require.NoError(t, memfs.WriteFile("/src/a.vert", vertexSource))

	_, ok, err := plugin.ResolveID(context.Background(), "/src/a.vert", "")
	require.NoError(t, err)
	assert.True(t, ok)
}
