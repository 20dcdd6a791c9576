package minifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shade/internal/adapters/minifier"
	"go.trai.ch/shade/internal/core/domain"
)

func TestScanner_IdentityMapping(t *testing.T) {
	s := minifier.NewScanner(false, false)

	res, err := s.Analyze(context.Background(), map[string]string{
		"v": "in vec4 a;void main(){}",
		"f": "out vec4 color;void main(){}",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VariableMapping{"a": "a", "color": "color"}, res.Mappings)
	assert.Equal(t, "in vec4 a;void main(){}", res.Shaders["v"])
	assert.Equal(t, "out vec4 color;void main(){}", res.Shaders["f"])
}

func TestScanner_Declarations(t *testing.T) {
	s := minifier.NewScanner(false, false)

	src := `#version 300 es
precision highp float;
layout(location = 0) in vec3 position;
uniform mediump mat4 projection;
uniform vec4 lights[4];
attribute vec2 uv;
varying lowp vec4 tint;
// uniform float commented;
/* out vec4 hidden; */
out vec4 fragColor;
void main() { float local = 1.0; }
`
	res, err := s.Analyze(context.Background(), map[string]string{"s.vert": src})
	require.NoError(t, err)

	assert.Equal(t, []string{"fragColor", "lights", "position", "projection", "tint", "uv"}, res.Mappings.Names())
}

func TestScanner_Declarations_MultipleDeclarators(t *testing.T) {
	s := minifier.NewScanner(false, false)

	src := `uniform float a, b;
uniform highp vec4 colors[2] , weights [ 4 ],bias;
out vec2 uv,st ;
uniform Lights { vec4 position; } lights;
`
	res, err := s.Analyze(context.Background(), map[string]string{"s.frag": src})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "bias", "colors", "st", "uv", "weights"}, res.Mappings.Names())
}

func TestScanner_Rename_MultipleDeclarators(t *testing.T) {
	s := minifier.NewScanner(false, true)

	res, err := s.Analyze(context.Background(), map[string]string{
		"f": "uniform float speed, time;void main(){float x=speed*time;}",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.VariableMapping{"speed": "a", "time": "b"}, res.Mappings)
	assert.Equal(t, "uniform float a, b;void main(){float x=a*b;}", res.Shaders["f"])
}

func TestScanner_Minify(t *testing.T) {
	s := minifier.NewScanner(true, false)

	src := "#version 300 es\n" +
		"// leading comment\n" +
		"in vec4 a; /* trailing */\n" +
		"\n" +
		"void main() {\n" +
		"  gl_Position = a;\n" +
		"}\n"

	res, err := s.Analyze(context.Background(), map[string]string{"v": src})
	require.NoError(t, err)
	assert.Equal(t, "#version 300 es\nin vec4 a;void main(){gl_Position=a;}", res.Shaders["v"])
}

func TestScanner_Minify_KeepsWordBoundaryAcrossLines(t *testing.T) {
	s := minifier.NewScanner(true, false)

	res, err := s.Analyze(context.Background(), map[string]string{"v": "uniform float\n  time;"})
	require.NoError(t, err)
	assert.Equal(t, "uniform float time;", res.Shaders["v"])
	assert.Equal(t, domain.VariableMapping{"time": "time"}, res.Mappings)
}

func TestScanner_Rename_SharedAcrossFiles(t *testing.T) {
	s := minifier.NewScanner(false, true)

	res, err := s.Analyze(context.Background(), map[string]string{
		"a.vert": "out vec2 uv;uniform float time;void main(){uv=vec2(time);}",
		"b.frag": "in vec2 uv;out vec4 c;void main(){c=vec4(uv,0,1);}",
	})
	require.NoError(t, err)

	// "a" and "b" are free; "c" is used by b.frag so it is skipped.
	assert.Equal(t, domain.VariableMapping{"c": "a", "time": "b", "uv": "d"}, res.Mappings)
	assert.Equal(t, "out vec2 d;uniform float b;void main(){d=vec2(b);}", res.Shaders["a.vert"])
	assert.Equal(t, "in vec2 d;out vec4 a;void main(){a=vec4(d,0,1);}", res.Shaders["b.frag"])
}

func TestScanner_Rename_Deterministic(t *testing.T) {
	s := minifier.NewScanner(true, true)
	sources := map[string]string{
		"x": "uniform float zeta;uniform float alpha;uniform float mid;",
	}

	first, err := s.Analyze(context.Background(), sources)
	require.NoError(t, err)
	for range 5 {
		again, err := s.Analyze(context.Background(), sources)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "a", first.Mappings["alpha"])
}

func TestScanner_Empty(t *testing.T) {
	res, err := minifier.NewScanner(true, true).Analyze(context.Background(), map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, res.Shaders)
	assert.Empty(t, res.Mappings)
}
