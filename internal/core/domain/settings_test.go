package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/shade/internal/core/domain"
)

func TestSettings_IsShader(t *testing.T) {
	s := domain.DefaultSettings("/project")

	tests := []struct {
		path string
		want bool
	}{
		{"/project/a.vert", true},
		{"/project/b.frag", true},
		{"/project/nested/c.glsl", true},
		{"/project/a.vert.d.ts", false},
		{"/project/main.ts", false},
		{"/project/vert", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsShader(tt.path))
		})
	}
}

func TestSettings_IsShader_SuffixOverlapsExtension(t *testing.T) {
	s := domain.DefaultSettings("/project")
	s.Extensions = []string{".glsl"}
	s.Suffix = ".gen.glsl"

	assert.True(t, s.IsShader("/project/a.glsl"))
	assert.False(t, s.IsShader("/project/a.glsl.gen.glsl"))
}

func TestResolvedVirtualID(t *testing.T) {
	assert.Equal(t, "\x00virtual:shader-mappings", domain.ResolvedVirtualID(domain.DefaultRuntimeSpecifier))
}
