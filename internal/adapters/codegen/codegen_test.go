package codegen_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/shade/internal/adapters/codegen"
	"go.trai.ch/shade/internal/core/domain"
)

func TestGenerator_Declaration(t *testing.T) {
	tests := []struct {
		name       string
		specifier  string
		minified   string
		mappings   domain.VariableMapping
		goldenName string
	}{
		{
			name:       "single variable",
			minified:   "in vec4 a;void main(){}",
			mappings:   domain.VariableMapping{"a": "a"},
			goldenName: "declaration_single",
		},
		{
			name:       "keys are sorted",
			minified:   "out vec4 color;void main(){}",
			mappings:   domain.VariableMapping{"color": "b", "a": "a"},
			goldenName: "declaration_sorted",
		},
		{
			name:       "nil mapping renders empty object",
			minified:   "void main(){}",
			mappings:   nil,
			goldenName: "declaration_empty",
		},
		{
			name:       "source is escaped",
			specifier:  "@app/shader-runtime",
			minified:   "#version 300 es\nuniform float \"q\";<&>",
			mappings:   domain.VariableMapping{"q": "a"},
			goldenName: "declaration_escaped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := codegen.New(tt.specifier)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(gen.Declaration(tt.minified, tt.mappings)))
		})
	}
}

func TestGenerator_RuntimeModule(t *testing.T) {
	tests := []struct {
		name       string
		mappings   domain.VariableMapping
		goldenName string
	}{
		{
			name:       "two variables",
			mappings:   domain.VariableMapping{"color": "color", "a": "a"},
			goldenName: "runtime_two",
		},
		{
			name:       "empty mapping",
			mappings:   domain.VariableMapping{},
			goldenName: "runtime_empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := codegen.New("")

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(gen.RuntimeModule(tt.mappings)))
		})
	}
}

func TestNew_DefaultSpecifier(t *testing.T) {
	assert.Equal(t, domain.DefaultRuntimeSpecifier, codegen.New("").Specifier())
	assert.Equal(t, "custom:mod", codegen.New("custom:mod").Specifier())
}

func TestGenerator_RuntimeModule_NilMatchesEmpty(t *testing.T) {
	gen := codegen.New("")
	assert.Equal(t, gen.RuntimeModule(domain.VariableMapping{}), gen.RuntimeModule(nil))
}
