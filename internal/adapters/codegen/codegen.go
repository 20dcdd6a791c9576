// Package codegen renders the declaration stubs and the virtual mapping module.
package codegen

import (
	"bytes"
	"encoding/json"
	"strings"

	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
)

var _ ports.CodeGenerator = (*Generator)(nil)

// Generator renders module text that imports the mapping table from a fixed specifier.
type Generator struct {
	specifier string
}

// New creates a Generator whose stubs import from specifier.
// An empty specifier falls back to domain.DefaultRuntimeSpecifier.
func New(specifier string) *Generator {
	if specifier == "" {
		specifier = domain.DefaultRuntimeSpecifier
	}
	return &Generator{specifier: specifier}
}

// Specifier returns the import specifier of the virtual mapping module.
func (g *Generator) Specifier() string {
	return g.specifier
}

// Declaration renders the three-statement declaration stub for a minified shader.
// The mapping is embedded as a literal type so the stub narrows to the current snapshot.
func (g *Generator) Declaration(minified string, mappings domain.VariableMapping) string {
	var b strings.Builder
	b.WriteString("import { mappings } from ")
	b.WriteString(literal(g.specifier))
	b.WriteString(";\n")
	b.WriteString("export const shader = ")
	b.WriteString(literal(minified))
	b.WriteString(" as const;\n")
	b.WriteString("export const shaderVariables: ")
	b.WriteString(literal(normalized(mappings)))
	b.WriteString(" = mappings;\n")
	return b.String()
}

// RuntimeModule renders the virtual mapping module: the mapping table followed by
// two lookup helpers that forward to the graphics context.
func (g *Generator) RuntimeModule(mappings domain.VariableMapping) string {
	var b strings.Builder
	b.WriteString("export const mappings = ")
	b.WriteString(literal(normalized(mappings)))
	b.WriteString(";\n")
	b.WriteString("export const getAttribLocation = (gl, program, name) => gl.getAttribLocation(program, mappings[name]);\n")
	b.WriteString("export const getUniformLocation = (gl, program, name) => gl.getUniformLocation(program, mappings[name]);\n")
	return b.String()
}

// normalized keeps a nil mapping rendering as an empty object rather than null.
func normalized(m domain.VariableMapping) domain.VariableMapping {
	if m == nil {
		return domain.VariableMapping{}
	}
	return m
}

// literal encodes v as compact JSON with sorted object keys and without HTML escaping.
func literal(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Strings and string maps always encode.
	_ = enc.Encode(v)
	return strings.TrimSuffix(buf.String(), "\n")
}
