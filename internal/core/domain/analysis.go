package domain

import "maps"

// AnalysisResult is the output of one analyzer run over every known shader source.
// A result is treated as an immutable snapshot: it is replaced, never modified.
type AnalysisResult struct {
	// Shaders maps a shader id to its minified source text.
	Shaders map[string]string `json:"shaders"`
	// Mappings is the variable mapping shared by all shaders in this result.
	Mappings VariableMapping `json:"mappings"`
}

// EmptyAnalysis returns the result used before the first analysis has run.
func EmptyAnalysis() *AnalysisResult {
	return &AnalysisResult{
		Shaders:  map[string]string{},
		Mappings: VariableMapping{},
	}
}

// Shader returns the minified source for id and whether the analyzer returned it.
func (r *AnalysisResult) Shader(id string) (string, bool) {
	if r == nil {
		return "", false
	}
	src, ok := r.Shaders[id]
	return src, ok
}

// Normalize replaces nil maps with empty ones and detaches the result from the
// maps the analyzer handed back, so later analyzer reuse cannot mutate it.
func (r *AnalysisResult) Normalize() *AnalysisResult {
	shaders := make(map[string]string, len(r.Shaders))
	maps.Copy(shaders, r.Shaders)
	return &AnalysisResult{
		Shaders:  shaders,
		Mappings: r.Mappings.Clone(),
	}
}
