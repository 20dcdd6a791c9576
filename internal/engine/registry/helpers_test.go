package registry_test

import (
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync/atomic"

	"go.trai.ch/shade/internal/core/domain"
)

var declPattern = regexp.MustCompile(`(?:in|out|uniform) \w+ (\w+);`)

// scanAnalyzer reports every declared name. With rename set it maps names to
// v0, v1, ... in sorted order and rewrites the sources; otherwise names map to
// themselves. Sources containing "#skip" are left out of the result.
type scanAnalyzer struct {
	rename bool
	calls  atomic.Int32
}

func (a *scanAnalyzer) Analyze(_ context.Context, sources map[string]string) (*domain.AnalysisResult, error) {
	a.calls.Add(1)

	names := map[string]struct{}{}
	for _, src := range sources {
		for _, m := range declPattern.FindAllStringSubmatch(src, -1) {
			names[m[1]] = struct{}{}
		}
	}

	mappings := domain.VariableMapping{}
	for i, name := range slices.Sorted(maps.Keys(names)) {
		if a.rename {
			mappings[name] = fmt.Sprintf("v%d", i)
		} else {
			mappings[name] = name
		}
	}

	shaders := map[string]string{}
	for id, src := range sources {
		if strings.Contains(src, "#skip") {
			continue
		}
		if a.rename {
			for name, short := range mappings {
				src = regexp.MustCompile(`\b`+name+`\b`).ReplaceAllString(src, short)
			}
		}
		shaders[id] = src
	}

	return &domain.AnalysisResult{Shaders: shaders, Mappings: mappings}, nil
}
