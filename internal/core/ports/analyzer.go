// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/shade/internal/core/domain"
)

// Analyzer minifies shader sources and derives the variable mapping they share.
//
//go:generate go run go.uber.org/mock/mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type Analyzer interface {
	// Analyze runs over the complete set of sources, keyed by shader id.
	// The result may omit ids the analyzer did not recognize, but must never
	// contain ids that were not passed in.
	Analyze(ctx context.Context, sources map[string]string) (*domain.AnalysisResult, error)
}
