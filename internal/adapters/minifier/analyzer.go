package minifier

import (
	"go.trai.ch/shade/internal/core/domain"
	"go.trai.ch/shade/internal/core/ports"
)

// New returns the analyzer selected by settings: the external command when one is
// configured, the built-in Scanner otherwise.
func New(settings domain.AnalyzerSettings, dir string, logger ports.Logger) ports.Analyzer {
	if len(settings.Command) > 0 {
		return NewProcess(settings.Command, settings.Env, dir, logger)
	}
	return NewScanner(settings.Minify, settings.Rename)
}
