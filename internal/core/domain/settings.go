package domain

import (
	"slices"
	"strings"
	"time"
)

// Settings is the resolved project configuration consumed by the application layer.
type Settings struct {
	// Root is the absolute directory scanned and watched for shader sources.
	Root string
	// Extensions lists the shader file extensions, each starting with '.'.
	Extensions []string
	// Suffix is appended to a shader path to form its declaration stub path.
	Suffix string
	// Concurrency bounds the per-file writes of one reconciliation pass. Zero means unbounded.
	Concurrency int
	// Debounce is the window used to coalesce file system events in watch mode.
	Debounce time.Duration
	// Runtime configures the virtual mapping module.
	Runtime RuntimeSettings
	// Analyzer configures how shader sources are analyzed.
	Analyzer AnalyzerSettings
}

// RuntimeSettings configures the virtual mapping module.
type RuntimeSettings struct {
	// Specifier is the import specifier of the virtual module.
	Specifier string
	// Output is an optional absolute path the module body is written to after every change.
	Output string
}

// AnalyzerSettings configures the analyzer.
type AnalyzerSettings struct {
	// Command is the external analyzer invocation. Empty selects the built-in scanner.
	Command []string
	// Env holds extra environment variables for the external analyzer.
	Env map[string]string
	// Minify strips comments and redundant whitespace in the built-in scanner.
	Minify bool
	// Rename assigns short names to shared variables in the built-in scanner.
	Rename bool
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings(root string) Settings {
	return Settings{
		Root:       root,
		Extensions: DefaultExtensions(),
		Suffix:     DefaultDeclarationSuffix,
		Debounce:   DefaultDebounceWindow,
		Runtime: RuntimeSettings{
			Specifier: DefaultRuntimeSpecifier,
		},
	}
}

// IsShader reports whether path carries one of the configured shader extensions.
// Generated declaration stubs never qualify, even if the suffix itself is an extension.
func (s Settings) IsShader(path string) bool {
	if s.Suffix != "" && strings.HasSuffix(path, s.Suffix) {
		return false
	}
	return slices.ContainsFunc(s.Extensions, func(ext string) bool {
		return strings.HasSuffix(path, ext)
	})
}
