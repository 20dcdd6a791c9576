package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyShaderID is returned when a registry operation is called with an empty identifier.
	ErrEmptyShaderID = zerr.New("shader id must not be empty")

	// ErrSourceNotFound is returned when a shader source file does not exist.
	ErrSourceNotFound = zerr.New("no such file")

	// ErrSourceReadFailed is returned when a shader source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read shader source")

	// ErrAnalysisFailed is returned when the analyzer rejects a reconciliation pass.
	ErrAnalysisFailed = zerr.New("shader analysis failed")

	// ErrAnalyzerStartFailed is returned when the external analyzer process cannot be started.
	ErrAnalyzerStartFailed = zerr.New("failed to start analyzer")

	// ErrAnalyzerFailed is returned when the external analyzer process exits unsuccessfully.
	ErrAnalyzerFailed = zerr.New("analyzer exited with an error")

	// ErrAnalyzerOutputInvalid is returned when the analyzer output cannot be decoded.
	ErrAnalyzerOutputInvalid = zerr.New("analyzer output is not valid JSON")

	// ErrAnalyzerInputInvalid is returned when the analyzer input cannot be encoded.
	ErrAnalyzerInputInvalid = zerr.New("failed to encode analyzer input")

	// ErrArtifactWriteFailed is returned when a declaration stub cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write declaration stub")

	// ErrArtifactRemoveFailed is returned when a declaration stub cannot be removed.
	ErrArtifactRemoveFailed = zerr.New("failed to remove declaration stub")

	// ErrRuntimeModuleWriteFailed is returned when the runtime mapping module cannot be written.
	ErrRuntimeModuleWriteFailed = zerr.New("failed to write runtime module")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidExtension is returned when a configured extension does not start with a dot.
	ErrInvalidExtension = zerr.New("shader extension must start with '.'")

	// ErrInvalidSuffix is returned when the configured declaration suffix does not start with a dot.
	ErrInvalidSuffix = zerr.New("declaration suffix must start with '.'")

	// ErrInvalidDebounce is returned when the configured debounce window cannot be parsed.
	ErrInvalidDebounce = zerr.New("invalid debounce window")

	// ErrInvalidConcurrency is returned when the configured concurrency is negative.
	ErrInvalidConcurrency = zerr.New("concurrency must not be negative")

	// ErrFailedToGetRoot is returned when the shader root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of shader root")

	// ErrWatcherStartFailed is returned when the file watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")

	// ErrBuildFailed is returned when one or more shaders could not be reconciled.
	ErrBuildFailed = zerr.New("shader build failed")

	// ErrCleanFailed is returned when generated files could not be removed.
	ErrCleanFailed = zerr.New("failed to clean generated files")
)
