package domain

import "time"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "shade.yaml"

	// ConfigVersion is the only supported configuration schema version.
	ConfigVersion = "1"

	// DefaultDeclarationSuffix is appended to a shader path to form its declaration stub path.
	DefaultDeclarationSuffix = ".d.ts"

	// DefaultRuntimeSpecifier is the import specifier of the virtual mapping module.
	DefaultRuntimeSpecifier = "virtual:shader-mappings"

	// VirtualModulePrefix marks ids that are generated in memory rather than read from disk.
	VirtualModulePrefix = "\x00"

	// DefaultDebounceWindow is the default time window for coalescing file events.
	DefaultDebounceWindow = 50 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for generated files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultExtensions returns the shader file extensions watched when none are configured.
func DefaultExtensions() []string {
	return []string{".vert", ".frag", ".glsl"}
}

// ResolvedVirtualID returns the reserved module id for a virtual module specifier.
func ResolvedVirtualID(specifier string) string {
	return VirtualModulePrefix + specifier
}
