package ports

// FileSystem is the storage capability used for shader sources and generated files.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// ReadFile returns the file content. A missing file reports ok=false and no error.
	ReadFile(path string) (content string, ok bool, err error)
	// WriteFile replaces the file content, creating parent directories as needed.
	WriteFile(path, content string) error
	// Remove deletes the file. Removing a missing file is not an error.
	Remove(path string) error
}
