package ports

// ModuleGraph is the host's cache of loaded modules.
//
//go:generate go run go.uber.org/mock/mockgen -source=module_graph.go -destination=mocks/mock_module_graph.go -package=mocks
type ModuleGraph interface {
	// Invalidate drops any cached copy of the module with the given id.
	Invalidate(id string)
}
