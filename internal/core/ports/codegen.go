package ports

import "go.trai.ch/shade/internal/core/domain"

// CodeGenerator renders the text of generated modules.
//
//go:generate go run go.uber.org/mock/mockgen -source=codegen.go -destination=mocks/mock_codegen.go -package=mocks
type CodeGenerator interface {
	// Declaration renders the declaration stub for one minified shader, typed
	// against the mapping that was current when it was generated.
	Declaration(minified string, mappings domain.VariableMapping) string
	// RuntimeModule renders the body of the virtual mapping module.
	RuntimeModule(mappings domain.VariableMapping) string
}
