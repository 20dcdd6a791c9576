package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// WalkerNodeID is the unique identifier for the shader file walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// FileSystemNodeID is the unique identifier for the host file system.
	FileSystemNodeID graft.ID = "adapter.fs.os"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*OSFS]{
		ID:        FileSystemNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*OSFS, error) {
			return NewOSFS(), nil
		},
	})
}
