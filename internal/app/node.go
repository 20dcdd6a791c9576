package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shade/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/shade/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds the application and the adapters the CLI configures directly.
type Components struct {
	App    *App
	Logger *logger.Logger
	Tracer *telemetry.OTelTracer
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			fs.FileSystemNodeID,
			fs.WalkerNodeID,
			watcher.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[*telemetry.OTelTracer](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log, Tracer: tracer}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[*logger.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[*telemetry.OTelTracer](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[*fs.OSFS](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[*watcher.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, tracer, fsys, walker, w), nil
}
