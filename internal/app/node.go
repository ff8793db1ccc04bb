package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carry/internal/adapters/archive"  //nolint:depguard // Wired in app layer
	"go.trai.ch/carry/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/carry/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/carry/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/carry/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"go.trai.ch/carry/internal/adapters/state"    //nolint:depguard // Wired in app layer
	"go.trai.ch/carry/internal/adapters/transfer" //nolint:depguard // Wired in app layer
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			state.NodeID,
			detector.NodeID,
			archive.NodeID,
			transfer.NodeID,
			progress.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheState](ctx)
			if err != nil {
				return nil, err
			}

			changes, err := graft.Dep[ports.ChangeDetector](ctx)
			if err != nil {
				return nil, err
			}

			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}

			client, err := graft.Dep[ports.Transfer](ctx)
			if err != nil {
				return nil, err
			}

			recorder, err := graft.Dep[ports.Progress](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg, log, store, changes, archiver, client, recorder), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
