package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carry/internal/adapters/config"
	"go.trai.ch/carry/internal/adapters/shell"
	"go.trai.ch/carry/internal/adapters/state"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
)

// NodeID is the unique identifier for the archiver Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.Archiver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, state.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (ports.Archiver, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheState](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}

			return NewEngine(cfg.Archiver, store, runner), nil
		},
	})
}
