package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carry/internal/adapters/config"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
)

// NodeID is the unique identifier for the cache state Graft node.
const NodeID graft.ID = "adapter.state"

func init() {
	graft.Register(graft.Node[ports.CacheState]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CacheState, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			store, err := NewStore(cfg.StateDir)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
