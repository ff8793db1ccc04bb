package transfer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carry/internal/adapters/logger"
	"go.trai.ch/carry/internal/adapters/state"
	"go.trai.ch/carry/internal/core/ports"
)

// NodeID is the unique identifier for the transfer Graft node.
const NodeID graft.ID = "adapter.transfer"

func init() {
	graft.Register(graft.Node[ports.Transfer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{state.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Transfer, error) {
			store, err := graft.Dep[ports.CacheState](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewClient(store, log), nil
		},
	})
}
