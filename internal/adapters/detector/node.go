package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carry/internal/adapters/config"
	"go.trai.ch/carry/internal/adapters/fs"
	"go.trai.ch/carry/internal/adapters/state"
	"go.trai.ch/carry/internal/core/domain"
	"go.trai.ch/carry/internal/core/ports"
)

// NodeID is the unique identifier for the change detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.ChangeDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, state.NodeID, fs.WalkerNodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ChangeDetector, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheState](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			return NewSelector(
				cfg.Detector,
				hasher,
				NewContentDetector(store, hasher),
				NewTimestampDetector(store, walker),
			), nil
		},
	})
}
