package progress

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/carry/internal/core/ports"
)

// NodeID is the unique identifier for the progress recorder Graft node.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.Progress]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Progress, error) {
			return New(os.Stdout), nil
		},
	})
}
