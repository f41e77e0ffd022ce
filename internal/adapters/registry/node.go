package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpm/internal/adapters/config"
	"go.trai.ch/wpm/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.EnvironmentNodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(config.NewStore(env)), nil
		},
	})
}
