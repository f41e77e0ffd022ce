package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpm/internal/core/ports"
)

const (
	// EnvironmentNodeID is the unique identifier for the environment Graft node.
	EnvironmentNodeID graft.ID = "adapter.environment"
	// StoreNodeID is the unique identifier for the config store Graft node.
	StoreNodeID graft.ID = "adapter.config_store"
)

func init() {
	graft.Register(graft.Node[ports.Environment]{
		ID:        EnvironmentNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Environment, error) {
			return NewEnvironment(), nil
		},
	})

	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{EnvironmentNodeID},
		Run: func(ctx context.Context) (ports.ConfigStore, error) {
			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(env), nil
		},
	})
}
