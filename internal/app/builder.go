package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wpm/internal/adapters/config"
	"go.trai.ch/wpm/internal/adapters/logger"
	"go.trai.ch/wpm/internal/adapters/registry"
	"go.trai.ch/wpm/internal/core/ports"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

// Components bundles the fully wired application with the handles the entry
// point needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.EnvironmentNodeID, config.StoreNodeID, registry.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			env, err := graft.Dep[ports.Environment](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ConfigStore](ctx)
			if err != nil {
				return nil, err
			}
			reg, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(env, store, reg, log),
				Logger: log,
			}, nil
		},
	})
}
