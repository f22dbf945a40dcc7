package config

import (
	"context"

	"wfgraph/internal/adapters/logger"
	"wfgraph/internal/core/ports"

	"github.com/grindlemire/graft"
)

// NodeID identifies this adapter's registration in the wiring graph.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
