package state

import (
	"context"
	"path/filepath"

	"wfgraph/internal/core/ports"

	"github.com/grindlemire/graft"
)

// NodeID identifies this adapter's registration in the wiring graph.
const NodeID graft.ID = "adapter.state_store"

// DefaultDir is the state directory the registered StateStore node always
// uses, relative to the process's working directory.
const DefaultDir = ".wfgraph/state"

func init() {
	graft.Register(graft.Node[ports.StateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.StateStore, error) {
			dir := filepath.Clean(DefaultDir)
			return NewStore(dir)
		},
	})
}
