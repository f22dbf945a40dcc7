package app

import (
	"context"

	"wfgraph/internal/adapters/backend/local"
	"wfgraph/internal/adapters/config"
	"wfgraph/internal/adapters/filestat"
	"wfgraph/internal/adapters/logger" //nolint:depguard // wired in app layer
	"wfgraph/internal/adapters/state"
	"wfgraph/internal/adapters/telemetry/progrock"
	"wfgraph/internal/adapters/tui"
	"wfgraph/internal/core/ports"

	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the fully-wired App together with the collaborators
// the CLI layer needs directly: the Logger, for reporting errors raised
// before or after a Run call, and the TUI Factory, for commands that offer
// a live status view.
type Components struct {
	App    *App
	Logger ports.Logger
	TUI    tui.Factory
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			local.NodeID,
			state.NodeID,
			filestat.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			backend, err := graft.Dep[ports.Backend](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.StateStore](ctx)
			if err != nil {
				return nil, err
			}
			stat, err := graft.Dep[ports.FileStat](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, backend, store, stat, log, telemetry), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID, tui.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tuiFactory, err := graft.Dep[tui.Factory](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log, TUI: tuiFactory}, nil
		},
	})
}
