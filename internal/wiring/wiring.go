// Package wiring registers all graft nodes for the application. Importing
// it for side effects makes every adapter and the app layer available to
// graft.ExecuteFor.
package wiring

import (
	// Register adapter nodes.
	_ "wfgraph/internal/adapters/backend/local"
	_ "wfgraph/internal/adapters/config"
	_ "wfgraph/internal/adapters/filestat"
	_ "wfgraph/internal/adapters/logger"
	_ "wfgraph/internal/adapters/state"
	_ "wfgraph/internal/adapters/telemetry/progrock"
	_ "wfgraph/internal/adapters/tui"

	// Register the app node.
	_ "wfgraph/internal/app"
)
