package ports

import "wfgraph/internal/core/domain"

// ConfigLoader reads a declarative workflow file and returns its targets,
// keyed by name, ready to be passed to domain.FromTargets (spec.md §6
// "Workflow input").
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load(path string) (map[string]*domain.Target, error)
}
