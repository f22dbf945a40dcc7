// Package scheduler implements the topological staleness scheduler: it
// fuses the dependency graph, a persisted per-target state store, a
// pluggable batch backend, and a per-pass file-modification-time cache to
// decide which targets are stale and submit them in dependency order
// (spec.md §4.7).
package scheduler

import (
	"context"
	"sort"

	"wfgraph/internal/core/domain"
	"wfgraph/internal/core/ports"

	"go.trai.ch/zerr"
)

// Scheduler schedules targets from a Graph, submitting the stale
// transitive closure to a Backend while respecting dependency order
// (spec.md §4).
type Scheduler struct {
	graph     *domain.Graph
	backend   ports.Backend
	store     ports.StateStore
	fileCache *domain.FileInfoCache
	logger    ports.Logger
	telemetry ports.Telemetry
	dryRun    bool

	pretendSubmitted map[string]struct{}

	shouldRunMemo  map[string]bool
	updateStateMemo map[string]ports.TargetMeta

	optionsNormalized map[string]struct{}
}

// Option configures a Scheduler at construction time.
type Option func(*Scheduler)

// WithDryRun makes the scheduler record would-be submissions in a
// pretend-submitted set without mutating state or calling the backend
// (spec.md §4.7 step 6, scenario S8).
func WithDryRun(dryRun bool) Option {
	return func(s *Scheduler) { s.dryRun = dryRun }
}

// WithTelemetry attaches a Telemetry sink that records one Vertex per
// scheduled target. Purely observational; never consulted for decisions.
func WithTelemetry(t ports.Telemetry) Option {
	return func(s *Scheduler) { s.telemetry = t }
}

// New creates a Scheduler over graph, backend, store, and fileCache.
func New(
	graph *domain.Graph,
	backend ports.Backend,
	store ports.StateStore,
	fileCache *domain.FileInfoCache,
	logger ports.Logger,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		graph:             graph,
		backend:           backend,
		store:             store,
		fileCache:         fileCache,
		logger:            logger,
		pretendSubmitted:  make(map[string]struct{}),
		shouldRunMemo:     make(map[string]bool),
		updateStateMemo:   make(map[string]ports.TargetMeta),
		optionsNormalized: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheduler) recordVertex(ctx context.Context, target *domain.Target) (context.Context, ports.Vertex) {
	if s.telemetry == nil {
		return ctx, nil
	}
	return s.telemetry.Record(ctx, target.Name)
}

// sortedDependencyNames returns the names of target's dependencies in
// lexicographic order, matching spec.md §4.7 step 3 ("sibling dependencies
// ... submission order is lexicographic by name").
func sortedDependencyNames(deps map[string]*domain.Target) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func wrapStoreErr(err error, op, target string) error {
	return zerr.With(zerr.Wrap(err, op), "target", target)
}
