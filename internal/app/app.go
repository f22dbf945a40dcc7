// Package app implements the application layer: loading a workflow file,
// building its graph, and driving one scheduling pass over it.
package app

import (
	"context"
	"sort"

	"wfgraph/internal/core/domain"
	"wfgraph/internal/core/ports"
	"wfgraph/internal/engine/scheduler"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App wires a ConfigLoader, a Backend, a StateStore, and a FileStat into one
// scheduling pass over a workflow file.
type App struct {
	configLoader ports.ConfigLoader
	backend      ports.Backend
	store        ports.StateStore
	fileStat     ports.FileStat
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates an App from its collaborators. telemetry may be nil.
func New(
	configLoader ports.ConfigLoader,
	backend ports.Backend,
	store ports.StateStore,
	fileStat ports.FileStat,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: configLoader,
		backend:      backend,
		store:        store,
		fileStat:     fileStat,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// Run loads workflowPath, builds its graph, and schedules targetNames (or,
// if empty, every endpoint target) in one pass. It returns, for each
// scheduled target in the same order, whether it was submitted.
func (a *App) Run(ctx context.Context, workflowPath string, targetNames []string, dryRun bool) ([]bool, error) {
	sched, selected, err := a.prepare(ctx, workflowPath, targetNames, dryRun)
	if err != nil {
		return nil, err
	}
	defer a.closeResources()

	return sched.ScheduleMany(ctx, selected)
}

// TargetStatusReport is one target's derived status, reported without
// mutating the state store beyond what Scheduler.Status already performs as
// part of resolving it: the dependency-propagated reset (spec.md §4.6) and
// the commit of any liveness transition the backend reports for a
// SUBMITTED or RUNNING target.
type TargetStatusReport struct {
	Name   string
	Status domain.TargetStatus
}

// Status loads workflowPath, builds its graph, and reports the derived
// TargetStatus of targetNames (or, if empty, every endpoint target)
// without submitting anything to the backend.
func (a *App) Status(ctx context.Context, workflowPath string, targetNames []string) ([]TargetStatusReport, error) {
	sched, selected, err := a.prepare(ctx, workflowPath, targetNames, true)
	if err != nil {
		return nil, err
	}
	defer a.closeResources()

	reports := make([]TargetStatusReport, len(selected))
	for i, target := range selected {
		status, err := sched.Status(ctx, target)
		if err != nil {
			return nil, err
		}
		reports[i] = TargetStatusReport{Name: target.Name, Status: status}
	}
	return reports, nil
}

// prepare loads the workflow file, builds its graph, resolves the
// requested targets, opens resources, and constructs a Scheduler. Once it
// has returned without error, callers must invoke closeResources when done;
// on error nothing is left open for them to close.
func (a *App) prepare(ctx context.Context, workflowPath string, targetNames []string, dryRun bool) (*scheduler.Scheduler, []*domain.Target, error) {
	targets, err := a.configLoader.Load(workflowPath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load workflow file")
	}

	graph, err := domain.FromTargets(targets)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to build dependency graph")
	}

	selected, err := selectTargets(graph, targetNames)
	if err != nil {
		return nil, nil, err
	}

	if err := a.openResources(ctx); err != nil {
		return nil, nil, err
	}

	cache := domain.NewFileInfoCache(a.fileStat.Stat)
	opts := []scheduler.Option{scheduler.WithDryRun(dryRun)}
	if a.telemetry != nil {
		opts = append(opts, scheduler.WithTelemetry(a.telemetry))
	}
	sched := scheduler.New(graph, a.backend, a.store, cache, a.logger, opts...)
	return sched, selected, nil
}

// openResources acquires the StateStore concurrently with nothing else the
// Backend contract requires opening explicitly; kept as its own step so a
// richer Backend with an Open-style method can be added to the contract
// later without reshaping Run.
func (a *App) openResources(ctx context.Context) error {
	group, _ := errgroup.WithContext(ctx)
	group.Go(a.store.Open)
	return group.Wait()
}

func (a *App) closeResources() {
	group := new(errgroup.Group)
	group.Go(a.store.Close)
	group.Go(a.backend.Close)
	if a.telemetry != nil {
		group.Go(a.telemetry.Close)
	}
	if err := group.Wait(); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to release resources"))
	}
}

func selectTargets(graph *domain.Graph, names []string) ([]*domain.Target, error) {
	if len(names) == 0 {
		endpoints := graph.Endpoints()
		sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].Name < endpoints[j].Name })
		return endpoints, nil
	}

	targets := make([]*domain.Target, 0, len(names))
	for _, name := range names {
		target, ok := graph.Target(name)
		if !ok {
			return nil, zerr.With(domain.ErrTargetNotFound, "target", name)
		}
		targets = append(targets, target)
	}
	return targets, nil
}
