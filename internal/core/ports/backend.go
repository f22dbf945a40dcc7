// Package ports defines the capabilities the scheduler core consumes from
// its pluggable collaborators: a batch Backend, a StateStore, a file-system
// stat probe, a config loader, a logger, and a telemetry sink.
package ports

import (
	"context"

	"wfgraph/internal/core/domain"
)

// Liveness is the backend-reported execution state of a submitted target.
type Liveness int

const (
	// LivenessQueued indicates the backend has accepted the submission but
	// has not started it.
	LivenessQueued Liveness = iota
	// LivenessRunning indicates the backend reports the target executing.
	LivenessRunning
	// LivenessDone indicates the backend reports the target finished
	// (successfully or not); a non-nil error returned alongside it reports
	// that the execution failed.
	LivenessDone
	// LivenessAbsent indicates the backend has no record of the
	// submission, e.g. because it was never accepted or was purged.
	LivenessAbsent
)

// Backend is the contract the scheduler imposes on a pluggable batch
// submission system (spec.md §4.8).
//
//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks
type Backend interface {
	// OptionDefaults returns the recognised option names and their
	// defaults. The set of keys is precisely the set of options the
	// backend understands; anything else is stripped during scheduling.
	OptionDefaults() map[string]any

	// Submit enqueues target, declaring a backend-level dependency on the
	// already-submitted targets in dependencies.
	Submit(ctx context.Context, target *domain.Target, dependencies []*domain.Target) error

	// Liveness reports the backend's current view of target's execution.
	Liveness(ctx context.Context, target *domain.Target) (Liveness, error)

	// Close releases resources held by the backend.
	Close() error
}
