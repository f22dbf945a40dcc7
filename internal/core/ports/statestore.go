package ports

// TargetMeta is a handle on one target's persisted execution-state record
// (spec.md §3 "TargetMeta", §4.9). Mutations are buffered until Commit
// unless performed with autocommit=true, so that a caller can batch a
// reset-then-submitted pair into a single durable transaction (spec.md
// §4.7 step 7).
//
//go:generate go run go.uber.org/mock/mockgen -source=statestore.go -destination=mocks/mock_statestore.go -package=mocks
type TargetMeta interface {
	IsUnknown() bool
	IsSubmitted() bool
	IsRunning() bool
	IsCompleted() bool
	IsFailed() bool
	IsCancelled() bool
	IsKilled() bool

	// Reset transitions the record to UNKNOWN.
	Reset(autocommit bool) error
	// Submitted transitions the record to SUBMITTED.
	Submitted(autocommit bool) error
	// Running transitions the record to RUNNING.
	Running(autocommit bool) error
	// Completed transitions the record to COMPLETED.
	Completed(autocommit bool) error
	// Failed transitions the record to FAILED.
	Failed(autocommit bool) error
	// Cancelled transitions the record to CANCELLED.
	Cancelled(autocommit bool) error
	// Killed transitions the record to KILLED.
	Killed(autocommit bool) error

	// Commit durably persists any buffered mutations as a single unit.
	Commit() error
}

// StateStore is a durable, per-target lifecycle record keyed by target name,
// stable across process runs (spec.md §4.9).
type StateStore interface {
	// Open acquires the durable handle.
	Open() error
	// Close releases the durable handle.
	Close() error
	// GetTargetMeta returns the (lazily created) record for targetName.
	GetTargetMeta(targetName string) (TargetMeta, error)
}
