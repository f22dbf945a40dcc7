package scheduler

import (
	"context"

	"wfgraph/internal/core/domain"
	"wfgraph/internal/core/ports"

	"go.trai.ch/zerr"
)

// UpdateState recursively resolves target's persisted TargetMeta,
// propagating invalidation from its dependencies: if any dependency's
// resolved state is FAILED, KILLED, CANCELLED, or UNKNOWN, target's
// persisted state is reset to UNKNOWN (spec.md §4.6). The original
// implementation revisits shared ancestors on every call; this one adds a
// per-pass memo keyed by target name, as the spec's Open Questions invite,
// while still honouring the reset semantics exactly once per target.
//
// Before propagation, a target left SUBMITTED or RUNNING by an earlier pass
// is reconciled against the backend's liveness query (spec.md §4.3, §4.7),
// so that RUNNING/COMPLETED/FAILED are reachable without a fresh Schedule
// call. CANCELLED and KILLED are never set by this reconciliation.
func (s *Scheduler) UpdateState(ctx context.Context, target *domain.Target) (ports.TargetMeta, error) {
	if memoised, ok := s.updateStateMemo[target.Name]; ok {
		return memoised, nil
	}

	meta, err := s.store.GetTargetMeta(target.Name)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to load target state", target.Name)
	}

	if err := s.reconcileLiveness(ctx, target, meta); err != nil {
		return nil, err
	}

	for depName := range s.graph.Dependencies(target.Name) {
		dep, _ := s.graph.Target(depName)
		depMeta, err := s.UpdateState(ctx, dep)
		if err != nil {
			return nil, err
		}
		if depMeta.IsFailed() || depMeta.IsKilled() || depMeta.IsCancelled() || depMeta.IsUnknown() {
			if err := meta.Reset(true); err != nil {
				return nil, wrapStoreErr(err, "failed to reset target state", target.Name)
			}
		}
	}

	s.updateStateMemo[target.Name] = meta
	return meta, nil
}

// reconcileLiveness queries the backend for target's execution state when
// meta is SUBMITTED or RUNNING — the two states a prior pass can leave a
// target in pending further backend progress — and commits the transition
// the backend reports. Any other persisted state has nothing to reconcile:
// it is already terminal or has never been submitted.
func (s *Scheduler) reconcileLiveness(ctx context.Context, target *domain.Target, meta ports.TargetMeta) error {
	if !meta.IsSubmitted() && !meta.IsRunning() {
		return nil
	}

	liveness, runErr := s.backend.Liveness(ctx, target)
	switch liveness {
	case ports.LivenessRunning:
		if meta.IsRunning() {
			return nil
		}
		if err := meta.Running(true); err != nil {
			return wrapStoreErr(err, "failed to mark target running", target.Name)
		}
	case ports.LivenessDone:
		if runErr != nil {
			if err := meta.Failed(true); err != nil {
				return wrapStoreErr(err, "failed to mark target failed", target.Name)
			}
			return nil
		}
		if err := meta.Completed(true); err != nil {
			return wrapStoreErr(err, "failed to mark target completed", target.Name)
		}
	case ports.LivenessQueued, ports.LivenessAbsent:
		// Still queued, or the backend has no record (e.g. not yet visible,
		// or restarted); leave the persisted state as-is for a later pass.
	}
	return nil
}

// Status returns target's derived TargetStatus: update_state is run first
// to propagate dependency invalidation, then should_run fuses with the
// resulting persisted state per the table in spec.md §4.5.
func (s *Scheduler) Status(ctx context.Context, target *domain.Target) (domain.TargetStatus, error) {
	meta, err := s.UpdateState(ctx, target)
	if err != nil {
		return "", err
	}

	shouldRun, err := s.ShouldRun(target)
	if err != nil {
		return "", err
	}

	switch {
	case meta.IsUnknown():
		if shouldRun {
			return domain.TargetStatusShouldRun, nil
		}
		return domain.TargetStatusCompleted, nil
	case meta.IsSubmitted():
		return domain.TargetStatusSubmitted, nil
	case meta.IsRunning():
		return domain.TargetStatusRunning, nil
	case meta.IsCompleted():
		if shouldRun {
			return domain.TargetStatusShouldRun, nil
		}
		return domain.TargetStatusCompleted, nil
	case meta.IsFailed():
		return domain.TargetStatusFailed, nil
	case meta.IsCancelled():
		return domain.TargetStatusCancelled, nil
	case meta.IsKilled():
		return domain.TargetStatusKilled, nil
	default:
		return "", zerr.With(zerr.New("target state has no recognised status mapping"), "target", target.Name)
	}
}
