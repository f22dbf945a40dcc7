package scheduler

import (
	"context"

	"wfgraph/internal/core/domain"

	"go.trai.ch/zerr"
)

// prepareTargetOptions normalises target's options against the backend's
// option schema: recognised options not set on the target inherit the
// backend default; options on the target but absent from the schema are
// stripped with a warning; options explicitly set to nil are stripped
// silently (spec.md §4.8, §6 UnsupportedOptionWarning).
//
// The normalised map replaces target.Options (the target's original map is
// not edited), and each target is normalised at most once per Scheduler.
func (s *Scheduler) prepareTargetOptions(target *domain.Target) map[string]any {
	if _, done := s.optionsNormalized[target.Name]; done {
		return target.Options
	}

	defaults := s.backend.OptionDefaults()
	normalized := make(map[string]any, len(defaults))
	for name, value := range defaults {
		normalized[name] = value
	}
	for name, value := range target.Options {
		normalized[name] = value
	}

	for name, value := range normalized {
		if _, recognised := defaults[name]; !recognised {
			s.logger.Warn(
				"option \"" + name + "\" used in \"" + target.Name + "\" is not supported by the backend; ignored",
			)
			delete(normalized, name)
			continue
		}
		if value == nil {
			delete(normalized, name)
		}
	}

	target.Options = normalized
	s.optionsNormalized[target.Name] = struct{}{}
	return normalized
}

// Schedule schedules target and its dependencies, submitting the stale
// transitive closure to the backend in dependency order. It returns true
// iff target was submitted during this call, or its status is already
// SUBMITTED (earlier in this pass, or by an earlier pass still awaiting the
// backend) (spec.md §4.7).
//
// If backend.Submit fails after the target's TargetMeta has already been
// committed SUBMITTED, this implementation does not roll the commit back:
// the target is left persistently SUBMITTED though the backend rejected it.
// A later pass's update_state/status reclassifies it once the backend's
// liveness query reports it running or done; while the backend reports it
// queued or absent, it stays SUBMITTED and Schedule keeps returning true
// for it.
func (s *Scheduler) Schedule(ctx context.Context, target *domain.Target) (bool, error) {
	s.prepareTargetOptions(target)

	status, err := s.Status(ctx, target)
	if err != nil {
		return false, err
	}

	if _, pretending := s.pretendSubmitted[target.Name]; status == domain.TargetStatusSubmitted || pretending {
		return true, nil
	}

	submittedDeps, err := s.scheduleDependencies(ctx, target)
	if err != nil {
		return false, err
	}

	mustRun := len(submittedDeps) > 0 || status.IsShouldRunState()
	if !mustRun {
		return false, nil
	}

	if s.dryRun {
		s.pretendSubmitted[target.Name] = struct{}{}
		return true, nil
	}

	if err := s.commitSubmission(target); err != nil {
		return false, err
	}

	return true, s.submitToBackend(ctx, target, submittedDeps)
}

func (s *Scheduler) scheduleDependencies(ctx context.Context, target *domain.Target) ([]*domain.Target, error) {
	deps := s.graph.Dependencies(target.Name)
	var submitted []*domain.Target
	for _, depName := range sortedDependencyNames(deps) {
		dep := deps[depName]
		wasSubmitted, err := s.Schedule(ctx, dep)
		if err != nil {
			return nil, err
		}
		if wasSubmitted {
			submitted = append(submitted, dep)
		}
	}
	return submitted, nil
}

func (s *Scheduler) commitSubmission(target *domain.Target) error {
	meta, err := s.store.GetTargetMeta(target.Name)
	if err != nil {
		return wrapStoreErr(err, "failed to load target state", target.Name)
	}
	if err := meta.Reset(false); err != nil {
		return wrapStoreErr(err, "failed to reset target state", target.Name)
	}
	if err := meta.Submitted(false); err != nil {
		return wrapStoreErr(err, "failed to mark target submitted", target.Name)
	}
	if err := meta.Commit(); err != nil {
		return wrapStoreErr(err, "failed to commit target state", target.Name)
	}
	s.updateStateMemo[target.Name] = meta
	return nil
}

func (s *Scheduler) submitToBackend(ctx context.Context, target *domain.Target, dependencies []*domain.Target) error {
	vertexCtx, vertex := s.recordVertex(ctx, target)
	err := s.backend.Submit(vertexCtx, target, dependencies)
	if vertex != nil {
		vertex.Complete(err)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "backend rejected submission"), "target", target.Name)
	}
	return nil
}

// ScheduleMany schedules each of targets in the given order, returning the
// per-target submitted vector in the same order (spec.md §4.7
// schedule_many).
func (s *Scheduler) ScheduleMany(ctx context.Context, targets []*domain.Target) ([]bool, error) {
	results := make([]bool, len(targets))
	for i, target := range targets {
		submitted, err := s.Schedule(ctx, target)
		if err != nil {
			return nil, err
		}
		results[i] = submitted
	}
	return results, nil
}
