package scheduler

import (
	"wfgraph/internal/core/domain"

	"go.trai.ch/zerr"
)

// ShouldRun reports whether target is stale with respect to the file
// system and must run. It is a pure function of the graph and the
// scheduler's FileInfoCache, memoised per target for this scheduler's
// lifetime (spec.md §4.4).
//
// Evaluation order:
//  1. any dependency should run => true (monotonicity)
//  2. an unresolved input missing on disk is a fatal, unrecoverable error
//  3. a sink (no outputs) always runs
//  4. any missing output => true
//  5. a source (no inputs) with all outputs present => false
//  6. otherwise compare timestamps: youngest input vs oldest output,
//     strict > ; equal timestamps are NOT stale (documented intentional
//     tie-break, preserved from the original implementation)
func (s *Scheduler) ShouldRun(target *domain.Target) (bool, error) {
	if memoised, ok := s.shouldRunMemo[target.Name]; ok {
		return memoised, nil
	}

	result, err := s.computeShouldRun(target)
	if err != nil {
		return false, err
	}

	s.shouldRunMemo[target.Name] = result
	return result, nil
}

func (s *Scheduler) computeShouldRun(target *domain.Target) (bool, error) {
	for depName := range s.graph.Dependencies(target.Name) {
		dep, _ := s.graph.Target(depName)
		depShouldRun, err := s.ShouldRun(dep)
		if err != nil {
			return false, err
		}
		if depShouldRun {
			return true, nil
		}
	}

	unresolved := s.graph.Unresolved()
	for _, path := range target.FlattenedInputs() {
		if _, isUnresolved := unresolved[path]; !isUnresolved {
			continue
		}
		_, exists, err := s.fileCache.Get(path)
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to stat required input"), "path", path)
		}
		if !exists {
			return false, zerr.With(
				zerr.With(domain.ErrFileRequiredButNotProvided, "path", path),
				"target", target.Name,
			)
		}
	}

	if target.IsSink() {
		return true, nil
	}

	for _, path := range target.FlattenedOutputs() {
		_, exists, err := s.fileCache.Get(path)
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
		if !exists {
			return true, nil
		}
	}

	if target.IsSource() {
		return false, nil
	}

	youngestIn, err := s.extremeTimestamp(target.FlattenedInputs(), maxTimestamp)
	if err != nil {
		return false, err
	}
	oldestOut, err := s.extremeTimestamp(target.FlattenedOutputs(), minTimestamp)
	if err != nil {
		return false, err
	}

	return youngestIn > oldestOut, nil
}

type timestampReducer func(acc, candidate int64, hasAcc bool) int64

func maxTimestamp(acc, candidate int64, hasAcc bool) int64 {
	if !hasAcc || candidate > acc {
		return candidate
	}
	return acc
}

func minTimestamp(acc, candidate int64, hasAcc bool) int64 {
	if !hasAcc || candidate < acc {
		return candidate
	}
	return acc
}

func (s *Scheduler) extremeTimestamp(paths []string, reduce timestampReducer) (int64, error) {
	var acc int64
	hasAcc := false
	for _, path := range paths {
		mtime, _, err := s.fileCache.Get(path)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
		}
		acc = reduce(acc, mtime, hasAcc)
		hasAcc = true
	}
	return acc, nil
}
