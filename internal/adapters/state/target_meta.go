package state

import "wfgraph/internal/core/domain"

// targetMeta implements ports.TargetMeta over a Store. Mutations update the
// in-memory record immediately (so Is* predicates observe them within the
// same pass) but are only flushed to disk by Commit, unless autocommit is
// requested.
type targetMeta struct {
	store  *Store
	name   string
	record record
	dirty  bool
}

func (m *targetMeta) IsUnknown() bool   { return m.record.State == domain.TargetStateUnknown }
func (m *targetMeta) IsSubmitted() bool { return m.record.State == domain.TargetStateSubmitted }
func (m *targetMeta) IsRunning() bool   { return m.record.State == domain.TargetStateRunning }
func (m *targetMeta) IsCompleted() bool { return m.record.State == domain.TargetStateCompleted }
func (m *targetMeta) IsFailed() bool    { return m.record.State == domain.TargetStateFailed }
func (m *targetMeta) IsCancelled() bool { return m.record.State == domain.TargetStateCancelled }
func (m *targetMeta) IsKilled() bool    { return m.record.State == domain.TargetStateKilled }

func (m *targetMeta) transition(state domain.TargetState, autocommit bool) error {
	m.record.State = state
	m.record.TargetName = m.name
	m.dirty = true
	if autocommit {
		return m.Commit()
	}
	return nil
}

func (m *targetMeta) Reset(autocommit bool) error {
	return m.transition(domain.TargetStateUnknown, autocommit)
}

func (m *targetMeta) Submitted(autocommit bool) error {
	return m.transition(domain.TargetStateSubmitted, autocommit)
}

func (m *targetMeta) Running(autocommit bool) error {
	return m.transition(domain.TargetStateRunning, autocommit)
}

func (m *targetMeta) Completed(autocommit bool) error {
	return m.transition(domain.TargetStateCompleted, autocommit)
}

func (m *targetMeta) Failed(autocommit bool) error {
	return m.transition(domain.TargetStateFailed, autocommit)
}

func (m *targetMeta) Cancelled(autocommit bool) error {
	return m.transition(domain.TargetStateCancelled, autocommit)
}

func (m *targetMeta) Killed(autocommit bool) error {
	return m.transition(domain.TargetStateKilled, autocommit)
}

// Commit flushes any buffered mutation to disk as a single atomic write.
func (m *targetMeta) Commit() error {
	if !m.dirty {
		return nil
	}
	if err := m.store.write(m.record); err != nil {
		return err
	}
	m.dirty = false
	return nil
}
