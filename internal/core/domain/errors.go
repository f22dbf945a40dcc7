package domain

import "go.trai.ch/zerr"

var (
	// ErrMultiProvider is returned when a single file is produced by more than
	// one target's outputs.
	ErrMultiProvider = zerr.New("file provided by multiple targets")

	// ErrCyclicDependency is returned when the dependency relation induced by
	// file production/consumption contains a cycle.
	ErrCyclicDependency = zerr.New("cyclic dependency")

	// ErrFileRequiredButNotProvided is returned when a target has an
	// unresolved input path that does not exist on disk.
	ErrFileRequiredButNotProvided = zerr.New("file required but not provided by any target")

	// ErrTargetAlreadyExists is returned when adding a target whose name is
	// already present in the graph.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrTargetNotFound is returned when a requested target name is absent
	// from the graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrInvalidTargetName is returned when a target name does not match
	// the allowed pattern.
	ErrInvalidTargetName = zerr.New("invalid target name")
)
