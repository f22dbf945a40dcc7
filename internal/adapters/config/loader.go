// Package config implements the workflow file loader: a flat, non-templated
// YAML description of targets feeding domain.FromTargets.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"wfgraph/internal/core/domain"
	"wfgraph/internal/core/ports"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader over a single workflow YAML file.
// Unlike the templated, multi-file workspace discovery this is grounded on,
// a workflow file is self-contained: one document, no parent-directory
// search, no programmatic target generation (spec.md §1 Non-goals).
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a Loader that logs through logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the workflow file at path and returns its targets keyed by
// name, with every relative path resolved against the target's working
// directory and the workflow file's own directory.
func (l *Loader) Load(path string) (map[string]*domain.Target, error) {
	//nolint:gosec // path is an operator-supplied workflow file argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read workflow file"), "path", path)
	}

	var doc workflowFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse workflow file"), "path", path)
	}

	fileDir := filepath.Dir(path)
	baseDir := filepath.Clean(filepath.Join(fileDir, doc.WorkingDir))

	targets := make(map[string]*domain.Target, len(doc.Targets))
	for name, dto := range doc.Targets {
		workDir := baseDir
		if dto.WorkingDir != "" {
			workDir = filepath.Clean(filepath.Join(fileDir, dto.WorkingDir))
		}

		target, err := domain.NewTarget(name, workDir, dto.Inputs.spec, dto.Outputs.spec, dto.Options, dto.Spec)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}
		targets[name] = target
	}

	l.logger.Debug("loaded workflow file with " + strconv.Itoa(len(targets)) + " targets")
	return targets, nil
}
