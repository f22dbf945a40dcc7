package domain

import (
	"path/filepath"
	"regexp"
	"sort"

	"go.trai.ch/zerr"
)

var targetNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// ValidateTargetName reports whether name matches the allowed target name
// grammar ([A-Za-z_][A-Za-z0-9_.]*).
func ValidateTargetName(name string) error {
	if !targetNamePattern.MatchString(name) {
		return zerr.With(ErrInvalidTargetName, "name", name)
	}
	return nil
}

// pathSpecKind distinguishes the three shapes a PathSpec can take.
type pathSpecKind int

const (
	pathSpecSingle pathSpecKind = iota
	pathSpecList
	pathSpecLabeled
)

// PathSpec is the sum type accepted at the public boundary for a target's
// inputs or outputs: a single path, an ordered sequence of paths, or a
// mapping from label to path. It is flattened eagerly into a canonical
// ordered sequence of absolute paths when a Target is constructed; the core
// never reads anything but that flattened sequence.
type PathSpec struct {
	kind    pathSpecKind
	single  string
	list    []string
	labeled map[string]string
}

// NewSinglePath builds a PathSpec from a single path.
func NewSinglePath(path string) PathSpec {
	return PathSpec{kind: pathSpecSingle, single: path}
}

// NewPathList builds a PathSpec from an ordered sequence of paths.
func NewPathList(paths []string) PathSpec {
	return PathSpec{kind: pathSpecList, list: paths}
}

// NewLabeledPaths builds a PathSpec from a label->path mapping. Flatten
// orders the paths by label name so the result is deterministic.
func NewLabeledPaths(paths map[string]string) PathSpec {
	return PathSpec{kind: pathSpecLabeled, labeled: paths}
}

// Flatten returns the paths in this spec in a deterministic order.
func (p PathSpec) Flatten() []string {
	switch p.kind {
	case pathSpecSingle:
		if p.single == "" {
			return nil
		}
		return []string{p.single}
	case pathSpecList:
		out := make([]string, len(p.list))
		copy(out, p.list)
		return out
	case pathSpecLabeled:
		labels := make([]string, 0, len(p.labeled))
		for label := range p.labeled {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		out := make([]string, 0, len(labels))
		for _, label := range labels {
			out = append(out, p.labeled[label])
		}
		return out
	default:
		return nil
	}
}

// Target is a descriptor of a named unit of work: its working directory,
// the files it reads and produces, backend options, and an opaque shell
// spec the core never interprets. Everything but Options is fixed after
// construction; the scheduler replaces Options with their backend-normalised
// form.
type Target struct {
	Name       string
	WorkingDir string
	Inputs     PathSpec
	Outputs    PathSpec
	Options    map[string]any
	Spec       string

	flattenedInputs  []string
	flattenedOutputs []string
}

// NewTarget constructs a Target, resolving relative input/output paths
// against workingDir and flattening both sides into canonical, ordered,
// absolute path sequences once and for all.
func NewTarget(name, workingDir string, inputs, outputs PathSpec, options map[string]any, spec string) (*Target, error) {
	if err := ValidateTargetName(name); err != nil {
		return nil, err
	}
	if options == nil {
		options = map[string]any{}
	}
	t := &Target{
		Name:       name,
		WorkingDir: workingDir,
		Inputs:     inputs,
		Outputs:    outputs,
		Options:    options,
		Spec:       spec,
	}
	t.flattenedInputs = resolveAbsolute(workingDir, inputs.Flatten())
	t.flattenedOutputs = resolveAbsolute(workingDir, outputs.Flatten())
	return t, nil
}

func resolveAbsolute(workingDir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if filepath.IsAbs(p) {
			out[i] = filepath.Clean(p)
		} else {
			out[i] = filepath.Clean(filepath.Join(workingDir, p))
		}
	}
	return out
}

// FlattenedInputs returns the canonical, ordered, absolute input paths.
func (t *Target) FlattenedInputs() []string {
	return t.flattenedInputs
}

// FlattenedOutputs returns the canonical, ordered, absolute output paths.
func (t *Target) FlattenedOutputs() []string {
	return t.flattenedOutputs
}

// IsSource reports whether the target has no input files.
func (t *Target) IsSource() bool {
	return len(t.flattenedInputs) == 0
}

// IsSink reports whether the target has no output files.
func (t *Target) IsSink() bool {
	return len(t.flattenedOutputs) == 0
}

// String implements fmt.Stringer for concise log/error messages.
func (t *Target) String() string {
	return t.Name
}
