package config

import (
	"wfgraph/internal/core/domain"

	"gopkg.in/yaml.v3"
)

// workflowFile is the on-disk shape of a workflow YAML document: the static,
// non-templated subset of a declarative build description (spec.md §6).
type workflowFile struct {
	WorkingDir string               `yaml:"working_dir"`
	Targets    map[string]targetDTO `yaml:"targets"`
}

type targetDTO struct {
	WorkingDir string         `yaml:"working_dir"`
	Inputs     pathSpecDTO    `yaml:"inputs"`
	Outputs    pathSpecDTO    `yaml:"outputs"`
	Options    map[string]any `yaml:"options"`
	Spec       string         `yaml:"spec"`
}

// pathSpecDTO decodes any of the three shapes a workflow file may use for a
// target's inputs/outputs: a bare string, a YAML sequence, or a mapping from
// label to path (domain.PathSpec's three variants).
type pathSpecDTO struct {
	spec domain.PathSpec
}

func (p *pathSpecDTO) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		p.spec = domain.NewSinglePath(single)
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		p.spec = domain.NewPathList(list)
	case yaml.MappingNode:
		var labeled map[string]string
		if err := value.Decode(&labeled); err != nil {
			return err
		}
		p.spec = domain.NewLabeledPaths(labeled)
	default:
		p.spec = domain.NewPathList(nil)
	}
	return nil
}
