package domain

import (
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// Graph is the dependency graph induced by a set of targets' file
// production/consumption, derived once at construction time and immutable
// thereafter (spec.md §3 "Graph").
type Graph struct {
	targets map[string]*Target

	// provides maps an absolute output path to the unique target that
	// produces it.
	provides map[string]*Target

	// dependencies maps a target to the set of targets it depends on,
	// inferred from which of its input paths resolve against provides.
	dependencies map[string]map[string]*Target

	// dependents is the inverse of dependencies.
	dependents map[string]map[string]*Target

	// unresolved is the set of input paths not produced by any target.
	unresolved map[string]struct{}

	dfsMemo map[string][]*Target
}

// FromTargets builds a Graph from a set of targets, keyed by name.
//
// Construction runs in two passes: first every output path is registered in
// provides (failing on a path claimed by two targets), then every input path
// is resolved against provides to build dependencies/unresolved. dependents
// is derived by inverting dependencies. Finally the graph is checked for
// cycles.
func FromTargets(targets map[string]*Target) (*Graph, error) {
	g := &Graph{
		targets:      make(map[string]*Target, len(targets)),
		provides:     make(map[string]*Target),
		dependencies: make(map[string]map[string]*Target),
		dependents:   make(map[string]map[string]*Target),
		unresolved:   make(map[string]struct{}),
		dfsMemo:      make(map[string][]*Target),
	}

	for name, t := range targets {
		g.targets[name] = t
	}

	for _, t := range g.targets {
		for _, path := range t.FlattenedOutputs() {
			if existing, ok := g.provides[path]; ok {
				return nil, zerr.With(
					zerr.With(
						zerr.With(ErrMultiProvider, "path", path),
						"target_a", existing.Name,
					),
					"target_b", t.Name,
				)
			}
			g.provides[path] = t
		}
	}

	for _, t := range g.targets {
		deps := make(map[string]*Target)
		for _, path := range t.FlattenedInputs() {
			if producer, ok := g.provides[path]; ok {
				deps[producer.Name] = producer
			} else {
				g.unresolved[path] = struct{}{}
			}
		}
		g.dependencies[t.Name] = deps
	}

	for name, deps := range g.dependencies {
		for _, dep := range deps {
			if g.dependents[dep.Name] == nil {
				g.dependents[dep.Name] = make(map[string]*Target)
			}
			g.dependents[dep.Name][name] = g.targets[name]
		}
	}

	if err := g.checkForCycles(); err != nil {
		return nil, err
	}

	return g, nil
}

// three-colour DFS cycle check, matching the original implementation
// (fresh/started/done) but iterating targets in sorted name order for
// reproducible error messages across runs.
func (g *Graph) checkForCycles() error {
	const (
		fresh   = 0
		started = 1
		done    = 2
	)

	state := make(map[string]int, len(g.targets))
	names := g.sortedTargetNames()

	var visit func(name string) error
	visit = func(name string) error {
		state[name] = started
		for depName := range g.dependencies[name] {
			switch state[depName] {
			case started:
				return zerr.With(zerr.With(ErrCyclicDependency, "target", name), "dependency", depName)
			case fresh:
				if err := visit(depName); err != nil {
					return err
				}
			}
		}
		state[name] = done
		return nil
	}

	for _, name := range names {
		if state[name] == fresh {
			if err := visit(name); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Graph) sortedTargetNames() []string {
	names := make([]string, 0, len(g.targets))
	for name := range g.targets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Target looks up a target by name.
func (g *Graph) Target(name string) (*Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// Targets returns every target in the graph.
func (g *Graph) Targets() map[string]*Target {
	return g.targets
}

// Dependencies returns the set of targets that name depends on.
func (g *Graph) Dependencies(name string) map[string]*Target {
	return g.dependencies[name]
}

// Dependents returns the set of targets that depend on name.
func (g *Graph) Dependents(name string) map[string]*Target {
	return g.dependents[name]
}

// Unresolved returns the set of input paths not produced by any target.
func (g *Graph) Unresolved() map[string]struct{} {
	return g.unresolved
}

// Provides returns the target that produces path, if any.
func (g *Graph) Provides(path string) (*Target, bool) {
	t, ok := g.provides[path]
	return t, ok
}

// Endpoints returns the targets that nothing else depends on.
func (g *Graph) Endpoints() []*Target {
	var out []*Target
	for name, t := range g.targets {
		if len(g.dependents[name]) == 0 {
			out = append(out, t)
		}
	}
	return out
}

// DFS returns the post-order depth-first traversal of the transitive
// closure of root under Dependencies, with each target appearing exactly
// once. Results are memoised per root, which is valid because the graph is
// immutable after construction.
func (g *Graph) DFS(root string) ([]*Target, error) {
	if memoised, ok := g.dfsMemo[root]; ok {
		return memoised, nil
	}
	if _, ok := g.targets[root]; !ok {
		return nil, zerr.With(ErrTargetNotFound, "target", root)
	}

	visited := make(map[string]struct{})
	var path []*Target

	var walk func(name string)
	walk = func(name string) {
		if _, ok := visited[name]; ok {
			return
		}
		visited[name] = struct{}{}
		for depName := range g.dependencies[name] {
			walk(depName)
		}
		path = append(path, g.targets[name])
	}
	walk(root)

	g.dfsMemo[root] = path
	return path, nil
}

// String implements fmt.Stringer for debugging.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(targets=%d)", len(g.targets))
}
