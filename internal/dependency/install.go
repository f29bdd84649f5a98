package dependency

import (
	"fmt"

	"github.com/giantswarm/deptree/pkg/logging"
)

// Action is what happened to a unit during install or uninstall.
type Action int

const (
	ActionInstalled Action = iota
	ActionAlreadyInstalled
	ActionUninstalled
	ActionAlreadyUninstalled
)

// String makes Action satisfy the fmt.Stringer interface.
func (a Action) String() string {
	switch a {
	case ActionInstalled:
		return "installed"
	case ActionAlreadyInstalled:
		return "already installed"
	case ActionUninstalled:
		return "uninstalled"
	case ActionAlreadyUninstalled:
		return "already uninstalled"
	default:
		return "unknown"
	}
}

// MarshalText renders the action by name in json and yaml output.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses an action name produced by MarshalText.
func (a *Action) UnmarshalText(text []byte) error {
	for _, candidate := range []Action{ActionInstalled, ActionAlreadyInstalled, ActionUninstalled, ActionAlreadyUninstalled} {
		if candidate.String() == string(text) {
			*a = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", text)
}

// Step records the action taken for one unit.
type Step struct {
	Unit   string `json:"unit" yaml:"unit"`
	Action Action `json:"action" yaml:"action"`
}

// Install installs the named unit after installing everything it depends
// on, transitively. Steps are returned in the order units were visited, so
// every dependency appears before its dependents.
//
// Units that are already installed are passed through rather than pruned:
// their dependencies are still visited, which picks up dependencies that were
// registered after the unit itself was installed. Each unit is visited once.
func (g *Graph) Install(name string) ([]Step, error) {
	if g == nil {
		return nil, ErrInvalidGraph
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	root, ok := g.index[name]
	if !ok {
		return nil, &Error{Reason: ReasonUnknownNode, Unit: name}
	}
	logging.Debug(subsystem, "Attempting to install %s", name)

	// Explicit post-order walk; next is the index of the next dependency to
	// descend into.
	type frame struct {
		id   int
		next int
	}

	var steps []Step
	visited := make([]bool, len(g.units))
	visited[root] = true
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(g.dependsOn[top.id]) {
			child := g.dependsOn[top.id][top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
			}
			continue
		}

		id := top.id
		stack = stack[:len(stack)-1]

		u := &g.units[id]
		if u.installed {
			logging.Debug(subsystem, "Already installed, skipping %s", u.name)
			steps = append(steps, Step{Unit: u.name, Action: ActionAlreadyInstalled})
			continue
		}
		u.installed = true
		logging.Debug(subsystem, "Installing %s", u.name)
		steps = append(steps, Step{Unit: u.name, Action: ActionInstalled})
	}
	return steps, nil
}

// Uninstall marks the named unit as not installed.
//
// It is refused with Reason BlockedByInstalledDependent while any direct
// dependent is installed. Uninstall never touches other units: the unit's
// own dependencies stay installed and dependents are not cascaded.
func (g *Graph) Uninstall(name string) (Step, error) {
	if g == nil {
		return Step{}, ErrInvalidGraph
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.index[name]
	if !ok {
		return Step{}, &Error{Reason: ReasonUnknownNode, Unit: name}
	}
	logging.Debug(subsystem, "Attempting to uninstall %s", name)

	u := &g.units[id]
	if !u.installed {
		logging.Debug(subsystem, "%s already uninstalled, no action needed", name)
		return Step{Unit: name, Action: ActionAlreadyUninstalled}, nil
	}

	var blockers []string
	for _, dep := range g.dependents[id] {
		if g.units[dep].installed {
			blockers = append(blockers, g.units[dep].name)
		}
	}
	if len(blockers) > 0 {
		logging.Debug(subsystem, "Cannot uninstall %s, still needed by %v", name, blockers)
		return Step{}, &Error{
			Reason:   ReasonBlockedByInstalledDependent,
			Unit:     name,
			Blockers: blockers,
		}
	}

	u.installed = false
	logging.Debug(subsystem, "No installed dependents, uninstalled %s", name)
	return Step{Unit: name, Action: ActionUninstalled}, nil
}
