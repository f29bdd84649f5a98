// internal/dependency/graph.go
package dependency

import (
	"sort"
	"sync"

	"github.com/giantswarm/deptree/pkg/logging"
)

const subsystem = "Dependency"

// Node is a snapshot of a unit inside a dependency graph. Mutating it has no
// effect on the graph it was read from.
type Node struct {
	Name       string   `json:"name" yaml:"name"`
	Installed  bool     `json:"installed" yaml:"installed"`
	DependsOn  []string `json:"dependsOn" yaml:"dependsOn"`
	Dependents []string `json:"dependents" yaml:"dependents"`
}

// Stats summarises the graph for prompts and reports.
type Stats struct {
	Units     int `json:"units" yaml:"units"`
	Installed int `json:"installed" yaml:"installed"`
}

// unit is the arena entry for a node. Edges live in the Graph, not here.
type unit struct {
	name      string
	installed bool
}

// Graph holds every unit and both directions of every edge.
//
// Units are stored in an arena and referenced by index. dependsOn[i] and
// dependents[i] are the forward and reverse adjacency of unit i; link is the
// only place that writes to them, so they never disagree.
type Graph struct {
	mu         sync.Mutex
	index      map[string]int
	units      []unit
	dependsOn  [][]int
	dependents [][]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Reset discards every unit, leaving an empty graph.
func (g *Graph) Reset() {
	if g == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.index = make(map[string]int)
	g.units = nil
	g.dependsOn = nil
	g.dependents = nil
	logging.Debug(subsystem, "Graph cleared")
}

// Len returns the number of units in the graph.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.units)
}

// Stats returns the number of units and how many of them are installed.
func (g *Graph) Stats() Stats {
	if g == nil {
		return Stats{}
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Stats{Units: len(g.units)}
	for _, u := range g.units {
		if u.installed {
			s.Installed++
		}
	}
	return s
}

// List returns the names of all units, sorted.
func (g *Graph) List() []string {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	names := make([]string, 0, len(g.units))
	for _, u := range g.units {
		names = append(names, u.name)
	}
	sort.Strings(names)
	return names
}

// Get returns a snapshot of the named unit.
func (g *Graph) Get(name string) (Node, bool) {
	if g == nil {
		return Node{}, false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.index[name]
	if !ok {
		return Node{}, false
	}
	return g.snapshot(id), true
}

// Nodes returns snapshots of all units, sorted by name.
func (g *Graph) Nodes() []Node {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	nodes := make([]Node, 0, len(g.units))
	for id := range g.units {
		nodes = append(nodes, g.snapshot(id))
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Name < nodes[j].Name })
	return nodes
}

// Dependencies returns the direct dependencies of the named unit, in
// registration order.
func (g *Graph) Dependencies(name string) []string {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.index[name]
	if !ok {
		return nil
	}
	return g.names(g.dependsOn[id])
}

// Dependents returns the units that directly depend on the named unit, in
// registration order.
func (g *Graph) Dependents(name string) []string {
	if g == nil {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.index[name]
	if !ok {
		return nil
	}
	return g.names(g.dependents[id])
}

// Register makes name depend on each of deps, creating any unit that does not
// exist yet.
//
// Dependencies are attached in order. An edge that already exists is left
// alone. If attaching a dependency would create a cycle, Register stops and
// returns an error with Reason CycleDetected: edges attached earlier in the
// same call are kept, the offending edge is not stored on either side and the
// remaining dependencies are not processed.
func (g *Graph) Register(name string, deps ...string) error {
	if g == nil {
		return ErrInvalidGraph
	}
	if name == "" {
		return &Error{Reason: ReasonInvalidName}
	}
	for _, dep := range deps {
		if dep == "" {
			return &Error{Reason: ReasonInvalidName, Unit: name}
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	target := g.ensure(name)
	for _, depName := range deps {
		dep := g.ensure(depName)
		if contains(g.dependsOn[target], dep) {
			logging.Debug(subsystem, "%s already depends on %s, skipping", name, depName)
			continue
		}

		if path := g.pathTo(dep, target); path != nil {
			cycle := append([]string{name}, g.names(path)...)
			logging.Debug(subsystem, "Rejected %s -> %s: cycle %v", name, depName, cycle)
			return &Error{
				Reason:     ReasonCycleDetected,
				Unit:       name,
				Dependency: depName,
				Path:       cycle,
			}
		}

		g.link(target, dep)
		logging.Debug(subsystem, "%s now depends on %s", name, depName)
	}
	return nil
}

// ensure returns the id of the named unit, creating it if needed.
// Caller must hold g.mu.
func (g *Graph) ensure(name string) int {
	if g.index == nil {
		g.index = make(map[string]int)
	}
	if id, ok := g.index[name]; ok {
		return id
	}
	id := len(g.units)
	g.units = append(g.units, unit{name: name})
	g.dependsOn = append(g.dependsOn, nil)
	g.dependents = append(g.dependents, nil)
	g.index[name] = id
	logging.Debug(subsystem, "Created unit %s", name)
	return id
}

// link records that from depends on to, on both sides.
func (g *Graph) link(from, to int) {
	g.dependsOn[from] = append(g.dependsOn[from], to)
	g.dependents[to] = append(g.dependents[to], from)
}

// pathTo reports whether target is reachable from start by following
// dependsOn edges. It returns the path start..target, or nil when target is
// unreachable. start == target counts as reachable.
func (g *Graph) pathTo(start, target int) []int {
	if start == target {
		return []int{start}
	}

	parent := make(map[int]int, len(g.units))
	parent[start] = -1
	stack := []int{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, next := range g.dependsOn[id] {
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = id
			if next == target {
				return unwind(parent, target)
			}
			stack = append(stack, next)
		}
	}
	return nil
}

// unwind rebuilds the path ending at id from a parent map.
func unwind(parent map[int]int, id int) []int {
	var path []int
	for ; id != -1; id = parent[id] {
		path = append(path, id)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (g *Graph) snapshot(id int) Node {
	return Node{
		Name:       g.units[id].name,
		Installed:  g.units[id].installed,
		DependsOn:  g.names(g.dependsOn[id]),
		Dependents: g.names(g.dependents[id]),
	}
}

func (g *Graph) names(ids []int) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = g.units[id].name
	}
	return names
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
