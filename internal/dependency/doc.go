// Package dependency provides the in-memory dependency graph that backs
// deptree's install and uninstall operations.
//
// The graph tracks named installable units and the units they require. It
// refuses any edge that would introduce a circular dependency and makes
// sure a unit is never installed before its dependencies, nor uninstalled
// while something that depends on it is still installed.
//
// # Core Concepts
//
// Graph: owns every unit. Units are identified by name (case-sensitive) and
// are created the first time a name is referenced, either as the target of
// Register or as one of its dependencies.
//
// Node: a read-only snapshot of a unit with:
//   - Name: unique identifier
//   - Installed: whether the unit is currently installed
//   - DependsOn: units this one requires, in registration order
//   - Dependents: units that require this one, in registration order
//
// # Dependency Rules
//
//  1. No circular dependencies (Register fails with ErrCycleDetected)
//  2. DependsOn and Dependents are always exact inverses of each other
//  3. Install installs the whole dependency closure first (post-order)
//  4. Uninstall is refused while any dependent is installed, and never
//     cascades in either direction
//
// # Usage Example
//
//	g := dependency.New()
//	_ = g.Register("Http", "TCP")
//	_ = g.Register("Https", "TCP")
//	_ = g.Register("Chrome", "Http", "Https", "GLib")
//
//	steps, _ := g.Install("Chrome")
//	// steps: TCP, Http, Https, GLib, Chrome (all installed)
//
//	_, err := g.Uninstall("TCP")
//	// errors.Is(err, dependency.ErrBlocked) == true
//
// # Thread Safety
//
// Every exported method holds the graph's lock for its whole duration, so an
// edge is never visible on one side without the other.
//
// # Error Handling
//
// All failures are reported as *Error values carrying a Reason. Use
// errors.Is with the exported sentinels (ErrUnknownNode, ErrCycleDetected,
// ...) to branch on the reason.
package dependency
