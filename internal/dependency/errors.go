package dependency

import (
	"errors"
	"fmt"
	"strings"
)

// Reason classifies why a graph operation failed.
type Reason string

const (
	// ReasonInvalidGraph means the operation was called on a nil graph.
	ReasonInvalidGraph Reason = "InvalidGraph"
	// ReasonInvalidName means a unit or dependency name was empty.
	ReasonInvalidName Reason = "InvalidName"
	// ReasonUnknownNode means install or uninstall referenced an unregistered unit.
	ReasonUnknownNode Reason = "UnknownNode"
	// ReasonCycleDetected means the requested edge would close a dependency cycle.
	ReasonCycleDetected Reason = "CycleDetected"
	// ReasonBlockedByInstalledDependent means an installed dependent prevents uninstall.
	ReasonBlockedByInstalledDependent Reason = "BlockedByInstalledDependent"
)

// Error is returned by every failing graph operation.
type Error struct {
	// Reason is the failure class.
	Reason Reason
	// Unit is the unit the operation was called for.
	Unit string
	// Dependency is the dependency being attached when a cycle was found.
	Dependency string
	// Path is the dependency chain that would have formed the cycle,
	// starting and ending with Unit.
	Path []string
	// Blockers are the installed dependents that prevented an uninstall.
	Blockers []string
}

// Sentinels for use with errors.Is. They match any *Error with the same Reason.
var (
	ErrInvalidGraph  = &Error{Reason: ReasonInvalidGraph}
	ErrInvalidName   = &Error{Reason: ReasonInvalidName}
	ErrUnknownNode   = &Error{Reason: ReasonUnknownNode}
	ErrCycleDetected = &Error{Reason: ReasonCycleDetected}
	ErrBlocked       = &Error{Reason: ReasonBlockedByInstalledDependent}
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Reason {
	case ReasonInvalidGraph:
		return "dependency graph is not initialized"
	case ReasonInvalidName:
		if e.Unit != "" {
			return fmt.Sprintf("invalid dependency name for %s: names must not be empty", e.Unit)
		}
		return "invalid unit name: names must not be empty"
	case ReasonUnknownNode:
		return fmt.Sprintf("unknown unit: %s", e.Unit)
	case ReasonCycleDetected:
		if len(e.Path) > 0 {
			return fmt.Sprintf("cannot make %s depend on %s: circular dependency %s",
				e.Unit, e.Dependency, strings.Join(e.Path, " -> "))
		}
		return fmt.Sprintf("cannot make %s depend on %s: circular dependency", e.Unit, e.Dependency)
	case ReasonBlockedByInstalledDependent:
		return fmt.Sprintf("%s is still needed by %s", e.Unit, strings.Join(e.Blockers, ", "))
	default:
		return fmt.Sprintf("dependency graph error: %s", e.Reason)
	}
}

// Is reports whether target is an *Error with the same Reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

// ReasonOf extracts the Reason from err, if it is or wraps an *Error.
func ReasonOf(err error) (Reason, bool) {
	var depErr *Error
	if errors.As(err, &depErr) {
		return depErr.Reason, true
	}
	return "", false
}
