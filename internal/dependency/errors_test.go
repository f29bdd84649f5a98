package dependency

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"invalid graph", &Error{Reason: ReasonInvalidGraph}, "dependency graph is not initialized"},
		{"invalid unit name", &Error{Reason: ReasonInvalidName}, "invalid unit name: names must not be empty"},
		{"invalid dependency name", &Error{Reason: ReasonInvalidName, Unit: "app"}, "invalid dependency name for app: names must not be empty"},
		{"unknown", &Error{Reason: ReasonUnknownNode, Unit: "ghost"}, "unknown unit: ghost"},
		{
			"cycle with path",
			&Error{Reason: ReasonCycleDetected, Unit: "A", Dependency: "B", Path: []string{"A", "B", "A"}},
			"cannot make A depend on B: circular dependency A -> B -> A",
		},
		{"cycle without path", &Error{Reason: ReasonCycleDetected, Unit: "A", Dependency: "B"}, "cannot make A depend on B: circular dependency"},
		{"blocked", &Error{Reason: ReasonBlockedByInstalledDependent, Unit: "TCP", Blockers: []string{"Http"}}, "TCP is still needed by Http"},
		{"unknown reason", &Error{Reason: "Weird"}, "dependency graph error: Weird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	t.Run("matches sentinel with same reason", func(t *testing.T) {
		err := &Error{Reason: ReasonUnknownNode, Unit: "x"}
		assert.True(t, errors.Is(err, ErrUnknownNode))
		assert.False(t, errors.Is(err, ErrCycleDetected))
	})

	t.Run("works through wrapping", func(t *testing.T) {
		err := fmt.Errorf("install failed: %w", &Error{Reason: ReasonBlockedByInstalledDependent})
		assert.True(t, errors.Is(err, ErrBlocked))
	})

	t.Run("does not match other error types", func(t *testing.T) {
		assert.False(t, (&Error{Reason: ReasonUnknownNode}).Is(errors.New("unknown unit")))
	})
}

func TestReasonOf(t *testing.T) {
	reason, ok := ReasonOf(fmt.Errorf("wrapped: %w", ErrCycleDetected))
	assert.True(t, ok)
	assert.Equal(t, ReasonCycleDetected, reason)

	_, ok = ReasonOf(errors.New("plain"))
	assert.False(t, ok)
}
