// Package commands provides the commands understood by the deptree shell.
//
// Every command implements the Command interface and is collected in a
// Registry that the shell builds once per session. Commands parse their own
// arguments, call into the dependency graph and report results through an
// OutputLogger, keeping user-facing output separate from system logging.
package commands

import (
	"context"
	"errors"
	"sort"
	"strings"
)

// ErrExit is returned by the exit command to end the session.
var ErrExit = errors.New("exit")

// Command represents a shell command that can be executed interactively.
type Command interface {
	// Execute runs the command with the given arguments
	Execute(ctx context.Context, args []string) error

	// Usage returns the usage string for the command
	Usage() string

	// Description returns a brief description of what the command does
	Description() string

	// Completions returns possible completions for the command
	// The input parameter is the current partial input for context
	Completions(input string) []string

	// Aliases returns alternative names for this command
	Aliases() []string
}

// OutputLogger defines the interface for structured command output.
// This separates user-facing output from system logging.
type OutputLogger interface {
	// User-facing output (no timestamps)
	Output(format string, args ...interface{})     // For command results
	OutputLine(format string, args ...interface{}) // Same as Output but with newline

	// Status messages
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
	Success(format string, args ...interface{})

	// Configuration
	SetVerbose(verbose bool)
}

// Registry maps command names and aliases to commands. Lookups ignore
// case; names are stored lower-cased.
type Registry struct {
	commands map[string]Command
	// lookup maps every primary name and alias to its primary name.
	lookup map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		lookup:   make(map[string]string),
	}
}

// Register adds cmd under name and its aliases. An alias already taken by
// another command is left with that command.
func (r *Registry) Register(name string, cmd Command) {
	name = strings.ToLower(name)
	r.commands[name] = cmd
	r.lookup[name] = name

	for _, alias := range cmd.Aliases() {
		alias = strings.ToLower(alias)
		if _, taken := r.lookup[alias]; taken {
			continue
		}
		r.lookup[alias] = name
	}
}

// Resolve returns the primary name for a command name or alias.
func (r *Registry) Resolve(name string) (string, bool) {
	primary, ok := r.lookup[strings.ToLower(name)]
	return primary, ok
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(name string) (Command, bool) {
	primary, ok := r.Resolve(name)
	if !ok {
		return nil, false
	}
	cmd, ok := r.commands[primary]
	return cmd, ok
}

// List returns all registered command names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AllCompletions returns all command names and aliases, sorted.
func (r *Registry) AllCompletions() []string {
	completions := make([]string, 0, len(r.lookup))
	for name := range r.lookup {
		completions = append(completions, name)
	}
	sort.Strings(completions)
	return completions
}
