package commands

import (
	"context"
	"strings"
)

// DependCommand registers a unit and its dependencies.
type DependCommand struct {
	*BaseCommand
}

// NewDependCommand creates a new depend command
func NewDependCommand(base *BaseCommand) *DependCommand {
	return &DependCommand{BaseCommand: base}
}

// Execute registers args[0] with the remaining args as its dependencies.
func (c *DependCommand) Execute(ctx context.Context, args []string) error {
	parsed, err := c.parseArgs(args, 1, -1, c.Usage())
	if err != nil {
		return err
	}

	unit, deps := parsed[0], parsed[1:]
	if err := c.graph.Register(unit, deps...); err != nil {
		return err
	}

	if len(deps) == 0 {
		c.output.OutputLine("Registered %s", unit)
	} else {
		c.output.OutputLine("%s depends on %s", unit, strings.Join(deps, ", "))
	}
	return nil
}

// Usage returns the usage string
func (c *DependCommand) Usage() string {
	return "depend <unit> [dependency...]"
}

// Description returns the command description
func (c *DependCommand) Description() string {
	return "Register a unit and the units it depends on"
}

// Completions returns known unit names
func (c *DependCommand) Completions(input string) []string {
	return c.getUnitCompletions(input)
}

// Aliases returns command aliases
func (c *DependCommand) Aliases() []string {
	return []string{"register", "add"}
}
