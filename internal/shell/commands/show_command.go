package commands

import (
	"context"

	"github.com/giantswarm/deptree/internal/dependency"
)

// ShowCommand shows the details of one unit.
type ShowCommand struct {
	*BaseCommand
}

// NewShowCommand creates a new show command
func NewShowCommand(base *BaseCommand) *ShowCommand {
	return &ShowCommand{BaseCommand: base}
}

// Execute prints the named unit.
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	parsed, err := c.parseArgs(args, 1, 2, c.Usage())
	if err != nil {
		return err
	}

	node, ok := c.graph.Get(parsed[0])
	if !ok {
		return &dependency.Error{Reason: dependency.ReasonUnknownNode, Unit: parsed[0]}
	}

	var format string
	if len(parsed) == 2 {
		format = parsed[1]
	}
	f, err := c.formatter(format)
	if err != nil {
		return err
	}
	return f.FormatUnit(node)
}

// Usage returns the usage string
func (c *ShowCommand) Usage() string {
	return "show <unit> [table|console|json|yaml]"
}

// Description returns the command description
func (c *ShowCommand) Description() string {
	return "Show a unit's state, dependencies and dependents"
}

// Completions returns known unit names
func (c *ShowCommand) Completions(input string) []string {
	return c.getUnitCompletions(input)
}

// Aliases returns command aliases
func (c *ShowCommand) Aliases() []string {
	return []string{"describe"}
}
