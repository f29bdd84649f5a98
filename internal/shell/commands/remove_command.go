package commands

import (
	"context"

	"github.com/giantswarm/deptree/internal/dependency"
)

// RemoveCommand uninstalls a single unit.
type RemoveCommand struct {
	*BaseCommand
}

// NewRemoveCommand creates a new remove command
func NewRemoveCommand(base *BaseCommand) *RemoveCommand {
	return &RemoveCommand{BaseCommand: base}
}

// Execute uninstalls the named unit. It fails while an installed unit still
// depends on it.
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	parsed, err := c.parseArgs(args, 1, 1, c.Usage())
	if err != nil {
		return err
	}

	step, err := c.graph.Uninstall(parsed[0])
	if err != nil {
		return err
	}

	switch step.Action {
	case dependency.ActionUninstalled:
		c.output.OutputLine("Removing %s", step.Unit)
	case dependency.ActionAlreadyUninstalled:
		c.output.OutputLine("%s is not installed", step.Unit)
	}
	return nil
}

// Usage returns the usage string
func (c *RemoveCommand) Usage() string {
	return "remove <unit>"
}

// Description returns the command description
func (c *RemoveCommand) Description() string {
	return "Uninstall a unit no installed unit depends on"
}

// Completions returns known unit names
func (c *RemoveCommand) Completions(input string) []string {
	return c.getUnitCompletions(input)
}

// Aliases returns command aliases
func (c *RemoveCommand) Aliases() []string {
	return []string{"uninstall", "rm"}
}
