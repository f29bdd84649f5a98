package commands

import (
	"context"

	"github.com/giantswarm/deptree/internal/formatting"
)

// ListCommand lists all registered units.
type ListCommand struct {
	*BaseCommand
}

// NewListCommand creates a new list command
func NewListCommand(base *BaseCommand) *ListCommand {
	return &ListCommand{BaseCommand: base}
}

// Execute prints every unit in the optional format.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	parsed, err := c.parseArgs(args, 0, 1, c.Usage())
	if err != nil {
		return err
	}

	var format string
	if len(parsed) == 1 {
		format = parsed[0]
	}
	f, err := c.formatter(format)
	if err != nil {
		return err
	}
	return f.FormatUnits(c.graph.Nodes())
}

// Usage returns the usage string
func (c *ListCommand) Usage() string {
	return "list [table|console|json|yaml]"
}

// Description returns the command description
func (c *ListCommand) Description() string {
	return "List all units with their state and dependencies"
}

// Completions returns the output format names
func (c *ListCommand) Completions(input string) []string {
	return filterPrefix(formatting.FormatNames(), lastWord(input))
}

// Aliases returns command aliases
func (c *ListCommand) Aliases() []string {
	return []string{"ls"}
}
