package commands

import (
	"context"
)

// ClearCommand discards every registered unit.
type ClearCommand struct {
	*BaseCommand
}

// NewClearCommand creates a new clear command
func NewClearCommand(base *BaseCommand) *ClearCommand {
	return &ClearCommand{BaseCommand: base}
}

// Execute resets the graph.
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	if _, err := c.parseArgs(args, 0, 0, c.Usage()); err != nil {
		return err
	}
	count := len(c.graph.List())
	c.graph.Reset()
	c.output.OutputLine("Cleared %d units", count)
	return nil
}

// Usage returns the usage string
func (c *ClearCommand) Usage() string {
	return "clear"
}

// Description returns the command description
func (c *ClearCommand) Description() string {
	return "Remove all units and start over"
}

// Completions returns possible completions
func (c *ClearCommand) Completions(input string) []string {
	return []string{}
}

// Aliases returns command aliases
func (c *ClearCommand) Aliases() []string {
	return []string{"reset"}
}
