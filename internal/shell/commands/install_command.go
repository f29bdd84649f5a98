package commands

import (
	"context"

	"github.com/giantswarm/deptree/internal/dependency"
)

// InstallCommand installs a unit and everything it depends on.
type InstallCommand struct {
	*BaseCommand
}

// NewInstallCommand creates a new install command
func NewInstallCommand(base *BaseCommand) *InstallCommand {
	return &InstallCommand{BaseCommand: base}
}

// Execute installs the named unit, printing each unit that gets installed.
func (c *InstallCommand) Execute(ctx context.Context, args []string) error {
	parsed, err := c.parseArgs(args, 1, 1, c.Usage())
	if err != nil {
		return err
	}

	name := parsed[0]
	steps, err := c.graph.Install(name)
	if err != nil {
		return err
	}

	installed := 0
	for _, step := range steps {
		if step.Action == dependency.ActionInstalled {
			c.output.OutputLine("Installing %s", step.Unit)
			installed++
		}
	}
	if installed == 0 {
		c.output.OutputLine("%s is already installed", name)
	}
	return nil
}

// Usage returns the usage string
func (c *InstallCommand) Usage() string {
	return "install <unit>"
}

// Description returns the command description
func (c *InstallCommand) Description() string {
	return "Install a unit after its dependencies"
}

// Completions returns known unit names
func (c *InstallCommand) Completions(input string) []string {
	return c.getUnitCompletions(input)
}

// Aliases returns command aliases
func (c *InstallCommand) Aliases() []string {
	return nil
}
