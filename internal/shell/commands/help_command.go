package commands

import (
	"context"
	"sort"
	"strings"
)

// HelpCommand shows available commands and usage information
type HelpCommand struct {
	*BaseCommand
	registry *Registry
}

// NewHelpCommand creates a new help command
func NewHelpCommand(base *BaseCommand, registry *Registry) *HelpCommand {
	return &HelpCommand{
		BaseCommand: base,
		registry:    registry,
	}
}

// Execute shows help information
func (h *HelpCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		h.showGeneralHelp()
		return nil
	}

	commandName := strings.ToLower(args[0])
	command, exists := h.registry.Get(commandName)
	if !exists {
		h.output.Error("Unknown command: %s", commandName)
		h.output.OutputLine("Use 'help' to see all available commands.")
		return nil
	}

	primary, _ := h.registry.Resolve(commandName)
	h.showCommandHelp(primary, command)
	return nil
}

// showGeneralHelp lists every registered command with its usage
func (h *HelpCommand) showGeneralHelp() {
	h.output.OutputLine("Available commands:")
	for _, name := range h.registry.List() {
		cmd, _ := h.registry.Get(name)
		h.output.OutputLine("  %-38s - %s", cmd.Usage(), cmd.Description())
	}
	h.output.OutputLine("")
	h.output.OutputLine("Keyboard shortcuts:")
	h.output.OutputLine("  TAB                                    - Auto-complete commands and unit names")
	h.output.OutputLine("  ↑/↓ (arrow keys)                       - Navigate command history")
	h.output.OutputLine("  Ctrl+R                                 - Search command history")
	h.output.OutputLine("  Ctrl+C                                 - Cancel current line")
	h.output.OutputLine("  Ctrl+D                                 - Exit")
	h.output.OutputLine("")
	h.output.OutputLine("Examples:")
	h.output.OutputLine("  depend Chrome Http Https GLib")
	h.output.OutputLine("  install Chrome")
	h.output.OutputLine("  remove Chrome")
	h.output.OutputLine("  list json")
}

// showCommandHelp displays help for a specific command
func (h *HelpCommand) showCommandHelp(commandName string, cmd Command) {
	h.output.OutputLine("Command: %s", commandName)
	h.output.OutputLine("Description: %s", cmd.Description())
	h.output.OutputLine("Usage: %s", cmd.Usage())

	aliases := append([]string(nil), cmd.Aliases()...)
	if len(aliases) > 0 {
		sort.Strings(aliases)
		h.output.OutputLine("Aliases: %s", strings.Join(aliases, ", "))
	}
}

// Usage returns the usage string
func (h *HelpCommand) Usage() string {
	return "help [command]"
}

// Description returns the command description
func (h *HelpCommand) Description() string {
	return "Show help information for commands"
}

// Completions returns all command names
func (h *HelpCommand) Completions(input string) []string {
	return filterPrefix(h.registry.AllCompletions(), lastWord(input))
}

// Aliases returns command aliases
func (h *HelpCommand) Aliases() []string {
	return []string{"?"}
}
