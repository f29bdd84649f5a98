package shell

import (
	"github.com/chzyer/readline"
)

// createCompleter builds tab completion from the command registry: command
// names and aliases first, then whatever each command suggests for its
// arguments.
func (r *REPL) createCompleter() *readline.PrefixCompleter {
	registry := r.session.Registry()

	var items []readline.PrefixCompleterInterface
	for _, name := range registry.AllCompletions() {
		cmd, ok := registry.Get(name)
		if !ok {
			continue
		}
		items = append(items, readline.PcItem(name, readline.PcItemDynamic(cmd.Completions)))
	}

	return readline.NewPrefixCompleter(items...)
}

// filterInput filters input runes for readline
func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
