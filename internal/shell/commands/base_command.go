package commands

import (
	"fmt"
	"strings"

	"github.com/giantswarm/deptree/internal/dependency"
	"github.com/giantswarm/deptree/internal/formatting"
)

// GraphInterface is the part of the dependency graph that commands use.
// *dependency.Graph satisfies it.
type GraphInterface interface {
	Register(name string, dependencies ...string) error
	Install(name string) ([]dependency.Step, error)
	Uninstall(name string) (dependency.Step, error)
	Reset()
	List() []string
	Get(name string) (dependency.Node, bool)
	Nodes() []dependency.Node
}

// BaseCommand provides common functionality for all shell commands.
type BaseCommand struct {
	graph  GraphInterface
	output OutputLogger
	format formatting.Options
}

// NewBaseCommand creates a new base command with the specified dependencies.
// format is the default formatting for listings; commands that accept a
// format argument override only its Format field.
func NewBaseCommand(graph GraphInterface, output OutputLogger, format formatting.Options) *BaseCommand {
	return &BaseCommand{
		graph:  graph,
		output: output,
		format: format,
	}
}

// parseArgs validates the argument count against minimum and maximum
// requirements. A negative maxArgs means no upper limit.
func (b *BaseCommand) parseArgs(args []string, minArgs, maxArgs int, usage string) ([]string, error) {
	if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	return args, nil
}

// formatter returns a formatter for the given format name, or the default
// format when name is empty.
func (b *BaseCommand) formatter(name string) (formatting.Formatter, error) {
	options := b.format
	if name != "" {
		f, err := formatting.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		options.Format = f
	}
	return formatting.New(options), nil
}

// getUnitCompletions returns registered unit names matching the last word
// of input.
func (b *BaseCommand) getUnitCompletions(input string) []string {
	return filterPrefix(b.graph.List(), lastWord(input))
}

func lastWord(input string) string {
	if input == "" || strings.HasSuffix(input, " ") {
		return ""
	}
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

func filterPrefix(candidates []string, prefix string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			matches = append(matches, c)
		}
	}
	return matches
}
