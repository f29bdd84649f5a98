package formatting

import (
	"fmt"
	"strings"

	"github.com/giantswarm/deptree/internal/dependency"
)

// ConsoleFormatter provides simple console output formatting
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{
		options: options,
	}
}

// FormatUnits prints one line per unit.
func (f *ConsoleFormatter) FormatUnits(nodes []dependency.Node) error {
	out := f.options.writer()
	if len(nodes) == 0 {
		_, err := fmt.Fprintln(out, "No units registered.")
		return err
	}

	var lines []string
	if !f.options.Quiet {
		lines = append(lines, fmt.Sprintf("Units (%d):", len(nodes)))
	}
	for _, n := range nodes {
		line := fmt.Sprintf("  %-24s %-14s", n.Name, stateLabel(n.Installed))
		if len(n.DependsOn) > 0 {
			line += " -> " + strings.Join(n.DependsOn, ", ")
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}
	_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}

// FormatUnit prints the details of one unit.
func (f *ConsoleFormatter) FormatUnit(node dependency.Node) error {
	var lines []string
	lines = append(lines, fmt.Sprintf("Unit: %s", node.Name))
	lines = append(lines, fmt.Sprintf("State: %s", stateLabel(node.Installed)))
	lines = append(lines, fmt.Sprintf("Depends on: %s", listOrNone(node.DependsOn)))
	lines = append(lines, fmt.Sprintf("Required by: %s", listOrNone(node.Dependents)))
	_, err := fmt.Fprintln(f.options.writer(), strings.Join(lines, "\n"))
	return err
}

// FormatData formats generic data (fallback to simple text representation)
func (f *ConsoleFormatter) FormatData(data interface{}) error {
	out := f.options.writer()
	var err error
	switch d := data.(type) {
	case string:
		_, err = fmt.Fprintln(out, d)
	case fmt.Stringer:
		_, err = fmt.Fprintln(out, d.String())
	default:
		_, err = fmt.Fprintln(out, PrettyJSON(d))
	}
	return err
}

// SetOptions updates the formatter options
func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}

func listOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
