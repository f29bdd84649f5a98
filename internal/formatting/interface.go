// Package formatting renders unit listings and generic data for the deptree
// shell and CLI in one of several output formats (console, JSON, YAML, table).
package formatting

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/giantswarm/deptree/internal/dependency"
)

// OutputFormat represents the desired output format
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"   // Rich table output
	FormatConsole OutputFormat = "console" // Simple console output
	FormatJSON    OutputFormat = "json"    // JSON output
	FormatYAML    OutputFormat = "yaml"    // YAML output
)

var allFormats = []OutputFormat{FormatTable, FormatConsole, FormatJSON, FormatYAML}

// FormatNames returns the names of all supported formats.
func FormatNames() []string {
	names := make([]string, len(allFormats))
	for i, f := range allFormats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat converts a format name into an OutputFormat. The empty string
// selects the table format.
func ParseFormat(name string) (OutputFormat, error) {
	if name == "" {
		return FormatTable, nil
	}
	for _, f := range allFormats {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (valid: %s)", name, strings.Join(FormatNames(), ", "))
}

// Options configures the formatter behavior
type Options struct {
	Format OutputFormat
	Quiet  bool      // Suppress decorative elements
	Color  bool      // Enable colored output
	Out    io.Writer // Destination, os.Stdout when nil
}

func (o Options) writer() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

// Formatter renders units and arbitrary data.
type Formatter interface {
	// FormatUnits renders a listing of units.
	FormatUnits(nodes []dependency.Node) error
	// FormatUnit renders the details of one unit.
	FormatUnit(node dependency.Node) error
	// FormatData renders any other value, such as an apply report.
	FormatData(data interface{}) error

	SetOptions(options Options)
	GetOptions() Options
}

// New creates the formatter for options.Format. Unknown formats fall back to
// the console formatter.
func New(options Options) Formatter {
	switch options.Format {
	case FormatJSON:
		return NewJSONFormatter(options)
	case FormatYAML:
		return NewYAMLFormatter(options)
	case FormatTable:
		return NewTableFormatter(options)
	case FormatConsole:
		fallthrough
	default:
		return NewConsoleFormatter(options)
	}
}

func stateLabel(installed bool) string {
	if installed {
		return "installed"
	}
	return "not installed"
}
