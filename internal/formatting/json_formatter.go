package formatting

import (
	"encoding/json"
	"fmt"

	"github.com/giantswarm/deptree/internal/dependency"
)

// JSONFormatter provides structured JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// unitList is the JSON and YAML shape of a unit listing.
type unitList struct {
	Units []dependency.Node `json:"units" yaml:"units"`
	Count int               `json:"count" yaml:"count"`
}

func newUnitList(nodes []dependency.Node) unitList {
	if nodes == nil {
		nodes = []dependency.Node{}
	}
	return unitList{Units: nodes, Count: len(nodes)}
}

// FormatUnits formats the listing as {"units": [...], "count": n}.
func (f *JSONFormatter) FormatUnits(nodes []dependency.Node) error {
	return f.FormatData(newUnitList(nodes))
}

// FormatUnit formats a single unit object.
func (f *JSONFormatter) FormatUnit(node dependency.Node) error {
	return f.FormatData(node)
}

// FormatData formats generic data as JSON
func (f *JSONFormatter) FormatData(data interface{}) error {
	s, err := f.marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.options.writer(), s)
	return err
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}

// marshal converts data to JSON string with appropriate formatting
func (f *JSONFormatter) marshal(data interface{}) (string, error) {
	var jsonBytes []byte
	var err error

	if f.options.Quiet {
		// Compact JSON for quiet mode
		jsonBytes, err = json.Marshal(data)
	} else {
		jsonBytes, err = json.MarshalIndent(data, "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("failed to format JSON: %w", err)
	}
	return string(jsonBytes), nil
}
