package formatting

import (
	"fmt"

	"github.com/giantswarm/deptree/internal/dependency"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatUnits formats the listing as a units/count document.
func (f *YAMLFormatter) FormatUnits(nodes []dependency.Node) error {
	return f.FormatData(newUnitList(nodes))
}

// FormatUnit formats a single unit document.
func (f *YAMLFormatter) FormatUnit(node dependency.Node) error {
	return f.FormatData(node)
}

// FormatData formats generic data as YAML
func (f *YAMLFormatter) FormatData(data interface{}) error {
	yamlBytes, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to format YAML: %w", err)
	}
	_, err = f.options.writer().Write(yamlBytes)
	return err
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}
