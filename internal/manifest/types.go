package manifest

import (
	"github.com/giantswarm/deptree/internal/config"
)

// Manifest is the parsed form of a manifest file.
type Manifest struct {
	Units     []Unit   `yaml:"units" json:"units"`
	Install   []string `yaml:"install,omitempty" json:"install,omitempty"`
	Uninstall []string `yaml:"uninstall,omitempty" json:"uninstall,omitempty"`
}

// Unit declares one unit and the units it depends on.
type Unit struct {
	Name      string   `yaml:"name" json:"name"`
	DependsOn []string `yaml:"dependsOn,omitempty" json:"dependsOn,omitempty"`
}

// ValidationErrors lists every problem found in a manifest.
type ValidationErrors = config.ValidationErrors
