package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/giantswarm/deptree/internal/config"
	"github.com/giantswarm/deptree/pkg/logging"

	"gopkg.in/yaml.v3"
)

const subsystem = "Manifest"

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	logging.Debug(subsystem, "Loaded manifest %s with %d units", path, len(m.Units))
	return m, nil
}

// Parse decodes and validates a manifest document. Unknown fields are
// rejected so typos such as "depends_on" do not pass silently.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every name is usable, that no unit is declared twice
// and that install and uninstall targets are units the manifest knows about,
// either declared or referenced as a dependency.
func (m *Manifest) Validate() error {
	var errs ValidationErrors

	known := make(map[string]bool)
	declared := make(map[string]bool)
	for i, u := range m.Units {
		field := fmt.Sprintf("units[%d].name", i)
		if err := config.ValidateUnitName(field, u.Name); err != nil {
			errs.Append(field, err)
			continue
		}
		if declared[u.Name] {
			errs.Add(field, fmt.Sprintf("duplicate unit %s", u.Name), u.Name)
			continue
		}
		declared[u.Name] = true
		known[u.Name] = true

		for j, dep := range u.DependsOn {
			depField := fmt.Sprintf("units[%d].dependsOn[%d]", i, j)
			if err := config.ValidateUnitName(depField, dep); err != nil {
				errs.Append(depField, err)
				continue
			}
			known[dep] = true
		}
	}

	checkTargets := func(list string, targets []string) {
		for i, target := range targets {
			field := fmt.Sprintf("%s[%d]", list, i)
			if !known[target] {
				errs.Add(field, fmt.Sprintf("unknown unit %q", target), target)
			}
		}
	}
	checkTargets("install", m.Install)
	checkTargets("uninstall", m.Uninstall)

	if errs.HasErrors() {
		return errs
	}
	return nil
}
