package manifest

import (
	"fmt"

	"github.com/giantswarm/deptree/internal/dependency"
	"github.com/giantswarm/deptree/pkg/logging"

	"github.com/google/uuid"
)

// Operation names used in a Report.
const (
	OperationRegister  = "register"
	OperationInstall   = "install"
	OperationUninstall = "uninstall"
)

// Outcome is the result of one operation performed during Apply.
type Outcome struct {
	Operation string            `json:"operation" yaml:"operation"`
	Unit      string            `json:"unit" yaml:"unit"`
	Steps     []dependency.Step `json:"steps,omitempty" yaml:"steps,omitempty"`
	Error     string            `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// Failed reports whether the operation returned an error.
func (o Outcome) Failed() bool {
	return o.err != nil
}

// Err returns the operation's error, if any.
func (o Outcome) Err() error {
	return o.err
}

// Report describes one Apply run.
type Report struct {
	RunID      string            `json:"runId" yaml:"runId"`
	Registered int               `json:"registered" yaml:"registered"`
	Failed     int               `json:"failed" yaml:"failed"`
	Outcomes   []Outcome         `json:"outcomes" yaml:"outcomes"`
	Units      []dependency.Node `json:"units" yaml:"units"`
}

// Err summarizes failed operations. It wraps the first failure so callers
// can inspect it with errors.Is and errors.As.
func (r *Report) Err() error {
	if r.Failed == 0 {
		return nil
	}
	for _, o := range r.Outcomes {
		if o.err != nil {
			return fmt.Errorf("%d of %d operations failed, first: %s %s: %w",
				r.Failed, len(r.Outcomes), o.Operation, o.Unit, o.err)
		}
	}
	return fmt.Errorf("%d of %d operations failed", r.Failed, len(r.Outcomes))
}

// Apply resets g and rebuilds it from m: every unit is registered in
// declaration order, then the install targets are installed and the
// uninstall targets uninstalled, in list order. A failing operation is
// recorded in the report and the remaining operations still run.
func Apply(g *dependency.Graph, m *Manifest) *Report {
	report := &Report{RunID: uuid.NewString()}
	logging.Info(subsystem, "Applying manifest (run %s): %d units, %d installs, %d uninstalls",
		report.RunID, len(m.Units), len(m.Install), len(m.Uninstall))

	g.Reset()

	for _, u := range m.Units {
		err := g.Register(u.Name, u.DependsOn...)
		report.record(Outcome{Operation: OperationRegister, Unit: u.Name, err: err})
		if err == nil {
			report.Registered++
		}
	}

	for _, name := range m.Install {
		steps, err := g.Install(name)
		report.record(Outcome{Operation: OperationInstall, Unit: name, Steps: steps, err: err})
	}

	for _, name := range m.Uninstall {
		var steps []dependency.Step
		step, err := g.Uninstall(name)
		if err == nil {
			steps = []dependency.Step{step}
		}
		report.record(Outcome{Operation: OperationUninstall, Unit: name, Steps: steps, err: err})
	}

	report.Units = g.Nodes()
	logging.Info(subsystem, "Manifest applied (run %s): %d operations, %d failed",
		report.RunID, len(report.Outcomes), report.Failed)
	return report
}

func (r *Report) record(o Outcome) {
	if o.err != nil {
		o.Error = o.err.Error()
		r.Failed++
		logging.Warn(subsystem, "%s %s failed: %v", o.Operation, o.Unit, o.err)
	}
	r.Outcomes = append(r.Outcomes, o)
}
