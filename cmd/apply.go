package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/giantswarm/deptree/internal/dependency"
	"github.com/giantswarm/deptree/internal/formatting"
	"github.com/giantswarm/deptree/internal/manifest"
	"github.com/giantswarm/deptree/pkg/logging"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	applyFile     string
	applyWatch    bool
	applyDebounce time.Duration
)

// newApplyCmd creates the command that applies a manifest
func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Build a dependency graph from a YAML manifest",
		Long: `Registers every unit declared in the manifest, then installs and
uninstalls the listed units and prints what happened.

Every operation runs even if an earlier one fails; failures are reported
and set the exit code. With --watch the manifest is applied again each time
the file changes, until interrupted.

Example manifest:

  units:
    - name: Http
      dependsOn: [TCP]
    - name: Chrome
      dependsOn: [Http, GLib]
  install: [Chrome]`,
		Args: cobra.NoArgs,
		RunE: runApply,
	}

	cmd.Flags().StringVarP(&applyFile, "file", "f", "", "Manifest file to apply")
	cmd.Flags().BoolVar(&applyWatch, "watch", false, "Re-apply the manifest whenever it changes")
	cmd.Flags().DurationVar(&applyDebounce, "debounce", manifest.DefaultDebounceInterval, "Delay before re-applying after a change")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runApply(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	formatter := formatting.New(formatOptions(out))
	graph := dependency.New()

	err := applyOnce(graph, formatter, out)
	if !applyWatch {
		return err
	}
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return watchManifest(ctx, graph, formatter, out)
}

// applyOnce loads the manifest, applies it to graph and prints the report.
func applyOnce(graph *dependency.Graph, formatter formatting.Formatter, out io.Writer) error {
	m, err := manifest.Load(applyFile)
	if err != nil {
		return &invalidInputError{err: err}
	}

	report := manifest.Apply(graph, m)
	logging.SetSession(report.RunID)
	if err := printReport(report, formatter, out); err != nil {
		return err
	}
	return report.Err()
}

// watchManifest re-applies the manifest on every change until ctx is done.
// Watching and applying run as separate group members: file events keep
// being drained while an apply is in progress, and changes that arrive
// meanwhile collapse into one further apply.
func watchManifest(ctx context.Context, graph *dependency.Graph, formatter formatting.Formatter, out io.Writer) error {
	watcher, err := manifest.NewWatcher(applyFile, applyDebounce)
	if err != nil {
		return err
	}

	changes := make(chan struct{}, 1)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watcher.Watch(gctx, func(context.Context) {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-changes:
				fmt.Fprintf(out, "\n%s changed, applying again\n", applyFile)
				if err := applyOnce(graph, formatter, out); err != nil {
					logging.Error("CLI", err, "Applying %s failed", applyFile)
					fmt.Fprintf(out, "Error: %v\n", err)
				}
			}
		}
	})

	fmt.Fprintf(out, "Watching %s for changes. Press Ctrl+C to stop.\n", watcher.Path())
	return g.Wait()
}

// printReport renders report. Structured formats get the whole report;
// table and console formats get a line per operation and the unit listing.
func printReport(report *manifest.Report, formatter formatting.Formatter, out io.Writer) error {
	switch formatter.GetOptions().Format {
	case formatting.FormatJSON, formatting.FormatYAML:
		return formatter.FormatData(report)
	}

	for _, o := range report.Outcomes {
		if o.Failed() {
			fmt.Fprintf(out, "Error: %s %s: %s\n", o.Operation, o.Unit, o.Error)
			continue
		}
		for _, step := range o.Steps {
			switch step.Action {
			case dependency.ActionInstalled:
				fmt.Fprintf(out, "Installing %s\n", step.Unit)
			case dependency.ActionUninstalled:
				fmt.Fprintf(out, "Removing %s\n", step.Unit)
			case dependency.ActionAlreadyUninstalled:
				fmt.Fprintf(out, "%s is not installed\n", step.Unit)
			}
		}
	}
	fmt.Fprintf(out, "Registered %d units, %d of %d operations failed (run %s)\n",
		report.Registered, report.Failed, len(report.Outcomes), report.RunID)

	return formatter.FormatUnits(report.Units)
}
