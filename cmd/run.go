package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/giantswarm/deptree/internal/dependency"
	"github.com/giantswarm/deptree/internal/shell"
	"github.com/giantswarm/deptree/pkg/logging"

	"github.com/spf13/cobra"
)

var runStrict bool

// newRunCmd creates the command that runs a script of shell commands
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [script|-]",
		Short: "Run shell commands from a script file or stdin",
		Long: `Runs shell commands line by line against a fresh dependency graph.

Blank lines and lines starting with '#' are skipped; 'end' or 'exit' stops
the script. Without a script argument, or with '-', commands are read from
stdin.

By default a failing command is reported and the script continues. With
--strict the first failure stops the script and sets the exit code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScript,
	}

	cmd.Flags().BoolVar(&runStrict, "strict", false, "Stop at the first failing command")
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open script: %w", err)
		}
		defer f.Close()
		in = f
		source = args[0]
	}

	out := cmd.OutOrStdout()
	logger := shell.NewLoggerWithWriter(false, !settings.config.NoColor, out)
	session := shell.NewSession(dependency.New(), logger, formatOptions(out))
	logging.SetSession(session.ID())
	defer logging.SetSession("")

	logging.Debug("CLI", "Running script from %s (strict=%t)", source, runStrict)
	result, err := session.RunScript(cmd.Context(), in, runStrict)
	if err != nil {
		return err
	}

	if result.Failed > 0 {
		logger.Info("Ran %d commands, %d failed", result.Executed, result.Failed)
	}
	return nil
}
