package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/giantswarm/deptree/internal/dependency"
	"github.com/giantswarm/deptree/internal/shell"
	"github.com/giantswarm/deptree/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	shellNoHistory   bool
	shellHistoryFile string
	shellVerbose     bool
)

// newShellCmd creates the interactive shell command
func newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive dependency shell",
		Long: `Starts an interactive shell over an empty dependency graph.

Commands:
  depend <unit> [dependency...]   Register a unit and what it depends on
  install <unit>                  Install a unit after its dependencies
  remove <unit>                   Uninstall a unit nothing installed depends on
  list [format]                   List all units
  show <unit>                     Show one unit
  clear                           Remove all units
  help [command]                  Show help
  exit                            Leave the shell

Command history is kept between sessions unless --no-history is set.`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}

	cmd.Flags().BoolVar(&shellNoHistory, "no-history", false, "Do not read or write command history")
	cmd.Flags().StringVar(&shellHistoryFile, "history-file", "", "Command history file (default: from config)")
	cmd.Flags().BoolVar(&shellVerbose, "verbose", false, "Show debug messages in the shell")
	return cmd
}

func runShell(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := shell.NewLoggerWithWriter(shellVerbose, !settings.config.NoColor, cmd.OutOrStdout())
	session := shell.NewSession(dependency.New(), logger, formatOptions(cmd.OutOrStdout()))
	logging.SetSession(session.ID())
	defer logging.SetSession("")

	historyFile := settings.config.History.File
	if shellHistoryFile != "" {
		historyFile = shellHistoryFile
	}
	if shellNoHistory || settings.config.History.Disabled {
		historyFile = ""
	}

	repl, err := shell.NewREPL(session, shell.REPLConfig{
		Prompt:      settings.config.Prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return &invalidInputError{err: err}
	}

	logging.Info("CLI", "Starting shell session %s", session.ID())
	return repl.Run(ctx)
}
