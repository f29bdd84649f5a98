package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/giantswarm/deptree/internal/config"
	"github.com/giantswarm/deptree/internal/dependency"
	"github.com/giantswarm/deptree/internal/formatting"
	"github.com/giantswarm/deptree/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeInvalidInput indicates an invalid configuration file or manifest.
	ExitCodeInvalidInput = 2
	// ExitCodeRefused indicates the dependency graph refused an operation,
	// such as a circular dependency or an uninstall that is still needed.
	ExitCodeRefused = 3
)

var (
	configPath   string
	logLevel     string
	noColor      bool
	outputFormat string
)

// settings is the effective configuration after merging the config file
// with command line flags.
var settings struct {
	config config.Config
	format formatting.OutputFormat
}

// rootCmd represents the base command for the deptree application.
var rootCmd = &cobra.Command{
	Use:   "deptree",
	Short: "Install and uninstall units in dependency order",
	Long: `deptree keeps a graph of named units and the units they depend on.

Installing a unit installs everything it depends on first. Uninstalling a
unit is refused while an installed unit still depends on it, and a
dependency that would create a cycle is rejected.

Work with the graph interactively (deptree shell), from a script of shell
commands (deptree run), or declare it in a YAML manifest (deptree apply).`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "deptree version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// invalidInputError marks errors caused by a bad config file or manifest.
type invalidInputError struct {
	err error
}

func (e *invalidInputError) Error() string { return e.err.Error() }

func (e *invalidInputError) Unwrap() error { return e.err }

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var invalid *invalidInputError
	if errors.As(err, &invalid) {
		return ExitCodeInvalidInput
	}

	var refused *dependency.Error
	if errors.As(err, &refused) {
		return ExitCodeRefused
	}

	return ExitCodeError
}

// loadSettings reads the config file, applies flag overrides and
// initializes logging. It runs before every subcommand.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return &invalidInputError{err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("output") {
		cfg.Output = outputFormat
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColor
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return &invalidInputError{err: err}
	}
	format, err := formatting.ParseFormat(cfg.Output)
	if err != nil {
		return &invalidInputError{err: err}
	}

	logging.InitForCLI(level, cmd.ErrOrStderr())

	settings.config = cfg
	settings.format = format
	return nil
}

// formatOptions returns the formatting options for output written to out.
func formatOptions(out io.Writer) formatting.Options {
	return formatting.Options{
		Format: settings.format,
		Color:  !settings.config.NoColor,
		Out:    out,
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newShellCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newApplyCmd())

	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", config.GetDefaultConfigPathOrPanic(), "Configuration directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", config.DefaultOutput, "Output format: table, console, json, yaml")
}
