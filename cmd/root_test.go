package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/giantswarm/deptree/internal/config"
	"github.com/giantswarm/deptree/internal/dependency"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag of c and its subcommands to its default so
// tests sharing rootCmd do not leak flag values into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// executeCommand runs rootCmd with args against an empty config directory
// and returns what was written to stdout.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	if stdin == nil {
		stdin = strings.NewReader("")
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(append([]string{"--config-path", t.TempDir(), "--no-color"}, args...))

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestSetVersion(t *testing.T) {
	original := GetVersion()
	defer SetVersion(original)

	SetVersion("1.2.3-test")
	assert.Equal(t, "1.2.3-test", GetVersion())
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "deptree", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)

	for _, name := range []string{"config-path", "log-level", "no-color", "output"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing persistent flag %s", name)
	}
	assert.Equal(t, "o", rootCmd.PersistentFlags().Lookup("output").Shorthand)
}

func TestSubcommands(t *testing.T) {
	found := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		found[c.Name()] = true
	}
	for _, expected := range []string{"version", "self-update", "shell", "run", "apply"} {
		assert.True(t, found[expected], "missing subcommand %s", expected)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitCodeSuccess},
		{"plain", errors.New("boom"), ExitCodeError},
		{"invalid input", &invalidInputError{err: errors.New("bad yaml")}, ExitCodeInvalidInput},
		{"wrapped invalid input", fmt.Errorf("x: %w", &invalidInputError{err: errors.New("bad")}), ExitCodeInvalidInput},
		{"refused", fmt.Errorf("line 3: %w", &dependency.Error{Reason: dependency.ReasonCycleDetected}), ExitCodeRefused},
		{"unknown unit", dependency.ErrUnknownNode, ExitCodeRefused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getExitCode(tt.err))
		})
	}
}

func TestLoadSettings_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: yaml\nlogLevel: error\n"), 0644))

	resetFlags(rootCmd)
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--config-path", dir, "-o", "json", "version"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "json", settings.config.Output)
	assert.Equal(t, "error", settings.config.LogLevel)
	assert.EqualValues(t, "json", settings.format)
}

func TestLoadSettings_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output: xml\n"), 0644))

	resetFlags(rootCmd)
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"--config-path", dir, "version"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCodeInvalidInput, getExitCode(err))

	var verrs config.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestLoadSettings_InvalidFlag(t *testing.T) {
	_, err := executeCommand(t, nil, "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Equal(t, ExitCodeInvalidInput, getExitCode(err))
}
