package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const browserScript = `depend Http TCP
depend Https TCP
depend Chrome Http Https GLib
install Chrome
remove TCP
list console
`

func TestRunCommand_Stdin(t *testing.T) {
	out, err := executeCommand(t, strings.NewReader(browserScript), "run")
	require.NoError(t, err, "failures do not fail the run without --strict")

	assert.Contains(t, out, "Installing Chrome\n")
	assert.Contains(t, out, "Error: TCP is still needed by Http, Https\n")
	assert.Contains(t, out, "Units (5):")
	assert.Contains(t, out, "Ran 6 commands, 1 failed\n")
}

func TestRunCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte("depend a b\ninstall a\n"), 0644))

	out, err := executeCommand(t, nil, "run", path)
	require.NoError(t, err)
	assert.Contains(t, out, "> install a\nInstalling b\nInstalling a\n")
}

func TestRunCommand_Strict(t *testing.T) {
	_, err := executeCommand(t, strings.NewReader(browserScript), "run", "--strict", "-")
	require.Error(t, err)
	assert.Equal(t, ExitCodeRefused, getExitCode(err))
	assert.Contains(t, err.Error(), "line 5: TCP is still needed by Http, Https")
}

func TestRunCommand_MissingFile(t *testing.T) {
	_, err := executeCommand(t, nil, "run", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, ExitCodeError, getExitCode(err))
}
