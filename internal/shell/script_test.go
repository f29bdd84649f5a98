package shell

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/giantswarm/deptree/internal/dependency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const browserScript = `# browser scenario
depend Http TCP
depend Https TCP
depend Chrome Http Https GLib

install Chrome
remove TCP
remove Chrome
end
install Chrome
`

func TestRunScript(t *testing.T) {
	s, buf := newTestSession(t)

	result, err := s.RunScript(context.Background(), strings.NewReader(browserScript), false)
	require.NoError(t, err)

	assert.Equal(t, ScriptResult{Executed: 7, Failed: 1, Stopped: true}, result)

	out := buf.String()
	assert.Contains(t, out, "> depend Http TCP\n")
	assert.Contains(t, out, "Installing TCP\nInstalling Http\nInstalling Https\nInstalling GLib\nInstalling Chrome\n")
	assert.Contains(t, out, "Error: TCP is still needed by Http, Https\n")
	assert.Contains(t, out, "Removing Chrome\n")
	assert.Equal(t, 1, strings.Count(out, "> install Chrome"), "commands after end are not run")

	chrome, _ := s.Graph().Get("Chrome")
	assert.False(t, chrome.Installed)
	tcp, _ := s.Graph().Get("TCP")
	assert.True(t, tcp.Installed)
}

func TestRunScript_Strict(t *testing.T) {
	s, _ := newTestSession(t)

	script := "depend B A\ndepend A B\ndepend C\n"
	result, err := s.RunScript(context.Background(), strings.NewReader(script), true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dependency.ErrCycleDetected))
	assert.Contains(t, err.Error(), "line 2: ")
	assert.Equal(t, ScriptResult{Executed: 2, Failed: 1}, result)

	_, exists := s.Graph().Get("C")
	assert.False(t, exists, "strict mode stops at the first failure")
}

func TestRunScript_CommentsAndBlankLines(t *testing.T) {
	s, buf := newTestSession(t)

	result, err := s.RunScript(context.Background(), strings.NewReader("\n  # nothing\n\n"), false)
	require.NoError(t, err)
	assert.Equal(t, ScriptResult{}, result)
	assert.Empty(t, buf.String())
}

func TestRunScript_Cancelled(t *testing.T) {
	s, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.RunScript(ctx, strings.NewReader("depend x\n"), false)
	assert.True(t, errors.Is(err, context.Canceled))
}
