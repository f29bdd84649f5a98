package shell

import (
	"testing"

	"github.com/giantswarm/deptree/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt_Default(t *testing.T) {
	p, err := ParsePrompt(config.DefaultPrompt)
	require.NoError(t, err)

	assert.Equal(t, "deptree > ", p.Render(PromptData{Chevron: ">"}))
	assert.Equal(t, "deptree [2/5] » ", p.Render(PromptData{Units: 5, Installed: 2, Chevron: "»"}))
}

func TestPrompt_SprigFunctions(t *testing.T) {
	p, err := ParsePrompt(`{{ .Session | trunc 8 | upper }}{{ .Chevron }}`)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF12>", p.Render(PromptData{Session: "abcdef1234567890", Chevron: ">"}))
}

func TestPrompt_Invalid(t *testing.T) {
	_, err := ParsePrompt(`{{ .Units `)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid prompt template")
}

func TestPrompt_RenderFailureFallsBack(t *testing.T) {
	p, err := ParsePrompt(`{{ .Missing.Field }}`)
	require.NoError(t, err)
	assert.Equal(t, fallbackPrompt, p.Render(PromptData{}))
}
