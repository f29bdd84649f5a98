package shell

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// promptChevronUnicode is the guillemet separator used in the prompt.
const promptChevronUnicode = "»"

// promptChevronASCII is the fallback chevron for terminals without unicode support.
const promptChevronASCII = ">"

// fallbackPrompt is shown when the configured template fails to render.
const fallbackPrompt = "deptree > "

// PromptData is what the prompt template is rendered with.
type PromptData struct {
	Units     int
	Installed int
	Session   string
	Chevron   string
}

// Prompt renders the REPL prompt from a text/template with sprig functions.
type Prompt struct {
	tmpl *template.Template
}

// ParsePrompt parses a prompt template.
func ParsePrompt(text string) (*Prompt, error) {
	tmpl, err := template.New("prompt").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid prompt template: %w", err)
	}
	return &Prompt{tmpl: tmpl}, nil
}

// Render executes the template. A template that fails at execution time
// yields a plain fallback prompt.
func (p *Prompt) Render(data PromptData) string {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return fallbackPrompt
	}
	return buf.String()
}
