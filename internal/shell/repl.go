package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/giantswarm/deptree/internal/shell/commands"

	"github.com/chzyer/readline"
)

// REPLConfig configures the interactive shell.
type REPLConfig struct {
	// Prompt is the prompt template, see PromptData for its fields.
	Prompt string
	// HistoryFile is where command history is kept. Empty disables history.
	HistoryFile string
}

// REPL runs a Session interactively
type REPL struct {
	session     *Session
	logger      *Logger
	prompt      *Prompt
	historyFile string
	useUnicode  bool
	rl          *readline.Instance
}

// NewREPL creates an interactive shell over session
func NewREPL(session *Session, cfg REPLConfig) (*REPL, error) {
	prompt, err := ParsePrompt(cfg.Prompt)
	if err != nil {
		return nil, err
	}

	return &REPL{
		session:     session,
		logger:      session.Logger(),
		prompt:      prompt,
		historyFile: cfg.HistoryFile,
		useUnicode:  detectUnicodeSupport(),
	}, nil
}

// unicodeTerminals are TERM values assumed to render the unicode chevron
// even under a non-UTF-8 locale.
var unicodeTerminals = []string{"xterm", "screen", "tmux", "alacritty", "kitty", "iterm"}

// detectUnicodeSupport reports whether the prompt may use unicode glyphs.
// A UTF-8 locale wins; otherwise only known terminals qualify.
func detectUnicodeSupport() bool {
	term := strings.ToLower(os.Getenv("TERM"))
	if term == "" || term == "dumb" {
		return false
	}

	for _, v := range []string{os.Getenv("LC_ALL"), os.Getenv("LANG")} {
		v = strings.ToLower(v)
		if strings.Contains(v, "utf-8") || strings.Contains(v, "utf8") {
			return true
		}
	}

	for _, known := range unicodeTerminals {
		if strings.Contains(term, known) {
			return true
		}
	}
	return false
}

// buildPrompt renders the prompt for the current graph state
func (r *REPL) buildPrompt() string {
	chevron := promptChevronASCII
	if r.useUnicode {
		chevron = promptChevronUnicode
	}

	stats := r.session.Graph().Stats()
	return r.prompt.Render(PromptData{
		Units:     stats.Units,
		Installed: stats.Installed,
		Session:   r.session.ID(),
		Chevron:   chevron,
	})
}

// Run reads and executes lines until exit, Ctrl+D or ctx is done.
func (r *REPL) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:          r.buildPrompt(),
		HistoryFile:     r.historyFile,
		AutoComplete:    r.createCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	r.rl = rl

	r.logger.Info("deptree shell started. Type 'help' for available commands. Use TAB for completion.")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Shell shutting down...")
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			r.logger.Info("Goodbye!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := r.session.Execute(ctx, line); err != nil {
			if errors.Is(err, commands.ErrExit) {
				r.logger.Info("Goodbye!")
				return nil
			}
			r.logger.Error("Error: %v", err)
		}

		r.rl.SetPrompt(r.buildPrompt())
	}
}
