package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/giantswarm/deptree/internal/shell/commands"
	"github.com/giantswarm/deptree/pkg/logging"
)

// ScriptResult summarizes a script run.
type ScriptResult struct {
	Executed int  `json:"executed" yaml:"executed"`
	Failed   int  `json:"failed" yaml:"failed"`
	Stopped  bool `json:"stopped" yaml:"stopped"` // an exit command ended the script early
}

// RunScript executes r line by line. Blank lines and lines starting with
// '#' are skipped. Each command is echoed before it runs and its errors are
// printed. An exit command ends the script. With strict set, the first
// failing command aborts the script and its error is returned.
func (s *Session) RunScript(ctx context.Context, r io.Reader, strict bool) (ScriptResult, error) {
	var result ScriptResult

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return result, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		s.logger.OutputLine("%s %s", promptChevronASCII, line)
		result.Executed++

		err := s.Execute(ctx, line)
		if errors.Is(err, commands.ErrExit) {
			result.Stopped = true
			break
		}
		if err != nil {
			result.Failed++
			s.logger.Error("Error: %v", err)
			if strict {
				return result, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read script: %w", err)
	}

	logging.Info(subsystem, "Script finished: %d commands, %d failed", result.Executed, result.Failed)
	return result, nil
}
