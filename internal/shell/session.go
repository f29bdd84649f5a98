package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/giantswarm/deptree/internal/dependency"
	"github.com/giantswarm/deptree/internal/formatting"
	"github.com/giantswarm/deptree/internal/shell/commands"
	"github.com/giantswarm/deptree/pkg/logging"

	"github.com/google/uuid"
)

const subsystem = "Shell"

// Session executes command lines against one dependency graph.
type Session struct {
	id       string
	graph    *dependency.Graph
	logger   *Logger
	registry *commands.Registry
}

// NewSession creates a session over graph. Listings are rendered with
// format; a nil Out in format is replaced by the logger's writer so all
// output ends up in one place.
func NewSession(graph *dependency.Graph, logger *Logger, format formatting.Options) *Session {
	if format.Out == nil {
		format.Out = logger.Writer()
	}

	s := &Session{
		id:       uuid.NewString(),
		graph:    graph,
		logger:   logger,
		registry: commands.NewRegistry(),
	}
	s.registerCommands(format)
	return s
}

// registerCommands registers all available commands
func (s *Session) registerCommands(format formatting.Options) {
	base := commands.NewBaseCommand(s.graph, s.logger, format)

	s.registry.Register("depend", commands.NewDependCommand(base))
	s.registry.Register("install", commands.NewInstallCommand(base))
	s.registry.Register("remove", commands.NewRemoveCommand(base))
	s.registry.Register("list", commands.NewListCommand(base))
	s.registry.Register("show", commands.NewShowCommand(base))
	s.registry.Register("clear", commands.NewClearCommand(base))
	s.registry.Register("help", commands.NewHelpCommand(base, s.registry))
	s.registry.Register("exit", commands.NewExitCommand(base))
}

// ID returns the unique id of this session.
func (s *Session) ID() string {
	return s.id
}

// Graph returns the graph the session operates on.
func (s *Session) Graph() *dependency.Graph {
	return s.graph
}

// Registry returns the session's commands.
func (s *Session) Registry() *commands.Registry {
	return s.registry
}

// Logger returns the session's output logger.
func (s *Session) Logger() *Logger {
	return s.logger
}

// Execute runs one command line. Blank lines are ignored. Command names are
// case-insensitive; arguments are passed through unchanged. The exit
// command returns commands.ErrExit.
func (s *Session) Execute(ctx context.Context, input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	commandName, exists := s.registry.Resolve(parts[0])
	if !exists {
		return fmt.Errorf("unknown command: %s. Type 'help' for available commands", parts[0])
	}
	command, _ := s.registry.Get(commandName)
	args := parts[1:]

	if err := ctx.Err(); err != nil {
		return err
	}

	logging.Debug(subsystem, "Executing %s %v", commandName, args)
	err := command.Execute(ctx, args)
	if err != nil && err != commands.ErrExit {
		logging.Debug(subsystem, "Command %s failed: %v", commandName, err)
	}
	return err
}
