package tools

import (
	"context"

	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/execshell"
	"github.com/plotlab/pyqa/internal/project"
	"github.com/plotlab/pyqa/internal/ui"
)

// ToolExecutor abstracts the shell executor so services can be tested with fakes.
type ToolExecutor interface {
	ExecuteRuff(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
	ExecutePylint(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ProjectLocator abstracts project root discovery.
type ProjectLocator interface {
	Locate(startingDirectory string) (string, error)
}

// ResolveToolExecutor returns the provided executor or constructs a shell-backed
// default that reports command progress through the console event logger.
func ResolveToolExecutor(existing ToolExecutor, logger *zap.Logger, humanReadable bool) (ToolExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	if humanReadable {
		return execshell.NewShellExecutor(logger, commandRunner, ui.NewConsoleCommandEventLogger(logger))
	}
	return execshell.NewShellExecutor(logger, commandRunner)
}

// ResolveProjectLocator returns the provided locator or a manifest-walking default.
func ResolveProjectLocator(existing ProjectLocator) ProjectLocator {
	if existing != nil {
		return existing
	}
	return project.NewLocator()
}
