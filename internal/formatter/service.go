package formatter

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/execshell"
	"github.com/plotlab/pyqa/internal/project"
	"github.com/plotlab/pyqa/internal/tools"
)

const (
	formatSubcommandConstant           = "format"
	toolExecutorMissingMessageConstant = "tool executor not configured"
	formatCompletedMessageConstant     = "Formatting completed"
	packageDirectoryFieldConstant      = "package_directory"
	testsDirectoryFieldConstant        = "tests_directory"
)

var errToolExecutorMissing = errors.New(toolExecutorMissingMessageConstant)

// ServiceDependencies describes required collaborators for formatting.
type ServiceDependencies struct {
	Logger       *zap.Logger
	ToolExecutor tools.ToolExecutor
}

// Service runs ruff format over the project sources.
type Service struct {
	logger       *zap.Logger
	toolExecutor tools.ToolExecutor
}

// NewService constructs a Service with the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.ToolExecutor == nil {
		return nil, errToolExecutorMissing
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{logger: logger, toolExecutor: dependencies.ToolExecutor}, nil
}

// Format rewrites the package and tests directories in place with ruff format.
func (service *Service) Format(executionContext context.Context, paths project.Paths) (execshell.ExecutionResult, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{formatSubcommandConstant, paths.PackageDirectory, paths.TestsDirectory},
		WorkingDirectory: paths.Root,
	}

	executionResult, executionError := service.toolExecutor.ExecuteRuff(executionContext, commandDetails)
	if executionError != nil {
		return executionResult, executionError
	}

	service.logger.Info(
		formatCompletedMessageConstant,
		zap.String(packageDirectoryFieldConstant, paths.PackageDirectory),
		zap.String(testsDirectoryFieldConstant, paths.TestsDirectory),
	)
	return executionResult, nil
}
