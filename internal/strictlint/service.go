package strictlint

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/execshell"
	"github.com/plotlab/pyqa/internal/project"
	"github.com/plotlab/pyqa/internal/tools"
)

const (
	toolExecutorMissingMessageConstant = "tool executor not configured"
	lintCompletedMessageConstant       = "Strict lint completed"
	packageDirectoryFieldConstant      = "package_directory"
)

var errToolExecutorMissing = errors.New(toolExecutorMissingMessageConstant)

// ServiceDependencies describes required collaborators for strict linting.
type ServiceDependencies struct {
	Logger       *zap.Logger
	ToolExecutor tools.ToolExecutor
}

// Service runs pylint over the project package directory. The tests directory
// is deliberately excluded; the stricter rule set only applies to shipped code.
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

// Lint emits strict diagnostics for the package directory on the tool's own
// standard output. Findings are not captured or interpreted here.
func (service *Service) Lint(executionContext context.Context, paths project.Paths) (execshell.ExecutionResult, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{paths.PackageDirectory},
		WorkingDirectory: paths.Root,
	}

	executionResult, executionError := service.toolExecutor.ExecutePylint(executionContext, commandDetails)
	if executionError != nil {
		return executionResult, executionError
	}

	service.logger.Info(
		lintCompletedMessageConstant,
		zap.String(packageDirectoryFieldConstant, paths.PackageDirectory),
	)
	return executionResult, nil
}
