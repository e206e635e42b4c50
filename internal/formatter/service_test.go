package formatter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/execshell"
	"github.com/plotlab/pyqa/internal/formatter"
	"github.com/plotlab/pyqa/internal/project"
)

const (
	testProjectRootConstant      = "/workspace/plotkit"
	testPackageDirectoryConstant = "/workspace/plotkit/plot_kit"
	testTestsDirectoryConstant   = "/workspace/plotkit/tests"
)

type recordingToolExecutor struct {
	ruffInvocations   []execshell.CommandDetails
	pylintInvocations []execshell.CommandDetails
	ruffResult        execshell.ExecutionResult
	ruffError         error
	pylintResult      execshell.ExecutionResult
	pylintError       error
}

func (executor *recordingToolExecutor) ExecuteRuff(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.ruffInvocations = append(executor.ruffInvocations, details)
	return executor.ruffResult, executor.ruffError
}

func (executor *recordingToolExecutor) ExecutePylint(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.pylintInvocations = append(executor.pylintInvocations, details)
	return executor.pylintResult, executor.pylintError
}

func testProjectPaths() project.Paths {
	return project.Paths{
		Root:             testProjectRootConstant,
		PackageDirectory: testPackageDirectoryConstant,
		TestsDirectory:   testTestsDirectoryConstant,
	}
}

func TestNewServiceValidatesDependencies(testInstance *testing.T) {
	_, creationError := formatter.NewService(formatter.ServiceDependencies{Logger: zap.NewNop()})

	require.Error(testInstance, creationError)
	require.Contains(testInstance, creationError.Error(), "tool executor not configured")
}

func TestServiceFormatInvokesRuffFormat(testInstance *testing.T) {
	toolExecutor := &recordingToolExecutor{}
	service, creationError := formatter.NewService(formatter.ServiceDependencies{Logger: zap.NewNop(), ToolExecutor: toolExecutor})
	require.NoError(testInstance, creationError)

	_, formatError := service.Format(context.Background(), testProjectPaths())

	require.NoError(testInstance, formatError)
	require.Len(testInstance, toolExecutor.ruffInvocations, 1)
	require.Empty(testInstance, toolExecutor.pylintInvocations)
	require.Equal(
		testInstance,
		[]string{"format", testPackageDirectoryConstant, testTestsDirectoryConstant},
		toolExecutor.ruffInvocations[0].Arguments,
	)
	require.Equal(testInstance, testProjectRootConstant, toolExecutor.ruffInvocations[0].WorkingDirectory)
}

func TestServiceFormatPropagatesToolFailures(testInstance *testing.T) {
	failedResult := execshell.ExecutionResult{ExitCode: 2}
	toolExecutor := &recordingToolExecutor{
		ruffResult: failedResult,
		ruffError: execshell.CommandFailedError{
			Command: execshell.ShellCommand{Name: execshell.CommandRuff},
			Result:  failedResult,
		},
	}
	service, creationError := formatter.NewService(formatter.ServiceDependencies{ToolExecutor: toolExecutor})
	require.NoError(testInstance, creationError)

	_, formatError := service.Format(context.Background(), testProjectPaths())

	require.Error(testInstance, formatError)
	require.IsType(testInstance, execshell.CommandFailedError{}, formatError)
}
