package stylecheck_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/execshell"
	"github.com/plotlab/pyqa/internal/project"
	"github.com/plotlab/pyqa/internal/stylecheck"
)

const (
	testReportContentConstant = `[{"code": "E501", "filename": "plotkit/figure.py"}]`
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

func temporaryProjectPaths(testInstance *testing.T) project.Paths {
	testInstance.Helper()
	return project.ResolvePaths(testInstance.TempDir(), "plotkit")
}

func TestNewServiceValidatesDependencies(testInstance *testing.T) {
	_, creationError := stylecheck.NewService(stylecheck.ServiceDependencies{Logger: zap.NewNop()})

	require.Error(testInstance, creationError)
	require.Contains(testInstance, creationError.Error(), "tool executor not configured")
}

func TestServiceCheckInvokesRuffCheck(testInstance *testing.T) {
	testCases := []struct {
		name              string
		applyFixes        bool
		expectedArguments func(paths project.Paths) []string
	}{
		{
			name:       "autofix_enabled",
			applyFixes: true,
			expectedArguments: func(paths project.Paths) []string {
				return []string{
					"check", paths.PackageDirectory, paths.TestsDirectory,
					"-o", paths.ReportFile,
					"--output-format", "json",
					"--fix", "--no-cache",
				}
			},
		},
		{
			name:       "autofix_disabled",
			applyFixes: false,
			expectedArguments: func(paths project.Paths) []string {
				return []string{
					"check", paths.PackageDirectory, paths.TestsDirectory,
					"-o", paths.ReportFile,
					"--output-format", "json",
					"--no-cache",
				}
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			paths := temporaryProjectPaths(subtestInstance)
			toolExecutor := &recordingToolExecutor{}
			service, creationError := stylecheck.NewService(stylecheck.ServiceDependencies{ToolExecutor: toolExecutor})
			require.NoError(subtestInstance, creationError)

			_, checkError := service.Check(context.Background(), paths, stylecheck.CheckOptions{ApplyFixes: testCase.applyFixes})

			require.NoError(subtestInstance, checkError)
			require.Len(subtestInstance, toolExecutor.ruffInvocations, 1)
			require.Empty(subtestInstance, toolExecutor.pylintInvocations)
			require.Equal(subtestInstance, testCase.expectedArguments(paths), toolExecutor.ruffInvocations[0].Arguments)
			require.Equal(subtestInstance, paths.Root, toolExecutor.ruffInvocations[0].WorkingDirectory)
		})
	}
}

func TestServiceCheckSummarizesWrittenReport(testInstance *testing.T) {
	paths := temporaryProjectPaths(testInstance)
	toolExecutor := &recordingToolExecutor{}
	toolExecutor.ruffResult = execshell.ExecutionResult{}
	require.NoError(testInstance, os.WriteFile(paths.ReportFile, []byte(testReportContentConstant), 0o644))
	service, creationError := stylecheck.NewService(stylecheck.ServiceDependencies{ToolExecutor: toolExecutor})
	require.NoError(testInstance, creationError)

	outcome, checkError := service.Check(context.Background(), paths, stylecheck.CheckOptions{ApplyFixes: true})

	require.NoError(testInstance, checkError)
	require.True(testInstance, outcome.Summary.ReportExists)
	require.Equal(testInstance, 1, outcome.Summary.IssueCount)
}

func TestServiceCheckPropagatesToolFailureWithSummary(testInstance *testing.T) {
	paths := temporaryProjectPaths(testInstance)
	require.NoError(testInstance, os.WriteFile(paths.ReportFile, []byte(testReportContentConstant), 0o644))
	failedResult := execshell.ExecutionResult{ExitCode: 1}
	toolExecutor := &recordingToolExecutor{
		ruffResult: failedResult,
		ruffError: execshell.CommandFailedError{
			Command: execshell.ShellCommand{Name: execshell.CommandRuff},
			Result:  failedResult,
		},
	}
	service, creationError := stylecheck.NewService(stylecheck.ServiceDependencies{ToolExecutor: toolExecutor})
	require.NoError(testInstance, creationError)

	outcome, checkError := service.Check(context.Background(), paths, stylecheck.CheckOptions{ApplyFixes: true})

	require.Error(testInstance, checkError)
	require.IsType(testInstance, execshell.CommandFailedError{}, checkError)
	require.Equal(testInstance, 1, outcome.Summary.IssueCount)
}
