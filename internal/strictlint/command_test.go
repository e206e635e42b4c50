package strictlint_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotlab/pyqa/internal/strictlint"
)

const (
	testManifestFileNameConstant = "pyproject.toml"
	testManifestContentConstant  = "[project]\nname = \"plotkit\"\n"
)

func TestCommandBuilderBuildsLintCommand(testInstance *testing.T) {
	builder := &strictlint.CommandBuilder{}

	command, buildError := builder.Build()

	require.NoError(testInstance, buildError)
	require.Equal(testInstance, "lint", command.Use)
	require.NotNil(testInstance, command.Flags().Lookup("root"))
}

func TestLintCommandRunsPylintOverPackage(testInstance *testing.T) {
	projectRoot := testInstance.TempDir()
	manifestPath := filepath.Join(projectRoot, testManifestFileNameConstant)
	require.NoError(testInstance, os.WriteFile(manifestPath, []byte(testManifestContentConstant), 0o644))
	toolExecutor := &recordingToolExecutor{}
	builder := &strictlint.CommandBuilder{ToolExecutor: toolExecutor}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())
	command.SetArgs([]string{"--root", projectRoot})

	require.NoError(testInstance, command.Execute())
	require.Len(testInstance, toolExecutor.pylintInvocations, 1)
	require.Equal(
		testInstance,
		[]string{filepath.Join(projectRoot, "plotkit")},
		toolExecutor.pylintInvocations[0].Arguments,
	)
}

func TestLintCommandReportsToolFailure(testInstance *testing.T) {
	projectRoot := testInstance.TempDir()
	manifestPath := filepath.Join(projectRoot, testManifestFileNameConstant)
	require.NoError(testInstance, os.WriteFile(manifestPath, []byte(testManifestContentConstant), 0o644))
	toolExecutor := &recordingToolExecutor{pylintError: os.ErrPermission}
	builder := &strictlint.CommandBuilder{
		ToolExecutor: toolExecutor,
		ConfigurationProvider: func() strictlint.CommandConfiguration {
			return strictlint.CommandConfiguration{ProjectRoot: projectRoot}
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())
	command.SetArgs([]string{})

	executionError := command.Execute()

	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "strict lint failed")
}
