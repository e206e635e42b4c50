package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testVersionValueConstant        = "v1.2.3"
	testVersionOutputConstant       = "pyqa version: v1.2.3\n"
	testLogLevelOverrideConstant    = "debug"
	testLogFormatOverrideConstant   = "console"
	testVersionCommandNameConstant  = "version"
	testStructuredLogFormatConstant = "structured"
)

func commandNames(application *Application) []string {
	names := make([]string, 0, len(application.rootCommand.Commands()))
	for _, registeredCommand := range application.rootCommand.Commands() {
		names = append(names, registeredCommand.Name())
	}
	return names
}

func TestNewApplicationRegistersQualityCommands(testInstance *testing.T) {
	application := NewApplication()

	registeredNames := commandNames(application)

	for _, expectedName := range []string{"run", "format", "check", "lint", "version"} {
		require.Contains(testInstance, registeredNames, expectedName)
	}
}

func TestInitializeConfigurationAppliesFlagOverrides(testInstance *testing.T) {
	application := NewApplication()
	rootCommand := application.rootCommand

	require.NoError(testInstance, rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, testLogLevelOverrideConstant))
	require.NoError(testInstance, rootCommand.PersistentFlags().Set(logFormatFlagNameConstant, testLogFormatOverrideConstant))

	require.NoError(testInstance, application.initializeConfiguration(rootCommand))

	require.Equal(testInstance, testLogLevelOverrideConstant, application.configuration.Common.LogLevel)
	require.Equal(testInstance, testLogFormatOverrideConstant, application.configuration.Common.LogFormat)
	require.True(testInstance, application.humanReadableLoggingEnabled())
	require.NotNil(testInstance, application.logger)
}

func TestInitializeConfigurationUsesEmbeddedDefaults(testInstance *testing.T) {
	application := NewApplication()

	require.NoError(testInstance, application.initializeConfiguration(application.rootCommand))

	require.Equal(testInstance, testStructuredLogFormatConstant, application.configuration.Common.LogFormat)
	require.True(testInstance, application.configuration.Tools.Check.ApplyFixes)
	require.False(testInstance, application.configuration.Tools.Run.FailOnIssues)
	require.False(testInstance, application.humanReadableLoggingEnabled())
}

func TestVersionCommandPrintsResolvedVersion(testInstance *testing.T) {
	application := NewApplication()
	application.versionResolver = func() string {
		return testVersionValueConstant
	}

	outputBuffer := &bytes.Buffer{}
	application.rootCommand.SetOut(outputBuffer)
	application.rootCommand.SetErr(&bytes.Buffer{})
	application.rootCommand.SetArgs([]string{testVersionCommandNameConstant})

	require.NoError(testInstance, application.Execute())
	require.Equal(testInstance, testVersionOutputConstant, outputBuffer.String())
}
