package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	stubLogEnvironmentVariableConstant = "PYQA_STUB_LOG"
	stubLogFileNameConstant            = "invocations.log"
	manifestFileNameConstant           = "pyproject.toml"
	manifestContentConstant            = "[project]\nname = \"plotkit\"\nversion = \"0.3.0\"\n"
	packageSourceFileNameConstant      = "figure.py"
	misformattedSourceConstant         = "def  figure( ):\n    return   1\n"
	testSourceFileNameConstant         = "test_figure.py"
	testSourceContentConstant          = "def test_figure():\n    assert True\n"

	ruffStubScriptConstant = `#!/bin/sh
printf 'ruff %s\n' "$*" >> "$PYQA_STUB_LOG"
if [ "$1" = "check" ]; then
  report=""
  previous=""
  for argument in "$@"; do
    if [ "$previous" = "-o" ]; then report="$argument"; fi
    previous="$argument"
  done
  if [ -n "$report" ]; then printf '[]' > "$report"; fi
  exit "${PYQA_STUB_RUFF_CHECK_EXIT:-0}"
fi
exit "${PYQA_STUB_RUFF_FORMAT_EXIT:-0}"
`
	pylintStubScriptConstant = `#!/bin/sh
printf 'pylint %s\n' "$*" >> "$PYQA_STUB_LOG"
exit "${PYQA_STUB_PYLINT_EXIT:-0}"
`
)

// installStubTools places fake ruff and pylint executables on PATH and returns
// the path of the log file the stubs append their invocations to.
func installStubTools(testInstance *testing.T) string {
	testInstance.Helper()

	stubDirectory := testInstance.TempDir()
	writeStubScript(testInstance, filepath.Join(stubDirectory, "ruff"), ruffStubScriptConstant)
	writeStubScript(testInstance, filepath.Join(stubDirectory, "pylint"), pylintStubScriptConstant)

	stubLogPath := filepath.Join(stubDirectory, stubLogFileNameConstant)
	testInstance.Setenv(stubLogEnvironmentVariableConstant, stubLogPath)
	testInstance.Setenv("PATH", stubDirectory+string(os.PathListSeparator)+os.Getenv("PATH"))

	return stubLogPath
}

func writeStubScript(testInstance *testing.T, scriptPath string, scriptContent string) {
	testInstance.Helper()
	require.NoError(testInstance, os.WriteFile(scriptPath, []byte(scriptContent), 0o755))
}

// writeSampleProject lays out a pyproject.toml project with a mis-formatted
// source file and a tests directory, returning the project root.
func writeSampleProject(testInstance *testing.T) string {
	testInstance.Helper()

	projectRoot := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(projectRoot, manifestFileNameConstant), []byte(manifestContentConstant), 0o644))

	packageDirectory := filepath.Join(projectRoot, "plotkit")
	require.NoError(testInstance, os.MkdirAll(packageDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(packageDirectory, packageSourceFileNameConstant), []byte(misformattedSourceConstant), 0o644))

	testsDirectory := filepath.Join(projectRoot, "tests")
	require.NoError(testInstance, os.MkdirAll(testsDirectory, 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(testsDirectory, testSourceFileNameConstant), []byte(testSourceContentConstant), 0o644))

	return projectRoot
}

func readStubInvocations(testInstance *testing.T, stubLogPath string) []string {
	testInstance.Helper()

	logContent, readError := os.ReadFile(stubLogPath)
	require.NoError(testInstance, readError)

	var invocations []string
	for _, line := range strings.Split(string(logContent), "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 0 {
			invocations = append(invocations, trimmed)
		}
	}
	return invocations
}
