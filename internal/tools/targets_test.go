package tools_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plotlab/pyqa/internal/project"
	"github.com/plotlab/pyqa/internal/tools"
)

const (
	testManifestFileNameConstant = "pyproject.toml"
	testManifestContentConstant  = "[project]\nname = \"plot-kit\"\n"
)

type fixedProjectLocator struct {
	root        string
	locateError error
}

func (locator fixedProjectLocator) Locate(string) (string, error) {
	return locator.root, locator.locateError
}

func TestResolveProjectPathsDerivesTargetsFromManifest(testInstance *testing.T) {
	projectRoot := testInstance.TempDir()
	manifestPath := filepath.Join(projectRoot, testManifestFileNameConstant)
	require.NoError(testInstance, os.WriteFile(manifestPath, []byte(testManifestContentConstant), 0o644))

	paths, resolveError := tools.ResolveProjectPaths(fixedProjectLocator{root: projectRoot}, projectRoot)

	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, projectRoot, paths.Root)
	require.Equal(testInstance, filepath.Join(projectRoot, "plot_kit"), paths.PackageDirectory)
	require.Equal(testInstance, filepath.Join(projectRoot, "tests"), paths.TestsDirectory)
	require.Equal(testInstance, filepath.Join(projectRoot, "ruff_report.json"), paths.ReportFile)
}

func TestResolveProjectPathsFailureModes(testInstance *testing.T) {
	testCases := []struct {
		name            string
		locator         tools.ProjectLocator
		expectedMessage string
	}{
		{
			name:            "locator_failure",
			locator:         fixedProjectLocator{locateError: project.ErrManifestNotFound},
			expectedMessage: "unable to locate project root",
		},
		{
			name:            "metadata_failure",
			locator:         fixedProjectLocator{root: filepath.Join(os.TempDir(), "pyqa-missing-project")},
			expectedMessage: "unable to load project metadata",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			_, resolveError := tools.ResolveProjectPaths(testCase.locator, subtestInstance.TempDir())

			require.Error(subtestInstance, resolveError)
			require.Contains(subtestInstance, resolveError.Error(), testCase.expectedMessage)
		})
	}
}
