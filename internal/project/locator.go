package project

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	manifestFileNameConstant = "pyproject.toml"
)

// ErrManifestNotFound indicates no pyproject.toml exists in the starting directory or any of its parents.
var ErrManifestNotFound = errors.New("pyproject.toml not found in the current directory or any parent directory")

// Locator finds the project root by walking parent directories until a pyproject.toml appears.
type Locator struct{}

// NewLocator constructs a project locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate resolves startingDirectory to an absolute path and walks upward until it
// finds a directory containing pyproject.toml. It returns ErrManifestNotFound when
// the filesystem root is reached without a match.
func (locator *Locator) Locate(startingDirectory string) (string, error) {
	absoluteDirectory, absoluteError := filepath.Abs(startingDirectory)
	if absoluteError != nil {
		return "", absoluteError
	}

	currentDirectory := absoluteDirectory
	for {
		manifestPath := filepath.Join(currentDirectory, manifestFileNameConstant)
		manifestInfo, statError := os.Stat(manifestPath)
		if statError == nil && !manifestInfo.IsDir() {
			return currentDirectory, nil
		}
		if statError != nil && !errors.Is(statError, os.ErrNotExist) {
			return "", statError
		}

		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return "", ErrManifestNotFound
		}
		currentDirectory = parentDirectory
	}
}
