package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const (
	manifestReadErrorTemplateConstant  = "unable to read %s: %w"
	manifestParseErrorTemplateConstant = "unable to parse %s: %w"
	dashCharacterConstant              = "-"
	underscoreCharacterConstant        = "_"
)

// ErrProjectNameMissing indicates the manifest lacks a [project] name entry.
var ErrProjectNameMissing = errors.New("pyproject.toml does not declare a project name")

type manifestDocument struct {
	Project manifestProjectSection `toml:"project"`
}

type manifestProjectSection struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Metadata captures the project identity declared in pyproject.toml.
type Metadata struct {
	Name        string
	PackageName string
	Version     string
}

// LoadMetadata reads pyproject.toml from rootDirectory and returns the declared
// identity. PackageName is the distribution name with dashes replaced by
// underscores, which matches how Python import packages are laid out on disk.
func LoadMetadata(rootDirectory string) (Metadata, error) {
	manifestPath := filepath.Join(rootDirectory, manifestFileNameConstant)

	manifestContent, readError := os.ReadFile(manifestPath)
	if readError != nil {
		return Metadata{}, fmt.Errorf(manifestReadErrorTemplateConstant, manifestPath, readError)
	}

	var document manifestDocument
	if unmarshalError := toml.Unmarshal(manifestContent, &document); unmarshalError != nil {
		return Metadata{}, fmt.Errorf(manifestParseErrorTemplateConstant, manifestPath, unmarshalError)
	}

	trimmedName := strings.TrimSpace(document.Project.Name)
	if len(trimmedName) == 0 {
		return Metadata{}, ErrProjectNameMissing
	}

	return Metadata{
		Name:        trimmedName,
		PackageName: strings.ReplaceAll(trimmedName, dashCharacterConstant, underscoreCharacterConstant),
		Version:     strings.TrimSpace(document.Project.Version),
	}, nil
}
