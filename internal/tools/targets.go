package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/plotlab/pyqa/internal/project"
	pathutils "github.com/plotlab/pyqa/internal/utils/path"
)

const (
	workingDirectoryErrorTemplateConstant = "unable to determine working directory: %w"
	projectRootErrorTemplateConstant      = "unable to locate project root: %w"
	projectMetadataErrorTemplateConstant  = "unable to load project metadata: %w"
)

var targetsHomeExpander = pathutils.NewHomeExpander()

// ResolveProjectPaths locates the project containing rootOverride, or the
// current working directory when rootOverride is empty, and derives the tool
// targets from the manifest's package name.
func ResolveProjectPaths(locator ProjectLocator, rootOverride string) (project.Paths, error) {
	startingDirectory := targetsHomeExpander.Expand(strings.TrimSpace(rootOverride))
	if len(startingDirectory) == 0 {
		workingDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return project.Paths{}, fmt.Errorf(workingDirectoryErrorTemplateConstant, workingDirectoryError)
		}
		startingDirectory = workingDirectory
	}

	projectRoot, locateError := ResolveProjectLocator(locator).Locate(startingDirectory)
	if locateError != nil {
		return project.Paths{}, fmt.Errorf(projectRootErrorTemplateConstant, locateError)
	}

	metadata, metadataError := project.LoadMetadata(projectRoot)
	if metadataError != nil {
		return project.Paths{}, fmt.Errorf(projectMetadataErrorTemplateConstant, metadataError)
	}

	return project.ResolvePaths(projectRoot, metadata.PackageName), nil
}
