package project

import "path/filepath"

const (
	testsDirectoryNameConstant = "tests"
	reportFileNameConstant     = "ruff_report.json"
)

// Paths holds the directories and files the quality tools operate on.
type Paths struct {
	Root             string
	PackageDirectory string
	TestsDirectory   string
	ReportFile       string
}

// ResolvePaths derives the tool targets for a project rooted at rootDirectory
// whose import package is named packageName.
func ResolvePaths(rootDirectory string, packageName string) Paths {
	return Paths{
		Root:             rootDirectory,
		PackageDirectory: filepath.Join(rootDirectory, packageName),
		TestsDirectory:   filepath.Join(rootDirectory, testsDirectoryNameConstant),
		ReportFile:       filepath.Join(rootDirectory, reportFileNameConstant),
	}
}
