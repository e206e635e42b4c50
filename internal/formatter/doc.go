// Package formatter runs ruff format over the project package and test
// directories and exposes the format command.
package formatter
