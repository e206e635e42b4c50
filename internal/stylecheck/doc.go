// Package stylecheck runs ruff check with autofixing over the project package
// and test directories, writes the JSON diagnostics report, and exposes the
// check command.
package stylecheck
