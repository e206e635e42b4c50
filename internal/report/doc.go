// Package report summarizes the JSON diagnostics report ruff writes during a
// style check so the remaining findings can be surfaced after autofixing.
package report
