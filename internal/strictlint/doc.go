// Package strictlint runs pylint over the project package directory and
// exposes the lint command.
package strictlint
