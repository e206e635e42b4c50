// Package project resolves the on-disk layout of a Python project managed
// through pyproject.toml. It locates the project root, reads the declared
// package name, and derives the directories the quality tools operate on.
package project
