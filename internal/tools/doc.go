// Package tools defines the executor abstraction shared by the quality
// commands and the helpers that resolve default collaborators.
package tools
