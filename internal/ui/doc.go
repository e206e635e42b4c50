// Package ui provides helpers for formatting human-readable console output.
//
// The helpers translate tool lifecycle events into concise messages and render
// the colored step banners shown between pipeline stages, while detailed
// telemetry continues to flow through structured loggers.
package ui
