// Package sequence orchestrates the full quality pipeline: formatting, style
// checking with autofixes, and strict linting, run in a fixed order with
// status banners between steps. A failing step never stops the pipeline.
package sequence
