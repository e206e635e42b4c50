package ui

import (
	"io"

	"github.com/fatih/color"
)

const (
	bannerTemplateConstant      = "==> %s\n"
	summaryLineTemplateConstant = "    %s\n"
)

// BannerWriter renders colored status banners and summary lines between pipeline steps.
type BannerWriter struct {
	writer       io.Writer
	bannerColor  *color.Color
	successColor *color.Color
	failureColor *color.Color
}

// NewBannerWriter constructs a BannerWriter targeting the provided writer.
func NewBannerWriter(writer io.Writer) *BannerWriter {
	return &BannerWriter{
		writer:       writer,
		bannerColor:  color.New(color.FgCyan, color.Bold),
		successColor: color.New(color.FgGreen),
		failureColor: color.New(color.FgRed, color.Bold),
	}
}

// PrintBanner writes the step banner announcing the upcoming tool invocation.
func (bannerWriter *BannerWriter) PrintBanner(title string) {
	bannerWriter.bannerColor.Fprintf(bannerWriter.writer, bannerTemplateConstant, title)
}

// PrintSuccessLine writes a green summary line for a step that completed cleanly.
func (bannerWriter *BannerWriter) PrintSuccessLine(text string) {
	bannerWriter.successColor.Fprintf(bannerWriter.writer, summaryLineTemplateConstant, text)
}

// PrintFailureLine writes a red summary line for a step that reported issues.
func (bannerWriter *BannerWriter) PrintFailureLine(text string) {
	bannerWriter.failureColor.Fprintf(bannerWriter.writer, summaryLineTemplateConstant, text)
}
