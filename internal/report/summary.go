package report

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
)

const (
	reportReadErrorTemplateConstant = "unable to read report %s: %w"
	invalidReportTemplateConstant   = "report %s is not valid JSON"
	nonArrayReportTemplateConstant  = "report %s does not contain a diagnostics array"
	ruleCodePathConstant            = "code"
	fileNamePathConstant            = "filename"
	ruleCountTemplateConstant       = "%s: %d"
)

// RuleCount pairs a lint rule code with the number of diagnostics reported for it.
type RuleCount struct {
	Code  string
	Count int
}

// Summary describes the diagnostics remaining in a ruff JSON report.
type Summary struct {
	ReportExists      bool
	IssueCount        int
	AffectedFiles     int
	DiagnosticsByRule []RuleCount
}

// String renders a per-rule breakdown suitable for log output.
func (summary Summary) String() string {
	rendered := fmt.Sprintf("%d issue(s) across %d file(s)", summary.IssueCount, summary.AffectedFiles)
	for _, ruleCount := range summary.DiagnosticsByRule {
		rendered += ", " + fmt.Sprintf(ruleCountTemplateConstant, ruleCount.Code, ruleCount.Count)
	}
	return rendered
}

// Summarize reads the ruff JSON report at reportPath and aggregates its
// diagnostics by rule code. A missing report is not an error; ruff only writes
// one when the check ran, so the summary simply records that nothing exists.
func Summarize(reportPath string) (Summary, error) {
	reportContent, readError := os.ReadFile(reportPath)
	if readError != nil {
		if errors.Is(readError, os.ErrNotExist) {
			return Summary{}, nil
		}
		return Summary{}, fmt.Errorf(reportReadErrorTemplateConstant, reportPath, readError)
	}

	if !gjson.ValidBytes(reportContent) {
		return Summary{}, fmt.Errorf(invalidReportTemplateConstant, reportPath)
	}

	diagnostics := gjson.ParseBytes(reportContent)
	if !diagnostics.IsArray() {
		return Summary{}, fmt.Errorf(nonArrayReportTemplateConstant, reportPath)
	}
	countsByRule := make(map[string]int)
	affectedFiles := make(map[string]struct{})
	issueCount := 0

	diagnostics.ForEach(func(_ gjson.Result, diagnostic gjson.Result) bool {
		issueCount++
		countsByRule[diagnostic.Get(ruleCodePathConstant).String()]++
		fileName := diagnostic.Get(fileNamePathConstant).String()
		if len(fileName) > 0 {
			affectedFiles[fileName] = struct{}{}
		}
		return true
	})

	ruleCounts := make([]RuleCount, 0, len(countsByRule))
	for ruleCode, count := range countsByRule {
		ruleCounts = append(ruleCounts, RuleCount{Code: ruleCode, Count: count})
	}
	sort.Slice(ruleCounts, func(firstIndex int, secondIndex int) bool {
		if ruleCounts[firstIndex].Count != ruleCounts[secondIndex].Count {
			return ruleCounts[firstIndex].Count > ruleCounts[secondIndex].Count
		}
		return ruleCounts[firstIndex].Code < ruleCounts[secondIndex].Code
	})

	return Summary{
		ReportExists:      true,
		IssueCount:        issueCount,
		AffectedFiles:     len(affectedFiles),
		DiagnosticsByRule: ruleCounts,
	}, nil
}
