package stylecheck

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/execshell"
	"github.com/plotlab/pyqa/internal/project"
	"github.com/plotlab/pyqa/internal/report"
	"github.com/plotlab/pyqa/internal/tools"
)

const (
	checkSubcommandConstant            = "check"
	outputFlagConstant                 = "-o"
	outputFormatFlagConstant           = "--output-format"
	jsonOutputFormatConstant           = "json"
	fixFlagConstant                    = "--fix"
	noCacheFlagConstant                = "--no-cache"
	toolExecutorMissingMessageConstant = "tool executor not configured"
	checkCompletedMessageConstant      = "Style check completed"
	reportFileFieldConstant            = "report_file"
	remainingIssuesFieldConstant       = "remaining_issues"
	affectedFilesFieldConstant         = "affected_files"
	reportSummaryFailedMessageConstant = "Unable to summarize style report"
)

var errToolExecutorMissing = errors.New(toolExecutorMissingMessageConstant)

// ServiceDependencies describes required collaborators for style checking.
type ServiceDependencies struct {
	Logger       *zap.Logger
	ToolExecutor tools.ToolExecutor
}

// CheckOptions configures a single style check run.
type CheckOptions struct {
	ApplyFixes bool
}

// CheckOutcome captures the tool result alongside the summarized report.
type CheckOutcome struct {
	Result  execshell.ExecutionResult
	Summary report.Summary
}

// Service runs ruff check over the project sources and summarizes the report.
type Service struct {
	logger       *zap.Logger
	toolExecutor tools.ToolExecutor
}

// NewService constructs a Service with the provided dependencies.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.ToolExecutor == nil {
		return nil, errToolExecutorMissing
	}

	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{logger: logger, toolExecutor: dependencies.ToolExecutor}, nil
}

// Check lints the package and tests directories, writing a JSON report next to
// the manifest. Autofixing is applied unless options disable it, and result
// caching is always disabled so the report reflects the current tree. A
// non-zero tool exit is returned to the caller; the report summary is still
// produced because ruff writes the report before exiting.
func (service *Service) Check(executionContext context.Context, paths project.Paths, options CheckOptions) (CheckOutcome, error) {
	arguments := []string{
		checkSubcommandConstant,
		paths.PackageDirectory,
		paths.TestsDirectory,
		outputFlagConstant, paths.ReportFile,
		outputFormatFlagConstant, jsonOutputFormatConstant,
	}
	if options.ApplyFixes {
		arguments = append(arguments, fixFlagConstant)
	}
	arguments = append(arguments, noCacheFlagConstant)

	commandDetails := execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: paths.Root,
	}

	executionResult, executionError := service.toolExecutor.ExecuteRuff(executionContext, commandDetails)
	outcome := CheckOutcome{Result: executionResult}

	summary, summaryError := report.Summarize(paths.ReportFile)
	if summaryError != nil {
		service.logger.Warn(reportSummaryFailedMessageConstant, zap.Error(summaryError))
	} else {
		outcome.Summary = summary
	}

	if executionError != nil {
		return outcome, executionError
	}

	service.logger.Info(
		checkCompletedMessageConstant,
		zap.String(reportFileFieldConstant, paths.ReportFile),
		zap.Int(remainingIssuesFieldConstant, outcome.Summary.IssueCount),
		zap.Int(affectedFilesFieldConstant, outcome.Summary.AffectedFiles),
	)
	return outcome, nil
}
