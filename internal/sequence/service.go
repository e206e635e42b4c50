package sequence

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/formatter"
	"github.com/plotlab/pyqa/internal/project"
	"github.com/plotlab/pyqa/internal/report"
	"github.com/plotlab/pyqa/internal/strictlint"
	"github.com/plotlab/pyqa/internal/stylecheck"
	"github.com/plotlab/pyqa/internal/tools"
	"github.com/plotlab/pyqa/internal/ui"
	"github.com/plotlab/pyqa/internal/utils"
)

const (
	toolExecutorMissingMessageConstant   = "tool executor not configured"
	unknownOperationTemplateConstant     = "unknown pipeline operation %q"
	formatBannerConstant                 = "Formatting sources with ruff"
	styleCheckBannerConstant             = "Checking style with ruff"
	strictLintBannerConstant             = "Strict linting with pylint"
	stepSucceededTemplateConstant        = "%s completed"
	stepFailedTemplateConstant           = "%s failed: %v"
	remainingIssuesTemplateConstant      = "Remaining style issues: %s"
	pipelineSucceededMessageConstant     = "All quality steps completed"
	pipelineFailedTemplateConstant       = "%d of %d quality step(s) failed"
	pipelineFailedErrorTemplateConstant  = "quality pipeline completed with %d failing step(s)"
	pipelineStepCompletedMessageConstant = "Pipeline step completed"
	pipelineStepFailedMessageConstant    = "Pipeline step failed"
	pipelineOperationFieldConstant       = "operation"
	pipelineProjectRootFieldConstant     = "project_root"
)

var errToolExecutorMissing = errors.New(toolExecutorMissingMessageConstant)

var operationBanners = map[OperationType]string{
	OperationTypeFormat:     formatBannerConstant,
	OperationTypeStyleCheck: styleCheckBannerConstant,
	OperationTypeStrictLint: strictLintBannerConstant,
}

func operationBanner(operation OperationType) string {
	if bannerText, known := operationBanners[operation]; known {
		return bannerText
	}
	return string(operation)
}

// BannerPrinter renders step banners and per-step status lines.
type BannerPrinter interface {
	PrintBanner(text string)
	PrintSuccessLine(text string)
	PrintFailureLine(text string)
}

// ServiceDependencies describes required collaborators for the pipeline.
type ServiceDependencies struct {
	Logger        *zap.Logger
	ToolExecutor  tools.ToolExecutor
	BannerPrinter BannerPrinter
	OutputWriter  io.Writer
}

// RunOptions configures a single pipeline run.
type RunOptions struct {
	Pipeline     PipelineDefinition
	FailOnIssues bool
}

// StepOutcome records how a single pipeline step finished.
type StepOutcome struct {
	Operation OperationType
	Failure   error
}

// RunResult aggregates the outcomes of a pipeline run.
type RunResult struct {
	Outcomes     []StepOutcome
	StyleSummary report.Summary
}

// FailedSteps returns the outcomes whose step did not complete cleanly.
func (result RunResult) FailedSteps() []StepOutcome {
	var failed []StepOutcome
	for _, outcome := range result.Outcomes {
		if outcome.Failure != nil {
			failed = append(failed, outcome)
		}
	}
	return failed
}

// PipelineFailedError reports steps that failed during an otherwise completed run.
type PipelineFailedError struct {
	Outcomes []StepOutcome
}

// Error describes how many steps failed.
func (failure PipelineFailedError) Error() string {
	return fmt.Sprintf(pipelineFailedErrorTemplateConstant, len(failure.Outcomes))
}

// Unwrap exposes the underlying step failures.
func (failure PipelineFailedError) Unwrap() []error {
	causes := make([]error, 0, len(failure.Outcomes))
	for _, outcome := range failure.Outcomes {
		causes = append(causes, outcome.Failure)
	}
	return causes
}

// Service runs the ordered quality steps against a project tree.
type Service struct {
	logger            *zap.Logger
	bannerPrinter     BannerPrinter
	formatterService  *formatter.Service
	styleCheckService *stylecheck.Service
	strictLintService *strictlint.Service
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

	bannerPrinter := dependencies.BannerPrinter
	if bannerPrinter == nil {
		outputWriter := dependencies.OutputWriter
		if outputWriter == nil {
			outputWriter = os.Stdout
		}
		bannerPrinter = ui.NewBannerWriter(utils.NewFlushingWriter(outputWriter))
	}

	formatterService, formatterError := formatter.NewService(formatter.ServiceDependencies{Logger: logger, ToolExecutor: dependencies.ToolExecutor})
	if formatterError != nil {
		return nil, formatterError
	}
	styleCheckService, styleCheckError := stylecheck.NewService(stylecheck.ServiceDependencies{Logger: logger, ToolExecutor: dependencies.ToolExecutor})
	if styleCheckError != nil {
		return nil, styleCheckError
	}
	strictLintService, strictLintError := strictlint.NewService(strictlint.ServiceDependencies{Logger: logger, ToolExecutor: dependencies.ToolExecutor})
	if strictLintError != nil {
		return nil, strictLintError
	}

	return &Service{
		logger:            logger,
		bannerPrinter:     bannerPrinter,
		formatterService:  formatterService,
		styleCheckService: styleCheckService,
		strictLintService: strictLintService,
	}, nil
}

// Run executes every pipeline step in order. A failing step is recorded and
// the run continues with the next step; only context cancellation stops the
// pipeline early. The returned error is nil unless FailOnIssues is set and at
// least one step failed.
func (service *Service) Run(executionContext context.Context, paths project.Paths, options RunOptions) (RunResult, error) {
	pipeline := options.Pipeline
	if len(pipeline.Steps) == 0 {
		pipeline = DefaultPipelineDefinition()
	}

	styleOptions, styleOptionsError := pipeline.StyleCheckOptions()
	if styleOptionsError != nil {
		return RunResult{}, styleOptionsError
	}

	var result RunResult
	for _, step := range pipeline.Steps {
		service.bannerPrinter.PrintBanner(operationBanner(step.Operation))

		stepFailure := service.runStep(executionContext, step.Operation, paths, styleOptions, &result)
		result.Outcomes = append(result.Outcomes, StepOutcome{Operation: step.Operation, Failure: stepFailure})

		if stepFailure == nil {
			service.bannerPrinter.PrintSuccessLine(fmt.Sprintf(stepSucceededTemplateConstant, operationBanner(step.Operation)))
			service.logger.Info(
				pipelineStepCompletedMessageConstant,
				zap.String(pipelineOperationFieldConstant, string(step.Operation)),
				zap.String(pipelineProjectRootFieldConstant, paths.Root),
			)
			continue
		}

		if errors.Is(stepFailure, context.Canceled) || errors.Is(stepFailure, context.DeadlineExceeded) {
			return result, stepFailure
		}

		service.bannerPrinter.PrintFailureLine(fmt.Sprintf(stepFailedTemplateConstant, operationBanner(step.Operation), stepFailure))
		service.logger.Warn(
			pipelineStepFailedMessageConstant,
			zap.String(pipelineOperationFieldConstant, string(step.Operation)),
			zap.String(pipelineProjectRootFieldConstant, paths.Root),
			zap.Error(stepFailure),
		)
	}

	service.printSummary(result)

	failedSteps := result.FailedSteps()
	if options.FailOnIssues && len(failedSteps) > 0 {
		return result, PipelineFailedError{Outcomes: failedSteps}
	}
	return result, nil
}

func (service *Service) runStep(executionContext context.Context, operation OperationType, paths project.Paths, styleOptions StyleCheckStepOptions, result *RunResult) error {
	switch operation {
	case OperationTypeFormat:
		_, formatError := service.formatterService.Format(executionContext, paths)
		return formatError
	case OperationTypeStyleCheck:
		outcome, checkError := service.styleCheckService.Check(executionContext, paths, stylecheck.CheckOptions{ApplyFixes: styleOptions.ApplyFixes})
		result.StyleSummary = outcome.Summary
		return checkError
	case OperationTypeStrictLint:
		_, lintError := service.strictLintService.Lint(executionContext, paths)
		return lintError
	default:
		return fmt.Errorf(unknownOperationTemplateConstant, string(operation))
	}
}

func (service *Service) printSummary(result RunResult) {
	if result.StyleSummary.ReportExists && result.StyleSummary.IssueCount > 0 {
		service.bannerPrinter.PrintFailureLine(fmt.Sprintf(remainingIssuesTemplateConstant, result.StyleSummary))
	}

	failedSteps := result.FailedSteps()
	if len(failedSteps) == 0 {
		service.bannerPrinter.PrintSuccessLine(pipelineSucceededMessageConstant)
		return
	}
	service.bannerPrinter.PrintFailureLine(fmt.Sprintf(pipelineFailedTemplateConstant, len(failedSteps), len(result.Outcomes)))
}
