package sequence

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/tools"
)

const (
	commandUseConstant                    = "run"
	commandShortDescriptionConstant       = "Run the full quality pipeline"
	commandLongDescriptionConstant        = "run formats the project with ruff, checks style with autofixes and a JSON report, and finishes with a strict pylint pass. Steps always run in that order and a failing step never skips the remaining ones."
	rootFlagNameConstant                  = "root"
	rootFlagUsageConstant                 = "Project directory to process (defaults to the nearest pyproject.toml)"
	failOnIssuesFlagNameConstant          = "fail-on-issues"
	failOnIssuesFlagUsageConstant         = "Exit non-zero when any quality step reports issues"
	pipelineFlagNameConstant              = "pipeline"
	pipelineFlagUsageConstant             = "Path to a YAML pipeline definition overriding the default step order"
	commandExecutionErrorTemplateConstant = "quality pipeline failed: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ServiceProvider constructs a pipeline service from dependencies.
type ServiceProvider func(dependencies ServiceDependencies) (*Service, error)

type commandOptions struct {
	projectRoot  string
	failOnIssues bool
	pipelinePath string
}

// CommandBuilder assembles the run Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ToolExecutor                 tools.ToolExecutor
	ProjectLocator               tools.ProjectLocator
	ServiceProvider              ServiceProvider
	BannerPrinter                BannerPrinter
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the run command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.runPipeline,
	}

	command.Flags().String(rootFlagNameConstant, "", rootFlagUsageConstant)
	command.Flags().Bool(failOnIssuesFlagNameConstant, DefaultCommandConfiguration().FailOnIssues, failOnIssuesFlagUsageConstant)
	command.Flags().String(pipelineFlagNameConstant, "", pipelineFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runPipeline(command *cobra.Command, _ []string) error {
	options := builder.parseOptions(command)

	logger := builder.resolveLogger()

	toolExecutor, executorError := tools.ResolveToolExecutor(builder.ToolExecutor, logger, builder.humanReadableLoggingEnabled())
	if executorError != nil {
		return executorError
	}

	paths, pathsError := tools.ResolveProjectPaths(builder.ProjectLocator, options.projectRoot)
	if pathsError != nil {
		return pathsError
	}

	pipeline := DefaultPipelineDefinition()
	if len(options.pipelinePath) > 0 {
		loadedPipeline, loadError := LoadPipelineDefinition(options.pipelinePath)
		if loadError != nil {
			return loadError
		}
		pipeline = loadedPipeline
	}

	service, serviceError := builder.resolveService(ServiceDependencies{
		Logger:        logger,
		ToolExecutor:  toolExecutor,
		BannerPrinter: builder.BannerPrinter,
		OutputWriter:  command.OutOrStdout(),
	})
	if serviceError != nil {
		return serviceError
	}

	runOptions := RunOptions{Pipeline: pipeline, FailOnIssues: options.failOnIssues}
	if _, runError := service.Run(command.Context(), paths, runOptions); runError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, runError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) commandOptions {
	configuration := builder.resolveConfiguration()

	options := commandOptions{
		projectRoot:  configuration.ProjectRoot,
		failOnIssues: configuration.FailOnIssues,
		pipelinePath: configuration.PipelinePath,
	}
	if command == nil {
		return options
	}

	if command.Flags().Changed(rootFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(rootFlagNameConstant)
		options.projectRoot = strings.TrimSpace(flagValue)
	}
	if command.Flags().Changed(failOnIssuesFlagNameConstant) {
		options.failOnIssues, _ = command.Flags().GetBool(failOnIssuesFlagNameConstant)
	}
	if command.Flags().Changed(pipelineFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(pipelineFlagNameConstant)
		options.pipelinePath = strings.TrimSpace(flagValue)
	}

	return options
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider != nil {
		if logger := builder.LoggerProvider(); logger != nil {
			return logger
		}
	}
	return zap.NewNop()
}

func (builder *CommandBuilder) resolveService(dependencies ServiceDependencies) (*Service, error) {
	if builder.ServiceProvider != nil {
		return builder.ServiceProvider(dependencies)
	}
	return NewService(dependencies)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}
