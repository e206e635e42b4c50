package formatter

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/tools"
)

const (
	commandUseConstant                    = "format"
	commandShortDescriptionConstant       = "Format the project sources with ruff"
	commandLongDescriptionConstant        = "format rewrites the package and tests directories in place using ruff format."
	rootFlagNameConstant                  = "root"
	rootFlagUsageConstant                 = "Project directory to format (defaults to the nearest pyproject.toml)"
	commandExecutionErrorTemplateConstant = "formatting failed: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ServiceProvider constructs a formatting service from dependencies.
type ServiceProvider func(dependencies ServiceDependencies) (*Service, error)

type commandOptions struct {
	projectRoot string
}

// CommandBuilder assembles the format Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ToolExecutor                 tools.ToolExecutor
	ProjectLocator               tools.ProjectLocator
	ServiceProvider              ServiceProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the format command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.runFormat,
	}

	command.Flags().String(rootFlagNameConstant, "", rootFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runFormat(command *cobra.Command, _ []string) error {
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

	service, serviceError := builder.resolveService(ServiceDependencies{Logger: logger, ToolExecutor: toolExecutor})
	if serviceError != nil {
		return serviceError
	}

	if _, formatError := service.Format(command.Context(), paths); formatError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, formatError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) commandOptions {
	configuration := builder.resolveConfiguration()

	projectRoot := configuration.ProjectRoot
	if command != nil && command.Flags().Changed(rootFlagNameConstant) {
		flagValue, _ := command.Flags().GetString(rootFlagNameConstant)
		projectRoot = strings.TrimSpace(flagValue)
	}

	return commandOptions{projectRoot: projectRoot}
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
