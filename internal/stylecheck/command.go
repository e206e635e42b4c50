package stylecheck

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/plotlab/pyqa/internal/tools"
)

const (
	commandUseConstant                    = "check"
	commandShortDescriptionConstant       = "Check the project style with ruff and apply autofixes"
	commandLongDescriptionConstant        = "check lints the package and tests directories with ruff, applies automatic fixes, and writes a JSON diagnostics report to the project root."
	rootFlagNameConstant                  = "root"
	rootFlagUsageConstant                 = "Project directory to check (defaults to the nearest pyproject.toml)"
	fixFlagNameConstant                   = "fix"
	fixFlagUsageConstant                  = "Apply automatic fixes while checking"
	commandExecutionErrorTemplateConstant = "style check failed: %w"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ServiceProvider constructs a style check service from dependencies.
type ServiceProvider func(dependencies ServiceDependencies) (*Service, error)

type commandOptions struct {
	projectRoot string
	applyFixes  bool
}

// CommandBuilder assembles the check Cobra command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	ToolExecutor                 tools.ToolExecutor
	ProjectLocator               tools.ProjectLocator
	ServiceProvider              ServiceProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the check command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandUseConstant,
		Short:         commandShortDescriptionConstant,
		Long:          commandLongDescriptionConstant,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE:          builder.runCheck,
	}

	command.Flags().String(rootFlagNameConstant, "", rootFlagUsageConstant)
	command.Flags().Bool(fixFlagNameConstant, DefaultCommandConfiguration().ApplyFixes, fixFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) runCheck(command *cobra.Command, _ []string) error {
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

	if _, checkError := service.Check(command.Context(), paths, CheckOptions{ApplyFixes: options.applyFixes}); checkError != nil {
		return fmt.Errorf(commandExecutionErrorTemplateConstant, checkError)
	}

	return nil
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) commandOptions {
	configuration := builder.resolveConfiguration()

	projectRoot := configuration.ProjectRoot
	applyFixes := configuration.ApplyFixes
	if command != nil {
		if command.Flags().Changed(rootFlagNameConstant) {
			flagValue, _ := command.Flags().GetString(rootFlagNameConstant)
			projectRoot = strings.TrimSpace(flagValue)
		}
		if command.Flags().Changed(fixFlagNameConstant) {
			applyFixes, _ = command.Flags().GetBool(fixFlagNameConstant)
		}
	}

	return commandOptions{projectRoot: projectRoot, applyFixes: applyFixes}
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
