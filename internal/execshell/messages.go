package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	commandLabelTemplateConstant            = "%s%s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	commandArgumentsJoinSeparatorConstant   = " "
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	pathsJoinSeparatorConstant              = ", "
	fallbackTargetLabelConstant             = "the project tree"
)

const (
	ruffFormatSubcommandNameConstant = "format"
	ruffCheckSubcommandNameConstant  = "check"
	ruffFixFlagConstant              = "--fix"
	ruffOutputFileFlagConstant       = "-o"
)

const (
	ruffFormatStartTemplateConstant            = "Formatting %s"
	ruffFormatSuccessTemplateConstant          = "Formatted %s"
	ruffFormatFailureTemplateConstant          = "Failed to format %s (exit code %d%s)"
	ruffFormatExecutionFailureTemplateConstant = "Unable to format %s: %s"
	ruffCheckStartTemplateConstant             = "Checking style in %s"
	ruffCheckFixStartTemplateConstant          = "Checking style and applying fixes in %s"
	ruffCheckSuccessTemplateConstant           = "Style check passed for %s"
	ruffCheckReportSuccessTemplateConstant     = "Style check passed for %s; report written to %s"
	ruffCheckFailureTemplateConstant           = "Style check reported issues in %s (exit code %d%s)"
	ruffCheckReportFailureTemplateConstant     = "Style check reported issues in %s (exit code %d%s); see %s"
	ruffCheckExecutionFailureTemplateConstant  = "Unable to check style in %s: %s"
	pylintStartTemplateConstant                = "Running strict lint over %s"
	pylintSuccessTemplateConstant              = "Strict lint passed for %s"
	pylintFailureTemplateConstant              = "Strict lint reported issues in %s (exit code %d%s)"
	pylintExecutionFailureTemplateConstant     = "Unable to run strict lint over %s: %s"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a completed command with a zero exit code.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	switch command.Name {
	case CommandRuff:
		return formatter.describeRuffMessage(command, result, failure, stage)
	case CommandPylint:
		return formatter.describePylintMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeRuffMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if len(command.Details.Arguments) == 0 {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case ruffFormatSubcommandNameConstant:
		return formatter.describeRuffFormatMessage(command, result, failure, stage)
	case ruffCheckSubcommandNameConstant:
		return formatter.describeRuffCheckMessage(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeRuffFormatMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	targetLabel := formatter.describeTargets(command.Details.Arguments[1:])
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(ruffFormatStartTemplateConstant, targetLabel)
	case messageStageSuccess:
		return fmt.Sprintf(ruffFormatSuccessTemplateConstant, targetLabel)
	case messageStageFailure:
		return fmt.Sprintf(ruffFormatFailureTemplateConstant, targetLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(ruffFormatExecutionFailureTemplateConstant, targetLabel, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeRuffCheckMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	targetLabel := formatter.describeTargets(arguments[1:])
	reportPath := findFlagValue(arguments, ruffOutputFileFlagConstant)
	appliesFixes := containsArgument(arguments, ruffFixFlagConstant)

	switch stage {
	case messageStageStart:
		if appliesFixes {
			return fmt.Sprintf(ruffCheckFixStartTemplateConstant, targetLabel)
		}
		return fmt.Sprintf(ruffCheckStartTemplateConstant, targetLabel)
	case messageStageSuccess:
		if len(reportPath) > 0 {
			return fmt.Sprintf(ruffCheckReportSuccessTemplateConstant, targetLabel, reportPath)
		}
		return fmt.Sprintf(ruffCheckSuccessTemplateConstant, targetLabel)
	case messageStageFailure:
		if len(reportPath) > 0 {
			return fmt.Sprintf(ruffCheckReportFailureTemplateConstant, targetLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError), reportPath)
		}
		return fmt.Sprintf(ruffCheckFailureTemplateConstant, targetLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(ruffCheckExecutionFailureTemplateConstant, targetLabel, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describePylintMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	targetLabel := formatter.describeTargets(command.Details.Arguments)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(pylintStartTemplateConstant, targetLabel)
	case messageStageSuccess:
		return fmt.Sprintf(pylintSuccessTemplateConstant, targetLabel)
	case messageStageFailure:
		return fmt.Sprintf(pylintFailureTemplateConstant, targetLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(pylintExecutionFailureTemplateConstant, targetLabel, formatter.describeFailure(failure))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatter.formatCommandLabel(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatCommandLabel(command ShellCommand) string {
	commandLabel := string(command.Name)
	if len(command.Details.Arguments) > 0 {
		commandLabel = fmt.Sprintf("%s %s", commandLabel, strings.Join(command.Details.Arguments, commandArgumentsJoinSeparatorConstant))
	}
	workingDirectorySuffix := formatter.formatWorkingDirectorySuffix(command)
	return fmt.Sprintf(commandLabelTemplateConstant, commandLabel, workingDirectorySuffix)
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

// describeTargets joins the non-flag arguments, which for ruff and pylint are
// the filesystem paths being inspected.
func (formatter CommandMessageFormatter) describeTargets(arguments []string) string {
	targets := make([]string, 0, len(arguments))
	skipNext := false
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if skipNext {
			skipNext = false
			continue
		}
		if len(trimmed) == 0 {
			continue
		}
		if strings.HasPrefix(trimmed, "-") {
			skipNext = flagExpectsValue(trimmed)
			continue
		}
		targets = append(targets, trimmed)
	}
	if len(targets) == 0 {
		return fallbackTargetLabelConstant
	}
	return strings.Join(targets, pathsJoinSeparatorConstant)
}

func flagExpectsValue(flag string) bool {
	switch flag {
	case ruffOutputFileFlagConstant, "--output-format":
		return true
	default:
		return false
	}
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}

func findFlagValue(arguments []string, flag string) string {
	for index := 0; index < len(arguments); index++ {
		if strings.TrimSpace(arguments[index]) == flag && index+1 < len(arguments) {
			return strings.TrimSpace(arguments[index+1])
		}
	}
	return emptyStringConstant
}
