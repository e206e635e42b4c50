package sequence

import "strings"

const (
	configurationRootKeyConstant         = "root"
	configurationFailOnIssuesKeyConstant = "fail_on_issues"
	configurationPipelineKeyConstant     = "pipeline"
)

// CommandConfiguration captures persisted configuration for the run command.
type CommandConfiguration struct {
	ProjectRoot  string `mapstructure:"root"`
	FailOnIssues bool   `mapstructure:"fail_on_issues"`
	PipelinePath string `mapstructure:"pipeline"`
}

// DefaultCommandConfiguration returns baseline configuration values for the pipeline.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{ProjectRoot: "", FailOnIssues: false, PipelinePath: ""}
}

// DefaultConfigurationValues produces Viper defaults for the run command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationRootKeyConstant:         defaults.ProjectRoot,
		rootKey + "." + configurationFailOnIssuesKeyConstant: defaults.FailOnIssues,
		rootKey + "." + configurationPipelineKeyConstant:     defaults.PipelinePath,
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.ProjectRoot = strings.TrimSpace(configuration.ProjectRoot)
	sanitized.PipelinePath = strings.TrimSpace(configuration.PipelinePath)
	return sanitized
}
