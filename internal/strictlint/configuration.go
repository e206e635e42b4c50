package strictlint

import "strings"

const (
	configurationRootKeyConstant = "root"
)

// CommandConfiguration captures persisted configuration for the lint command.
type CommandConfiguration struct {
	ProjectRoot string `mapstructure:"root"`
}

// DefaultCommandConfiguration returns baseline configuration values for strict linting.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{ProjectRoot: ""}
}

// DefaultConfigurationValues produces Viper defaults for the lint command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationRootKeyConstant: defaults.ProjectRoot,
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.ProjectRoot = strings.TrimSpace(configuration.ProjectRoot)
	return sanitized
}
