package formatter

import "strings"

const (
	configurationRootKeyConstant = "root"
)

// CommandConfiguration captures persisted configuration for the format command.
type CommandConfiguration struct {
	ProjectRoot string `mapstructure:"root"`
}

// DefaultCommandConfiguration returns baseline configuration values for formatting.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{ProjectRoot: ""}
}

// DefaultConfigurationValues produces Viper defaults for the format command.
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
