package stylecheck

import "strings"

const (
	configurationRootKeyConstant = "root"
	configurationFixKeyConstant  = "fix"
)

// CommandConfiguration captures persisted configuration for the check command.
type CommandConfiguration struct {
	ProjectRoot string `mapstructure:"root"`
	ApplyFixes  bool   `mapstructure:"fix"`
}

// DefaultCommandConfiguration returns baseline configuration values for style checking.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{ProjectRoot: "", ApplyFixes: true}
}

// DefaultConfigurationValues produces Viper defaults for the check command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationRootKeyConstant: defaults.ProjectRoot,
		rootKey + "." + configurationFixKeyConstant:  defaults.ApplyFixes,
	}
}

// Sanitize trims configured values.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.ProjectRoot = strings.TrimSpace(configuration.ProjectRoot)
	return sanitized
}
