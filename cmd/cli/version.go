package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const (
	versionCommandUseConstant              = "version"
	versionCommandShortDescriptionConstant = "Print the pyqa version"
	versionOutputTemplateConstant          = "pyqa version: %s\n"
	developmentVersionConstant             = "development"
)

func (application *Application) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:           versionCommandUseConstant,
		Short:         versionCommandShortDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			resolvedVersion := developmentVersionConstant
			if application.versionResolver != nil {
				resolvedVersion = application.versionResolver()
			}
			fmt.Fprintf(command.OutOrStdout(), versionOutputTemplateConstant, resolvedVersion)
			return nil
		},
	}
}

func resolveBuildVersion() string {
	buildInfo, available := debug.ReadBuildInfo()
	if !available || len(buildInfo.Main.Version) == 0 || buildInfo.Main.Version == "(devel)" {
		return developmentVersionConstant
	}
	return buildInfo.Main.Version
}
