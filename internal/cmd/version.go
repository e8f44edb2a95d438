package cmd

import (
	"github.com/spf13/cobra"

	"github.com/opmodel/modkit/internal/config"
	"github.com/opmodel/modkit/internal/output"
	"github.com/opmodel/modkit/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *config.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show modkit version information.

Displays:
  - modkit version, commit, and build date
  - Go version and platform`,
		Args: strictArgs,
		RunE: runVersion,
	}
}

func runVersion(_ *cobra.Command, _ []string) error {
	output.Println(version.Get().String())
	return nil
}
