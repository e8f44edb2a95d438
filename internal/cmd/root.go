// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opmodel/modkit/internal/config"
	oerrors "github.com/opmodel/modkit/internal/errors"
	"github.com/opmodel/modkit/internal/input"
	"github.com/opmodel/modkit/internal/output"
	"github.com/opmodel/modkit/internal/version"
)

// globalFlags holds the persistent flags of the root command.
type globalFlags struct {
	config     string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for modkit.
func NewRootCmd() *cobra.Command {
	return newRootCmd(input.NewHuhPrompter())
}

func newRootCmd(prompter input.Prompter) *cobra.Command {
	var flags globalFlags
	cfg := &config.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "modkit",
		Short: "Module scaffolding tool",
		Long: `modkit creates ready-to-use module skeletons from template trees.

It copies a template directory, renames files and substitutes
{{ token }} placeholders with the module name, year, display name
and description.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          strictArgs,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, &flags)
		},
		RunE: func(c *cobra.Command, _ []string) error {
			_ = c.Help()
			return &oerrors.ExitError{
				Code:    oerrors.ExitValidationError,
				Err:     oerrors.Wrap(oerrors.ErrValidation, "a command is required"),
				Printed: true,
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MODKIT_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddCommand(
		NewCreateModuleCmd(cfg, prompter),
		NewTemplatesCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, g *config.GlobalConfig, flags *globalFlags) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	loader := config.NewLoader()
	cfg, err := loader.LoadWithDefaults(configPath.Value)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: &oerrors.DetailError{
				Type:     "invalid config",
				Message:  err.Error(),
				Location: configPath.Value,
				Cause:    oerrors.ErrValidation,
			},
		}
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{
		Verbose: flags.verbose,
		Writer:  c.ErrOrStderr(),
	}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	g.Config = cfg
	g.Loader = loader
	g.ConfigPath = configPath.Value
	g.Verbose = flags.verbose

	info := version.Get()
	output.Debug("modkit started", "version", info.Version, "commit", info.GitCommit)
	if exists, err := config.ConfigFileExists(configPath.Value); err == nil && !exists {
		output.Debug("no config file, using defaults", "path", configPath.Value)
	}
	config.LogResolvedValues([]config.ResolvedValue{configPath})

	return nil
}

// strictArgs rejects positional arguments, which cobra also uses for unknown
// commands, with a usage error.
func strictArgs(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	c.PrintErrln(c.UsageString())
	if c.HasSubCommands() {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  fmt.Errorf("unknown command %q for %q", args[0], c.CommandPath()),
		}
	}
	return &oerrors.ExitError{
		Code: oerrors.ExitValidationError,
		Err:  fmt.Errorf("%q accepts no arguments, received %q", c.CommandPath(), args[0]),
	}
}

// flagError turns flag parsing failures into usage errors.
func flagError(c *cobra.Command, err error) error {
	c.PrintErrln(c.UsageString())
	return &oerrors.ExitError{
		Code: oerrors.ExitValidationError,
		Err:  err,
	}
}

// exitError attaches the exit code matching err.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}
