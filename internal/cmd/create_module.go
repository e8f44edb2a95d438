package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/opmodel/modkit/internal/config"
	oerrors "github.com/opmodel/modkit/internal/errors"
	"github.com/opmodel/modkit/internal/input"
	"github.com/opmodel/modkit/internal/output"
	"github.com/opmodel/modkit/internal/templates"
)

// NewCreateModuleCmd creates the create-module command.
func NewCreateModuleCmd(cfg *config.GlobalConfig, prompter input.Prompter) *cobra.Command {
	var flags CreateFlags

	c := &cobra.Command{
		Use:   "create-module",
		Short: "Create a new module from a template",
		Long: `Create a new module from a template tree.

Missing values for --name, --display_name and --description are prompted
for. Every value is validated the same way whether it comes from a flag or
a prompt.

Templates:
  basic     Module class, index guard and composer manifest (default)
  extended  Basic plus README, service class and test skeleton

Examples:
  # Prompt for everything
  modkit create-module

  # Non-interactive
  modkit create-module -n widget_box -dn "Widget Box" -d "A box of widgets" --no-input

  # Use a template directory and see what would be written
  modkit create-module -n widget_box --template-dir ./bin --dry-run`,
		Args: strictArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runCreateModule(c, cfg, prompter, &flags)
		},
	}

	flags.AddTo(c)

	return c
}

// templateSource is the resolved template tree.
type templateSource struct {
	fs    afero.Fs
	root  string
	label string
}

func runCreateModule(c *cobra.Command, g *config.GlobalConfig, prompter input.Prompter, flags *CreateFlags) error {
	ctx := c.Context()

	format, ok := output.ParseOutputFormat(flags.Output)
	if !ok {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				fmt.Sprintf("unknown output format %q", flags.Output),
				"--output",
				fmt.Sprintf("Valid formats: %s", strings.Join(output.ValidFormats(), ", ")),
			),
		}
	}

	cfg := g.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	resolved := resolveSettings(c, g, cfg, flags)
	config.LogResolvedValues([]config.ResolvedValue{resolved.template, resolved.templateDir, resolved.dir})

	src, err := openTemplateSource(resolved)
	if err != nil {
		return exitError(err)
	}

	resolver := input.NewResolver(prompter, input.Defaults{
		Name:        cfg.Defaults.Name,
		DisplayName: cfg.Defaults.DisplayName,
		Description: cfg.Defaults.Description,
	}, !flags.NoInput)

	opts, err := resolver.Resolve(ctx, flags.InputFlags(c))
	if err != nil {
		return exitError(err)
	}

	targetDir := filepath.Join(resolved.dir.Value, opts.Names.Lower)
	log := output.ModuleLogger(opts.Names.Lower)
	log.Debug("resolved options",
		"name", opts.Name,
		"camel", opts.Names.Camel,
		"template", src.label,
		"target", targetDir,
		"dry-run", flags.DryRun)

	gen := templates.NewGenerator(templates.GenerateOptions{
		Source:      src.fs,
		SourceRoot:  src.root,
		Dest:        destination(flags.DryRun),
		TargetDir:   targetDir,
		Names:       opts.Names,
		DisplayName: opts.DisplayName,
		Description: opts.Description,
		Force:       flags.Force,
	})

	var result *templates.GenerateResult
	genErr := output.RunWithSpinner(ctx, func() error {
		var err error
		result, err = gen.Generate(ctx)
		return err
	},
		output.WithTitle(fmt.Sprintf("Creating module %s", opts.Names.Lower)),
		output.WithDisabled(g.Verbose || format != output.FormatText),
	)

	if result == nil {
		if genErr == nil {
			genErr = fmt.Errorf("generation produced no result")
		}
		return exitError(genErr)
	}

	report := buildReport(opts, src.label, result, flags.DryRun)
	text, err := output.FormatReport(report, format)
	if err != nil {
		return exitError(err)
	}
	output.Print(text)

	if genErr != nil {
		return &oerrors.ExitError{
			Code:    oerrors.ExitCodeFromError(genErr),
			Err:     genErr,
			Printed: true,
		}
	}
	return nil
}

// resolvedSettings holds the template and destination settings.
type resolvedSettings struct {
	template    config.ResolvedValue
	templateDir config.ResolvedValue
	dir         config.ResolvedValue
}

// resolveSettings applies flag > env > config file > default to the template
// and destination settings.
func resolveSettings(c *cobra.Command, g *config.GlobalConfig, cfg *config.Config, flags *CreateFlags) resolvedSettings {
	return resolvedSettings{
		template: config.ResolveValue(config.ResolveOptions{
			Key:         "template",
			FlagValue:   flags.Template,
			FlagSet:     c.Flags().Changed("template"),
			EnvVar:      "MODKIT_TEMPLATE",
			ConfigValue: g.FileValue("template", cfg.Template),
			Default:     templates.GetDefault().Name,
		}),
		templateDir: config.ResolveValue(config.ResolveOptions{
			Key:         "templateDir",
			FlagValue:   flags.TemplateDir,
			FlagSet:     c.Flags().Changed("template-dir"),
			EnvVar:      "MODKIT_TEMPLATE_DIR",
			ConfigValue: g.FileValue("templateDir", cfg.TemplateDir),
		}),
		dir: config.ResolveValue(config.ResolveOptions{
			Key:         "dir",
			FlagValue:   flags.Dir,
			FlagSet:     c.Flags().Changed("dir"),
			EnvVar:      "MODKIT_DIR",
			ConfigValue: g.FileValue("dir", cfg.Dir),
			Default:     config.DefaultDir,
		}),
	}
}

// openTemplateSource picks the template tree. A template directory wins unless
// --template was given on the command line and the directory was not.
func openTemplateSource(s resolvedSettings) (*templateSource, error) {
	useDir := s.templateDir.Value != "" &&
		(s.templateDir.Source == config.SourceFlag || s.template.Source != config.SourceFlag)

	if useDir {
		dir, err := config.ExpandPath(s.templateDir.Value)
		if err != nil {
			return nil, fmt.Errorf("expanding template directory: %w", err)
		}
		fs, root, err := templates.Directory(dir)
		if err != nil {
			return nil, err
		}
		return &templateSource{fs: fs, root: root, label: dir}, nil
	}

	fs, root, err := templates.Builtin(s.template.Value)
	if err != nil {
		return nil, err
	}
	return &templateSource{fs: fs, root: root, label: s.template.Value}, nil
}

// destination returns the filesystem modules are written to. A dry run reads
// through to disk and keeps every write in memory.
func destination(dryRun bool) afero.Fs {
	if dryRun {
		return afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(afero.NewOsFs()), afero.NewMemMapFs())
	}
	return afero.NewOsFs()
}

func buildReport(opts *input.Options, template string, result *templates.GenerateResult, dryRun bool) *output.Report {
	report := &output.Report{
		Module:      opts.Names.Lower,
		DisplayName: opts.DisplayName,
		Description: opts.Description,
		Template:    template,
		TargetDir:   result.TargetDir,
		DryRun:      dryRun,
		Files:       make([]output.FileReport, 0, len(result.Files)),
	}

	for _, f := range result.Files {
		fr := output.FileReport{
			Path:   f.Path,
			Source: f.Source,
			Status: string(f.Status),
		}
		if f.Err != nil {
			fr.Error = f.Err.Error()
		}
		if dryRun && f.Status != templates.StatusFailed {
			fr.Status = output.StatusPlanned
		}
		report.Files = append(report.Files, fr)
	}

	return report
}
