package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/modkit/internal/input"
	"github.com/opmodel/modkit/internal/output"
	"github.com/opmodel/modkit/internal/templates"
)

// CreateFlags holds the create-module flags.
type CreateFlags struct {
	Name        string
	DisplayName string
	Description string
	Template    string
	TemplateDir string
	Dir         string
	Force       bool
	DryRun      bool
	NoInput     bool
	Output      string
}

// AddTo registers the create-module flags on the given cobra command.
func (f *CreateFlags) AddTo(c *cobra.Command) {
	c.Flags().StringVarP(&f.Name, "name", "n", "",
		"Module name: letters, optionally separated by single underscores")
	c.Flags().StringVar(&f.DisplayName, "display_name", "",
		"Human-readable module name (short: -dn)")
	c.Flags().StringVarP(&f.Description, "description", "d", "",
		"One-line module description")
	c.Flags().StringVarP(&f.Template, "template", "t", templates.GetDefault().Name,
		fmt.Sprintf("Built-in template set (%s) (env: MODKIT_TEMPLATE)", strings.Join(templates.ValidTemplates(), ", ")))
	c.Flags().StringVar(&f.TemplateDir, "template-dir", "",
		"Template root on disk, overrides --template (env: MODKIT_TEMPLATE_DIR)")
	c.Flags().StringVar(&f.Dir, "dir", ".",
		"Parent directory of the generated module (env: MODKIT_DIR)")
	c.Flags().BoolVar(&f.Force, "force", false,
		"Overwrite files in a non-empty module directory")
	c.Flags().BoolVar(&f.DryRun, "dry-run", false,
		"Render in memory and print the plan without writing")
	c.Flags().BoolVar(&f.NoInput, "no-input", false,
		"Never prompt, fail when a value is missing")
	c.Flags().StringVarP(&f.Output, "output", "o", string(output.FormatText),
		fmt.Sprintf("Report format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// InputFlags returns the option values that were given on the command line.
func (f *CreateFlags) InputFlags(c *cobra.Command) input.Flags {
	var flags input.Flags
	if c.Flags().Changed("name") {
		flags.Name = &f.Name
	}
	if c.Flags().Changed("display_name") {
		flags.DisplayName = &f.DisplayName
	}
	if c.Flags().Changed("description") {
		flags.Description = &f.Description
	}
	return flags
}
