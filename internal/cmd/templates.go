package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/modkit/internal/config"
	oerrors "github.com/opmodel/modkit/internal/errors"
	"github.com/opmodel/modkit/internal/output"
	"github.com/opmodel/modkit/internal/templates"
)

// templateEntry is one row of the templates listing.
type templateEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Default     bool   `json:"default" yaml:"default"`
}

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(_ *config.GlobalConfig) *cobra.Command {
	var outputFlag string

	c := &cobra.Command{
		Use:   "templates",
		Short: "List built-in template sets",
		Args:  strictArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTemplates(outputFlag)
		},
	}

	c.Flags().StringVarP(&outputFlag, "output", "o", string(output.FormatText),
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runTemplates(outputFlag string) error {
	format, ok := output.ParseOutputFormat(outputFlag)
	if !ok {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(fmt.Sprintf("unknown output format %q", outputFlag), "--output", ""),
		}
	}

	list := templates.List()
	entries := make([]templateEntry, 0, len(list))
	for _, t := range list {
		entries = append(entries, templateEntry{Name: t.Name, Description: t.Description, Default: t.Default})
	}

	if format != output.FormatText {
		text, err := output.FormatValue(entries, format)
		if err != nil {
			return fmt.Errorf("listing templates: %w", err)
		}
		output.Print(text)
		return nil
	}

	for _, e := range entries {
		line := output.StyleNoun.Render(fmt.Sprintf("%-10s", e.Name)) + "  " + e.Description
		if e.Default {
			line += output.StyleDim.Render(" (default)")
		}
		output.Println(line)
	}

	return nil
}
