package input

import (
	"context"
	"errors"
	"fmt"

	oerrors "github.com/opmodel/modkit/internal/errors"
	"github.com/opmodel/modkit/internal/output"
	"github.com/opmodel/modkit/internal/templates"
)

// option describes how one option is asked for and validated.
type option struct {
	key         string
	flag        string
	title       string
	description string
	placeholder string
	validate    func(string) error
}

var options = []option{
	{
		key:         KeyName,
		flag:        "--name",
		title:       "Module name",
		description: "Letters, optionally separated by single underscores.",
		placeholder: "widget_box",
		validate:    templates.ValidateModuleName,
	},
	{
		key:         KeyDisplayName,
		flag:        "--display_name",
		title:       "Display name",
		placeholder: "Widget Box",
		validate: func(v string) error {
			return templates.ValidateNonEmpty(KeyDisplayName, v)
		},
	},
	{
		key:         KeyDescription,
		flag:        "--description",
		title:       "Description",
		placeholder: "A box of widgets",
		validate: func(v string) error {
			return templates.ValidateNonEmpty(KeyDescription, v)
		},
	},
}

// Resolver turns flags, defaults and answers into a validated option set.
type Resolver struct {
	prompter    Prompter
	defaults    Defaults
	interactive bool
}

// NewResolver creates a resolver. When interactive is false the prompter is
// never called.
func NewResolver(prompter Prompter, defaults Defaults, interactive bool) *Resolver {
	return &Resolver{
		prompter:    prompter,
		defaults:    defaults,
		interactive: interactive,
	}
}

// Resolve validates supplied flags, prompts for the missing options in order
// name, display_name, description, and normalizes the module name. Supplied
// flags go through the same validators as prompt answers.
func (r *Resolver) Resolve(ctx context.Context, flags Flags) (*Options, error) {
	values := map[string]*string{
		KeyName:        flags.Name,
		KeyDisplayName: flags.DisplayName,
		KeyDescription: flags.Description,
	}
	defaults := map[string]string{
		KeyName:        r.defaults.Name,
		KeyDisplayName: r.defaults.DisplayName,
		KeyDescription: r.defaults.Description,
	}

	resolved := make(map[string]string, len(options))
	var fields []Field

	for _, s := range options {
		if v := values[s.key]; v != nil {
			if err := s.validate(*v); err != nil {
				return nil, oerrors.NewValidationError(err.Error(), s.flag, "")
			}
			resolved[s.key] = *v
			continue
		}

		if !r.interactive {
			def := defaults[s.key]
			if def == "" {
				return nil, oerrors.NewValidationError(
					fmt.Sprintf("%s is required", s.key),
					s.flag,
					fmt.Sprintf("Pass %s or run without --no-input in a terminal.", s.flag),
				)
			}
			if err := s.validate(def); err != nil {
				return nil, oerrors.NewValidationError(
					fmt.Sprintf("configured default: %v", err), "defaults."+s.key, "")
			}
			resolved[s.key] = def
			continue
		}

		answer := defaults[s.key]
		fields = append(fields, Field{
			Key:         s.key,
			Title:       s.title,
			Description: s.description,
			Placeholder: s.placeholder,
			Value:       &answer,
			Validate:    s.validate,
		})
	}

	if len(fields) > 0 {
		output.Debug("prompting for options", "count", len(fields))
		if err := r.prompter.Prompt(ctx, fields); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil, oerrors.ErrCancelled
			}
			return nil, err
		}
		for _, f := range fields {
			if err := f.Validate(*f.Value); err != nil {
				return nil, oerrors.NewValidationError(err.Error(), f.Key, "")
			}
			resolved[f.Key] = *f.Value
		}
	}

	name := resolved[KeyName]
	return &Options{
		Name:        name,
		DisplayName: resolved[KeyDisplayName],
		Description: resolved[KeyDescription],
		Names:       templates.NewNames(name),
	}, nil
}
