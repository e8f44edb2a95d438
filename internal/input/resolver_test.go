package input_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/modkit/internal/errors"
	"github.com/opmodel/modkit/internal/input"
	"github.com/opmodel/modkit/internal/testutil"
)

func str(s string) *string {
	return &s
}

func TestResolve_AllFlags(t *testing.T) {
	prompter := &testutil.ScriptedPrompter{}
	r := input.NewResolver(prompter, input.Defaults{}, true)

	opts, err := r.Resolve(context.Background(), input.Flags{
		Name:        str("widget_box"),
		DisplayName: str("Widget Box"),
		Description: str("A box of widgets"),
	})
	require.NoError(t, err)

	assert.Empty(t, prompter.Asked)
	assert.Equal(t, "widget_box", opts.Name)
	assert.Equal(t, "Widget Box", opts.DisplayName)
	assert.Equal(t, "A box of widgets", opts.Description)
	assert.Equal(t, "widgetBox", opts.Names.Camel)
	assert.Equal(t, "widgetbox", opts.Names.Lower)
}

func TestResolve_PromptsMissingInOrder(t *testing.T) {
	prompter := &testutil.ScriptedPrompter{
		Answers: map[string][]string{
			input.KeyName:        {"widget_box"},
			input.KeyDescription: {"A box of widgets"},
		},
	}
	r := input.NewResolver(prompter, input.Defaults{}, true)

	opts, err := r.Resolve(context.Background(), input.Flags{
		DisplayName: str("Widget Box"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{input.KeyName, input.KeyDescription}, prompter.Asked)
	assert.Equal(t, "widget_box", opts.Name)
	assert.Equal(t, "A box of widgets", opts.Description)
}

func TestResolve_PromptRejectsInvalidAnswers(t *testing.T) {
	prompter := &testutil.ScriptedPrompter{
		Answers: map[string][]string{
			input.KeyName:        {"widget-box", "9lives", "widget_box"},
			input.KeyDisplayName: {"", "   ", "Widget Box"},
			input.KeyDescription: {"A box of widgets"},
		},
	}
	r := input.NewResolver(prompter, input.Defaults{}, true)

	opts, err := r.Resolve(context.Background(), input.Flags{})
	require.NoError(t, err)

	assert.Equal(t, []string{"widget-box", "9lives"}, prompter.Rejected[input.KeyName])
	assert.Equal(t, []string{"", "   "}, prompter.Rejected[input.KeyDisplayName])
	assert.Equal(t, "widget_box", opts.Name)
	assert.Equal(t, "Widget Box", opts.DisplayName)
}

func TestResolve_FlagValuesValidated(t *testing.T) {
	tests := []struct {
		name      string
		flags     input.Flags
		wantField string
	}{
		{
			name:      "invalid name",
			flags:     input.Flags{Name: str("widget-box")},
			wantField: "--name",
		},
		{
			name:      "empty display name",
			flags:     input.Flags{Name: str("widget"), DisplayName: str("")},
			wantField: "--display_name",
		},
		{
			name: "blank description",
			flags: input.Flags{
				Name:        str("widget"),
				DisplayName: str("Widget"),
				Description: str("  "),
			},
			wantField: "--description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompter := &testutil.ScriptedPrompter{}
			r := input.NewResolver(prompter, input.Defaults{}, true)

			_, err := r.Resolve(context.Background(), tt.flags)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))

			var detail *oerrors.DetailError
			require.True(t, errors.As(err, &detail))
			assert.Equal(t, tt.wantField, detail.Field)
			assert.Empty(t, prompter.Asked)
		})
	}
}

func TestResolve_Cancelled(t *testing.T) {
	prompter := &testutil.ScriptedPrompter{Cancel: true}
	r := input.NewResolver(prompter, input.Defaults{}, true)

	opts, err := r.Resolve(context.Background(), input.Flags{})
	assert.Nil(t, opts)
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
	assert.Equal(t, oerrors.ExitGeneralError, oerrors.ExitCodeFromError(err))
}

func TestResolve_ContextCancelled(t *testing.T) {
	prompter := &testutil.ScriptedPrompter{
		Answers: map[string][]string{input.KeyName: {"widget"}},
	}
	r := input.NewResolver(prompter, input.Defaults{}, true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Resolve(ctx, input.Flags{})
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
}

func TestResolve_NonInteractive(t *testing.T) {
	t.Run("missing without default", func(t *testing.T) {
		prompter := &testutil.ScriptedPrompter{}
		r := input.NewResolver(prompter, input.Defaults{}, false)

		_, err := r.Resolve(context.Background(), input.Flags{Name: str("widget")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.Contains(t, err.Error(), "display_name is required")
		assert.Empty(t, prompter.Asked)
	})

	t.Run("defaults fill missing", func(t *testing.T) {
		r := input.NewResolver(&testutil.ScriptedPrompter{}, input.Defaults{
			DisplayName: "Widget",
			Description: "Widgets",
		}, false)

		opts, err := r.Resolve(context.Background(), input.Flags{Name: str("widget")})
		require.NoError(t, err)
		assert.Equal(t, "Widget", opts.DisplayName)
		assert.Equal(t, "Widgets", opts.Description)
	})

	t.Run("invalid default", func(t *testing.T) {
		r := input.NewResolver(&testutil.ScriptedPrompter{}, input.Defaults{Name: "bad-name"}, false)

		_, err := r.Resolve(context.Background(), input.Flags{})
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})
}

func TestResolve_DefaultsPrefillPrompts(t *testing.T) {
	var seen map[string]string
	prompter := promptFunc(func(_ context.Context, fields []input.Field) error {
		seen = map[string]string{}
		for _, f := range fields {
			seen[f.Key] = *f.Value
		}
		return nil
	})
	r := input.NewResolver(prompter, input.Defaults{
		Name:        "widget",
		DisplayName: "Widget",
		Description: "Widgets",
	}, true)

	opts, err := r.Resolve(context.Background(), input.Flags{})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		input.KeyName:        "widget",
		input.KeyDisplayName: "Widget",
		input.KeyDescription: "Widgets",
	}, seen)
	assert.Equal(t, "widget", opts.Name)
}

func TestResolve_UnvalidatedAnswerRejected(t *testing.T) {
	prompter := promptFunc(func(_ context.Context, fields []input.Field) error {
		for _, f := range fields {
			*f.Value = ""
		}
		return nil
	})
	r := input.NewResolver(prompter, input.Defaults{}, true)

	_, err := r.Resolve(context.Background(), input.Flags{})
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

type promptFunc func(ctx context.Context, fields []input.Field) error

func (f promptFunc) Prompt(ctx context.Context, fields []input.Field) error {
	return f(ctx, fields)
}
