// Package input resolves create-module options from flags and prompts.
package input

import (
	"context"

	"github.com/opmodel/modkit/internal/templates"
)

// Option keys, in prompt order.
const (
	KeyName        = "name"
	KeyDisplayName = "display_name"
	KeyDescription = "description"
)

// Options is the resolved option set.
type Options struct {
	// Name is the module name as entered.
	Name string

	// DisplayName is the human-readable module name.
	DisplayName string

	// Description is the one-line module description.
	Description string

	// Names holds the derived name forms of Name.
	Names templates.Names
}

// Flags holds option values given on the command line.
// A nil field was not supplied and may be prompted for.
type Flags struct {
	Name        *string
	DisplayName *string
	Description *string
}

// Defaults pre-fills prompts. In non-interactive runs a default is used for a
// missing flag.
type Defaults struct {
	Name        string
	DisplayName string
	Description string
}

// Field is one prompt.
type Field struct {
	// Key is the option key (name, display_name, description).
	Key string

	// Title is the question shown to the user.
	Title string

	// Description is shown below the title.
	Description string

	// Placeholder is shown while the input is empty.
	Placeholder string

	// Value receives the answer. A non-empty value pre-fills the input.
	Value *string

	// Validate rejects an answer, which makes the prompter ask again.
	Validate func(string) error
}

// Prompter asks the user for field values.
// It returns errors.ErrCancelled when the user aborts.
type Prompter interface {
	Prompt(ctx context.Context, fields []Field) error
}
