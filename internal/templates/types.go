// Package templates instantiates module skeletons from template trees.
package templates

import (
	"time"

	"github.com/spf13/afero"
)

// Template describes a built-in template set.
type Template struct {
	// Name is the template identifier (basic, extended).
	Name string

	// Description explains what the template generates.
	Description string

	// Default indicates if this is the default template when --template is omitted.
	Default bool
}

// Names holds every derived form of a module name.
type Names struct {
	// Raw is the name as the user typed it (e.g., "widget_box").
	Raw string

	// Camel is the normalized camelCase name (e.g., "widgetBox").
	Camel string

	// Lower is the lowercase form used for folders and file names (e.g., "widgetbox").
	Lower string

	// Pascal is Lower with its first letter uppercased (e.g., "Widgetbox").
	Pascal string

	// Snake is the snake_case form (e.g., "widget_box").
	Snake string

	// Kebab is the kebab-case form (e.g., "widget-box").
	Kebab string
}

// GenerateOptions configures module generation behavior.
type GenerateOptions struct {
	// Source is the filesystem holding the template tree.
	Source afero.Fs

	// SourceRoot is the template root inside Source.
	SourceRoot string

	// Dest is the filesystem the module is written to.
	Dest afero.Fs

	// TargetDir is the module directory inside Dest.
	TargetDir string

	// Names is the resolved module name.
	Names Names

	// DisplayName replaces {{ display_name }}.
	DisplayName string

	// Description replaces {{ description }}.
	Description string

	// Force allows writing into a non-empty target directory.
	Force bool

	// Workers bounds concurrent file jobs. Zero means one per CPU.
	Workers int

	// Now returns the generation time. Nil means time.Now.
	Now func() time.Time
}

// FileStatus is the outcome of one output entry.
type FileStatus string

const (
	// StatusCreated means the file did not exist before.
	StatusCreated FileStatus = "created"

	// StatusOverwritten means an existing file was truncated and rewritten.
	StatusOverwritten FileStatus = "overwritten"

	// StatusFailed means the entry could not be read or written.
	StatusFailed FileStatus = "failed"
)

// FileResult is the outcome of one template entry.
type FileResult struct {
	// Source is the template path relative to the template root.
	Source string

	// Path is the output path relative to the target directory.
	Path string

	// Status is the outcome.
	Status FileStatus

	// Err is set when Status is StatusFailed.
	Err error
}

// GenerateResult contains the result of module generation.
type GenerateResult struct {
	// TargetDir is the directory where files were written.
	TargetDir string

	// Files lists every template file in walk order.
	Files []FileResult

	// Dirs lists output directories relative to TargetDir, in walk order.
	Dirs []string
}

// Failed returns the entries that failed.
func (r *GenerateResult) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Status == StatusFailed {
			failed = append(failed, f)
		}
	}
	return failed
}
