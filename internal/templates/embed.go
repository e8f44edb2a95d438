package templates

import (
	"embed"
	"fmt"
	"os"
	"path"

	"github.com/spf13/afero"

	oerrors "github.com/opmodel/modkit/internal/errors"
)

//go:embed all:builtin
var builtinFS embed.FS

// builtinRoot is the directory holding the built-in template sets.
const builtinRoot = "builtin"

// Builtin returns a read-only filesystem and root for a built-in template set.
func Builtin(name string) (afero.Fs, string, error) {
	if _, err := Get(name); err != nil {
		return nil, "", err
	}
	return afero.FromIOFS{FS: builtinFS}, path.Join(builtinRoot, name), nil
}

// Directory returns the OS filesystem rooted at a template directory on disk.
func Directory(dir string) (afero.Fs, string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", oerrors.NewNotFoundError(
				"template directory does not exist",
				dir,
				"Pass an existing directory to --template-dir or omit it to use a built-in template.",
			)
		}
		return nil, "", fmt.Errorf("checking template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, "", oerrors.NewValidationError(
			fmt.Sprintf("%s is not a directory", dir),
			"--template-dir",
			"",
		)
	}
	return afero.NewOsFs(), dir, nil
}
