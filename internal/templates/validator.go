package templates

import (
	"fmt"
	"regexp"
	"strings"
)

// moduleNameRegex accepts letters, optionally split by single underscores.
var moduleNameRegex = regexp.MustCompile(`^[a-zA-Z]+(_[a-zA-Z]+)*$`)

// ValidateModuleName checks if a module name is valid.
func ValidateModuleName(name string) error {
	if name == "" {
		return fmt.Errorf("module name cannot be empty")
	}

	if !moduleNameRegex.MatchString(name) {
		return fmt.Errorf("invalid module name %q: use letters only, optionally separated by single underscores (e.g. widget_box)", name)
	}

	return nil
}

// ValidateNonEmpty checks that a free-text value is not blank.
func ValidateNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	return nil
}
