package templates

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/modkit/internal/errors"
)

// DefaultTemplateName is the template used when --template is not specified.
const DefaultTemplateName = "basic"

// templates is the internal registry of built-in template sets.
var templates = map[string]Template{
	"basic": {
		Name:        "basic",
		Description: "Module class, index guard and composer manifest",
		Default:     true,
	},
	"extended": {
		Name:        "extended",
		Description: "Basic plus README, service class and test skeleton",
		Default:     false,
	},
}

// Get returns a template by name.
// Returns a not found error if the template does not exist.
func Get(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, oerrors.NewNotFoundError(
			fmt.Sprintf("unknown template %q", name),
			"",
			fmt.Sprintf("Valid templates: %s", strings.Join(ValidTemplates(), ", ")),
		)
	}
	return t, nil
}

// List returns all available templates.
func List() []Template {
	return []Template{
		templates["basic"],
		templates["extended"],
	}
}

// GetDefault returns the default template.
func GetDefault() Template {
	return templates[DefaultTemplateName]
}

// ValidTemplates returns all template names.
func ValidTemplates() []string {
	return []string{"basic", "extended"}
}
