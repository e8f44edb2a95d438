package templates

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

var underscoreLetter = regexp.MustCompile(`_[a-zA-Z]`)

// ToCamelCase replaces every "_x" with "X". Names without such a pair are
// returned unchanged, which makes the conversion idempotent.
func ToCamelCase(name string) string {
	return underscoreLetter.ReplaceAllStringFunc(name, func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// capitalize uppercases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// NewNames derives every name form from a raw module name.
// The name is expected to have passed ValidateModuleName.
func NewNames(raw string) Names {
	camel := ToCamelCase(raw)
	lower := strings.ToLower(camel)

	return Names{
		Raw:    raw,
		Camel:  camel,
		Lower:  lower,
		Pascal: capitalize(lower),
		Snake:  strcase.ToSnake(camel),
		Kebab:  strcase.ToKebab(camel),
	}
}
