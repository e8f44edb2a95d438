package templates

import (
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/valyala/fasttemplate"
)

// Template tokens recognized inside {{ }} markers.
const (
	TokenLowercase   = "moduleName_lowercase"
	TokenPascalcase  = "moduleName_pascalcase"
	TokenCamelcase   = "moduleName_camelcase"
	TokenSnakecase   = "moduleName_snakecase"
	TokenKebabcase   = "moduleName_kebabcase"
	TokenRaw         = "moduleName"
	TokenCurrentYear = "currentYear"
	TokenDisplayName = "display_name"
	TokenDescription = "description"
)

const (
	startTag = "{{"
	endTag   = "}}"

	// templateMarker prefixes the real extension of a template file (.pphp -> .php).
	templateMarker = ".p"

	// moduleWord is replaced by the lowercase module name in file names.
	moduleWord = "module"
)

// Tokens builds the token mapping for a module.
func Tokens(names Names, displayName, description string, now time.Time) map[string]string {
	return map[string]string{
		TokenLowercase:   names.Lower,
		TokenPascalcase:  names.Pascal,
		TokenCamelcase:   names.Camel,
		TokenSnakecase:   names.Snake,
		TokenKebabcase:   names.Kebab,
		TokenRaw:         names.Raw,
		TokenCurrentYear: fmt.Sprintf("%04d", now.Year()),
		TokenDisplayName: displayName,
		TokenDescription: description,
	}
}

// Renderer substitutes {{ token }} markers in a single pass.
type Renderer struct {
	tokens map[string]string
}

// NewRenderer creates a new renderer with the given token mapping.
func NewRenderer(tokens map[string]string) *Renderer {
	return &Renderer{tokens: tokens}
}

// Render returns content with every known token replaced. Unknown markers and
// an unterminated "{{" are kept verbatim. Substituted values are not rescanned.
func (r *Renderer) Render(content string) string {
	return fasttemplate.ExecuteFuncString(content, startTag, endTag, r.tag)
}

// RenderFile renders a template file's bytes.
func (r *Renderer) RenderFile(content []byte) []byte {
	return []byte(r.Render(string(content)))
}

// tag resolves the text between "{{" and the next "}}". Only the text after
// the last "{{" names the token, so stray braces in front of a marker are
// written verbatim and the marker is still replaced.
func (r *Renderer) tag(w io.Writer, tag string) (int, error) {
	full := startTag + tag
	i := strings.LastIndex(full, startTag)
	prefix, name := full[:i], full[i+len(startTag):]

	if v, ok := r.tokens[strings.TrimSpace(name)]; ok {
		return io.WriteString(w, prefix+v)
	}
	return io.WriteString(w, full+endTag)
}

// markedExtensions are the extensions a .p marker may precede. Any other
// extension starting with "p" (.png, .py) is a plain file name.
var markedExtensions = map[string]bool{
	"php": true, "tpl": true, "twig": true, "json": true, "xml": true,
	"yml": true, "yaml": true, "md": true, "txt": true, "html": true,
	"js": true, "css": true, "scss": true, "sql": true, "ini": true,
	"sh": true, "py": true, "png": true, "jpg": true, "gif": true,
	"svg": true, "ico": true,
}

// TargetName computes the output file name for a template file name: a
// trailing .tmpl is dropped, a .p marker before a known extension is removed
// (.pphp -> .php, .ppng -> .png), and every "module" becomes the lowercase
// module name.
func TargetName(name, lower string) string {
	name = strings.TrimSuffix(name, ".tmpl")

	ext := path.Ext(name)
	if bare, ok := strings.CutPrefix(ext, templateMarker); ok && markedExtensions[bare] {
		name = strings.TrimSuffix(name, ext) + "." + bare
	}

	return strings.ReplaceAll(name, moduleWord, lower)
}
