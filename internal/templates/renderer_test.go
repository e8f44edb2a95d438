package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testTokens() map[string]string {
	return Tokens(NewNames("widget_box"), "Widget Box", "A box of widgets",
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
}

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer(testTokens())

	content := "{{ moduleName_lowercase }}|{{ moduleName_pascalcase }}|{{ currentYear }}|{{ display_name }}|{{ description }}"
	got := r.Render(content)

	assert.Equal(t, "widgetbox|Widgetbox|2024|Widget Box|A box of widgets", got)
	assert.NotContains(t, got, "{{")
}

func TestRenderer_ExtraTokens(t *testing.T) {
	r := NewRenderer(testTokens())

	got := r.Render("{{ moduleName }} {{ moduleName_camelcase }} {{ moduleName_snakecase }} {{ moduleName_kebabcase }}")
	assert.Equal(t, "widget_box widgetBox widget_box widget-box", got)
}

func TestRenderer_Whitespace(t *testing.T) {
	r := NewRenderer(testTokens())

	assert.Equal(t, "widgetbox", r.Render("{{moduleName_lowercase}}"))
	assert.Equal(t, "widgetbox", r.Render("{{   moduleName_lowercase  }}"))
}

func TestRenderer_UnknownTokensKept(t *testing.T) {
	r := NewRenderer(testTokens())

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown token", "a {{ nope }} b", "a {{ nope }} b"},
		{"unterminated", "a {{ moduleName_lowercase", "a {{ moduleName_lowercase"},
		{"no markers", "plain text", "plain text"},
		{"repeated", "{{ currentYear }}-{{ currentYear }}", "2024-2024"},
		{"extra braces", "{{{ moduleName_lowercase }}}", "{widgetbox}"},
		{"stray open marker", "{{ x {{ moduleName_lowercase }}", "{{ x widgetbox"},
		{"stray open unknown", "{{ x {{ nope }} {{ currentYear }}", "{{ x {{ nope }} 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Render(tt.content))
		})
	}
}

func TestRenderer_ValuesNotRescanned(t *testing.T) {
	tokens := testTokens()
	tokens[TokenDescription] = "uses {{ display_name }} literally"
	r := NewRenderer(tokens)

	got := r.Render("{{ description }}")
	assert.Equal(t, "uses {{ display_name }} literally", got)
}

func TestTokens_YearPadded(t *testing.T) {
	tokens := Tokens(NewNames("foo"), "Foo", "d", time.Date(999, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "0999", tokens[TokenCurrentYear])
}

func TestTargetName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		lower string
		want  string
	}{
		{"module php", "module.pphp", "foo", "foo.php"},
		{"composer json", "composer.pjson", "foo", "composer.json"},
		{"index php", "index.pphp", "foo", "index.php"},
		{"module prefix", "moduleService.pphp", "widgetbox", "widgetboxService.php"},
		{"markdown", "README.pmd", "foo", "README.md"},
		{"tmpl suffix", "module.pphp.tmpl", "foo", "foo.php"},
		{"no marker", "notes.txt", "foo", "notes.txt"},
		{"bare marker kept", "file.p", "foo", "file.p"},
		{"no extension", "module", "foo", "foo"},
		{"png kept", "logo.png", "foo", "logo.png"},
		{"py kept", "module.py", "foo", "foo.py"},
		{"marked png", "logo.ppng", "foo", "logo.png"},
		{"unknown marked extension kept", "data.pxyz", "foo", "data.pxyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetName(tt.input, tt.lower))
		})
	}
}
