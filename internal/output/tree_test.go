package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("widget", nil))
}

func TestRenderFileTree_DirectoriesFirst(t *testing.T) {
	out := RenderFileTree("widget", map[string]string{
		"widget.php":           StatusCreated,
		"composer.json":        StatusCreated,
		"tests/widgetTest.php": StatusFailed,
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "widget/", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "├── tests/"))
	assert.True(t, strings.HasPrefix(lines[2], "│   └── widgetTest.php"))
	assert.Contains(t, lines[2], StatusFailed)
	assert.True(t, strings.HasPrefix(lines[3], "├── composer.json"))
	assert.True(t, strings.HasPrefix(lines[4], "└── widget.php"))
}

func TestRenderFileTree_StatusAligned(t *testing.T) {
	out := RenderFileTree("m", map[string]string{
		"a.php":    StatusCreated,
		"long.php": StatusPlanned,
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	// both statuses start at the same rune column
	col1 := len([]rune(lines[1])) - len(StatusCreated)
	col2 := len([]rune(lines[2])) - len(StatusPlanned)
	assert.Equal(t, col1, col2)
}

func TestRenderFileTree_FailedDirectoryWithEntries(t *testing.T) {
	files := map[string]string{
		"widgetbox.php":            StatusCreated,
		"src":                      StatusFailed,
		"src/widgetboxService.php": StatusFailed,
	}

	for range 20 {
		var out string
		require.NotPanics(t, func() { out = RenderFileTree("widgetbox", files) })

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, 4)
		assert.True(t, strings.HasPrefix(lines[1], "├── src/"))
		assert.Contains(t, lines[1], StatusFailed)
		assert.True(t, strings.HasPrefix(lines[2], "│   └── widgetboxService.php"))
		assert.True(t, strings.HasPrefix(lines[3], "└── widgetbox.php"))
	}
}
