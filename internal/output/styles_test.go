package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
		wantDim  bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: colorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "planned returns faint", status: StatusPlanned, wantDim: true},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: colorBoldRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestStatusStyle_Unknown(t *testing.T) {
	style := StatusStyle("something-else")
	assert.False(t, style.GetBold())
	assert.False(t, style.GetFaint())
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Module widget created")
	assert.True(t, strings.HasSuffix(out, "Module widget created"))
	assert.Contains(t, out, "✔")
}

func TestFormatCross(t *testing.T) {
	out := FormatCross("2 files failed")
	assert.Contains(t, out, "✘")
	assert.Contains(t, out, "2 files failed")
}
