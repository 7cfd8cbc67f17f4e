package ambient

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBar(t *testing.T) {
	tests := []struct {
		name       string
		percent    int
		width      int
		wantFilled int
	}{
		{name: "80 percent at width 25", percent: 80, width: 25, wantFilled: 20},
		{name: "empty", percent: 0, width: 25, wantFilled: 0},
		{name: "full", percent: 100, width: 25, wantFilled: 25},
		{name: "rounds down", percent: 33, width: 25, wantFilled: 8},
		{name: "narrow bar", percent: 50, width: 10, wantFilled: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := RenderBar(tt.percent, tt.width)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "#"))
			// Fixed total width regardless of fill: brackets, bar, space, "NNN%".
			assert.Len(t, bar, tt.width+2+5)
		})
	}
}

func TestProgressLine(t *testing.T) {
	line := ProgressLine(21, 50, 150, 25)
	assert.Equal(t, "Brightness:  21% | Target:  50% | Lux:   150 | [#####                    ]  21%", line)
}
