package ambient

import (
	"fmt"
	"strings"
)

// RenderBar draws a fixed-width progress bar for a brightness percentage,
// e.g. "[####################     ]  80%" for 80% at width 25.
func RenderBar(percent, width int) string {
	filled := percent * width / 100
	return fmt.Sprintf("[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat(" ", width-filled), percent)
}

// ProgressLine formats the single status line emitted after each adjustment.
// The log encoder supplies the timestamp.
func ProgressLine(current, target, lux, width int) string {
	return fmt.Sprintf("Brightness: %3d%% | Target: %3d%% | Lux: %5d | %s", current, target, lux, RenderBar(current, width))
}
