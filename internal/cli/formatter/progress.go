package formatter

import (
	"fmt"
	"strings"
)

// RenderProgress draws a bar like [████░░░░] 45%. Color tracks the
// value: red below a third, yellow to two thirds, green above.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	if width < 2 {
		width = 2
	}

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
