package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeTime returns a human-friendly relative time string for past
// timestamps, such as "just now", "25m ago", "3h ago", or "2d ago".
func RelativeTime(t time.Time) string {
	return RelativeTimeFrom(t, time.Now())
}

// RelativeTimeFrom returns a human-friendly relative time string from a
// reference time.
func RelativeTimeFrom(t time.Time, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		days := int(math.Round(diff.Hours() / 24))
		if days < 14 {
			return fmt.Sprintf("%dd ago", days)
		}
		return fmt.Sprintf("%dw ago", days/7)
	}
}

// Score formats a unit-interval value as a two-decimal string.
func Score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
