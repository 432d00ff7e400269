package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/quietharbor/haven/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TierColor returns the lipgloss style corresponding to the given crisis tier.
func TierColor(tier domain.CrisisTier) lipgloss.Style {
	switch {
	case tier.AtLeast(domain.TierSevere):
		return StyleRed
	case tier.AtLeast(domain.TierModerate):
		return StyleYellow
	case tier == domain.TierLow:
		return StyleBlue
	default:
		return StyleGreen
	}
}

// TierIndicator returns a colored tier indicator string such as "● SEVERE".
func TierIndicator(tier domain.CrisisTier) string {
	return TierColor(tier).Render("● " + strings.ToUpper(string(tier)))
}

// LevelIndicator returns a colored safety level string such as "◆ ENHANCED".
func LevelIndicator(level domain.SafetyLevel) string {
	label := "◆ " + strings.ToUpper(string(level))
	switch level {
	case domain.SafetyMaximum:
		return StyleRed.Render(label)
	case domain.SafetyEnhanced:
		return StyleYellow.Render(label)
	case domain.SafetyMinimal:
		return StyleDim.Render(label)
	default:
		return StyleGreen.Render(label)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
