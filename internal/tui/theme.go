// Package tui provides the Bubble Tea viewer used to browse the generated
// environment report in the terminal.
package tui

import (
	"image/color"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
)

// IsAccessible returns true when the environment requests accessible (no-color) output.
// Respects the NO_COLOR standard (https://no-color.org) and ACCESSIBLE=1.
func IsAccessible() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("ACCESSIBLE") == "1"
}

// Theme holds the lipgloss styles used by the viewer.
type Theme struct {
	Primary   color.Color
	Secondary color.Color

	Success color.Color
	Error   color.Color
	Muted   color.Color

	HelpKey lipgloss.Style
}

// DefaultTheme returns the standard envcheck visual theme.
func DefaultTheme() Theme {
	primary := lipgloss.Color("#7C3AED")   // violet
	secondary := lipgloss.Color("#06B6D4") // cyan
	success := lipgloss.Color("#10B981")   // emerald
	errColor := lipgloss.Color("#EF4444")  // red
	muted := lipgloss.Color("#6B7280")     // gray

	return Theme{
		Primary:   primary,
		Secondary: secondary,
		Success:   success,
		Error:     errColor,
		Muted:     muted,

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(muted),
	}
}

// SectionBanner renders a bold section header with a horizontal rule.
//
//	──────────────────────────────
//	▶ Title
func (t *Theme) SectionBanner(title string) string {
	rule := lipgloss.NewStyle().Foreground(t.Secondary).Render(strings.Repeat("─", 40))
	heading := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("▶ " + title)
	return "\n" + rule + "\n  " + heading + "\n"
}
