// Package styles contains Lip Gloss style definitions for registrar's CLI
// output. Styles degrade to plain text on non-TTY output, so captured
// command output stays assertable in tests.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Header styles section headings such as schedule titles.
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#54A0FF"})

	// Success styles confirmation lines.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#73F59F"})

	// Warning styles non-fatal diagnostics such as clash warnings.
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#9A7D0A", Dark: "#FECA57"})

	// Error styles failure lines.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#FF8787"})

	// Muted styles dividers and secondary text.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#696969", Dark: "#696969"})
)

// Divider returns the visual separator printed between schedule blocks.
func Divider() string {
	return Muted.Render(strings.Repeat("-", 36))
}
