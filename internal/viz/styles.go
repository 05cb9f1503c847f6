package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header      lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	muted       lipgloss.Style
	description lipgloss.Style
	sorted      lipgloss.Style
	selected    lipgloss.Style
	panel       lipgloss.Style
	help        lipgloss.Style
	playing     lipgloss.Style
	paused      lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		label:       lipgloss.NewStyle().Foreground(t.Muted).Width(14),
		value:       lipgloss.NewStyle().Foreground(t.Text),
		muted:       lipgloss.NewStyle().Foreground(t.Muted),
		description: lipgloss.NewStyle().Foreground(t.Secondary).MarginTop(1),
		sorted:      lipgloss.NewStyle().Foreground(t.Sorted).Bold(true).MarginTop(1),
		selected:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 2).
			Width(52),
		help:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true).MarginTop(1),
		playing: lipgloss.NewStyle().Bold(true).Foreground(t.Swapped),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(t.Comparing),
	}
}

// ProgressBar renders percent (0-100) as a bar width cells wide.
func ProgressBar(percent, width int, t Theme) string {
	filled := percent * width / 100
	filled = max(0, min(filled, width))

	bar := lipgloss.NewStyle().Foreground(t.Secondary).Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
	return bar + rest
}

// Separator renders a decorative horizontal rule.
func Separator(width int, t Theme) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return lipgloss.NewStyle().Foreground(t.Muted).Render(left + " ◆ " + right)
}
