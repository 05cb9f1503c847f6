package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/trace"
)

const minColumn = 3

// RenderBars draws the array of step as rows-high vertical bars with the
// value and index of every element underneath. An empty array renders
// noData instead.
func RenderBars(step trace.Step, t Theme, rows int, noData string) string {
	if len(step.Array) == 0 {
		return lipgloss.NewStyle().Foreground(t.Muted).Render(noData)
	}

	values := make([]string, len(step.Array))
	col := minColumn
	for i, v := range step.Array {
		values[i] = strconv.FormatFloat(v, 'g', -1, 64)
		col = max(col, len(values[i]), len(strconv.Itoa(i)))
	}

	heights := step.Array.Scale(rows)
	blank := strings.Repeat(" ", col)

	var b strings.Builder
	for r := rows; r >= 1; r-- {
		for i, h := range heights {
			if i > 0 {
				b.WriteByte(' ')
			}
			if h >= r {
				style := lipgloss.NewStyle().Foreground(t.Color(step.Highlight(i)))
				b.WriteString(style.Render(strings.Repeat("█", col)))
			} else {
				b.WriteString(blank)
			}
		}
		b.WriteByte('\n')
	}

	label := lipgloss.NewStyle().Foreground(t.Text)
	index := lipgloss.NewStyle().Foreground(t.Muted)
	for i, v := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(label.Render(pad(v, col)))
	}
	b.WriteByte('\n')
	for i := range values {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(index.Render(pad(strconv.Itoa(i), col)))
	}
	return b.String()
}

// pad centers s in a field width wide.
func pad(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
