package export

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
)

// Palette holds the fill colors of an SVG frame.
type Palette struct {
	Background string
	Bar        string
	Comparing  string
	Swapped    string
	Sorted     string
	Text       string
}

var DefaultPalette = Palette{
	Background: "#0a0a0a",
	Bar:        "#3498db",
	Comparing:  "#e74c3c",
	Swapped:    "#2ecc71",
	Sorted:     "#f1c40f",
	Text:       "#e0e0e0",
}

func (p Palette) fill(h trace.Highlight) string {
	switch h {
	case trace.HighlightComparing:
		return p.Comparing
	case trace.HighlightSwapped:
		return p.Swapped
	case trace.HighlightSorted:
		return p.Sorted
	default:
		return p.Bar
	}
}

// StepToSVG draws step as a bar chart with its description as caption.
func StepToSVG(step trace.Step, description string, width, height int, p Palette) string {
	const (
		margin  = 20
		caption = 30
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, p.Background))

	n := len(step.Array)
	plotH := height - 2*margin - caption
	if n > 0 && plotH > 0 {
		slot := float64(width-2*margin) / float64(n)
		barW := slot * 0.8
		heights := step.Array.Scale(plotH)
		base := float64(margin + plotH)

		for i, h := range heights {
			x := float64(margin) + float64(i)*slot + (slot-barW)/2
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%d" fill="%s"/>
`, x, base-float64(h), barW, h, p.fill(step.Highlight(i))))
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-size="12" text-anchor="middle">%s</text>
`, x+barW/2, base+14, p.Text, strconv.FormatFloat(step.Array[i], 'g', -1, 64)))
		}
	}

	sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-size="14">%s</text>
</svg>`, margin, height-margin/2, p.Text, html.EscapeString(description)))
	return sb.String()
}

// SeriesToSVG draws one polyline per named series, sharing both axes.
// Series are drawn in the order of names, cycling through colors.
func SeriesToSVG(series map[string][]float64, names []string, width, height int, colors []string) string {
	var maxLen int
	var hi float64
	for _, name := range names {
		s := series[name]
		maxLen = max(maxLen, len(s))
		for _, v := range s {
			hi = max(hi, v)
		}
	}
	if maxLen < 2 || len(colors) == 0 {
		return ""
	}
	if hi == 0 {
		hi = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, DefaultPalette.Background))

	for k, name := range names {
		s := series[name]
		if len(s) < 2 {
			continue
		}
		color := colors[k%len(colors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))
		for i, v := range s {
			x := float64(i) / float64(maxLen-1) * float64(width)
			y := float64(height) - v/hi*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString(fmt.Sprintf(`"><title>%s</title></path>
`, html.EscapeString(name)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
