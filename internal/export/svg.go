package export

import (
	"fmt"
	"math"
	"strings"
)

// Line is one polyline of a chart.
type Line struct {
	Label  string
	Y      []float64
	Stroke string
}

// SeriesToSVG draws every line against the shared xs. Lines shorter than xs
// are truncated; fewer than two points yield "".
func SeriesToSVG(xs []float64, lines []Line, width, height int) string {
	if len(xs) < 2 || len(lines) == 0 {
		return ""
	}

	// Find bounds
	minX, maxX := xs[0], xs[0]
	for _, x := range xs {
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
	}
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, l := range lines {
		for i, y := range l.Y {
			if i >= len(xs) {
				break
			}
			minY = math.Min(minY, y)
			maxY = math.Max(maxY, y)
		}
	}
	if math.IsInf(minY, 0) {
		return ""
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// zero axis
	if minY < 0 && maxY > 0 {
		y0 := float64(height) - (0-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
`, y0, width, y0))
	}

	for li, l := range lines {
		n := len(l.Y)
		if n > len(xs) {
			n = len(xs)
		}
		if n < 2 {
			continue
		}
		stroke := l.Stroke
		if stroke == "" {
			stroke = palette[li%len(palette)]
		}
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
		for i := 0; i < n; i++ {
			x := (xs[i] - minX) / rangeX * float64(width)
			y := float64(height) - (l.Y[i]-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
		if l.Label != "" {
			sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">%s</text>
`, 16*(li+1), stroke, escape(l.Label)))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

var palette = []string{"#00ffff", "#ff00ff", "#ffff00", "#00ff88"}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
