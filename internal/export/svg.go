package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
)

// StepToSVG renders one step as a bar chart. Bars are colored with the
// same policy as the terminal renderer: split halves get the left and
// right highlight colors, the index just placed gets the place color,
// everything else is neutral.
func StepToSVG(step trace.Step, width, height int) string {
	n := len(step.Snapshot)
	if n == 0 {
		return ""
	}

	maxVal := step.Snapshot[0]
	minVal := 0.0
	for _, v := range step.Snapshot {
		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}
	rng := maxVal - minVal
	if rng == 0 {
		rng = 1
	}

	margin := 20.0
	plotW := float64(width) - 2*margin
	plotH := float64(height) - 2*margin
	barW := plotW / float64(n)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0e1117"/>
`, width, height, width, height))

	for i, v := range step.Snapshot {
		h := (v - minVal) / rng * plotH
		x := margin + float64(i)*barW
		y := margin + plotH - h

		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#ffffff" stroke-width="1"/>
`, x+barW*0.1, y, barW*0.8, h, viz.ColorFor(step, i)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#ffffff" font-size="10" text-anchor="middle">%g</text>
`, x+barW*0.5, y-4, v))
	}

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%d" fill="#888899" font-size="11">%s</text>
`, margin, height-6, step.Description))
	sb.WriteString("</svg>")

	return sb.String()
}

// StepToSVGFile writes StepToSVG output to path.
func StepToSVGFile(path string, step trace.Step, width, height int) error {
	svg := StepToSVG(step, width, height)
	if svg == "" {
		return fmt.Errorf("step has no snapshot to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
