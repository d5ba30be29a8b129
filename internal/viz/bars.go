// Package viz renders recorded steps for the terminal: a bar view, a
// node view grouped by recursion depth, and the shared color policy.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/trace"
)

// ColorFor returns the highlight color for index i under step's event.
func ColorFor(step trace.Step, i int) string {
	switch step.Kind {
	case trace.KindSplit:
		if step.Left.Contains(i) {
			return ColorLeft
		}
		if step.Right.Contains(i) {
			return ColorRight
		}
	case trace.KindPlace:
		if i == step.Pos {
			return ColorPlaced
		}
	}
	return ColorNeutral
}

func styleFor(step trace.Step, i int) lipgloss.Style {
	switch ColorFor(step, i) {
	case ColorLeft:
		return LeftStyle
	case ColorRight:
		return RightStyle
	case ColorPlaced:
		return PlacedStyle
	}
	return NeutralStyle
}

// RenderBars draws the step's snapshot as vertical bars, height rows
// tall, with a value label row underneath.
func RenderBars(step trace.Step, height int) string {
	n := len(step.Snapshot)
	if n == 0 {
		return ""
	}
	if height < 2 {
		height = 2
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

	colWidth := labelWidth(step.Snapshot)
	levels := make([]int, n)
	for i, v := range step.Snapshot {
		levels[i] = int((v - minVal) / rng * float64(height))
		if levels[i] < 1 {
			levels[i] = 1
		}
	}

	var b strings.Builder
	for row := height; row > 0; row-- {
		for i := range step.Snapshot {
			cell := strings.Repeat(" ", colWidth)
			if levels[i] >= row {
				cell = styleFor(step, i).Render(strings.Repeat("█", colWidth-1)) + " "
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	for i, v := range step.Snapshot {
		label := fmt.Sprintf("%-*s", colWidth, fmt.Sprintf("%g", v))
		b.WriteString(styleFor(step, i).Render(label))
	}
	b.WriteString("\n")

	return b.String()
}

func labelWidth(values []float64) int {
	w := 2
	for _, v := range values {
		if l := len(fmt.Sprintf("%g", v)) + 1; l > w {
			w = l
		}
	}
	return w
}
