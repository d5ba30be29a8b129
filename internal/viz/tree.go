package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/trace"
)

// RenderTree draws the step as boxed value nodes with a marker row
// underneath: the split halves get left/right markers, a placement
// gets a caret under the written index. Depth is shown as indentation
// of the marker line so nested splits read as levels of the recursion.
func RenderTree(step trace.Step) string {
	n := len(step.Snapshot)
	if n == 0 {
		return ""
	}

	colWidth := labelWidth(step.Snapshot)

	var values strings.Builder
	for i, v := range step.Snapshot {
		label := fmt.Sprintf("%-*s", colWidth, fmt.Sprintf("%g", v))
		values.WriteString(styleFor(step, i).Render(label))
	}

	var markers strings.Builder
	for i := 0; i < n; i++ {
		mark := strings.Repeat(" ", colWidth)
		switch step.Kind {
		case trace.KindSplit:
			if step.Left.Contains(i) {
				mark = LeftStyle.Render(pad("◀", colWidth))
			} else if step.Right.Contains(i) {
				mark = RightStyle.Render(pad("▶", colWidth))
			}
		case trace.KindPlace:
			if i == step.Pos {
				mark = PlacedStyle.Render(pad("▲", colWidth))
			}
		}
		markers.WriteString(mark)
	}

	depth := Dim.Render(fmt.Sprintf("%sdepth %d", strings.Repeat("  ", step.Depth), step.Depth))

	return values.String() + "\n" + markers.String() + "\n" + depth + "\n"
}

func pad(s string, width int) string {
	// s is a single-rune marker; pad by display width, not bytes.
	if width <= 1 {
		return s
	}
	return s + strings.Repeat(" ", width-1)
}
