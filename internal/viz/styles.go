package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Highlight palette. One color per role: the two split halves, the
// index just placed during a merge, and everything else.
const (
	ColorLeft    = "#ff6b6b"
	ColorRight   = "#ffa500"
	ColorPlaced  = "#00ff00"
	ColorNeutral = "#4ecdc4"
)

var (
	LeftStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLeft))
	RightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRight))
	PlacedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaced))
	NeutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorNeutral))

	Title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	White  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	StatusPlaying = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	StatusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	StatusDone    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))

	KeyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
)

// ProgressBar renders playback position as a filled bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return Title.Render(strings.Repeat("━", filled)) + Dimmer.Render(strings.Repeat("─", width-filled))
}

// Sparkline renders values as a mini bar chart, one rune per sample.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	minVal, maxVal := values[0], values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rng := maxVal - minVal
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var sb strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		v := values[i*step]
		idx := int((v - minVal) / rng * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
