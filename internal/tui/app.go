// Package tui is the interactive front end: an input screen for
// building a sequence and a playback screen that steps through the
// recorded trace. It owns the auto-play timer; the playback controller
// only ever sees discrete intents.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/stats"
	"github.com/san-kum/sortviz/internal/trace"
	"github.com/san-kum/sortviz/internal/viz"
)

type screen int

const (
	screenInput screen = iota
	screenPlayback
)

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Toggle key.Binding
	First  key.Binding
	Last   key.Binding
	Faster key.Binding
	Slower key.Binding
	View   key.Binding
	Pair   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous step")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next step")),
	Toggle: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
	First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first step")),
	Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last step")),
	Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
	View:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle view")),
	Pair:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "before/after")),
	Back:   key.NewBinding(key.WithKeys("esc", "r"), key.WithHelp("esc", "new input")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type inputChoice struct {
	name string
	desc string
}

type model struct {
	cfg    *config.Config
	screen screen

	// input screen
	choices  []inputChoice
	cursor   int
	editing  bool
	editBuf  string
	inputErr string

	// playback screen
	ctrl       *playback.Controller
	tr         *trace.Trace
	summary    stats.Summary
	inversions []float64
	completed  bool

	width  int
	height int
}

func New(cfg *config.Config) *model {
	choices := []inputChoice{
		{"manual", "type comma-separated values"},
		{"random", fmt.Sprintf("%d values in [%d,%d]", cfg.Count, cfg.MinValue, cfg.MaxValue)},
	}
	names := config.ListPresets()
	sort.Strings(names)
	for _, name := range names {
		choices = append(choices, inputChoice{name, describePreset(name)})
	}

	return &model{
		cfg:     cfg,
		screen:  screenInput,
		choices: choices,
		width:   80,
		height:  24,
	}
}

func describePreset(name string) string {
	p := config.GetPreset(name)
	if p == nil {
		return ""
	}
	return fmt.Sprintf("preset, %d values", len(p.Values))
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func (m model) tick() tea.Cmd {
	interval := time.Duration(m.cfg.Speed * float64(time.Second))
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.screen != screenPlayback || m.ctrl == nil || !m.ctrl.Playing() {
			return m, nil
		}
		if m.ctrl.Apply(playback.Intent{Kind: playback.IntentTick}) {
			m.completed = true
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenInput {
		return m.inputKey(msg)
	}
	return m.playbackKey(msg)
}

func (m model) inputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			values, err := seq.Parse(m.editBuf)
			if err == nil {
				err = seq.CheckLen(values)
			}
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.editing = false
			return m.startPlayback(values)
		case "esc":
			m.editing = false
			m.editBuf = ""
			m.inputErr = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == ',' || c == ' ' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		choice := m.choices[m.cursor]
		switch choice.name {
		case "manual":
			m.editing = true
			m.editBuf = ""
			m.inputErr = ""
		case "random":
			values, err := seq.Random(m.cfg.Count, m.cfg.MinValue, m.cfg.MaxValue, time.Now().UnixNano())
			if err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			return m.startPlayback(values)
		default:
			p := config.GetPreset(choice.name)
			if p != nil {
				m.cfg.Speed = p.Speed
				m.cfg.View = p.View
				return m.startPlayback(p.Values)
			}
		}
	}
	return m, nil
}

func (m model) startPlayback(values []float64) (tea.Model, tea.Cmd) {
	m.tr = trace.Record(values)
	m.ctrl = playback.NewController(m.tr)
	m.summary = stats.Summarize(values)
	m.completed = false
	m.inputErr = ""

	m.inversions = make([]float64, m.tr.Len())
	for i, s := range m.tr.Steps {
		m.inversions[i] = float64(stats.Inversions(s.Snapshot))
	}

	m.screen = screenPlayback
	return m, tea.ClearScreen
}

func (m model) playbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Back):
		m.screen = screenInput
		m.ctrl = nil
		m.tr = nil
		m.completed = false
		return m, tea.ClearScreen
	case key.Matches(msg, keys.Prev):
		m.ctrl.Apply(playback.Intent{Kind: playback.IntentPrevious})
		m.completed = false
	case key.Matches(msg, keys.Next):
		m.ctrl.Apply(playback.Intent{Kind: playback.IntentNext})
	case key.Matches(msg, keys.First):
		m.ctrl.Apply(playback.Intent{Kind: playback.IntentSeek, Index: 0})
		m.completed = false
	case key.Matches(msg, keys.Last):
		m.ctrl.Apply(playback.Intent{Kind: playback.IntentSeek, Index: m.ctrl.Len() - 1})
	case key.Matches(msg, keys.Toggle):
		if m.ctrl.Playing() {
			m.ctrl.Apply(playback.Intent{Kind: playback.IntentPause})
		} else {
			m.ctrl.Apply(playback.Intent{Kind: playback.IntentPlay})
			if m.ctrl.Playing() {
				return m, m.tick()
			}
		}
	case key.Matches(msg, keys.Faster):
		m.cfg.Speed = config.ClampSpeed(m.cfg.Speed - 0.1)
	case key.Matches(msg, keys.Slower):
		m.cfg.Speed = config.ClampSpeed(m.cfg.Speed + 0.1)
	case key.Matches(msg, keys.View):
		if m.cfg.View == config.ViewBars {
			m.cfg.View = config.ViewTree
		} else {
			m.cfg.View = config.ViewBars
		}
	case key.Matches(msg, keys.Pair):
		m.cfg.ShowPrevious = !m.cfg.ShowPrevious
	}
	return m, nil
}

func (m model) View() string {
	if m.screen == screenInput {
		return m.viewInput()
	}
	return m.viewPlayback()
}

func (m model) viewInput() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(viz.Dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + viz.Title.Render("s o r t v i z") + "\n")
	b.WriteString(viz.Dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString("      " + viz.Title.Render("▸ ") + viz.White.Render(fmt.Sprintf("%-16s", choice.name)) + viz.Dim.Render(choice.desc) + "\n")
		} else {
			b.WriteString("        " + viz.Dim.Render(fmt.Sprintf("%-16s", choice.name)) + viz.Dimmer.Render(choice.desc) + "\n")
		}
	}

	if m.editing {
		b.WriteString("\n      " + viz.Dim.Render("values: ") + viz.White.Render(m.editBuf+"▋") + "\n")
	}
	if m.inputErr != "" {
		b.WriteString("\n      " + viz.LeftStyle.Render(m.inputErr) + "\n")
	}

	b.WriteString("\n" + viz.KeyHint.Render("      ↑↓ select   enter start   q quit") + "\n")

	return b.String()
}

func (m model) viewPlayback() string {
	var b strings.Builder

	statusIcon := viz.StatusPaused.Render("○")
	statusText := viz.StatusPaused.Render("paused")
	if m.ctrl.Playing() {
		statusIcon = viz.StatusPlaying.Render("●")
		statusText = viz.StatusPlaying.Render("playing")
	}
	if m.completed {
		statusIcon = viz.StatusDone.Render("◆")
		statusText = viz.StatusDone.Render("sorted")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s  %s\n",
		statusIcon, viz.Title.Render("merge sort"), statusText,
		viz.Dim.Render(fmt.Sprintf("%.1fs/step", m.cfg.Speed))))

	view := m.ctrl.CurrentView()
	if view.Step == nil {
		b.WriteString("\n   " + viz.Dim.Render("nothing to show: the input is already sorted") + "\n")
		b.WriteString("\n" + viz.KeyHint.Render("   esc new input  q quit") + "\n")
		return b.String()
	}

	progress := 0.0
	if m.ctrl.Len() > 1 {
		progress = float64(m.ctrl.Cursor()) / float64(m.ctrl.Len()-1)
	}
	b.WriteString(fmt.Sprintf("   %s %s\n\n",
		viz.ProgressBar(progress, 36),
		viz.Dim.Render(fmt.Sprintf("step %d/%d", m.ctrl.Cursor()+1, m.ctrl.Len()))))

	b.WriteString("   " + viz.White.Render(view.Step.Description) + "\n\n")
	b.WriteString(indent(m.renderStep(*view.Step), 3))

	if m.cfg.ShowPrevious && view.Previous != nil {
		b.WriteString("\n   " + viz.Dim.Render("previous: "+view.Previous.Description) + "\n")
		b.WriteString(indent(m.renderStep(*view.Previous), 3))
	}

	b.WriteString(fmt.Sprintf("\n   %s n=%d  min=%g  max=%g  sum=%g  avg=%.2f\n",
		viz.Dim.Render("stats"),
		m.summary.Count, m.summary.Min, m.summary.Max, m.summary.Sum, m.summary.Average))

	upto := m.inversions[:m.ctrl.Cursor()+1]
	b.WriteString(fmt.Sprintf("   %s %s\n",
		viz.Dim.Render("disorder"),
		viz.Title.Render(viz.Sparkline(upto, 24))))

	b.WriteString("\n" + viz.KeyHint.Render("   ←→ step  space play  g/G ends  ± speed  v view  b pair  esc new  q quit") + "\n")

	return b.String()
}

func (m model) renderStep(s trace.Step) string {
	if m.cfg.View == config.ViewTree {
		return viz.RenderTree(s)
	}
	barHeight := m.height/3 - 2
	if barHeight < 4 {
		barHeight = 4
	}
	return viz.RenderBars(s, barHeight)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n") + "\n"
}

// Run starts the interactive app.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
