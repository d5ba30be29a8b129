// Package playback drives a cursor through a recorded trace. It never
// re-runs the sort; every transition is clamped index arithmetic, so
// seeking in either direction is O(1) per step shown.
package playback

import "github.com/san-kum/sortviz/internal/trace"

// IntentKind identifies a playback instruction from the driving layer.
type IntentKind string

const (
	IntentPrevious IntentKind = "previous"
	IntentNext     IntentKind = "next"
	IntentSeek     IntentKind = "seek"
	IntentPlay     IntentKind = "play"
	IntentPause    IntentKind = "pause"
	IntentTick     IntentKind = "tick"
)

// Intent is a playback instruction. Index is only meaningful for
// IntentSeek.
type Intent struct {
	Kind  IntentKind
	Index int
}

// Controller owns the cursor and auto-play flag for one trace. The
// driving layer owns the timer: it delivers Tick intents while Playing
// reports true and stops delivering them on pause. No transition can
// move the cursor outside [0, len-1].
type Controller struct {
	trace   *trace.Trace
	cursor  int
	playing bool
}

// View pairs the step to render with the one before it, so a renderer
// can show a before/after pair. Previous is nil at the first step.
type View struct {
	Step     *trace.Step
	Previous *trace.Step
}

// NewController starts at the first step, paused. For an empty trace
// the cursor is -1 and every transition is a no-op.
func NewController(t *trace.Trace) *Controller {
	cursor := 0
	if t.Len() == 0 {
		cursor = -1
	}
	return &Controller{trace: t, cursor: cursor}
}

func (c *Controller) Cursor() int   { return c.cursor }
func (c *Controller) Playing() bool { return c.playing }
func (c *Controller) Len() int      { return c.trace.Len() }

// AtEnd reports whether the cursor is on the last step.
func (c *Controller) AtEnd() bool {
	return c.trace.Len() > 0 && c.cursor == c.trace.Len()-1
}

// Previous steps the cursor back one step and stops auto-play. A manual
// move always wins over a running timer.
func (c *Controller) Previous() {
	if c.cursor > 0 {
		c.cursor--
	}
	c.playing = false
}

// Next steps the cursor forward one step and stops auto-play.
func (c *Controller) Next() {
	if c.cursor >= 0 && c.cursor < c.trace.Len()-1 {
		c.cursor++
	}
	c.playing = false
}

// SeekTo jumps to step i, clamped to the valid range. Auto-play state
// is left untouched.
func (c *Controller) SeekTo(i int) {
	if c.trace.Len() == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > c.trace.Len()-1 {
		i = c.trace.Len() - 1
	}
	c.cursor = i
}

// Play starts auto-advance. Starting at the last step is a no-op:
// there is nothing left to play.
func (c *Controller) Play() {
	if c.trace.Len() == 0 || c.AtEnd() {
		return
	}
	c.playing = true
}

// Pause stops auto-advance.
func (c *Controller) Pause() { c.playing = false }

// Tick advances one step while playing. It returns true exactly once,
// on the tick that lands on the last step, at which point auto-play
// stops on its own.
func (c *Controller) Tick() (completed bool) {
	if !c.playing {
		return false
	}
	if c.cursor < c.trace.Len()-1 {
		c.cursor++
	}
	if c.AtEnd() {
		c.playing = false
		return true
	}
	return false
}

// Apply routes a generic intent to the matching transition and returns
// whether the intent completed playback (only ever true for a tick).
func (c *Controller) Apply(in Intent) (completed bool) {
	switch in.Kind {
	case IntentPrevious:
		c.Previous()
	case IntentNext:
		c.Next()
	case IntentSeek:
		c.SeekTo(in.Index)
	case IntentPlay:
		c.Play()
	case IntentPause:
		c.Pause()
	case IntentTick:
		return c.Tick()
	}
	return false
}

// CurrentView returns the step under the cursor and its predecessor.
// Both pointers reference trace-owned steps and must not be mutated.
func (c *Controller) CurrentView() View {
	if c.cursor < 0 || c.cursor >= c.trace.Len() {
		return View{}
	}
	v := View{Step: &c.trace.Steps[c.cursor]}
	if c.cursor > 0 {
		v.Previous = &c.trace.Steps[c.cursor-1]
	}
	return v
}
