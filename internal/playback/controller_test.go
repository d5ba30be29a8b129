package playback

import (
	"testing"

	"github.com/san-kum/sortviz/internal/trace"
)

func record(t *testing.T, values ...float64) *trace.Trace {
	t.Helper()
	return trace.Record(values)
}

func TestNewController(t *testing.T) {
	c := NewController(record(t, 5, 3, 8, 1))

	if c.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", c.Cursor())
	}
	if c.Playing() {
		t.Error("expected paused on creation")
	}
}

func TestEmptyTrace(t *testing.T) {
	c := NewController(record(t, 7))

	if c.Cursor() != -1 {
		t.Errorf("expected cursor -1 for empty trace, got %d", c.Cursor())
	}

	c.Next()
	c.Previous()
	c.SeekTo(3)
	c.Play()
	if done := c.Tick(); done {
		t.Error("tick on empty trace reported completion")
	}
	if c.Cursor() != -1 || c.Playing() {
		t.Errorf("empty trace moved: cursor=%d playing=%v", c.Cursor(), c.Playing())
	}

	if v := c.CurrentView(); v.Step != nil {
		t.Error("expected empty view for empty trace")
	}
}

func TestPreviousClampsAtStart(t *testing.T) {
	c := NewController(record(t, 5, 3, 8, 1))
	c.Play()

	c.Previous()
	if c.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", c.Cursor())
	}
	if c.Playing() {
		t.Error("previous should stop playback")
	}
}

func TestNextClampsAtEnd(t *testing.T) {
	c := NewController(record(t, 5, 3, 8, 1))
	last := c.Len() - 1

	c.SeekTo(last)
	c.Next()
	if c.Cursor() != last {
		t.Errorf("expected cursor %d, got %d", last, c.Cursor())
	}
	if c.Playing() {
		t.Error("next should stop playback")
	}
}

func TestSeekClampsAndKeepsPlaying(t *testing.T) {
	c := NewController(record(t, 5, 3, 8, 1))
	c.Play()

	c.SeekTo(-5)
	if c.Cursor() != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", c.Cursor())
	}
	if !c.Playing() {
		t.Error("seek should not change playing")
	}

	c.SeekTo(1000)
	if c.Cursor() != c.Len()-1 {
		t.Errorf("expected cursor clamped to %d, got %d", c.Len()-1, c.Cursor())
	}
}

func TestPlayAtEndIsNoop(t *testing.T) {
	c := NewController(record(t, 5, 3, 8, 1))
	c.SeekTo(c.Len() - 1)

	c.Play()
	if c.Playing() {
		t.Error("play at last step should be a no-op")
	}
}

func TestTickRunsToCompletion(t *testing.T) {
	c := NewController(record(t, 5, 3, 8, 1))
	c.Play()

	completions := 0
	for i := 0; i < c.Len()+5; i++ {
		if c.Tick() {
			completions++
		}
	}

	if completions != 1 {
		t.Errorf("expected exactly one completion, got %d", completions)
	}
	if c.Cursor() != c.Len()-1 {
		t.Errorf("expected cursor at %d, got %d", c.Len()-1, c.Cursor())
	}
	if c.Playing() {
		t.Error("expected auto-stop at end")
	}
}

func TestTickWhilePausedIsNoop(t *testing.T) {
	c := NewController(record(t, 5, 3, 8, 1))

	if c.Tick() {
		t.Error("tick while paused reported completion")
	}
	if c.Cursor() != 0 {
		t.Errorf("tick while paused moved cursor to %d", c.Cursor())
	}
}

func TestSeekRoundTrip(t *testing.T) {
	tr := record(t, 64, 34, 25, 12, 22, 11, 90)
	c := NewController(tr)

	for k := 0; k < tr.Len(); k++ {
		c.SeekTo(k)
		v := c.CurrentView()
		if v.Step == nil {
			t.Fatalf("step %d: nil view", k)
		}
		if v.Step != &tr.Steps[k] {
			t.Errorf("step %d: view does not reference trace step", k)
		}
		if k == 0 && v.Previous != nil {
			t.Error("step 0: expected nil previous")
		}
		if k > 0 && v.Previous != &tr.Steps[k-1] {
			t.Errorf("step %d: previous does not reference step %d", k, k-1)
		}
	}
}

func TestApplyRoutesIntents(t *testing.T) {
	c := NewController(record(t, 5, 3, 8, 1))

	tests := []struct {
		name    string
		intent  Intent
		cursor  int
		playing bool
	}{
		{"next", Intent{Kind: IntentNext}, 1, false},
		{"play", Intent{Kind: IntentPlay}, 1, true},
		{"tick", Intent{Kind: IntentTick}, 2, true},
		{"pause", Intent{Kind: IntentPause}, 2, false},
		{"seek", Intent{Kind: IntentSeek, Index: 5}, 5, false},
		{"previous", Intent{Kind: IntentPrevious}, 4, false},
	}

	for _, tt := range tests {
		c.Apply(tt.intent)
		if c.Cursor() != tt.cursor {
			t.Errorf("%s: expected cursor %d, got %d", tt.name, tt.cursor, c.Cursor())
		}
		if c.Playing() != tt.playing {
			t.Errorf("%s: expected playing=%v, got %v", tt.name, tt.playing, c.Playing())
		}
	}
}
