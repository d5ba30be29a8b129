package trace

// Kind identifies the type of a recorded step.
type Kind string

const (
	// KindSplit marks a partition of an index range into two halves.
	// A split moves no values; it only delineates the ranges.
	KindSplit Kind = "split"
	// KindPlace marks a single value written during a merge.
	KindPlace Kind = "place"
)

// Range is a half-open index interval [Start, End) in the coordinate
// space of the original input array.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether i falls inside the range.
func (r Range) Contains(i int) bool { return i >= r.Start && i < r.End }

// Step is one observable event during the sort. Snapshot is the full
// working-array state immediately after the event.
type Step struct {
	Kind     Kind      `json:"kind"`
	Snapshot []float64 `json:"snapshot"`

	// Left and Right are set for split steps.
	Left  Range `json:"left"`
	Right Range `json:"right"`

	// Pos is the absolute index just written, set for place steps.
	// FromLeft records which half supplied the value; ties always
	// take from the left half, which is what keeps the sort stable.
	Pos      int  `json:"pos"`
	FromLeft bool `json:"from_left"`

	Depth       int    `json:"depth"`
	Description string `json:"description"`
}

// Trace is the ordered list of steps produced by one Record call.
// It is never mutated after Record returns.
type Trace struct {
	Input []float64 `json:"input"`
	Steps []Step    `json:"steps"`
}

func (t *Trace) Len() int { return len(t.Steps) }

// Step returns the step at index i.
func (t *Trace) Step(i int) Step { return t.Steps[i] }

// Final returns the last snapshot, which is the fully sorted sequence.
// For inputs of length <= 1 there are no steps and the input itself is
// already sorted.
func (t *Trace) Final() []float64 {
	if len(t.Steps) == 0 {
		return cloneValues(t.Input)
	}
	return cloneValues(t.Steps[len(t.Steps)-1].Snapshot)
}

func cloneValues(v []float64) []float64 {
	c := make([]float64, len(v))
	copy(c, v)
	return c
}
