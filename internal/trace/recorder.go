package trace

import "fmt"

// Record runs an instrumented top-down merge sort over values and
// returns the full trace of splits and placements. It is deterministic
// and total: any finite input produces a trace, and inputs of length
// <= 1 produce a trace with zero steps.
//
// The recorder keeps one working array the size of the input. Splits
// snapshot it untouched; every merge placement writes exactly one value
// into it and snapshots the result, so stepping backward through the
// trace is plain indexing with no re-execution.
func Record(values []float64) *Trace {
	t := &Trace{Input: cloneValues(values)}
	r := &recorder{work: cloneValues(values), trace: t}
	r.sort(cloneValues(values), 0, 0)
	return t
}

type recorder struct {
	work  []float64
	trace *Trace
}

func (r *recorder) sort(seg []float64, start, depth int) []float64 {
	if len(seg) <= 1 {
		return seg
	}

	mid := len(seg) / 2
	r.emitSplit(start, mid, len(seg), depth)

	left := r.sort(seg[:mid], start, depth+1)
	right := r.sort(seg[mid:], start+mid, depth+1)

	return r.merge(left, right, start, depth)
}

func (r *recorder) merge(left, right []float64, start, depth int) []float64 {
	out := make([]float64, 0, len(left)+len(right))
	i, j := 0, 0
	pos := start

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			r.work[pos] = left[i]
			out = append(out, left[i])
			r.emitPlace(pos, depth, true, left[i])
			i++
		} else {
			r.work[pos] = right[j]
			out = append(out, right[j])
			r.emitPlace(pos, depth, false, right[j])
			j++
		}
		pos++
	}

	for ; i < len(left); i++ {
		r.work[pos] = left[i]
		out = append(out, left[i])
		r.emitPlace(pos, depth, true, left[i])
		pos++
	}

	for ; j < len(right); j++ {
		r.work[pos] = right[j]
		out = append(out, right[j])
		r.emitPlace(pos, depth, false, right[j])
		pos++
	}

	return out
}

func (r *recorder) emitSplit(start, mid, length, depth int) {
	r.trace.Steps = append(r.trace.Steps, Step{
		Kind:        KindSplit,
		Snapshot:    cloneValues(r.work),
		Left:        Range{Start: start, End: start + mid},
		Right:       Range{Start: start + mid, End: start + length},
		Depth:       depth,
		Description: fmt.Sprintf("split [%d,%d) at position %d", start, start+length, start+mid),
	})
}

func (r *recorder) emitPlace(pos, depth int, fromLeft bool, v float64) {
	side := "right"
	if fromLeft {
		side = "left"
	}
	r.trace.Steps = append(r.trace.Steps, Step{
		Kind:        KindPlace,
		Snapshot:    cloneValues(r.work),
		Pos:         pos,
		FromLeft:    fromLeft,
		Depth:       depth,
		Description: fmt.Sprintf("placed %g at position %d from %s half", v, pos, side),
	})
}
