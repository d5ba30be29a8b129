// Package stats computes derived values over a sequence for display
// alongside the trace.
package stats

// Summary holds the aggregate statistics of a sequence.
type Summary struct {
	Count   int     `json:"count"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
}

// Summarize computes the summary of values. An empty sequence yields
// the zero summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
	}
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		s.Sum += v
	}
	s.Average = s.Sum / float64(s.Count)
	return s
}

// Inversions counts the pairs that are out of ascending order. Zero
// means fully sorted; the count shrinks toward zero as a recorded sort
// converges, which makes it a useful per-step progress measure.
func Inversions(values []float64) int {
	count := 0
	for i := 0; i < len(values); i++ {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				count++
			}
		}
	}
	return count
}
