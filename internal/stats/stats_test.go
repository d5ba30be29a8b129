package stats

import "testing"

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{64, 34, 25, 12, 22, 11, 90})

	if s.Count != 7 {
		t.Errorf("expected count 7, got %d", s.Count)
	}
	if s.Min != 11 {
		t.Errorf("expected min 11, got %g", s.Min)
	}
	if s.Max != 90 {
		t.Errorf("expected max 90, got %g", s.Max)
	}
	if s.Sum != 258 {
		t.Errorf("expected sum 258, got %g", s.Sum)
	}
	want := 258.0 / 7.0
	if s.Average != want {
		t.Errorf("expected average %g, got %g", want, s.Average)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestInversions(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"sorted", []float64{1, 2, 3, 4}, 0},
		{"reversed", []float64{4, 3, 2, 1}, 6},
		{"mixed", []float64{5, 3, 8, 1}, 4},
		{"duplicates", []float64{2, 2, 2}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inversions(tt.values); got != tt.want {
				t.Errorf("expected %d inversions, got %d", tt.want, got)
			}
		})
	}
}
