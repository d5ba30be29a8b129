package trace_test

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/trace"
)

var _ = Describe("Record", func() {
	randomInput := func(rng *rand.Rand, n int) []float64 {
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(rng.Intn(100) + 1)
		}
		return values
	}

	It("produces a sorted permutation of any input", func() {
		rng := rand.New(rand.NewSource(42))
		for n := 2; n <= 20; n++ {
			input := randomInput(rng, n)
			tr := trace.Record(input)

			final := tr.Final()
			Expect(sort.Float64sAreSorted(final)).To(BeTrue(), "input %v", input)

			ref := append([]float64(nil), input...)
			sort.Float64s(ref)
			Expect(final).To(Equal(ref), "input %v", input)
		}
	})

	It("emits one split per divided segment and one place per written value", func() {
		rng := rand.New(rand.NewSource(7))
		for n := 2; n <= 20; n++ {
			input := randomInput(rng, n)
			tr := trace.Record(input)

			splits, places := 0, 0
			for _, s := range tr.Steps {
				switch s.Kind {
				case trace.KindSplit:
					splits++
				case trace.KindPlace:
					places++
				}
			}

			// A segment of length n divides into n-1 splits, and every
			// merge writes each of its elements exactly once.
			Expect(splits).To(Equal(n-1), "input %v", input)
			Expect(splits+places).To(Equal(tr.Len()))
			Expect(places).To(BeNumerically(">=", n))
		}
	})

	It("snapshots every step at full input length", func() {
		rng := rand.New(rand.NewSource(11))
		input := randomInput(rng, 13)
		tr := trace.Record(input)

		for i, s := range tr.Steps {
			Expect(s.Snapshot).To(HaveLen(len(input)), "step %d", i)
		}
	})

	It("keeps split ranges adjacent, ordered and halved at the floor midpoint", func() {
		rng := rand.New(rand.NewSource(23))
		input := randomInput(rng, 17)
		tr := trace.Record(input)

		for i, s := range tr.Steps {
			if s.Kind != trace.KindSplit {
				continue
			}
			Expect(s.Left.End).To(Equal(s.Right.Start), "step %d", i)
			Expect(s.Left.Len()).To(Equal((s.Left.Len() + s.Right.Len()) / 2))
			Expect(s.Left.Len()).To(BeNumerically(">", 0))
			Expect(s.Right.Len()).To(BeNumerically(">", 0))
		}
	})

	It("matches a stable reference sort on duplicate-heavy input", func() {
		rng := rand.New(rand.NewSource(99))
		for trial := 0; trial < 20; trial++ {
			n := rng.Intn(19) + 2
			input := make([]float64, n)
			for i := range input {
				input[i] = float64(rng.Intn(4)) // lots of duplicates
			}

			type tagged struct {
				value float64
				index int
			}
			ref := make([]tagged, n)
			for i, v := range input {
				ref[i] = tagged{v, i}
			}
			sort.SliceStable(ref, func(a, b int) bool { return ref[a].value < ref[b].value })

			final := trace.Record(input).Final()
			for i := range ref {
				Expect(final[i]).To(Equal(ref[i].value), "input %v", input)
			}
		}
	})
})
