// Package seq produces the input sequences fed to the recorder, either
// parsed from user text or generated from a seed.
package seq

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

const (
	MinLen = 2
	MaxLen = 20
)

// Parse reads a comma-separated list of numbers. Whitespace around
// elements is ignored; an empty or all-blank string is an error.
func Parse(input string) ([]float64, error) {
	if strings.TrimSpace(input) == "" {
		return nil, fmt.Errorf("no values given")
	}

	parts := strings.Split(input, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty value in list")
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", p)
		}
		values = append(values, v)
	}
	return values, nil
}

// ParseExact parses like Parse and additionally requires exactly count
// values.
func ParseExact(input string, count int) ([]float64, error) {
	values, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if len(values) != count {
		return nil, fmt.Errorf("expected %d values, got %d", count, len(values))
	}
	return values, nil
}

// CheckLen enforces the configured sequence length bounds. This is an
// input-layer policy: the recorder itself accepts any length.
func CheckLen(values []float64) error {
	if len(values) < MinLen || len(values) > MaxLen {
		return fmt.Errorf("sequence length must be between %d and %d, got %d", MinLen, MaxLen, len(values))
	}
	return nil
}

// Random generates n integer-valued elements in [min, max] from the
// given seed. The same seed always yields the same sequence.
func Random(n int, min, max int, seed int64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", n)
	}
	if max < min {
		return nil, fmt.Errorf("max %d is below min %d", max, min)
	}

	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(min + rng.Intn(max-min+1))
	}
	return values, nil
}
