package dice

import (
	"math/rand"
	"strconv"
	"sync"
)

// NumberGenerator produces die faces.
type NumberGenerator interface {
	// Generate returns a value in the closed interval [1, max]. It returns an
	// *InvalidArgumentError if max is not positive.
	Generate(max int) (int, error)
}

// GeneratorFunc adapts a function to a NumberGenerator. The function is
// called only with positive max.
type GeneratorFunc func(max int) int

// Generate checks max and calls f.
func (f GeneratorFunc) Generate(max int) (int, error) {
	if max <= 0 {
		return 0, &InvalidArgumentError{Max: max}
	}
	return f(max), nil
}

// RandGenerator is a NumberGenerator producing uniformly distributed faces
// from a math/rand source. It is safe to use concurrently.
type RandGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandGenerator creates a generator from a seed. Generators created with
// the same seed produce the same sequence of faces for the same sequence of
// calls.
func NewRandGenerator(seed int64) *RandGenerator {
	return &RandGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a uniformly distributed value in [1, max].
func (g *RandGenerator) Generate(max int) (int, error) {
	if max <= 0 {
		return 0, &InvalidArgumentError{Max: max}
	}
	g.mu.Lock()
	// Intn is [0, max), so the shift makes both bounds inclusive.
	r := g.rng.Intn(max) + 1
	g.mu.Unlock()
	return r, nil
}

// InvalidArgumentError is an error returned by a NumberGenerator asked for a
// value with a non-positive maximum.
type InvalidArgumentError struct {
	// Max is the requested maximum.
	Max int
}

func (err *InvalidArgumentError) Error() string {
	return "generator maximum must be positive, not " + strconv.Itoa(err.Max)
}
