package srs

import (
	"iter"
	"math/rand/v2"
)

// Randomizer is a 7-bag piece generator: every consecutive block of seven pieces
// it hands out is a shuffled permutation of all seven types.
type Randomizer struct {
	rng    *rand.Rand
	buffer []Type
}

// NewRandomizer creates a bag drawing its shuffles from rng.
func NewRandomizer(rng *rand.Rand) *Randomizer {
	return &Randomizer{rng: rng}
}

// NewSeededRandomizer creates a bag with a reproducible sequence.
func NewSeededRandomizer(seed uint64) *Randomizer {
	return NewRandomizer(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (r *Randomizer) refill() {
	bag := Types
	r.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	r.buffer = append(r.buffer, bag[:]...)
}

// Peek returns the next n types without consuming them, appending fresh bags
// as needed.
func (r *Randomizer) Peek(n int) []Type {
	n = max(n, 0)
	for len(r.buffer) < n {
		r.refill()
	}
	out := make([]Type, n)
	copy(out, r.buffer)
	return out
}

// Next consumes and returns the next type.
func (r *Randomizer) Next() Type {
	if len(r.buffer) == 0 {
		r.refill()
	}
	t := r.buffer[0]
	r.buffer = r.buffer[1:]
	return t
}

// All yields an endless stream of types; stop ranging to end it.
func (r *Randomizer) All() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		for {
			if !yield(r.Next()) {
				return
			}
		}
	}
}
