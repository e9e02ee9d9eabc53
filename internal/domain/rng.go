package domain

import "math/rand/v2"

// RNG abstracts random number generation for deterministic testing.
// Every random decision in selection and assembly goes through it.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// Float64 returns a random float in [0, 1).
	Float64() float64
}

type randRNG struct{ r *rand.Rand }

func (g randRNG) Intn(n int) int   { return g.r.IntN(n) }
func (g randRNG) Float64() float64 { return g.r.Float64() }

// NewSeededRNG returns a reproducible generator. Two generators built from
// the same seed yield the same sequence. Not safe for concurrent use.
func NewSeededRNG(seed uint64) RNG {
	return randRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type globalRNG struct{}

func (globalRNG) Intn(n int) int   { return rand.IntN(n) }
func (globalRNG) Float64() float64 { return rand.Float64() }

// NewRandomRNG delegates to the auto-seeded math/rand/v2 source.
// Safe for concurrent use.
func NewRandomRNG() RNG { return globalRNG{} }
