package game

import "math/rand/v2"

// Rand is a RandomSource backed by a PCG generator
type Rand struct {
	r *rand.Rand
}

// NewRand creates a generator; a zero seed picks a random one
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform returns a float in [min, max)
func (g *Rand) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.r.Float64()*(max-min)
}

// Bool returns a fair coin flip
func (g *Rand) Bool() bool {
	return g.r.IntN(2) == 1
}
