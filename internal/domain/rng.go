package domain

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// RNG is the single pseudo-random stream behind every draw the sampler
// makes: momentum, step-size jitter, acceptance tests, sweep permutations
// and the prior draws of the programs themselves. Seeding it once at
// process start makes a run bit-identical on replay.
type RNG struct {
	Rand *rand.Rand

	normal  distuv.Normal
	laplace distuv.Laplace
}

// NewRNG seeds a fresh stream. The Gaussian and Laplace momentum
// distributions share the stream, so the draw order alone determines the
// sequence of values.
func NewRNG(seed uint64) *RNG {
	rng := rand.New(rand.NewSource(seed))
	return &RNG{
		Rand:    rng,
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: rng},
		laplace: distuv.Laplace{Mu: 0, Scale: 1, Src: rng},
	}
}

// Normal draws one standard normal value.
func (r *RNG) Normal() float64 { return r.normal.Rand() }

// Laplace draws one standard Laplace value.
func (r *RNG) Laplace() float64 { return r.laplace.Rand() }

// Momentum draws one momentum value: Gaussian for a continuous
// coordinate, Laplace for a discontinuous one.
func (r *RNG) Momentum(isCont bool) float64 {
	if isCont {
		return r.Normal()
	}
	return r.Laplace()
}
