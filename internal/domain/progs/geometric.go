package progs

import "github.com/mouse-blink/hoppit/internal/domain"

// geometric keeps drawing standard normal coordinates until the first
// non-positive one and returns how many it drew. Every branch tests the
// sign of a coordinate, so every coordinate is discontinuous, and the
// trace length follows the draws: the program is nonparametric.
//
// Under the prior the draw count is geometric with success probability
// 1/2 and mean 2; importance sampling recovers that directly. The MCMC
// chain moves between trace lengths through refraction events and
// concentrates on shorter traces.
type geometric struct {
	rng *domain.RNG
}

func (g geometric) Run(trace []float64) domain.Run[float64] {
	t := newTape(trace, g.rng)

	flips := 0
	for {
		x, _ := t.normal(0, 1, false)
		flips++
		if x <= 0 {
			break
		}
	}

	return domain.Run[float64]{
		LogWeight: t.logW,
		Samples:   t.samples,
		IsCont:    t.isCont,
		Value:     float64(flips),
		Grad:      func() []float64 { return make([]float64, flips) },
	}
}
