package progs

import "github.com/mouse-blink/hoppit/internal/domain"

// gaussian is the 1-D standard normal program: a single continuous
// coordinate with a fixed dimension and an analytic gradient.
type gaussian struct {
	rng *domain.RNG
}

func (g gaussian) Run(trace []float64) domain.Run[float64] {
	t := newTape(trace, g.rng)
	x, replayed := t.normal(0, 1, true)

	grad := 0.0
	if replayed {
		grad = x
	}

	return domain.Run[float64]{
		LogWeight: t.logW,
		Samples:   t.samples,
		IsCont:    t.isCont,
		Value:     x,
		Grad:      func() []float64 { return []float64{grad} },
	}
}
