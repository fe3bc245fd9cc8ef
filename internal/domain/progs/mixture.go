package progs

import "github.com/mouse-blink/hoppit/internal/domain"

// Component means of the mixture program. Kept close together so the
// Laplace momentum can realistically pay the refraction cost of switching
// components.
const (
	mixtureLeft  = -1.0
	mixtureRight = 1.0
)

// mixture is a two-component Gaussian mixture: the sign of the first
// coordinate picks the component, making it discontinuous, and the second
// coordinate is the component's continuous location.
type mixture struct {
	rng *domain.RNG
}

func (mx mixture) Run(trace []float64) domain.Run[float64] {
	t := newTape(trace, mx.rng)
	z, _ := t.normal(0, 1, false)

	mean := mixtureLeft
	if z > 0 {
		mean = mixtureRight
	}

	x, replayed := t.normal(mean, 1, true)

	grad := 0.0
	if replayed {
		grad = x - mean
	}

	return domain.Run[float64]{
		LogWeight: t.logW,
		Samples:   t.samples,
		IsCont:    t.isCont,
		Value:     x,
		Grad:      func() []float64 { return []float64{0, grad} },
	}
}
