package progs

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mouse-blink/hoppit/internal/domain"
)

// normalMeanObservation is the single data point the normal-mean program
// conditions on. With a standard normal prior on the mean and unit
// observation noise, the posterior is N(0.5, 1/2).
const normalMeanObservation = 1.0

// normalMean infers the mean of a unit-variance Gaussian from one
// observation: mu ~ N(0,1), y | mu ~ N(mu, 1). One continuous coordinate,
// fixed dimension, and a non-trivial likelihood term for both samplers.
type normalMean struct {
	rng *domain.RNG
}

func (n normalMean) Run(trace []float64) domain.Run[float64] {
	t := newTape(trace, n.rng)
	mu, replayed := t.normal(0, 1, true)

	lik := distuv.Normal{Mu: mu, Sigma: 1}
	t.observe(lik.LogProb(normalMeanObservation))

	grad := mu - normalMeanObservation
	if replayed {
		grad += mu // prior term
	}

	return domain.Run[float64]{
		LogWeight: t.logW,
		Samples:   t.samples,
		IsCont:    t.isCont,
		Value:     mu,
		Grad:      func() []float64 { return []float64{grad} },
	}
}
