package domain

import "math"

// Weighted pairs a sampled value with its unnormalized log-weight.
type Weighted[T any] struct {
	LogWeight float64
	Value     T
}

// Importance samples a probabilistic program by running it on an empty
// trace, so that every random choice is drawn from its prior, and
// weighting each run by the program's log-weight.
type Importance[T any] struct {
	Prog Program[T]
	RNG  *RNG

	// Progress, when non-nil, is called after every program run.
	Progress func(done, total int)
}

// SampleWeighted draws count weighted samples.
func (s Importance[T]) SampleWeighted(count int) []Weighted[T] {
	weighted := make([]Weighted[T], 0, count)
	for i := 0; i < count; i++ {
		res := s.Prog.Run(nil)
		weighted = append(weighted, Weighted[T]{LogWeight: res.LogWeight, Value: res.Value})
		if s.Progress != nil {
			s.Progress(i+1, count)
		}
	}
	return weighted
}

// Resample draws count weighted samples and turns them into unweighted
// ones by systematic resampling. Both the weighted draws and the
// resampled values are returned.
func (s Importance[T]) Resample(count int) ([]Weighted[T], []T) {
	weighted := s.SampleWeighted(count)
	return weighted, systematicResample(weighted, s.RNG)
}

// systematicResample walks the cumulative normalized weights with a single
// uniform offset and unit stride, duplicating values in proportion to
// their weight. Weights are rescaled by their maximum before
// exponentiation to avoid underflow.
func systematicResample[T any](weighted []Weighted[T], rng *RNG) []T {
	if len(weighted) == 0 {
		return nil
	}
	mx := math.Inf(-1)
	for _, w := range weighted {
		if w.LogWeight > mx {
			mx = w.LogWeight
		}
	}
	var weightSum float64
	for _, w := range weighted {
		weightSum += math.Exp(w.LogWeight - mx)
	}
	n := float64(len(weighted))
	u := rng.Rand.Float64()
	var acc float64
	var resamples []T
	for _, w := range weighted {
		acc += math.Exp(w.LogWeight-mx) * n / weightSum
		for u < acc {
			u++
			resamples = append(resamples, w.Value)
		}
	}
	return resamples
}
