package domain

import "math"

// Result holds the output of one NP-DHMC run.
type Result[T any] struct {
	// Samples are the recorded values, burn-in already discarded.
	Samples []T
	// AcceptRatio is the fraction of accepted proposals over all
	// iterations, burn-in included.
	AcceptRatio float64
}

// NPDHMC samples from a probabilistic program using nonparametric
// discontinuous Hamiltonian Monte Carlo.
//
// Each iteration proposes a full Hamiltonian trajectory: fresh mixed
// Gaussian/Laplace momentum matching the current continuity mask,
// LeapfrogSteps leapfrog steps with a jittered step size, and a
// Metropolis-Hastings acceptance test over the total energy at the two
// ends of the trajectory. A rejected iteration repeats the previous
// sample, so every iteration contributes exactly one sample.
type NPDHMC[T any] struct {
	Prog Program[T]
	RNG  *RNG

	// LeapfrogSteps is the number of integrator steps per proposal.
	LeapfrogSteps int
	// Eps is the base step size. Each trajectory jitters it by a factor
	// drawn uniformly from [0.5, 1.5) to avoid resonance artifacts.
	Eps float64
	// BurnIn is the number of leading samples to discard. A negative
	// value selects the default of a tenth of the requested count.
	BurnIn int
	// Progress, when non-nil, is called after every iteration.
	Progress func(done, total int)
}

// Sample runs the chain until count samples remain after burn-in.
func (s NPDHMC[T]) Sample(count int) Result[T] {
	burnIn := s.BurnIn
	if burnIn < 0 {
		burnIn = count / 10
	}
	total := count + burnIn

	res := s.Prog.Run(nil)
	q := append([]float64(nil), res.Samples...)
	isCont := append([]bool(nil), res.IsCont...)

	samples := make([]T, 0, total)
	accepted := 0
	for iter := 0; iter < total; iter++ {
		dt := (s.RNG.Rand.Float64() + 0.5) * s.Eps
		p := make([]float64, len(q))
		for i := range p {
			p[i] = s.RNG.Momentum(isCont[i])
		}
		st := NewState(q, p, isCont)
		st0 := NewState(q, p, isCont)

		prevRes := res
		for step := 0; step < s.LeapfrogSteps; step++ {
			if !isFinite(res.LogWeight) {
				// The trajectory entered a zero-probability region;
				// rejection is already certain.
				break
			}
			res = leapfrogStep(s.Prog, s.RNG, dt, st, st0)
		}

		u0, k0 := -prevRes.LogWeight, st0.KineticEnergy()
		u, k := -res.LogWeight, st.KineticEnergy()
		acceptProb := math.Exp(u0 + k0 - u - k)
		if u != math.Inf(1) && s.RNG.Rand.Float64() < acceptProb {
			q = st.Q
			isCont = st.IsCont
			accepted++
			samples = append(samples, res.Value)
		} else {
			res = prevRes
			samples = append(samples, prevRes.Value)
		}
		if s.Progress != nil {
			s.Progress(iter+1, total)
		}
	}
	return Result[T]{
		Samples:     samples[burnIn:],
		AcceptRatio: float64(accepted) / float64(total),
	}
}
