package domain

import "math"

// State is a point in phase space: position Q, momentum P, and the
// continuity mask of the coordinates.
//
// Discontinuous coordinates carry Laplace momentum instead of Gaussian
// momentum. Laplace momentum keeps the velocity of a discontinuous
// coordinate constant between events, which allows exact
// reflection/refraction handling at density discontinuities.
type State struct {
	Q      []float64
	P      []float64
	IsCont []bool
}

// NewState copies q, p and isCont into a fresh State.
func NewState(q, p []float64, isCont []bool) *State {
	return &State{
		Q:      append([]float64(nil), q...),
		P:      append([]float64(nil), p...),
		IsCont: append([]bool(nil), isCont...),
	}
}

// Clone returns an independent copy of the state.
func (s *State) Clone() *State {
	return NewState(s.Q, s.P, s.IsCont)
}

// KineticEnergy is quadratic in the Gaussian (continuous) momenta and
// absolute in the Laplace (discontinuous) ones.
func (s *State) KineticEnergy() float64 {
	var k float64
	for i, p := range s.P {
		if s.IsCont[i] {
			k += p * p / 2
		} else {
			k += math.Abs(p)
		}
	}
	return k
}

// checkAligned panics when the working state and the reference state lost
// their length invariant. That is a programming error in the integrator,
// not a recoverable runtime condition.
func checkAligned(st, st0 *State) {
	if len(st.Q) != len(st.P) || len(st.P) != len(st.IsCont) ||
		len(st0.P) != len(st.P) || len(st0.IsCont) != len(st0.P) {
		panic("hoppit: phase-space states out of alignment")
	}
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
