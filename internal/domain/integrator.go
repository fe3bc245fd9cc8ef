package domain

import "math"

// coordIntegrator advances one discontinuous coordinate i by a position
// increment eps*sign(p[i]) and resolves the potential-energy change at the
// new position.
//
// If the new potential is non-finite, or the momentum cannot pay for the
// climb (|p[i]| <= deltaU), the move is a reflection: the momentum sign
// flips and the position stays. Otherwise the move is a refraction: the
// position is accepted and |p[i]| shrinks by deltaU. An accepted move can
// change the coordinate count; the working state st and the reference
// state st0 are then grown or truncated in lockstep so that the kinetic
// energy at the end of the trajectory stays comparable to the start.
func coordIntegrator[T any](prog Program[T], rng *RNG, i int, eps float64, st, st0 *State, res Run[T]) Run[T] {
	u := -res.LogWeight
	q := append([]float64(nil), st.Q...)
	q[i] += eps * sign(st.P[i])
	newRes := prog.Run(q)
	newU := -newRes.LogWeight
	deltaU := newU - u
	if !isFinite(newU) || math.Abs(st.P[i]) <= deltaU {
		// Reflection: not enough momentum to climb the barrier.
		st.P[i] = -st.P[i]
		return res
	}
	// Refraction: cross the barrier, paying deltaU in momentum magnitude.
	st.P[i] -= sign(st.P[i]) * deltaU
	n, n2 := res.Len(), newRes.Len()
	res = newRes
	if n2 > n {
		// The program discovered new coordinates. Adopt its position and
		// mask, and pad the momentum of both states with fresh draws
		// matching the new mask.
		st.Q = append([]float64(nil), res.Samples...)
		st.IsCont = append([]bool(nil), res.IsCont...)
		for j := n; j < n2; j++ {
			p := rng.Momentum(res.IsCont[j])
			st.P = append(st.P, p)
			st0.P = append(st0.P, p)
			st0.IsCont = append(st0.IsCont, res.IsCont[j])
		}
	} else {
		// Truncate both states to the lower dimension.
		st.Q = append([]float64(nil), res.Samples[:n2]...)
		st.P = st.P[:n2]
		st.IsCont = append([]bool(nil), res.IsCont[:n2]...)
		st0.P = st0.P[:n2]
		st0.IsCont = st0.IsCont[:n2]
	}
	checkAligned(st, st0)
	return res
}

// leapfrogStep performs one symmetric integrator step of duration eps over
// the full coordinate set: half-step momentum and position updates for the
// continuous coordinates, a randomized sweep over the discontinuous ones,
// then the mirrored second half.
func leapfrogStep[T any](prog Program[T], rng *RNG, eps float64, st, st0 *State) Run[T] {
	res := prog.Run(st.Q)
	halfStepMomentum(st, res.Grad(), eps)
	halfStepPosition(st, eps)
	res = prog.Run(st.Q)

	// Visit the discontinuous coordinates in a random order. A fixed
	// order would bias the chain: every visit can change the coordinate
	// count and invalidate later indices.
	var disc []int
	for i, cont := range st.IsCont {
		if !cont {
			disc = append(disc, i)
		}
	}
	for _, j := range rng.Rand.Perm(len(disc)) {
		i := disc[j]
		if i >= len(st.Q) {
			continue // dropped by a dimension shrink earlier in this sweep
		}
		res = coordIntegrator(prog, rng, i, eps, st, st0, res)
	}

	halfStepPosition(st, eps)
	res = prog.Run(st.Q)
	halfStepMomentum(st, res.Grad(), eps)
	return res
}

// halfStepMomentum applies p -= eps/2 * gradU to the continuous
// coordinates.
func halfStepMomentum(st *State, grad []float64, eps float64) {
	if len(grad) != len(st.P) {
		panic("hoppit: gradient length does not match momentum length")
	}
	for i := range st.P {
		if st.IsCont[i] {
			st.P[i] -= eps / 2 * grad[i]
		}
	}
}

// halfStepPosition applies q += eps/2 * p to the continuous coordinates.
func halfStepPosition(st *State, eps float64) {
	for i := range st.Q {
		if st.IsCont[i] {
			st.Q[i] += eps / 2 * st.P[i]
		}
	}
}
