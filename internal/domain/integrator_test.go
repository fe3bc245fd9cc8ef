package domain

import (
	"math"
	"testing"
)

// stepProg has a single discontinuous coordinate and a step potential:
// U = 0 left of 1, U = height right of it, U = +inf right of 3.
type stepProg struct {
	height float64
}

func (p stepProg) Run(trace []float64) Run[float64] {
	q := 0.0
	if len(trace) > 0 {
		q = trace[0]
	}

	logW := 0.0
	switch {
	case q >= 3:
		logW = math.Inf(-1)
	case q >= 1:
		logW = -p.height
	}

	return Run[float64]{
		LogWeight: logW,
		Samples:   []float64{q},
		IsCont:    []bool{false},
		Value:     q,
		Grad:      func() []float64 { return []float64{0} },
	}
}

func TestCoordIntegrator_Reflection(t *testing.T) {
	prog := stepProg{height: 2}
	rng := NewRNG(1)

	st := NewState([]float64{0.9}, []float64{1.0}, []bool{false})
	st0 := st.Clone()
	res := prog.Run(st.Q)

	// |p| = 1 <= deltaU = 2: the move must be rejected and the momentum
	// sign flipped.
	res = coordIntegrator(prog, rng, 0, 0.5, st, st0, res)

	if st.Q[0] != 0.9 {
		t.Fatalf("reflection moved the position: q = %v", st.Q[0])
	}
	if st.P[0] != -1.0 {
		t.Fatalf("reflection momentum = %v, want -1", st.P[0])
	}
	if res.LogWeight != 0 {
		t.Fatalf("reflection replaced the result bundle: logW = %v", res.LogWeight)
	}
}

func TestCoordIntegrator_Refraction(t *testing.T) {
	prog := stepProg{height: 2}
	rng := NewRNG(1)

	st := NewState([]float64{0.9}, []float64{5.0}, []bool{false})
	st0 := st.Clone()
	res := prog.Run(st.Q)

	// |p| = 5 > deltaU = 2: the coordinate crosses and pays the barrier
	// height in momentum magnitude.
	res = coordIntegrator(prog, rng, 0, 0.5, st, st0, res)

	if math.Abs(st.Q[0]-1.4) > 1e-12 {
		t.Fatalf("refraction position = %v, want 1.4", st.Q[0])
	}
	if math.Abs(st.P[0]-3.0) > 1e-12 {
		t.Fatalf("refraction momentum = %v, want 3", st.P[0])
	}
	if res.LogWeight != -2 {
		t.Fatalf("refraction kept the old result bundle: logW = %v", res.LogWeight)
	}
}

func TestCoordIntegrator_InfiniteBarrierReflects(t *testing.T) {
	prog := stepProg{height: 2}
	rng := NewRNG(1)

	// Any momentum is insufficient against a non-finite potential.
	st := NewState([]float64{2.9}, []float64{1e6}, []bool{false})
	st0 := st.Clone()
	res := prog.Run(st.Q)

	coordIntegrator(prog, rng, 0, 0.5, st, st0, res)

	if st.Q[0] != 2.9 || st.P[0] != -1e6 {
		t.Fatalf("infinite barrier: q = %v, p = %v, want reflection", st.Q[0], st.P[0])
	}
}

// dimProg returns one coordinate while q0 <= 0 and two coordinates when
// q0 > 0, with a flat potential so every coordinate move refracts.
type dimProg struct {
	rng *RNG
}

func (p dimProg) Run(trace []float64) Run[float64] {
	q0 := 0.0
	if len(trace) > 0 {
		q0 = trace[0]
	}

	samples := []float64{q0}
	isCont := []bool{false}

	if q0 > 0 {
		x := 0.0
		if len(trace) > 1 {
			x = trace[1]
		} else {
			x = p.rng.Normal()
		}
		samples = append(samples, x)
		isCont = append(isCont, true)
	}

	n := len(samples)
	return Run[float64]{
		Samples: samples,
		IsCont:  isCont,
		Value:   q0,
		Grad:    func() []float64 { return make([]float64, n) },
	}
}

func TestCoordIntegrator_DimensionGrowth(t *testing.T) {
	rng := NewRNG(1)
	prog := dimProg{rng: rng}

	st := NewState([]float64{-0.1}, []float64{1.0}, []bool{false})
	st0 := st.Clone()
	res := prog.Run(st.Q)

	res = coordIntegrator(prog, rng, 0, 0.5, st, st0, res)

	if res.Len() != 2 {
		t.Fatalf("expected the program to discover a coordinate, got len %d", res.Len())
	}
	if len(st.Q) != 2 || len(st.P) != 2 || len(st.IsCont) != 2 {
		t.Fatalf("working state did not grow: q=%d p=%d mask=%d", len(st.Q), len(st.P), len(st.IsCont))
	}
	if len(st0.P) != 2 || len(st0.IsCont) != 2 {
		t.Fatalf("reference state did not grow: p=%d mask=%d", len(st0.P), len(st0.IsCont))
	}
	if st.P[1] == 0 {
		t.Fatalf("padded momentum was left at its zero value")
	}
	if st.P[1] != st0.P[1] {
		t.Fatalf("working and reference momentum padding differ: %v vs %v", st.P[1], st0.P[1])
	}
	if !st.IsCont[1] || !st0.IsCont[1] {
		t.Fatalf("new coordinate's continuity flag was not adopted")
	}
}

func TestCoordIntegrator_DimensionShrink(t *testing.T) {
	rng := NewRNG(1)
	prog := dimProg{rng: rng}

	st := NewState([]float64{0.4, 0.7}, []float64{-1.0, 0.3}, []bool{false, true})
	st0 := st.Clone()
	res := prog.Run(st.Q)

	res = coordIntegrator(prog, rng, 0, 0.5, st, st0, res)

	if res.Len() != 1 {
		t.Fatalf("expected the program to drop a coordinate, got len %d", res.Len())
	}
	if len(st.Q) != 1 || len(st.P) != 1 || len(st.IsCont) != 1 {
		t.Fatalf("working state did not shrink: q=%d p=%d mask=%d", len(st.Q), len(st.P), len(st.IsCont))
	}
	if len(st0.P) != 1 || len(st0.IsCont) != 1 {
		t.Fatalf("reference state did not shrink: p=%d mask=%d", len(st0.P), len(st0.IsCont))
	}
	if math.Abs(st.Q[0]-(-0.1)) > 1e-12 {
		t.Fatalf("shrunk position = %v, want -0.1", st.Q[0])
	}
}

// gauss2Prog is a smooth two-dimensional standard normal with analytic
// gradient: the benchmark for energy conservation.
type gauss2Prog struct{}

func (gauss2Prog) Run(trace []float64) Run[float64] {
	q := append([]float64(nil), trace...)

	var logW float64
	for _, x := range q {
		logW -= x * x / 2
	}

	return Run[float64]{
		LogWeight: logW,
		Samples:   q,
		IsCont:    []bool{true, true}[:len(q)],
		Value:     0,
		Grad: func() []float64 {
			return append([]float64(nil), q...)
		},
	}
}

func TestLeapfrogStep_ConservesEnergy(t *testing.T) {
	prog := gauss2Prog{}
	rng := NewRNG(1)

	st := NewState([]float64{0.5, -0.3}, []float64{0.7, 0.2}, []bool{true, true})
	st0 := st.Clone()

	res := prog.Run(st.Q)
	h0 := -res.LogWeight + st.KineticEnergy()

	const eps = 0.05
	for i := 0; i < 20; i++ {
		res = leapfrogStep(prog, rng, eps, st, st0)
	}
	h1 := -res.LogWeight + st.KineticEnergy()

	if math.Abs(h1-h0) > 0.02 {
		t.Fatalf("total energy drifted from %v to %v over 20 steps", h0, h1)
	}
	if len(st.Q) != len(st.P) || len(st.P) != len(st.IsCont) {
		t.Fatalf("length invariant broken after leapfrog: %d %d %d", len(st.Q), len(st.P), len(st.IsCont))
	}
}

func TestLeapfrogStep_SkipsOutOfRangeIndices(t *testing.T) {
	rng := NewRNG(3)
	prog := dimProg{rng: rng}

	// Two discontinuous-ish coordinates where a shrink can drop the
	// second mid-sweep; the step must not index past the new length.
	st := NewState([]float64{0.2, 0.1}, []float64{-1.0, -0.5}, []bool{false, true})
	st0 := st.Clone()

	for i := 0; i < 5; i++ {
		leapfrogStep(prog, rng, 0.5, st, st0)
		if len(st.Q) != len(st.P) || len(st.P) != len(st.IsCont) {
			t.Fatalf("length invariant broken: %d %d %d", len(st.Q), len(st.P), len(st.IsCont))
		}
		if len(st0.P) != len(st.P) || len(st0.IsCont) != len(st0.P) {
			t.Fatalf("reference state out of step: %d vs %d", len(st0.P), len(st.P))
		}
	}
}
