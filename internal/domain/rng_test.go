package domain

import "testing"

func TestRNG_Reproducible(t *testing.T) {
	a, b := NewRNG(11), NewRNG(11)

	for i := 0; i < 100; i++ {
		if a.Normal() != b.Normal() {
			t.Fatalf("normal draw %d differs between identically seeded streams", i)
		}
		if a.Laplace() != b.Laplace() {
			t.Fatalf("laplace draw %d differs between identically seeded streams", i)
		}
	}
}

func TestRNG_MomentumSelectsDistribution(t *testing.T) {
	// With a shared stream, Momentum(true) must consume the same draw a
	// direct Normal() would, and Momentum(false) a Laplace() draw.
	a, b := NewRNG(13), NewRNG(13)

	if a.Momentum(true) != b.Normal() {
		t.Fatalf("Momentum(true) does not match the Normal stream")
	}
	if a.Momentum(false) != b.Laplace() {
		t.Fatalf("Momentum(false) does not match the Laplace stream")
	}
}
