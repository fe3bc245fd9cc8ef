// Package domain implements nonparametric discontinuous Hamiltonian Monte
// Carlo (NP-DHMC) together with importance resampling and the inference
// workflow that drives them.
package domain

// GradFunc computes the gradient of the negative log-weight of a run with
// respect to the continuous coordinates of its trace.
type GradFunc func() []float64

// Run is the outcome of executing a probabilistic program on a trace.
type Run[T any] struct {
	// LogWeight is the unnormalized log-density of the execution. A
	// non-finite value marks a rejected position; the sampler treats it
	// as an infinite energy barrier, not as an error.
	LogWeight float64
	// Samples are the values the program assigned to its random choices.
	// Their number can differ from the queried trace when control flow
	// branches differently.
	Samples []float64
	// IsCont marks, per coordinate, whether the density is continuous in
	// it. A coordinate that a branch condition depends on is
	// discontinuous.
	IsCont []bool
	// Value is the program's return value.
	Value T
	// Grad lazily computes the gradient of -LogWeight with respect to
	// the continuous coordinates of Samples. It has the same length as
	// Samples; entries at discontinuous coordinates are ignored.
	Grad GradFunc
}

// Len returns the number of random choices made during the run.
func (r Run[T]) Len() int { return len(r.Samples) }

// Program executes a probabilistic program against a trace of random
// choices. Implementations must be deterministic for a fixed auxiliary
// random stream and must derive their coordinate count from control flow:
// the queried trace may be shorter, longer, or equal in length to the
// returned samples, and missing choices are drawn fresh.
type Program[T any] interface {
	Run(trace []float64) Run[T]
}
