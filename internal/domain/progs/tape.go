// Package progs contains the built-in probabilistic programs and the
// registry that exposes them to the inference workflow.
package progs

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mouse-blink/hoppit/internal/domain"
)

// tape replays the queried trace of a program run and extends it with
// prior draws when the program makes more random choices than the query
// holds.
//
// Prior log-densities enter the log-weight only for replayed values: a
// fresh draw is its own proposal, so its density cancels. This keeps
// importance weights correct while still giving the sampler the full
// trace density, since the sampler always queries complete traces.
type tape struct {
	trace []float64
	rng   *domain.RNG
	pos   int

	samples []float64
	isCont  []bool
	logW    float64
}

func newTape(trace []float64, rng *domain.RNG) *tape {
	return &tape{trace: trace, rng: rng}
}

// normal reads or draws a Normal(mu, sigma) choice. The replayed flag
// tells whether the value came from the trace and its prior entered the
// log-weight.
func (t *tape) normal(mu, sigma float64, cont bool) (x float64, replayed bool) {
	dist := distuv.Normal{Mu: mu, Sigma: sigma, Src: t.rng.Rand}
	if t.pos < len(t.trace) {
		x = t.trace[t.pos]
		t.logW += dist.LogProb(x)
		replayed = true
	} else {
		x = dist.Rand()
	}
	t.pos++
	t.samples = append(t.samples, x)
	t.isCont = append(t.isCont, cont)
	return x, replayed
}

// observe conditions the run on an observation with the given
// log-density.
func (t *tape) observe(logProb float64) {
	t.logW += logProb
}
