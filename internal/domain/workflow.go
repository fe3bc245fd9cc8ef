package domain

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/hoppit/internal/adapter"
	"github.com/mouse-blink/hoppit/internal/controller"
	m "github.com/mouse-blink/hoppit/internal/model"
)

// Factory resolves model names into runnable probabilistic programs.
type Factory interface {
	Infos() []m.ModelInfo
	New(name string, rng *RNG) (Program[float64], error)
}

// RunArgs configures a full inference run.
type RunArgs struct {
	Model         string
	Count         int
	Eps           float64
	LeapfrogSteps int
	// BurnIn is the number of leading samples to discard; negative
	// selects a tenth of Count.
	BurnIn int
	Seed   uint64
	// Chains is the number of independent chains; chain i runs with
	// seed Seed+i.
	Chains int
	// Importance additionally runs importance resampling with an
	// adjusted count of Count*LeapfrogSteps, for comparison.
	Importance bool
	Reports    m.Path
}

// ViewArgs configures report viewing.
type ViewArgs struct {
	Reports m.Path
}

// Workflow ties the sampler core to the model registry, report
// persistence and the UI.
type Workflow interface {
	Run(args RunArgs) error
	List() error
	View(args ViewArgs) error
}

type workflow struct {
	factory Factory
	store   adapter.ReportStore
	ui      controller.UI
}

// NewWorkflow creates a Workflow instance with the provided collaborators.
func NewWorkflow(factory Factory, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		factory: factory,
		store:   store,
		ui:      ui,
	}
}

// Run samples the named model, persists one report per chain (plus one for
// importance resampling when requested) and displays a summary.
func (w *workflow) Run(args RunArgs) error {
	if args.Chains <= 0 {
		args.Chains = 1
	}
	burnIn := args.BurnIn
	if burnIn < 0 {
		burnIn = args.Count / 10
	}

	perChain := args.Count + burnIn
	adjustedCount := args.Count * args.LeapfrogSteps
	totalIters := args.Chains * perChain
	if args.Importance {
		totalIters += adjustedCount
	}

	w.ui.Start(totalIters)

	var done atomic.Int64
	progress := func(int, int) {
		w.ui.Progress(int(done.Add(1)), totalIters)
	}

	// Each chain owns its seed, stream and program instance; the core
	// stays strictly sequential within a chain.
	reports := make([]m.Report, args.Chains)
	var g errgroup.Group
	for chain := 0; chain < args.Chains; chain++ {
		g.Go(func() error {
			seed := args.Seed + uint64(chain)
			rng := NewRNG(seed)
			prog, err := w.factory.New(args.Model, rng)
			if err != nil {
				return err
			}
			sampler := NPDHMC[float64]{
				Prog:          prog,
				RNG:           rng,
				LeapfrogSteps: args.LeapfrogSteps,
				Eps:           args.Eps,
				BurnIn:        burnIn,
				Progress:      progress,
			}
			start := time.Now()
			result := sampler.Sample(args.Count)
			reports[chain] = m.Report{
				Method: m.MethodNPDHMC,
				Config: m.RunConfig{
					Model:         args.Model,
					Count:         args.Count,
					Eps:           args.Eps,
					LeapfrogSteps: args.LeapfrogSteps,
					BurnIn:        burnIn,
					Seed:          seed,
					Chain:         chain,
				},
				Samples:     result.Samples,
				AcceptRatio: result.AcceptRatio,
				Elapsed:     time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		w.ui.Done()
		return err
	}

	if args.Importance {
		report, err := w.runImportance(args, adjustedCount, progress)
		if err != nil {
			w.ui.Done()
			return err
		}
		reports = append(reports, report)
	}
	w.ui.Done()

	for _, report := range reports {
		if err := w.store.Save(args.Reports, report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	return w.ui.DisplaySummary(reports)
}

func (w *workflow) runImportance(args RunArgs, count int, progress func(done, total int)) (m.Report, error) {
	rng := NewRNG(args.Seed)
	prog, err := w.factory.New(args.Model, rng)
	if err != nil {
		return m.Report{}, err
	}
	sampler := Importance[float64]{Prog: prog, RNG: rng, Progress: progress}

	start := time.Now()
	weighted, values := sampler.Resample(count)
	logWeights := make([]float64, len(weighted))
	for i, wt := range weighted {
		logWeights[i] = wt.LogWeight
	}
	return m.Report{
		Method: m.MethodImportance,
		Config: m.RunConfig{
			Model: args.Model,
			Count: count,
			Seed:  args.Seed,
		},
		Samples:    values,
		LogWeights: logWeights,
		Elapsed:    time.Since(start),
	}, nil
}

// List displays the registered models.
func (w *workflow) List() error {
	return w.ui.DisplayModels(w.factory.Infos())
}

// View loads previously saved reports and displays their summary.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadAll(args.Reports)
	if err != nil {
		return fmt.Errorf("failed to load reports: %w", err)
	}
	return w.ui.DisplaySummary(reports)
}
