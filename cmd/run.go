package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/hoppit/internal/domain"
	m "github.com/mouse-blink/hoppit/internal/model"
)

var runCountFlag int
var runEpsFlag float64
var runLeapfrogStepsFlag int
var runBurnInFlag int
var runSeedFlag uint64
var runChainsFlag int
var runImportanceFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <model>",
		Short: "Run NP-DHMC inference on a model",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(domain.RunArgs{
				Model:         args[0],
				Count:         runCountFlag,
				Eps:           runEpsFlag,
				LeapfrogSteps: runLeapfrogStepsFlag,
				BurnIn:        runBurnInFlag,
				Seed:          runSeedFlag,
				Chains:        runChainsFlag,
				Importance:    runImportanceFlag,
				Reports:       m.Path(reportsOutputDirFlag),
			})
		},
	}
	cmd.Flags().IntVarP(&runCountFlag, "count", "c", 1000, "number of samples to draw")
	cmd.Flags().Float64VarP(&runEpsFlag, "eps", "e", 0.1, "leapfrog step size")
	cmd.Flags().IntVarP(&runLeapfrogStepsFlag, "leapfrog-steps", "l", 5, "leapfrog steps per proposal")
	cmd.Flags().IntVarP(&runBurnInFlag, "burnin", "b", -1, "samples to discard at the start (-1 for a tenth of count)")
	cmd.Flags().Uint64VarP(&runSeedFlag, "seed", "s", 0, "random seed")
	cmd.Flags().IntVarP(&runChainsFlag, "chains", "n", 1, "independent chains to run in parallel")
	cmd.Flags().BoolVarP(&runImportanceFlag, "importance", "i", false, "also run importance resampling for comparison")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
