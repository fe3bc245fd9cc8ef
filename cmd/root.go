// Package cmd provides the root command and CLI setup for hoppit.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/hoppit/internal/adapter"
	"github.com/mouse-blink/hoppit/internal/controller"
	"github.com/mouse-blink/hoppit/internal/domain"
	"github.com/mouse-blink/hoppit/internal/domain/progs"
)

var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(progs.NewFactory(), reportStore, ui)
}

var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hoppit",
		Short: "MCMC inference for nonparametric probabilistic programs",
		Long:  rootLongDescription,
	}
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "r", ".hoppit-reports", "directory for sample reports")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
