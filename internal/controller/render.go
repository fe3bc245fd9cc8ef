package controller

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/stat"

	m "github.com/mouse-blink/hoppit/internal/model"
)

// renderModels writes the registered models as a table.
func renderModels(w io.Writer, infos []m.ModelInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Model", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, info := range infos {
		table.Append([]string{info.Name, info.Description})
	}

	table.SetFooter([]string{
		"Total Models",
		fmt.Sprintf("%d", len(infos)),
	})

	table.Render()

	_, err := fmt.Fprintf(w, "\n%s", tableBuffer.String())

	return err
}

// renderSummary writes per-report statistics as a table.
func renderSummary(w io.Writer, reports []m.Report) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Model", "Method", "Chain", "Samples", "Mean", "Std Dev", "Accept", "Time"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, report := range reports {
		table.Append(summaryRow(report))
	}

	table.Render()

	_, err := fmt.Fprintf(w, "\n%s", tableBuffer.String())

	return err
}

func summaryRow(report m.Report) []string {
	mean, sd := "-", "-"
	if len(report.Samples) > 0 {
		mean = fmt.Sprintf("%.4f", stat.Mean(report.Samples, nil))
		sd = fmt.Sprintf("%.4f", math.Sqrt(stat.Variance(report.Samples, nil)))
	}

	accept := "-"
	if report.Method == m.MethodNPDHMC {
		accept = fmt.Sprintf("%.1f%%", report.AcceptRatio*100)
	}

	return []string{
		report.Config.Model,
		string(report.Method),
		fmt.Sprintf("%d", report.Config.Chain),
		fmt.Sprintf("%d", len(report.Samples)),
		mean,
		sd,
		accept,
		report.Elapsed.Round(time.Millisecond).String(),
	}
}
