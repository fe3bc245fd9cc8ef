// Package controller provides output adapters for displaying inference
// progress and results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/hoppit/internal/model"
)

// UI defines the interface for reporting inference progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// Start announces a run of total iterations.
	Start(total int)
	// Progress reports that done of total iterations have finished.
	// It must be safe to call from multiple goroutines.
	Progress(done, total int)
	// Done marks the run as finished.
	Done()
	// DisplayModels shows the registered probabilistic programs.
	DisplayModels(infos []m.ModelInfo) error
	// DisplaySummary shows per-report summary statistics.
	DisplaySummary(reports []m.Report) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true, it returns a TUI (Bubble Tea).
// When useTTY is false, it returns a SimpleUI (plain text).
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true if the output is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
