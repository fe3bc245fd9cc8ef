package controller

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/hoppit/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command

	mu       sync.Mutex
	lastTick int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces a run.
func (s *SimpleUI) Start(total int) {
	s.mu.Lock()
	s.lastTick = 0
	s.mu.Unlock()

	s.printf("running %d iterations\n", total)
}

// Progress prints a line once per completed decile.
func (s *SimpleUI) Progress(done, total int) {
	if total <= 0 {
		return
	}

	tick := done * 10 / total

	s.mu.Lock()
	defer s.mu.Unlock()

	if tick <= s.lastTick {
		return
	}

	s.lastTick = tick
	s.printf("progress: %d%%\n", tick*10)
}

// Done marks the run as finished.
func (s *SimpleUI) Done() {}

// DisplayModels prints the registered models as a table.
func (s *SimpleUI) DisplayModels(infos []m.ModelInfo) error {
	return renderModels(s.cmd.OutOrStdout(), infos)
}

// DisplaySummary prints per-report statistics as a table.
func (s *SimpleUI) DisplaySummary(reports []m.Report) error {
	return renderSummary(s.cmd.OutOrStdout(), reports)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
