package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/hoppit/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	stopped chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress display in the background.
func (t *TUI) Start(total int) {
	t.program = tea.NewProgram(newProgressModel(total), tea.WithOutput(t.output))
	t.stopped = make(chan struct{})

	go func() {
		defer close(t.stopped)

		_, _ = t.program.Run()
	}()
}

// Progress forwards the counter to the running display. Program.Send is
// goroutine safe, so chains can report concurrently.
func (t *TUI) Progress(done, total int) {
	if t.program != nil {
		t.program.Send(progressMsg{done: done, total: total})
	}
}

// Done stops the progress display and waits for it to shut down.
func (t *TUI) Done() {
	if t.program == nil {
		return
	}

	t.program.Send(finishedMsg{})
	<-t.stopped
	t.program = nil
}

// DisplayModels prints the registered models as a table. Runs after the
// interactive part has shut down, so plain output is fine.
func (t *TUI) DisplayModels(infos []m.ModelInfo) error {
	return renderModels(t.output, infos)
}

// DisplaySummary prints per-report statistics as a table.
func (t *TUI) DisplaySummary(reports []m.Report) error {
	return renderSummary(t.output, reports)
}

type progressMsg struct {
	done  int
	total int
}

type finishedMsg struct{}

// progressModel renders a single progress bar for the sampling run.
type progressModel struct {
	bar   progress.Model
	total int
	done  int
}

func newProgressModel(total int) progressModel {
	return progressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
	}
}

func (p progressModel) Init() tea.Cmd {
	return nil
}

func (p progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.bar.Width = msg.Width - 16
		return p, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return p, tea.Quit
		}

		return p, nil
	case progressMsg:
		p.done = msg.done

		if msg.total > 0 {
			return p, p.bar.SetPercent(float64(msg.done) / float64(msg.total))
		}

		return p, nil
	case finishedMsg:
		return p, tea.Quit
	case progress.FrameMsg:
		bar, cmd := p.bar.Update(msg)
		p.bar = bar.(progress.Model)

		return p, cmd
	}

	return p, nil
}

func (p progressModel) View() string {
	counter := lipgloss.NewStyle().
		Faint(true).
		Render(fmt.Sprintf("%d/%d", p.done, p.total))

	return fmt.Sprintf("%s %s\n", p.bar.View(), counter)
}
