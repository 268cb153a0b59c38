package controller

import (
	"errors"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/wakatimer/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	width   int
	mode    StartMode
	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, width: terminalWidth(output)}
}

// Start initializes the UI. Replay mode runs a progress program until Close.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = applyStartOptions(options).mode
	if t.mode != ModeReplay {
		return nil
	}

	return t.startWithModel(newReplayModel(t.width))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	program := tea.NewProgram(
		model,
		tea.WithOutput(t.output),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	group := &errgroup.Group{}
	group.Go(func() error {
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}

		return err
	})

	t.program = program
	t.group = group
	t.started = true

	return nil
}

// Close stops the program and waits for it to flush its final frame.
func (t *TUI) Close() {
	t.mu.Lock()
	program, group := t.program, t.group
	t.program, t.group, t.started = nil, nil, false
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()

	if err := group.Wait(); err != nil {
		_, _ = fmt.Fprintf(t.output, "ui error: %v\n", err)
	}
}

// send forwards msg to the running program. It reports false when none runs.
func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplayWarning shows a skipped path.
func (t *TUI) DisplayWarning(path m.Path, err error) {
	if t.send(warningMsg{path: path, err: err}) {
		return
	}

	_, _ = fmt.Fprintln(t.output, warningStyle.Render(fmt.Sprintf("! %s: %v", path, err)))
}

// DisplayPlan prints the plan table under a styled title.
func (t *TUI) DisplayPlan(plans []m.FilePlan, timeline m.Timeline) error {
	_, _ = fmt.Fprintln(t.output, titleStyle.Render("wakatimer plan"))

	if len(plans) == 0 {
		_, _ = fmt.Fprintln(t.output, summaryStyle.Render("No files to replay"))
		return nil
	}

	_, _ = fmt.Fprintf(t.output, "\n%s", renderPlanTable(plans, timeline))

	return nil
}

// DisplaySessionInfo shows the session header.
func (t *TUI) DisplaySessionInfo(info SessionInfo) {
	if t.send(sessionMsg{info: info}) {
		return
	}

	_, _ = fmt.Fprintf(t.output, "Session %s: %d increments of %d files\n", info.Session.ID, info.Events, info.Files)
}

// DisplayEvent advances the progress bar.
func (t *TUI) DisplayEvent(event ReplayEvent) {
	if t.send(eventMsg{event: event}) {
		return
	}

	_, _ = fmt.Fprintf(t.output, "[%d/%d] %s\n", event.Index+1, event.Total, describeIncrement(event.Event.Increment))
}

// DisplaySummary renders the final totals. The program exits after drawing them.
func (t *TUI) DisplaySummary(summary m.ReplaySummary, err error) {
	if t.send(summaryMsg{summary: summary, err: err}) {
		return
	}

	model := newReplayModel(t.width)
	model.finished = true
	model.summary = summary
	model.err = err

	_, _ = fmt.Fprint(t.output, model.viewSummary())
}
