package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/wakatimer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd                       { return tea.Quit }
func (q quitModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return q, tea.Quit }
func (q quitModel) View() string                        { return "" }

func TestTUI_StartWithModel_Close(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.startWithModel(quitModel{}))
	require.NoError(t, tui.startWithModel(quitModel{}))

	done := make(chan struct{})
	go func() {
		tui.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}

	assert.False(t, tui.started)
	assert.False(t, tui.send(warningMsg{}))
}

func TestTUI_ReplayMode_RendersSummary(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(WithReplayMode()))

	_, timeline := samplePlan()
	tui.DisplaySessionInfo(SessionInfo{Session: m.Session{ID: "s-1"}, Files: 2, Events: 3})
	tui.DisplayEvent(ReplayEvent{Index: 0, Total: 3, Event: timeline[0]})
	tui.DisplaySummary(m.ReplaySummary{Events: 3, Applied: 3, FilesCompleted: 2}, nil)
	tui.Close()

	assert.Contains(t, buf.String(), "3/3 applied")
}

func TestTUI_PlanMode_PrintsDirectly(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.Start(WithPlanMode()))

	plans, timeline := samplePlan()
	require.NoError(t, tui.DisplayPlan(plans, timeline))
	tui.DisplayWarning("broken.txt", errors.New("unreadable"))
	tui.Close()

	output := buf.String()
	assert.Contains(t, output, "wakatimer plan")
	assert.Contains(t, output, "src/main.go")
	assert.Contains(t, output, "broken.txt: unreadable")
}

func TestTUI_DisplayPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	require.NoError(t, tui.DisplayPlan(nil, nil))
	assert.Contains(t, buf.String(), "No files to replay")
}

func TestReplayModel_Update(t *testing.T) {
	_, timeline := samplePlan()
	model := newReplayModel(100)

	updated, cmd := model.Update(sessionMsg{info: SessionInfo{Session: m.Session{ID: "s-1"}, Files: 2, Events: 3}})
	assert.Nil(t, cmd)

	updated, _ = updated.Update(eventMsg{event: ReplayEvent{Index: 1, Total: 3, Event: timeline[1]}})
	rm := updated.(replayModel)

	assert.True(t, rm.hasSession)
	assert.Equal(t, 2, rm.applied)
	assert.Equal(t, 3, rm.total)
	assert.InDelta(t, 2.0/3.0, rm.percent(), 1e-9)
	assert.Contains(t, rm.View(), "logo.png")
	assert.Contains(t, rm.View(), "session s-1")
}

func TestReplayModel_KeepsLastWarnings(t *testing.T) {
	model := newReplayModel(100)

	var updated tea.Model = model
	for i := range maxWarnings + 3 {
		updated, _ = updated.Update(warningMsg{path: m.Path(strings.Repeat("x", i+1)), err: errors.New("skipped")})
	}

	rm := updated.(replayModel)
	require.Len(t, rm.warnings, maxWarnings)
	assert.True(t, strings.HasPrefix(rm.warnings[0], "xxxx:"))
}

func TestReplayModel_EventErrorBecomesWarning(t *testing.T) {
	_, timeline := samplePlan()
	model := newReplayModel(100)

	updated, _ := model.Update(eventMsg{event: ReplayEvent{Index: 2, Total: 3, Event: timeline[2], Err: errors.New("hash mismatch")}})

	rm := updated.(replayModel)
	require.Len(t, rm.warnings, 1)
	assert.Contains(t, rm.warnings[0], "src/main.go: hash mismatch")
}

func TestReplayModel_SummaryQuits(t *testing.T) {
	model := newReplayModel(100)

	updated, cmd := model.Update(summaryMsg{
		summary: m.ReplaySummary{Events: 4, Applied: 2, Interrupted: true},
		err:     errors.New("context canceled"),
	})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	view := updated.View()
	assert.Contains(t, view, "interrupted")
	assert.Contains(t, view, "2/4 applied")
}

func TestReplayModel_WindowResize(t *testing.T) {
	model := newReplayModel(0)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 50, Height: 20})

	rm := updated.(replayModel)
	assert.Equal(t, 50, rm.width)
	assert.Equal(t, 44, rm.progressBar.Width)
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "short", truncateToWidth("short", 10))
	assert.Equal(t, "unbounded", truncateToWidth("unbounded", 0))

	got := truncateToWidth("very/long/path/to/file.go", 10)
	assert.Equal(t, "…o/file.go", got)
}
