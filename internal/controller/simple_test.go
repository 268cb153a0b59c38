package controller

import (
	"bytes"
	"errors"
	"testing"
	"time"

	m "github.com/mouse-blink/wakatimer/internal/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	return cmd, &out, &errOut
}

func samplePlan() ([]m.FilePlan, m.Timeline) {
	mainGo := m.SourceEntry{RelPath: "src/main.go", Size: 1000, Kind: m.KindFile, Class: m.ClassTypeIncremental}
	logo := m.SourceEntry{RelPath: "logo.png", Size: 2048, Kind: m.KindFile, Class: m.ClassCopyBinary}

	writes := []m.Increment{
		{Target: "src/main.go", Kind: m.IncrementWrite, Size: 500, Index: 0},
		{Target: "src/main.go", Kind: m.IncrementWrite, Size: 1000, Index: 1, Final: true},
	}
	copyLogo := m.Increment{Target: "logo.png", Kind: m.IncrementCopy, Size: 2048, Final: true}

	plans := []m.FilePlan{
		{Entry: mainGo, Increments: writes},
		{Entry: logo, Increments: []m.Increment{copyLogo}},
	}
	timeline := m.Timeline{
		{Increment: writes[0], Offset: 2 * time.Second},
		{Increment: copyLogo, Offset: 4 * time.Second},
		{Increment: writes[1], Offset: 9 * time.Second},
	}

	return plans, timeline
}

func TestSimpleUI_DisplayPlan_PrintsTable(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)
	require.NoError(t, ui.Start(WithPlanMode()))

	plans, timeline := samplePlan()
	require.NoError(t, ui.DisplayPlan(plans, timeline))

	output := out.String()
	for _, want := range []string{
		"src/main.go",
		"logo.png",
		"text",
		"binary",
		"2.0 KiB",
		"0:00:02",
		"0:00:09",
		"TOTAL FILES 2",
	} {
		assert.Contains(t, output, want)
	}
}

func TestSimpleUI_DisplayPlan_Empty(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayPlan(nil, nil))
	assert.Equal(t, "No files to replay\n", out.String())
}

func TestSimpleUI_DisplayWarning_WritesStderr(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplayWarning("secret.key", errors.New("permission denied"))

	assert.Empty(t, out.String())
	assert.Equal(t, "warning: secret.key: permission denied\n", errOut.String())
}

func TestSimpleUI_DisplayEvent(t *testing.T) {
	cmd, out, errOut := newTestCommand()
	ui := NewSimpleUI(cmd)
	_, timeline := samplePlan()

	ui.DisplayEvent(ReplayEvent{Index: 0, Total: 12, Event: timeline[0]})
	ui.DisplayEvent(ReplayEvent{Index: 1, Total: 12, Event: timeline[1], Err: errors.New("hash mismatch")})

	assert.Contains(t, out.String(), "[ 1/12] 0:00:02 write src/main.go #1 (500 B)")
	assert.Contains(t, out.String(), "[ 2/12] 0:00:04 copy  logo.png (2.0 KiB)")
	assert.Contains(t, errOut.String(), "warning: logo.png: hash mismatch")
}

func TestSimpleUI_DisplaySessionInfo(t *testing.T) {
	cmd, out, _ := newTestCommand()
	ui := NewSimpleUI(cmd)

	ui.DisplaySessionInfo(SessionInfo{
		Session: m.Session{
			ID:            "abc",
			TotalDuration: time.Hour,
			SpeedFactor:   60,
			Destination:   "/tmp/dest",
		},
		Source:  "/tmp/src",
		Files:   3,
		Events:  7,
		Instant: true,
	})

	output := out.String()
	assert.Contains(t, output, "Session abc")
	assert.Contains(t, output, "Replaying 7 increments of 3 files from /tmp/src into /tmp/dest")
	assert.Contains(t, output, "speed x60 (instant)")
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		cmd, out, _ := newTestCommand()
		ui := NewSimpleUI(cmd)

		ui.DisplaySummary(m.ReplaySummary{
			Events:         3,
			Applied:        3,
			FilesCompleted: 2,
			Simulated:      9 * time.Second,
		}, nil)

		output := out.String()
		assert.Contains(t, output, "3/3")
		assert.Contains(t, output, "0:00:09")
		assert.NotContains(t, output, "replay error")
	})

	t.Run("interrupted", func(t *testing.T) {
		cmd, out, _ := newTestCommand()
		ui := NewSimpleUI(cmd)

		ui.DisplaySummary(m.ReplaySummary{Events: 3, Applied: 1, Interrupted: true}, errors.New("context canceled"))

		assert.Contains(t, out.String(), "1/3")
		assert.Contains(t, out.String(), "replay interrupted: context canceled")
	})

	t.Run("failed files", func(t *testing.T) {
		cmd, out, _ := newTestCommand()
		ui := NewSimpleUI(cmd)

		ui.DisplaySummary(m.ReplaySummary{Events: 3, Applied: 3, FilesFailed: []m.Path{"a.txt"}}, nil)

		assert.Contains(t, out.String(), "failed: a.txt")
	})
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "0:00:00", formatOffset(0))
	assert.Equal(t, "0:01:05", formatOffset(65*time.Second))
	assert.Equal(t, "2:00:01", formatOffset(2*time.Hour+time.Second))
	assert.Equal(t, "0:00:02", formatOffset(1500*time.Millisecond))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 B", formatBytes(0))
	assert.Equal(t, "1023 B", formatBytes(1023))
	assert.Equal(t, "1.5 KiB", formatBytes(1536))
	assert.Equal(t, "3.0 MiB", formatBytes(3*1024*1024))
}

func TestPlanRows_FirstAndLastOffsets(t *testing.T) {
	plans, timeline := samplePlan()
	plans = append(plans, m.FilePlan{Entry: m.SourceEntry{RelPath: "empty.txt", Class: m.ClassTypeIncremental}})

	rows := planRows(plans, timeline)
	require.Len(t, rows, 3)

	assert.Equal(t, "src/main.go", rows[0].path)
	assert.Equal(t, 2, rows[0].increments)
	assert.Equal(t, "0:00:02", rows[0].first)
	assert.Equal(t, "0:00:09", rows[0].last)

	assert.Equal(t, "0:00:04", rows[1].first)
	assert.Equal(t, "0:00:04", rows[1].last)

	assert.Equal(t, "-", rows[2].first)
	assert.Equal(t, "-", rows[2].last)
}
