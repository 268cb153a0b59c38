package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/wakatimer/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writers.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = applyStartOptions(options).mode
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayWarning prints a skipped or failed path to stderr.
func (s *SimpleUI) DisplayWarning(path m.Path, err error) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: %s: %v\n", path, err)
}

// DisplayPlan prints one table row per planned file.
func (s *SimpleUI) DisplayPlan(plans []m.FilePlan, timeline m.Timeline) error {
	if len(plans) == 0 {
		s.printf("No files to replay\n")
		return nil
	}

	s.printf("\n%s", renderPlanTable(plans, timeline))

	return nil
}

// DisplaySessionInfo prints the session header.
func (s *SimpleUI) DisplaySessionInfo(info SessionInfo) {
	clockKind := "real time"
	if info.Instant {
		clockKind = "instant"
	}

	s.printf("Session %s\n", info.Session.ID)
	s.printf("Replaying %d increments of %d files from %s into %s\n",
		info.Events, info.Files, info.Source, info.Session.Destination)
	s.printf("Simulated duration %s, speed x%g (%s)\n",
		info.Session.TotalDuration, info.Session.SpeedFactor, clockKind)
}

// DisplayEvent prints one line per applied increment.
func (s *SimpleUI) DisplayEvent(event ReplayEvent) {
	width := len(fmt.Sprintf("%d", event.Total))

	s.printf("[%*d/%d] %s %s\n", width, event.Index+1, event.Total,
		formatOffset(event.Event.Offset), describeIncrement(event.Event.Increment))

	if event.Err != nil {
		s.DisplayWarning(event.Event.Increment.Target, event.Err)
	}
}

// DisplaySummary prints the run totals, and the error that ended it if any.
func (s *SimpleUI) DisplaySummary(summary m.ReplaySummary, err error) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.AppendBulk([][]string{
		{"Applied", fmt.Sprintf("%d/%d", summary.Applied, summary.Events)},
		{"Files completed", fmt.Sprintf("%d", summary.FilesCompleted)},
		{"Files failed", fmt.Sprintf("%d", len(summary.FilesFailed))},
		{"Simulated", formatOffset(summary.Simulated)},
		{"Wall", formatOffset(summary.Wall)},
	})
	table.Render()

	s.printf("\n%s", tableBuffer.String())

	for _, path := range summary.FilesFailed {
		s.printf("failed: %s\n", path)
	}

	switch {
	case summary.Interrupted:
		s.printf("replay interrupted: %v\n", err)
	case err != nil:
		s.printf("replay error: %v\n", err)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderPlanTable lays out one row per planned file with a totals footer.
func renderPlanTable(plans []m.FilePlan, timeline m.Timeline) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Kind", "Size", "Increments", "First", "Last"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, row := range planRows(plans, timeline) {
		table.Append([]string{
			row.path,
			row.kind,
			formatBytes(row.size),
			fmt.Sprintf("%d", row.increments),
			row.first,
			row.last,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(plans)),
		"",
		"",
		fmt.Sprintf("%d", len(timeline)),
		"",
		formatOffset(timeline.Duration()),
	})

	table.Render()

	return tableBuffer.String()
}
