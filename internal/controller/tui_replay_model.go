package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/wakatimer/internal/model"
)

const maxWarnings = 5

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	bodyStyle    = lipgloss.NewStyle().Padding(0, 0, 0, 2)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
)

// replayModel renders replay progress.
type replayModel struct {
	width       int
	progressBar progress.Model
	info        SessionInfo
	hasSession  bool
	total       int
	applied     int
	current     string
	offset      string
	warnings    []string
	finished    bool
	summary     m.ReplaySummary
	err         error
}

func newReplayModel(width int) replayModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)

	model := replayModel{progressBar: prog}

	return model.withWidth(width)
}

func (m replayModel) withWidth(width int) replayModel {
	m.width = width
	if width > 10 {
		m.progressBar.Width = min(width-6, 60)
	}

	return m
}

func (m replayModel) Init() tea.Cmd {
	return nil
}

func (m replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.withWidth(msg.Width)

	case sessionMsg:
		m.info = msg.info
		m.hasSession = true
		m.total = msg.info.Events

	case eventMsg:
		m.applied = msg.event.Index + 1
		m.total = msg.event.Total
		m.current = describeIncrement(msg.event.Event.Increment)
		m.offset = formatOffset(msg.event.Event.Offset)

		if msg.event.Err != nil {
			m = m.withWarning(msg.event.Event.Increment.Target, msg.event.Err)
		}

	case warningMsg:
		m = m.withWarning(msg.path, msg.err)

	case summaryMsg:
		m.finished = true
		m.summary = msg.summary
		m.err = msg.err

		return m, tea.Quit
	}

	return m, nil
}

func (m replayModel) withWarning(path m.Path, err error) replayModel {
	m.warnings = append(m.warnings, fmt.Sprintf("%s: %v", path, err))
	if len(m.warnings) > maxWarnings {
		m.warnings = m.warnings[len(m.warnings)-maxWarnings:]
	}

	return m
}

func (m replayModel) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(m.applied) / float64(m.total)
}

func (m replayModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wakatimer replay"))
	b.WriteString("\n")

	if m.hasSession {
		b.WriteString(summaryStyle.Render(fmt.Sprintf(
			"session %s · %d files · %d increments · %s at x%g",
			m.info.Session.ID, m.info.Files, m.info.Events,
			m.info.Session.TotalDuration, m.info.Session.SpeedFactor,
		)))
		b.WriteString("\n")
	}

	b.WriteString(bodyStyle.Render(fmt.Sprintf("%s  %d/%d",
		m.progressBar.ViewAs(m.percent()), m.applied, m.total)))
	b.WriteString("\n")

	if m.current != "" {
		b.WriteString(bodyStyle.Render(fmt.Sprintf("%s %s",
			accentStyle.Render(m.offset), truncateToWidth(m.current, m.width-12))))
		b.WriteString("\n")
	}

	for _, w := range m.warnings {
		b.WriteString(bodyStyle.Render(warningStyle.Render("! " + truncateToWidth(w, m.width-6))))
		b.WriteString("\n")
	}

	if m.finished {
		b.WriteString(m.viewSummary())
	}

	return b.String()
}

func (m replayModel) viewSummary() string {
	status := okStyle.Render("done")

	switch {
	case m.summary.Interrupted:
		status = warningStyle.Render("interrupted")
	case m.err != nil:
		status = errorStyle.Render("failed: " + m.err.Error())
	}

	line := fmt.Sprintf("%s · %d/%d applied · %d files completed · %d failed · simulated %s",
		status, m.summary.Applied, m.summary.Events, m.summary.FilesCompleted,
		len(m.summary.FilesFailed), formatOffset(m.summary.Simulated))

	return "\n" + bodyStyle.Render(line) + "\n" + bodyStyle.Render(dimStyle.Render("wall "+formatOffset(m.summary.Wall))) + "\n"
}

// truncateToWidth shortens text to width cells, keeping the tail visible.
func truncateToWidth(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}

	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width("…"+string(runes)) > width {
		runes = runes[1:]
	}

	return "…" + string(runes)
}
