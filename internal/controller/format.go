package controller

import (
	"fmt"
	"time"

	m "github.com/mouse-blink/wakatimer/internal/model"
)

// formatOffset renders an offset as h:mm:ss.
func formatOffset(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	mins := d / time.Minute
	d -= mins * time.Minute

	return fmt.Sprintf("%d:%02d:%02d", h, mins, d/time.Second)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func describeIncrement(inc m.Increment) string {
	if inc.Kind == m.IncrementCopy {
		return fmt.Sprintf("copy  %s (%s)", inc.Target, formatBytes(inc.Size))
	}

	return fmt.Sprintf("write %s #%d (%s)", inc.Target, inc.Index+1, formatBytes(inc.Size))
}

type planRow struct {
	path       string
	kind       string
	size       int64
	increments int
	first      string
	last       string
}

// planRows summarizes each file with the offsets of its first and last event.
func planRows(plans []m.FilePlan, timeline m.Timeline) []planRow {
	first := make(map[m.Path]int, len(plans))
	last := make(map[m.Path]int, len(plans))

	for i, event := range timeline {
		target := event.Increment.Target
		if _, ok := first[target]; !ok {
			first[target] = i
		}

		last[target] = i
	}

	rows := make([]planRow, 0, len(plans))

	for _, plan := range plans {
		row := planRow{
			path:       string(plan.Entry.RelPath),
			kind:       plan.Entry.Class.String(),
			size:       plan.Entry.Size,
			increments: len(plan.Increments),
			first:      "-",
			last:       "-",
		}

		if i, ok := first[plan.Entry.RelPath]; ok {
			row.first = formatOffset(timeline[i].Offset)
			row.last = formatOffset(timeline[last[plan.Entry.RelPath]].Offset)
		}

		rows = append(rows, row)
	}

	return rows
}
