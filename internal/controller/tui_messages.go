package controller

import (
	m "github.com/mouse-blink/wakatimer/internal/model"
)

// Message types.
type sessionMsg struct {
	info SessionInfo
}

type eventMsg struct {
	event ReplayEvent
}

type warningMsg struct {
	path m.Path
	err  error
}

type summaryMsg struct {
	summary m.ReplaySummary
	err     error
}
