package model

import "time"

// Session is one end-to-end replay run. It is fixed once replay begins.
type Session struct {
	ID            string
	Start         time.Time
	TotalDuration time.Duration
	SpeedFactor   float64
	Destination   Path
}

// ReplaySummary reports what an executor run did.
type ReplaySummary struct {
	SessionID      string
	Events         int
	Applied        int
	FilesCompleted int
	FilesFailed    []Path
	Interrupted    bool
	Simulated      time.Duration // offset of the last applied event
	Wall           time.Duration
}
