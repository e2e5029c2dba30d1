package capture

import (
	"time"
)

// RecordStats summarises one recorder run for instrumentation.
type RecordStats struct {
	Samples    int
	Planned    int
	AvgCapture time.Duration
	MaxCapture time.Duration
	// Overruns counts samples whose capture alone took longer than the interval.
	Overruns int
	Elapsed  time.Duration
	Stopped  bool
}

// FrameSnapshot carries the latest captured sample for previews.
type FrameSnapshot struct {
	Sample
	Planned int
}
