package progress

import (
	"fmt"
	"strings"
	"time"
)

// Bar renders "stage |████░░░░| 3/8 [00:01>00:02]".
type Bar struct {
	Width int
	Fill  rune
	Empty rune
}

// DefaultBar mirrors the glyphs of the classic terminal bar.
var DefaultBar = Bar{Width: 32, Fill: '￭', Empty: '￮'}

// Render formats one bar line. elapsed is the time spent since the stage began
// and drives the remaining-time estimate.
func (b Bar) Render(stage string, done, total int, elapsed time.Duration) string {
	width := b.Width
	if width <= 0 {
		width = DefaultBar.Width
	}
	fill, empty := b.Fill, b.Empty
	if fill == 0 {
		fill = DefaultBar.Fill
	}
	if empty == 0 {
		empty = DefaultBar.Empty
	}
	if done < 0 {
		done = 0
	}
	if total > 0 && done > total {
		done = total
	}
	filled := 0
	if total > 0 {
		filled = width * done / total
	}
	var eta time.Duration
	if done > 0 && total > done {
		eta = elapsed / time.Duration(done) * time.Duration(total-done)
	}
	return fmt.Sprintf("%s |%s%s| %d/%d [%s>%s]",
		stage,
		strings.Repeat(string(fill), filled),
		strings.Repeat(string(empty), width-filled),
		done, total,
		clock(elapsed), clock(eta),
	)
}

// clock formats d as mm:ss, or h:mm:ss past one hour.
func clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int(d.Round(time.Second) / time.Second)
	h, m, sec := s/3600, (s/60)%60, s%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}

// Tracker remembers when the current stage started so sinks can compute the
// elapsed time for Render. The zero value uses time.Now.
type Tracker struct {
	Now   func() time.Time
	stage string
	start time.Time
}

// Elapsed returns the time since stage began. A new stage, or a step of 1,
// restarts the stopwatch.
func (t *Tracker) Elapsed(stage string, done int) time.Duration {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	n := now()
	if stage != t.stage || done <= 1 || t.start.IsZero() {
		t.stage = stage
		t.start = n
	}
	return n.Sub(t.start)
}
