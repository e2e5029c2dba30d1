// Package progress defines the ordered, append-only stream sessions report to.
// The core never assumes a UI: sinks may render to a terminal, a log panel or slog.
package progress

import (
	"fmt"
	"log/slog"
)

// Sink receives human readable progress. Implementations must be safe for
// use from the recording goroutine while another goroutine reads them.
type Sink interface {
	// Logf appends one line.
	Logf(format string, args ...any)
	// Step reports that done of total units of stage are complete.
	Step(stage string, done, total int)
}

// Discard drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Logf(string, ...any)   {}
func (discard) Step(string, int, int) {}

// Multi fans every call out to each non-nil sink in order.
type Multi []Sink

func (m Multi) Logf(format string, args ...any) {
	for _, s := range m {
		if s != nil {
			s.Logf(format, args...)
		}
	}
}

func (m Multi) Step(stage string, done, total int) {
	for _, s := range m {
		if s != nil {
			s.Step(stage, done, total)
		}
	}
}

// Slog forwards lines at Info and steps at Debug.
type Slog struct{ Logger *slog.Logger }

func (s Slog) Logf(format string, args ...any) {
	if s.Logger == nil {
		return
	}
	s.Logger.Info(fmt.Sprintf(format, args...))
}

func (s Slog) Step(stage string, done, total int) {
	if s.Logger == nil {
		return
	}
	s.Logger.Debug("progress", "stage", stage, "done", done, "total", total)
}
