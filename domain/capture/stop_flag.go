package capture

import "sync/atomic"

// StopFlag is a one-shot stop request shared between the foreground and the
// recording goroutine. The zero value is ready to use and not requested.
type StopFlag struct{ requested atomic.Bool }

// NewStopFlag returns a fresh, unrequested flag.
func NewStopFlag() *StopFlag { return &StopFlag{} }

// Request marks the flag. Calling it more than once has no further effect.
func (f *StopFlag) Request() {
	if f == nil {
		return
	}
	f.requested.Store(true)
}

// Requested reports whether a stop was requested. A nil flag is never requested.
func (f *StopFlag) Requested() bool {
	if f == nil {
		return false
	}
	return f.requested.Load()
}
