package model

import "sync/atomic"

// RecordingState is the GUI's view of the session lifecycle.
type RecordingState int32

const (
	StateIdle RecordingState = iota
	StateSelecting
	StateRecording
	StateStopping
)

func (s RecordingState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelecting:
		return "selecting"
	case StateRecording:
		return "recording"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// RecordingModel tracks the lifecycle state. The zero value is idle and usable.
// Concurrency-safe via atomic because UI callbacks and presenter ticks may race.
type RecordingModel struct{ state atomic.Int32 }

// State returns the current state.
func (m *RecordingModel) State() RecordingState {
	if m == nil {
		return StateIdle
	}
	return RecordingState(m.state.Load())
}

// Transition moves from -> to and reports whether the model was in from.
func (m *RecordingModel) Transition(from, to RecordingState) bool {
	if m == nil {
		return false
	}
	return m.state.CompareAndSwap(int32(from), int32(to))
}

// Reset forces the idle state.
func (m *RecordingModel) Reset() {
	if m == nil {
		return
	}
	m.state.Store(int32(StateIdle))
}

// Recording reports whether a session is running or stopping.
func (m *RecordingModel) Recording() bool {
	s := m.State()
	return s == StateRecording || s == StateStopping
}
