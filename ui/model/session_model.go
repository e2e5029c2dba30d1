package model

import (
	"time"
)

// SessionModel tracks the running recording's elapsed time against its limit.
// It is decoupled from the UI; presenters should poll Values() and update views.
// The zero value is ready to use.
type SessionModel struct {
	active  bool
	start   time.Time
	elapsed time.Duration
	limit   time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// SetLimit records the maximum duration of the next or current session.
func (m *SessionModel) SetLimit(d time.Duration) {
	if m == nil {
		return
	}
	m.limit = d
}

// OnTick updates the model using the current recording state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(recording bool, now time.Time) {
	if m == nil {
		return
	}
	if recording {
		if !m.active { // transition off -> on
			m.active = true
			m.start = now
		}
		m.elapsed = now.Sub(m.start)
	} else if m.active { // transition on -> off; the last value stays visible
		m.elapsed = now.Sub(m.start)
		m.active = false
	}
	if m.limit > 0 && m.elapsed > m.limit {
		m.elapsed = m.limit
	}
}

// Values returns the elapsed time of the current or last session and the limit.
func (m *SessionModel) Values() (elapsed, limit time.Duration) {
	if m == nil {
		return 0, 0
	}
	return m.elapsed, m.limit
}
