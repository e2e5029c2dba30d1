package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It polls the background session, refreshes the views and invokes a
// scheduler callback. The zero value is usable (methods are nil-safe).
type Loop struct {
	Record   *RecordPresenter
	Session  *SessionPresenter
	Log      *LogPresenter
	Preview  *PreviewPresenter
	Schedule func()
	Now      func() time.Time
}

func NewLoop(rec *RecordPresenter, sess *SessionPresenter, log *LogPresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{Record: rec, Session: sess, Log: log, Preview: preview, Schedule: schedule, Now: time.Now}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Now != nil {
		now = l.Now()
	}
	// Preview before poll so the last frame of a finished session is shown.
	if l.Preview != nil {
		l.Preview.Refresh()
	}
	if l.Record != nil {
		l.Record.Poll()
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Log != nil {
		l.Log.Flush()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
