package presenter

import (
	"time"

	"github.com/soocke/snapgif/ui/model"
)

// RecordingStateModel reports whether a session is running.
type RecordingStateModel interface{ Recording() bool }

// SessionView displays the elapsed time of the session against its limit.
type SessionView interface {
	SetSession(elapsed, limit time.Duration)
}

// SessionPresenter formats the session clock from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	rec  RecordingStateModel
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, rec RecordingStateModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, rec: rec, view: view}
}

// Tick advances the session model and pushes values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.rec == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.rec.Recording(), now)
	e, l := p.sess.Values()
	p.view.SetSession(e, l)
}
