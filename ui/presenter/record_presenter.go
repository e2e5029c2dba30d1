package presenter

import (
	"image"
	"log/slog"

	"github.com/soocke/snapgif/domain/capture"
	"github.com/soocke/snapgif/domain/session"
	"github.com/soocke/snapgif/progress"
	"github.com/soocke/snapgif/ui/model"
)

// SessionRunner narrows what the presenter needs from session.Runner.
type SessionRunner interface {
	Start(region image.Rectangle, params capture.Params) (<-chan session.Result, error)
	Stop()
	Busy() bool
}

// RegionSelector asks the user for a screen region. Exactly one of the
// callbacks is invoked, on the UI thread.
type RegionSelector interface {
	Select(onConfirm func(image.Rectangle), onCancel func())
}

// RecordView updates the widgets affected by the recording lifecycle.
type RecordView interface {
	SetRecording(recording bool)
	SetFinishEnabled(enabled bool)
}

// RecordPresenter coordinates Start/Finish between the view, the region
// selector and the background session. All methods run on the UI thread.
type RecordPresenter struct {
	state    *model.RecordingModel
	runner   SessionRunner
	selector RegionSelector
	view     RecordView
	log      progress.Sink
	logger   *slog.Logger

	params func() capture.Params

	// OnRegion is notified with the confirmed region (for persistence).
	OnRegion func(image.Rectangle)

	pending <-chan session.Result
}

// NewRecordPresenter wires the presenter; params is consulted at every Start.
func NewRecordPresenter(state *model.RecordingModel, runner SessionRunner, selector RegionSelector, view RecordView, params func() capture.Params, log progress.Sink, logger *slog.Logger) *RecordPresenter {
	if log == nil {
		log = progress.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordPresenter{state: state, runner: runner, selector: selector, view: view, params: params, log: log, logger: logger}
}

// Start opens the region selector. Ignored unless idle.
func (p *RecordPresenter) Start() {
	if p == nil || p.state == nil || p.runner == nil || p.selector == nil || p.params == nil {
		return
	}
	if p.runner.Busy() || !p.state.Transition(model.StateIdle, model.StateSelecting) {
		return
	}
	p.selector.Select(p.begin, p.cancelSelect)
}

func (p *RecordPresenter) cancelSelect() {
	p.state.Transition(model.StateSelecting, model.StateIdle)
}

func (p *RecordPresenter) begin(region image.Rectangle) {
	if !p.state.Transition(model.StateSelecting, model.StateRecording) {
		return
	}
	ch, err := p.runner.Start(region, p.params())
	if err != nil {
		p.logger.Warn("start recording", "error", err)
		p.log.Logf("Could not start recording: %v", err)
		p.state.Reset()
		return
	}
	p.pending = ch
	if p.OnRegion != nil {
		p.OnRegion(region)
	}
	if p.view != nil {
		p.view.SetRecording(true)
	}
}

// Finish requests the in-flight session to stop. Idempotent.
func (p *RecordPresenter) Finish() {
	if p == nil || p.state == nil || p.runner == nil {
		return
	}
	if !p.state.Transition(model.StateRecording, model.StateStopping) {
		return
	}
	p.runner.Stop()
	if p.view != nil {
		p.view.SetFinishEnabled(false)
	}
}

// Poll drains a finished session without blocking. It returns the result and
// true exactly once per session.
func (p *RecordPresenter) Poll() (session.Result, bool) {
	if p == nil || p.pending == nil {
		return session.Result{}, false
	}
	select {
	case res, ok := <-p.pending:
		p.pending = nil
		p.state.Reset()
		if p.view != nil {
			p.view.SetRecording(false)
		}
		if !ok {
			return session.Result{}, false
		}
		if res.Err != nil {
			p.logger.Error("recording failed", "session", res.ID, "error", res.Err)
		}
		return res, true
	default:
		return session.Result{}, false
	}
}

// Recording reports whether a session is running or stopping.
func (p *RecordPresenter) Recording() bool {
	return p != nil && p.state.Recording()
}

// CanClose reports whether the window may be closed.
func (p *RecordPresenter) CanClose() bool {
	if p == nil {
		return true
	}
	if p.runner != nil && p.runner.Busy() {
		return false
	}
	return p.pending == nil
}
