package presenter

import "github.com/soocke/snapgif/ui/model"

// LogView renders the visible tail of the log.
type LogView interface {
	SetLines(lines []string)
}

// LogPresenter copies new log lines to the view, skipping redraws when
// nothing changed since the last flush.
type LogPresenter struct {
	model   *model.LogModel
	view    LogView
	visible int
	seen    uint64
}

// NewLogPresenter shows at most visible lines (all when <= 0).
func NewLogPresenter(m *model.LogModel, view LogView, visible int) *LogPresenter {
	return &LogPresenter{model: m, view: view, visible: visible}
}

func (p *LogPresenter) Flush() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	if p.model.Version() == p.seen {
		return
	}
	lines, v := p.model.Tail(p.visible)
	p.seen = v
	p.view.SetLines(lines)
}
