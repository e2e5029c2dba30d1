package presenter

import (
	"image"

	"github.com/soocke/snapgif/domain/capture"
)

// FrameSource exposes the latest captured frame.
type FrameSource interface {
	LatestFrame() (capture.FrameSnapshot, bool)
}

// PreviewView displays a frame.
type PreviewView interface {
	UpdateCapture(img image.Image)
}

// PreviewPresenter pushes the latest frame to the preview when its sequence changes.
type PreviewPresenter struct {
	src     FrameSource
	view    PreviewView
	lastSeq uint64
	lastAt  int64
}

func NewPreviewPresenter(src FrameSource, view PreviewView) *PreviewPresenter {
	return &PreviewPresenter{src: src, view: view}
}

// Refresh returns true when the view was updated.
func (p *PreviewPresenter) Refresh() bool {
	if p == nil || p.src == nil || p.view == nil {
		return false
	}
	snap, ok := p.src.LatestFrame()
	if !ok || snap.Image == nil {
		return false
	}
	// sequences restart at 1 every session; the capture time disambiguates
	at := snap.CapturedAt.UnixNano()
	if snap.Sequence == p.lastSeq && at == p.lastAt {
		return false
	}
	p.lastSeq, p.lastAt = snap.Sequence, at
	p.view.UpdateCapture(snap.Image)
	return true
}
