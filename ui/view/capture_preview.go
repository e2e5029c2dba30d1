package view

import (
	"image"

	"github.com/soocke/snapgif/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview shows the latest captured frame scaled to fit.
type CapturePreview interface {
	UpdateCapture(img image.Image)
	Reset()
}

type capturePreview struct {
	label     *LabelWidget
	targetW   int
	targetH   int
	prevPhoto *Img // last Tk photo image instance
}

// Internal state tracks the current preview photo so the old image is disposed
// before replacing it, preventing accumulation of off-screen image data.

// NewCapturePreview creates the preview label spanning columns 0-3 of row.
func NewCapturePreview(row int) CapturePreview {
	photo := NewPhoto(Data(images.EncodePNG(placeholder())))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &capturePreview{label: label, prevPhoto: photo}
}

const (
	// Max preview dimensions; scaling is proportional.
	maxPreviewW = 400
	maxPreviewH = 225
)

func placeholder() image.Image { return image.NewRGBA(image.Rect(0, 0, 200, 120)) }

func (v *capturePreview) UpdateCapture(img image.Image) {
	if v == nil || v.label == nil || img == nil || img.Bounds().Empty() {
		return
	}
	w, h := v.targetW, v.targetH
	if w <= 0 || h <= 0 {
		w, h = maxPreviewW, maxPreviewH
	}
	v.show(images.EncodePNG(images.ScaleToFit(img, w, h)))
}

func (v *capturePreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	v.show(images.EncodePNG(placeholder()))
}

func (v *capturePreview) show(png []byte) {
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(png))
	v.label.Configure(Image(v.prevPhoto))
}
