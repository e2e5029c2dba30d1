package capture

import (
	"fmt"
	"image"
)

// Grabber is the screen primitive the recorder samples from.
type Grabber interface {
	// Grab returns the pixels of r (screen coordinates) with bounds starting at 0,0.
	Grab(r image.Rectangle) (*image.RGBA, error)
	// CursorPosition returns the pointer position in screen coordinates.
	CursorPosition() (image.Point, error)
	Close() error
}

// cursorSource is implemented per platform.
type cursorSource interface {
	Position() (image.Point, error)
	Close() error
}

// ScreenGrabber captures from the primary display.
type ScreenGrabber struct {
	cursor cursorSource
}

// NewScreenGrabber returns a grabber for the current platform.
func NewScreenGrabber() *ScreenGrabber {
	return &ScreenGrabber{cursor: newCursorSource()}
}

func (g *ScreenGrabber) Grab(r image.Rectangle) (*image.RGBA, error) {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(r.Dx(), 0), max(r.Dy(), 0))), nil
	}
	img, err := grabRect(r)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, fmt.Errorf("capture: nil image for %v", r)
	}
	if img.Rect.Min != (image.Point{}) {
		img.Rect = img.Rect.Sub(img.Rect.Min)
	}
	return img, nil
}

func (g *ScreenGrabber) CursorPosition() (image.Point, error) {
	return g.cursor.Position()
}

func (g *ScreenGrabber) Close() error {
	if g == nil || g.cursor == nil {
		return nil
	}
	return g.cursor.Close()
}

// ScreenBounds returns the bounds of the primary display.
func ScreenBounds() (image.Rectangle, error) { return screenRect() }
