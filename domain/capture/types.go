package capture

import (
	"fmt"
	"image"
	"time"
)

// Limits for Params.FPS.
const (
	MinFPS = 1
	MaxFPS = 9
)

// Sample is one captured moment: the region pixels plus the cursor position
// relative to the region origin. Cursor may lie outside the image bounds.
type Sample struct {
	Image      *image.RGBA
	Cursor     image.Point
	CapturedAt time.Time
	Sequence   uint64
}

// Params are fixed at session start and passed by value.
type Params struct {
	FPS         int
	MaxDuration time.Duration
}

// Interval is the target time between two samples.
func (p Params) Interval() time.Duration {
	if p.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(p.FPS)
}

// MaxSamples is the iteration ceiling floor(MaxDuration / Interval).
func (p Params) MaxSamples() int {
	iv := p.Interval()
	if iv <= 0 || p.MaxDuration <= 0 {
		return 0
	}
	return int(p.MaxDuration / iv)
}

// Validate reports whether the parameters describe a runnable session. A valid
// session always has room for at least one sample.
func (p Params) Validate() error {
	if p.FPS < MinFPS || p.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d outside [%d,%d]", ErrInvalidParams, p.FPS, MinFPS, MaxFPS)
	}
	if p.MaxDuration <= 0 {
		return fmt.Errorf("%w: max duration %v must be positive", ErrInvalidParams, p.MaxDuration)
	}
	if iv := p.Interval(); p.MaxDuration < iv {
		return fmt.Errorf("%w: max duration %v shorter than one frame interval %v", ErrInvalidParams, p.MaxDuration, iv)
	}
	return nil
}

// ValidateRegion rejects rectangles with negative extent. Zero-area regions are legal.
func ValidateRegion(r image.Rectangle) error {
	if r.Dx() < 0 || r.Dy() < 0 {
		return fmt.Errorf("%w: region %v has negative size", ErrInvalidParams, r)
	}
	return nil
}
