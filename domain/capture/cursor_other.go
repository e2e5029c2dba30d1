//go:build !windows && !linux

package capture

import (
	"errors"
	"image"
)

var errCursorUnsupported = errors.New("capture: cursor position not supported on this platform")

type noCursor struct{}

func newCursorSource() cursorSource { return noCursor{} }

func (noCursor) Position() (image.Point, error) { return image.Point{}, errCursorUnsupported }
func (noCursor) Close() error                   { return nil }
