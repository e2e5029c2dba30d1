//go:build !windows

package capture

import (
	"image"

	"github.com/vova616/screenshot"
)

func grabRect(r image.Rectangle) (*image.RGBA, error) {
	return screenshot.CaptureRect(r)
}

func screenRect() (image.Rectangle, error) {
	return screenshot.ScreenRect()
}
