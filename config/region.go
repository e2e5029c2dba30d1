package config

import (
	"errors"
	"fmt"
	"image"
	"regexp"
	"strconv"
	"strings"
)

// ParseRegion parses "x,y,width,height" into a screen rectangle. Zero sizes are allowed.
func ParseRegion(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: want x,y,width,height", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid region %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q: negative size", s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}

// ResolveRegion parses s, or falls back to the saved selection when s is blank.
func (c *Config) ResolveRegion(s string) (image.Rectangle, error) {
	if strings.TrimSpace(s) == "" {
		if sel := c.Selection(); sel != nil {
			return *sel, nil
		}
		return image.Rectangle{}, errors.New("no region given and no saved selection; use --region x,y,width,height")
	}
	return ParseRegion(s)
}

// geomRe matches Tk window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// ParseGeometry parses a Tk geometry string into the rectangle it covers.
func ParseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}

// FormatGeometry is the inverse of ParseGeometry.
func FormatGeometry(r image.Rectangle) string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Dx(), r.Dy(), r.Min.X, r.Min.Y)
}

// InitialSelection returns the saved selection when it lies on screen,
// otherwise a rectangle of 2/3 x 5/9 of the screen centered on it.
func (c *Config) InitialSelection(screen image.Rectangle) image.Rectangle {
	if sel := c.Selection(); sel != nil && sel.In(screen) {
		return *sel
	}
	w, h := screen.Dx()*2/3, screen.Dy()*5/9
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x := screen.Min.X + (screen.Dx()-w)/2
	y := screen.Min.Y + (screen.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
