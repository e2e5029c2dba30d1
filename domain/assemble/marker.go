package assemble

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// Marker is the ring drawn around the cursor position.
type Marker struct {
	Radius float32
	Stroke float32
	Color  color.Color
}

// DefaultMarker is a red ring of radius 10 with a 7 unit stroke.
var DefaultMarker = Marker{Radius: 10, Stroke: 7, Color: color.RGBA{R: 0xFF, A: 0xFF}}

// Draw renders the ring centered at c in dst's coordinate space. The ring
// may be partly or fully outside dst; it is clipped and dst keeps its bounds.
func (m Marker) Draw(dst draw.Image, c image.Point) {
	outer := m.Radius + m.Stroke/2
	inner := m.Radius - m.Stroke/2
	if outer <= 0 {
		return
	}
	half := int(math.Ceil(float64(outer))) + 1
	size := half * 2

	z := vector.NewRasterizer(size, size)
	circle(z, float32(half), float32(half), outer, false)
	if inner > 0 {
		// Opposite winding cancels coverage inside the inner circle.
		circle(z, float32(half), float32(half), inner, true)
	}
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	origin := c.Sub(image.Pt(half, half))
	r := image.Rectangle{Min: origin, Max: origin.Add(image.Pt(size, size))}
	col := m.Color
	if col == nil {
		col = DefaultMarker.Color
	}
	draw.DrawMask(dst, r, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
}

func circle(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	if reverse {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	}
	z.ClosePath()
}
