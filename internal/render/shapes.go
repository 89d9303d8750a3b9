package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/rook-computer/appicon/internal/render/layout"
	"golang.org/x/image/vector"
)

// Corners selects which corners of a rounded rectangle get a fillet.
type Corners uint8

const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft

	CornersTop = CornerTopLeft | CornerTopRight
	CornersAll = CornersTop | CornerBottomRight | CornerBottomLeft
)

// kappa places cubic Bézier control points so that one segment
// approximates a quarter circle.
const kappa = 0.5522847498

// FillRoundedRect fills rect with c, rounding the selected corners by radius.
// Edges are anti-aliased and composited over dst.
func FillRoundedRect(dst draw.Image, rect image.Rectangle, radius float64, corners Corners, c color.Color) {
	rect = layout.Normalize(rect)
	bounds := dst.Bounds()
	if rect.Empty() || !rect.Overlaps(bounds) {
		return
	}
	r := float32(clampRadius(radius, rect, corners))

	// The rasterizer covers all of dst, so path coordinates are relative to
	// dst's origin.
	x0 := float32(rect.Min.X - bounds.Min.X)
	y0 := float32(rect.Min.Y - bounds.Min.Y)
	x1 := float32(rect.Max.X - bounds.Min.X)
	y1 := float32(rect.Max.Y - bounds.Min.Y)

	var z vector.Rasterizer
	z.Reset(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over
	roundedRectPath(&z, x0, y0, x1, y1, r, corners)
	z.Draw(dst, bounds, image.NewUniform(c), image.Point{})
}

func clampRadius(radius float64, rect image.Rectangle, corners Corners) float64 {
	if radius <= 0 || corners == 0 {
		return 0
	}
	limit := float64(rect.Dx()) / 2
	h := float64(rect.Dy())
	top := corners&(CornerTopLeft|CornerTopRight) != 0
	bottom := corners&(CornerBottomLeft|CornerBottomRight) != 0
	if top && bottom {
		h /= 2
	}
	return math.Min(radius, math.Min(limit, h))
}

func roundedRectPath(z *vector.Rasterizer, x0, y0, x1, y1, r float32, corners Corners) {
	radiusAt := func(c Corners) float32 {
		if corners&c != 0 {
			return r
		}
		return 0
	}
	tl, tr := radiusAt(CornerTopLeft), radiusAt(CornerTopRight)
	br, bl := radiusAt(CornerBottomRight), radiusAt(CornerBottomLeft)
	const k = 1 - kappa

	z.MoveTo(x0+tl, y0)
	z.LineTo(x1-tr, y0)
	if tr > 0 {
		z.CubeTo(x1-tr*k, y0, x1, y0+tr*k, x1, y0+tr)
	}
	z.LineTo(x1, y1-br)
	if br > 0 {
		z.CubeTo(x1, y1-br*k, x1-br*k, y1, x1-br, y1)
	}
	z.LineTo(x0+bl, y1)
	if bl > 0 {
		z.CubeTo(x0+bl*k, y1, x0, y1-bl*k, x0, y1-bl)
	}
	z.LineTo(x0, y0+tl)
	if tl > 0 {
		z.CubeTo(x0, y0+tl*k, x0+tl*k, y0, x0+tl, y0)
	}
	z.ClosePath()
}
