package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var ErrInvalidLetter = errors.New("invalid letter")

// ValidateLetter accepts exactly one printable, non-space rune.
func ValidateLetter(letter string) error {
	if utf8.RuneCountInString(letter) != 1 {
		return fmt.Errorf("%w: %q must be a single character", ErrInvalidLetter, letter)
	}
	r, _ := utf8.DecodeRuneInString(letter)
	if r == utf8.RuneError || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return fmt.Errorf("%w: %q is not printable", ErrInvalidLetter, letter)
	}
	return nil
}

// GlyphLayout is the measured and positioned letter.
//
// Coordinates use a top-left anchor: (X, Y) is where the top of the line box
// (the font ascent) starts, and Bounds is the ink box relative to that
// anchor. The baseline sits Ascent below Y.
type GlyphLayout struct {
	Letter string
	Bounds fixed.Rectangle26_6
	Ascent fixed.Int26_6
	Width  float64
	Height float64
	X      float64
	Y      float64
}

// LayoutGlyph measures letter under face and centers it on the canvas
// described by g, shifted down by g.GlyphYOffset.
func LayoutGlyph(face font.Face, letter string, g Geometry) GlyphLayout {
	bounds, _ := font.BoundString(face, letter)
	ascent := face.Metrics().Ascent
	bounds.Min.Y += ascent
	bounds.Max.Y += ascent

	width := fixedToFloat(bounds.Max.X - bounds.Min.X)
	height := fixedToFloat(bounds.Max.Y - bounds.Min.Y)
	return GlyphLayout{
		Letter: letter,
		Bounds: bounds,
		Ascent: ascent,
		Width:  width,
		Height: height,
		X:      (float64(g.Size) - width) / 2,
		Y:      (float64(g.Size)-height)/2 + float64(g.GlyphYOffset),
	}
}

// Dot is the baseline origin handed to font.Drawer.
func (l GlyphLayout) Dot() fixed.Point26_6 {
	return fixed.Point26_6{X: floatToFixed(l.X), Y: floatToFixed(l.Y) + l.Ascent}
}

// CenterX is the horizontal center of the drawn ink.
func (l GlyphLayout) CenterX() float64 {
	return l.X + fixedToFloat(l.Bounds.Min.X) + l.Width/2
}

// InkRect is the canvas area covered by the glyph's ink, rounded outwards.
func (l GlyphLayout) InkRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(l.X+fixedToFloat(l.Bounds.Min.X))),
		int(math.Floor(l.Y+fixedToFloat(l.Bounds.Min.Y))),
		int(math.Ceil(l.X+fixedToFloat(l.Bounds.Max.X))),
		int(math.Ceil(l.Y+fixedToFloat(l.Bounds.Max.Y))),
	)
}

// DrawGlyph draws the laid-out letter over dst in color c.
func DrawGlyph(dst draw.Image, face font.Face, l GlyphLayout, c color.Color) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  l.Dot(),
	}
	drawer.DrawString(l.Letter)
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
