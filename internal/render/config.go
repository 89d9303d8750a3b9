package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/rook-computer/appicon/internal/render/layout"
)

// Palette. The glyph reuses the background so the letter reads as a cut-out.
var (
	Background = color.RGBA{R: 0x22, G: 0xC5, B: 0x5E, A: 0xFF} // #22c55e
	Header     = color.RGBA{R: 0x16, G: 0xA3, B: 0x4A, A: 0xFF} // #16a34a
	Card       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Glyph      = Background
)

const (
	DefaultSize   = 1024
	MinSize       = 16
	MaxSize       = 8192
	DefaultLetter = "S"
)

var ErrInvalidGeometry = errors.New("invalid geometry")

// Geometry holds the pixel constants the icon is drawn from.
type Geometry struct {
	Size         int
	Padding      int
	Radius       int
	HeaderHeight int
	FontSize     float64
	// GlyphYOffset is added to the vertically centered glyph position.
	// It is a visual correction, not derived from font metrics.
	GlyphYOffset int
}

func DefaultGeometry() Geometry {
	return Geometry{
		Size:         DefaultSize,
		Padding:      150,
		Radius:       80,
		HeaderHeight: 200,
		FontSize:     400,
		GlyphYOffset: 50,
	}
}

// ScaledGeometry scales the default constants to a canvas of size pixels.
// DefaultSize returns the constants unchanged.
func ScaledGeometry(size int) Geometry {
	g := DefaultGeometry()
	if size == g.Size {
		return g
	}
	factor := float64(size) / float64(g.Size)
	scale := func(v int) int { return int(math.Round(float64(v) * factor)) }
	return Geometry{
		Size:         size,
		Padding:      scale(g.Padding),
		Radius:       scale(g.Radius),
		HeaderHeight: scale(g.HeaderHeight),
		FontSize:     g.FontSize * factor,
		GlyphYOffset: scale(g.GlyphYOffset),
	}
}

func (g Geometry) Validate() error {
	if g.Size < MinSize {
		return fmt.Errorf("%w: size %d is below the minimum of %d", ErrInvalidGeometry, g.Size, MinSize)
	}
	if g.Size > MaxSize {
		return fmt.Errorf("%w: size %d is above the maximum of %d", ErrInvalidGeometry, g.Size, MaxSize)
	}
	if g.Padding < 0 || 2*g.Padding >= g.Size {
		return fmt.Errorf("%w: padding %d must be in [0, %d)", ErrInvalidGeometry, g.Padding, (g.Size+1)/2)
	}
	if g.Radius < 0 {
		return fmt.Errorf("%w: negative radius %d", ErrInvalidGeometry, g.Radius)
	}
	if cardHeight := g.CardRect().Dy(); g.HeaderHeight <= 0 || g.HeaderHeight >= cardHeight {
		return fmt.Errorf("%w: header height %d must be in (0, %d)", ErrInvalidGeometry, g.HeaderHeight, cardHeight)
	}
	if g.FontSize <= 0 {
		return fmt.Errorf("%w: font size %g", ErrInvalidGeometry, g.FontSize)
	}
	return nil
}

// Bounds is the full canvas.
func (g Geometry) Bounds() image.Rectangle { return image.Rect(0, 0, g.Size, g.Size) }

// CardRect is the white rounded rectangle, inset by Padding on all sides.
func (g Geometry) CardRect() image.Rectangle { return layout.Inset(g.Bounds(), g.Padding) }

// HeaderRect is the top band of the card.
func (g Geometry) HeaderRect() image.Rectangle {
	top, _ := layout.SplitHorizontal(g.CardRect(), g.HeaderHeight)
	return top
}
