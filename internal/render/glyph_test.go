package render

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestValidateLetter(t *testing.T) {
	tests := []struct {
		letter string
		ok     bool
	}{
		{letter: "S", ok: true},
		{letter: "é", ok: true},
		{letter: "日", ok: true},
		{letter: "", ok: false},
		{letter: "AB", ok: false},
		{letter: " ", ok: false},
		{letter: "\n", ok: false},
		{letter: "\xff", ok: false},
	}
	for _, tt := range tests {
		err := ValidateLetter(tt.letter)
		if tt.ok && err != nil {
			t.Errorf("ValidateLetter(%q): unexpected error %v", tt.letter, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidLetter) {
			t.Errorf("ValidateLetter(%q): expected ErrInvalidLetter, got %v", tt.letter, err)
		}
	}
}

func TestLayoutGlyphBasicFont(t *testing.T) {
	face := basicfont.Face7x13
	l := LayoutGlyph(face, "S", DefaultGeometry())

	bounds, _ := font.BoundString(face, "S")
	width := float64(bounds.Max.X-bounds.Min.X) / 64
	// Face7x13 has ascent 11 and descent 2.
	if l.Width != width || l.Height != 13 {
		t.Fatalf("expected %vx13 glyph box, got %vx%v", width, l.Width, l.Height)
	}
	if l.Bounds.Min.Y != 0 {
		t.Fatalf("expected ink to start at the ascent line, got %v", l.Bounds.Min.Y)
	}
	if want := (1024 - width) / 2; l.X != want {
		t.Fatalf("expected x %v, got %v", want, l.X)
	}
	if l.Y != 555.5 {
		t.Fatalf("expected y 555.5, got %v", l.Y)
	}
	if got := l.Dot().Y; got != fixed.Int26_6(555.5*64)+fixed.I(11) {
		t.Fatalf("expected baseline 566.5, got %v", got)
	}
	if got := l.InkRect(); got.Min.Y != 555 || got.Max.Y != 569 {
		t.Fatalf("unexpected ink rows %v", got)
	}
}

func TestDrawGlyph(t *testing.T) {
	face := basicfont.Face7x13
	g := Geometry{Size: 64, GlyphYOffset: 0}
	l := LayoutGlyph(face, "S", g)

	canvas := image.NewRGBA(image.Rect(0, 0, 64, 64))
	DrawGlyph(canvas, face, l, Header)

	drawn := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if canvas.RGBAAt(x, y) == Header {
				if !image.Pt(x, y).In(l.InkRect()) {
					t.Fatalf("pixel (%d,%d) drawn outside ink rect %v", x, y, l.InkRect())
				}
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Fatal("expected glyph pixels to be drawn")
	}
}
