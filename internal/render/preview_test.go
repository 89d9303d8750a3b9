package render

import (
	"image"
	"image/color"
	"testing"
)

func TestComposeFrameLetterboxes(t *testing.T) {
	icon := solid(16, Background)
	frame := composeFrame(icon, image.Rect(0, 0, 40, 20))

	if got := frame.Bounds(); got != image.Rect(0, 0, 40, 20) {
		t.Fatalf("unexpected frame bounds %v", got)
	}
	black := color.RGBA{A: 0xFF}
	for _, p := range []image.Point{{0, 0}, {9, 10}, {30, 10}, {39, 19}} {
		if got := frame.RGBAAt(p.X, p.Y); got != black {
			t.Errorf("letterbox pixel %v = %v, want black", p, got)
		}
	}
	for _, p := range []image.Point{{10, 0}, {20, 10}, {29, 19}} {
		if got := frame.RGBAAt(p.X, p.Y); got != Background {
			t.Errorf("icon pixel %v = %v, want background", p, got)
		}
	}
}
