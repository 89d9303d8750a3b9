package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/rook-computer/appicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

var ErrPreviewUnsupported = errors.New("framebuffer preview is only supported on linux")

// PreviewOptions configures showing a rendered icon on a framebuffer console.
type PreviewOptions struct {
	// Device is the framebuffer device, e.g. /dev/fb0.
	Device string
	// Hold closes the preview after this long; zero waits for a key or signal.
	Hold   time.Duration
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// composeFrame scales img into the largest centered square of bounds and
// fills the rest with black.
func composeFrame(img image.Image, bounds image.Rectangle) *image.RGBA {
	frame := image.NewRGBA(bounds)
	draw.Draw(frame, bounds, &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	target := layout.FitSquare(bounds)
	if target.Empty() {
		return frame
	}
	xdraw.ApproxBiLinear.Scale(frame, target, img, img.Bounds(), xdraw.Src, nil)
	return frame
}
