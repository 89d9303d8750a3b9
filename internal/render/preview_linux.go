//go:build linux && cgo

package render

import (
	"context"
	"fmt"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/appicon/internal/system"
)

// Preview shows img on the framebuffer until opts.Hold elapses, ctx is done
// or an exit key is pressed. The console is put into graphics mode with the
// cursor hidden while the icon is shown.
func Preview(ctx context.Context, opts PreviewOptions, img image.Image) error {
	dev, err := fb.Open(opts.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", opts.Device, err)
	}
	defer dev.Close()
	bounds := dev.Bounds()
	if opts.Logger != nil {
		opts.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}

	restore := system.EnterGraphicsMode(opts.Logger)
	defer restore()

	blitToFB(dev, composeFrame(img, bounds))

	waitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if opts.Hold > 0 {
		var stop context.CancelFunc
		waitCtx, stop = context.WithTimeout(waitCtx, opts.Hold)
		defer stop()
	}
	system.WatchKeys(waitCtx, opts.Logger, system.PreviewExitKeys, func(code uint16) { cancel() })
	<-waitCtx.Done()
	if opts.Logger != nil {
		opts.Logger.Infof("fb", "preview closed: %v", context.Cause(waitCtx))
	}
	return nil
}

// blitToFB copies frame to the device pixel by pixel; frame must share the
// device's bounds.
func blitToFB(dev *fb.Device, frame *image.RGBA) {
	bounds := dev.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := frame.RGBAAt(x, y)
			dev.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
