//go:build !linux || !cgo

package render

import (
	"context"
	"image"
)

func Preview(ctx context.Context, opts PreviewOptions, img image.Image) error {
	return ErrPreviewUnsupported
}
