package scan

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	zxingqr "github.com/makiuchi-d/gozxing/qrcode"

	"nexus-asset-manager/internal/logger"
)

// maxFrameWidth bounds decode cost for large photos.
const maxFrameWidth = 1600

// ImageCamera treats each image file as one camera frame.
type ImageCamera struct {
	paths   []string
	stopped atomic.Bool
}

func NewImageCamera(paths ...string) *ImageCamera {
	return &ImageCamera{paths: paths}
}

// Start decodes each frame in order. Frames without a readable code are
// skipped. An unreadable file fails the whole start.
func (c *ImageCamera) Start(ctx context.Context, onDecode func(text string)) error {
	reader := zxingqr.NewQRCodeReader()
	for _, path := range c.paths {
		if c.stopped.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		img, err := imaging.Open(path, imaging.AutoOrientation(true))
		if err != nil {
			return fmt.Errorf("failed to open image %s: %w", path, err)
		}
		if img.Bounds().Dx() > maxFrameWidth {
			img = imaging.Resize(img, maxFrameWidth, 0, imaging.Lanczos)
		}

		bmp, err := gozxing.NewBinaryBitmapFromImage(img)
		if err != nil {
			logger.Debug("Frame skipped", "path", path, "error", err)
			continue
		}
		result, err := reader.Decode(bmp, nil)
		if err != nil {
			logger.Debug("No QR code in frame", "path", path, "error", err)
			continue
		}
		onDecode(result.GetText())
	}
	return nil
}

func (c *ImageCamera) Stop() error {
	c.stopped.Store(true)
	return nil
}
