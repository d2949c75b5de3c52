package ioutils

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// ImageService prepares video thumbnails for saving next to audio files.
//
// Thumbnails come as JPEG, PNG or WebP; the output is always JPEG.
//
// Example usage:
//
//	svc := NewImageService()
//	jpegData, err := svc.Thumbnail(ctx, downloaded, 1000)
type ImageService struct {
	quality int
}

// NewImageService creates a new ImageService encoding at 90% JPEG quality.
func NewImageService() *ImageService {
	return &ImageService{quality: 90}
}

// Thumbnail decodes an image, shrinks it to fit within maxSize x maxSize and
// returns it JPEG-encoded.
//
// The aspect ratio is preserved and images that already fit are only
// re-encoded. A non-positive maxSize disables resizing. The Catmull-Rom
// kernel is used for scaling.
//
// Example:
//
//	// A 1280x720 thumbnail with maxSize 640 becomes 640x360
//	jpegData, err := svc.Thumbnail(ctx, data, 640)
func (s *ImageService) Thumbnail(ctx context.Context, data []byte, maxSize int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width, height := fitWithin(bounds.Dx(), bounds.Dy(), maxSize)

	var out image.Image = img
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// fitWithin returns dimensions scaled down to fit a maxSize square.
func fitWithin(width, height, maxSize int) (int, int) {
	if maxSize <= 0 || width <= 0 || height <= 0 {
		return width, height
	}
	if width <= maxSize && height <= maxSize {
		return width, height
	}

	if width >= height {
		h := int(float64(height) * float64(maxSize) / float64(width))
		return maxSize, max(h, 1)
	}
	w := int(float64(width) * float64(maxSize) / float64(height))
	return max(w, 1), maxSize
}
