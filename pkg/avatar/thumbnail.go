package avatar

import (
	"fmt"
	"image"
	_ "image/jpeg" // decoder registration for image.Decode
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ThumbnailSize is the bounding box of generated avatar thumbnails.
const ThumbnailSize = 256

// Thumbnail decodes a PNG or JPEG avatar from r and writes a downscaled PNG
// thumbnail to w. Source images already within the bounding box are re-encoded
// unchanged in size.
func Thumbnail(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to decode avatar image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > ThumbnailSize || height > ThumbnailSize {
		scale := float64(ThumbnailSize) / float64(max(width, height))
		width = int(float64(width) * scale)
		height = int(float64(height) * scale)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	if err := png.Encode(w, dst); err != nil {
		return fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return nil
}
