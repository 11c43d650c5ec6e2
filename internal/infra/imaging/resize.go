// Package imaging produces the cached JPEG previews stored alongside pages.
package imaging

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const jpegQuality = 85

// ResizeJPEG decodes data, scales it down to at most maxWidth pixels wide
// (preserving aspect ratio, never upscaling), and re-encodes it as JPEG.
// Any decodable input format is accepted; the output is always JPEG.
func ResizeJPEG(data []byte, maxWidth int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("ResizeJPEG: decode: %w", err)
	}

	if maxWidth > 0 && img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("ResizeJPEG: encode: %w", err)
	}

	return buf.Bytes(), nil
}
