package pdfdoc

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"  // decoders for formats found inside scanned PDFs
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// NormalizePNG decodes image data in any supported format (PNG, JPEG, GIF,
// TIFF, BMP) and re-encodes it as PNG for the OCR engine. PNG input is
// returned unchanged. Unsupported or corrupt data is an error.
func NormalizePNG(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if format == "png" {
		return data, nil
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
