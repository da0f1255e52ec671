package pdfdoc

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/tiff"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 0, A: 255})
		}
	}
	return img
}

func TestNormalizePNG_Passthrough(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}

	out, err := NormalizePNG(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizePNG() failed: %v", err)
	}
	if !bytes.Equal(out, buf.Bytes()) {
		t.Error("PNG input should pass through unchanged")
	}
}

func TestNormalizePNG_ConvertsTIFF(t *testing.T) {
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, testImage(), nil); err != nil {
		t.Fatalf("failed to encode test TIFF: %v", err)
	}

	out, err := NormalizePNG(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizePNG() failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Errorf("converted image is %dx%d, want 4x4", b.Dx(), b.Dy())
	}
}

func TestNormalizePNG_RejectsGarbage(t *testing.T) {
	if _, err := NormalizePNG([]byte("not an image")); err == nil {
		t.Error("expected error for non-image data")
	}
	if _, err := NormalizePNG(nil); err == nil {
		t.Error("expected error for empty data")
	}
}

func TestValidate_MissingFile(t *testing.T) {
	if err := Validate("nonexistent.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPageCount_MissingFile(t *testing.T) {
	if _, err := PageCount("nonexistent.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractPageImages_MissingFile(t *testing.T) {
	if _, err := ExtractPageImages("nonexistent.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}
