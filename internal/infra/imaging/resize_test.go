package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"pagewatch/internal/infra/imaging"
)

// encodePNG renders a solid-color test image of the given width and height.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("jpeg.Decode: %v", err)
	}
	return img
}

func TestResizeJPEG_ScalesDownWideImages(t *testing.T) {
	src := encodePNG(t, 1600, 800)

	out, err := imaging.ResizeJPEG(src, 720)
	if err != nil {
		t.Fatalf("ResizeJPEG() error = %v", err)
	}

	img := decodeJPEG(t, out)
	if got := img.Bounds().Dx(); got != 720 {
		t.Errorf("width = %d, want 720", got)
	}
	if got := img.Bounds().Dy(); got != 360 {
		t.Errorf("height = %d, want 360 (aspect ratio preserved)", got)
	}
}

func TestResizeJPEG_NeverUpscales(t *testing.T) {
	src := encodePNG(t, 300, 200)

	out, err := imaging.ResizeJPEG(src, 720)
	if err != nil {
		t.Fatalf("ResizeJPEG() error = %v", err)
	}

	img := decodeJPEG(t, out)
	if got := img.Bounds().Dx(); got != 300 {
		t.Errorf("width = %d, want original 300", got)
	}
}

func TestResizeJPEG_ConvertsFormatToJPEG(t *testing.T) {
	src := encodePNG(t, 100, 100)

	out, err := imaging.ResizeJPEG(src, 0)
	if err != nil {
		t.Fatalf("ResizeJPEG() error = %v", err)
	}

	// JPEG SOI marker
	if len(out) < 2 || out[0] != 0xFF || out[1] != 0xD8 {
		t.Error("output does not start with a JPEG marker")
	}
}

func TestResizeJPEG_RejectsGarbage(t *testing.T) {
	if _, err := imaging.ResizeJPEG([]byte("not an image"), 720); err == nil {
		t.Fatal("expected decode error")
	}
}
