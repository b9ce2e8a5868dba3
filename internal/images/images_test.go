package images

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"strings"
	"testing"
)

// encodePNG renders a solid-colored PNG of the given size for test input.
func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}

func decodeJPEG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if format != "jpeg" {
		t.Fatalf("expected jpeg output, got %s", format)
	}
	return img
}

func TestNormalizeDownscalesLargeImages(t *testing.T) {
	data := encodePNG(t, 1600, 1200, color.RGBA{R: 200, G: 30, B: 30, A: 255})

	out, err := Normalize(data, 5<<20)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	img := decodeJPEG(t, out)
	b := img.Bounds()
	if b.Dx() > MaxWidth || b.Dy() > MaxHeight {
		t.Errorf("output exceeds bounds: %dx%d", b.Dx(), b.Dy())
	}
	// 1600x1200 fits 800x600 exactly, so the aspect ratio pins both sides.
	if b.Dx() != MaxWidth || b.Dy() != MaxHeight {
		t.Errorf("expected %dx%d, got %dx%d", MaxWidth, MaxHeight, b.Dx(), b.Dy())
	}
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	data := encodePNG(t, 100, 80, color.RGBA{R: 30, G: 30, B: 200, A: 255})

	out, err := Normalize(data, 5<<20)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	b := decodeJPEG(t, out).Bounds()
	if b.Dx() != 100 || b.Dy() != 80 {
		t.Errorf("small image must not be rescaled, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestNormalizeFlattensTransparencyToWhite(t *testing.T) {
	// Fully transparent input should come out near-white after compositing.
	data := encodePNG(t, 10, 10, color.RGBA{})

	out, err := Normalize(data, 5<<20)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	img := decodeJPEG(t, out)
	r, g, b, _ := img.At(5, 5).RGBA()
	if r>>8 < 240 || g>>8 < 240 || b>>8 < 240 {
		t.Errorf("expected near-white pixel, got r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
}

func TestNormalizeRejectsOversizedInput(t *testing.T) {
	data := encodePNG(t, 10, 10, color.White)

	_, err := Normalize(data, int64(len(data))-1)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
}

func TestNormalizeRejectsCorruptInput(t *testing.T) {
	_, err := Normalize([]byte("not an image at all"), 5<<20)
	var perr *ProcessError
	if !errors.As(err, &perr) {
		t.Errorf("expected ProcessError, got %v", err)
	}
}

func TestCheckFilename(t *testing.T) {
	allowed := []string{"photo.png", "photo.jpg", "photo.JPEG", "anim.gif", "pic.webp"}
	for _, name := range allowed {
		if err := CheckFilename(name); err != nil {
			t.Errorf("CheckFilename(%q) = %v, want nil", name, err)
		}
	}
	rejected := []string{"doc.pdf", "archive.zip", "noext", "trick.png.exe", ""}
	for _, name := range rejected {
		if err := CheckFilename(name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("CheckFilename(%q) = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestFilename(t *testing.T) {
	a, b := Filename(), Filename()
	if a == b {
		t.Error("expected unique filenames")
	}
	if !strings.HasSuffix(a, ".jpg") {
		t.Errorf("expected .jpg suffix, got %q", a)
	}
	if strings.Contains(a, "-") {
		t.Errorf("expected compact uuid, got %q", a)
	}
}
