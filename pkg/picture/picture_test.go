package picture_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/biessek/golang-ico"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/olivierh59500/mediaview/pkg/picture"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 20), B: 128, A: 255})
		}
	}
	return img
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	img := testImage(10, 10)
	tests := []struct {
		name   string
		format string
		encode func(*bytes.Buffer) error
	}{
		{"photo.png", "png", func(b *bytes.Buffer) error { return png.Encode(b, img) }},
		{"photo.jpeg", "jpeg", func(b *bytes.Buffer) error { return jpeg.Encode(b, img, nil) }},
		{"photo.gif", "gif", func(b *bytes.Buffer) error { return gif.Encode(b, img, nil) }},
		{"photo.bmp", "bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, img) }},
		{"photo.tiff", "tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, img, nil) }},
		{"photo.ico", "ico", func(b *bytes.Buffer) error { return ico.Encode(b, img) }},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := tt.encode(&buf); err != nil {
			t.Fatalf("encode %s: %v", tt.name, err)
		}
		pic, err := picture.Load(writeFile(t, tt.name, buf.Bytes()), 0)
		if err != nil {
			t.Fatalf("Load(%s) returned error: %v", tt.name, err)
		}
		if pic.Format != tt.format {
			t.Fatalf("Load(%s) format = %q, want %q", tt.name, pic.Format, tt.format)
		}
		if pic.Width != 10 || pic.Height != 10 {
			t.Fatalf("Load(%s) size = %dx%d, want 10x10", tt.name, pic.Width, pic.Height)
		}
		if pic.Pixels() != 100 {
			t.Fatalf("Load(%s) pixels = %d, want 100", tt.name, pic.Pixels())
		}
	}
}

func TestLoadKeepsPixelValues(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(4, 3)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	pic, err := picture.Load(writeFile(t, "grid.png", buf.Bytes()), 0)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	got := pic.RGBA().NRGBAAt(3, 2)
	want := color.NRGBA{R: 60, G: 40, B: 128, A: 255}
	if got != want {
		t.Fatalf("pixel (3,2) = %v, want %v", got, want)
	}
	if pic.Format != "png" {
		t.Fatalf("format = %q, want png", pic.Format)
	}
}

func TestLoadConvertsPalettedImages(t *testing.T) {
	pal := image.NewPaletted(image.Rect(0, 0, 6, 2), color.Palette{color.Black, color.White})
	pal.SetColorIndex(5, 1, 1)
	var buf bytes.Buffer
	if err := gif.Encode(&buf, pal, nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	pic, err := picture.Load(writeFile(t, "pal.gif", buf.Bytes()), 0)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c := pic.RGBA().NRGBAAt(5, 1); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("pixel = %v, want white", c)
	}
}

func TestLoadDownscalesDisplayCopy(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(40, 20)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	pic, err := picture.Load(writeFile(t, "wide.png", buf.Bytes()), 10)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if pic.Width != 40 || pic.Height != 20 {
		t.Fatalf("source size = %dx%d, want 40x20", pic.Width, pic.Height)
	}
	b := pic.Image().Bounds()
	if b.Dx() != 10 || b.Dy() != 5 {
		t.Fatalf("display size = %dx%d, want 10x5", b.Dx(), b.Dy())
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := writeFile(t, "broken.png", []byte("not an image at all"))
	if pic, err := picture.Load(path, 0); err == nil || pic != nil {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := picture.Load(filepath.Join(t.TempDir(), "nope.png"), 0); err == nil {
		t.Fatal("expected error for missing file")
	}
}
