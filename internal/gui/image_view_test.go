package gui

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/olivierh59500/mediaview/internal/config"
	"github.com/olivierh59500/mediaview/pkg/media"
)

func writeImage(t *testing.T, name string, w, h int, encode func(*bytes.Buffer, image.Image) error) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := encode(&buf, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newImageView(t *testing.T, path string) *ImageView {
	t.Helper()
	v, err := NewView(media.KindImage, path, Options{Config: config.Default()})
	if err != nil {
		t.Fatalf("NewView returned error: %v", err)
	}
	iv, ok := v.(*ImageView)
	if !ok {
		t.Fatalf("NewView returned %T, want *ImageView", v)
	}
	return iv
}

func TestImageWindowRetainsDecodedPNG(t *testing.T) {
	path := writeImage(t, "dot.png", 10, 10, func(b *bytes.Buffer, img image.Image) error {
		return png.Encode(b, img)
	})
	v := newImageView(t, path)

	pic := v.Picture()
	if pic == nil {
		t.Fatal("expected a retained picture")
	}
	if pic.Width != 10 || pic.Height != 10 {
		t.Fatalf("size = %dx%d, want 10x10", pic.Width, pic.Height)
	}
}

func TestImageWindowDisplaysWholeJPEG(t *testing.T) {
	path := writeImage(t, "photo.jpeg", 12, 7, func(b *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(b, img, nil)
	})
	a := test.NewTempApp(t)
	v := newImageView(t, path)
	w := Build(a, v, config.Default())
	defer w.Close()

	if w.Title() != "Image Viewer" {
		t.Fatalf("title = %q", w.Title())
	}
	shown := v.Displayed()
	if shown == nil {
		t.Fatal("expected the picture on screen")
	}
	b := shown.Image.Bounds()
	if b.Dx()*b.Dy() != 12*7 || v.Picture().Pixels() != 12*7 {
		t.Fatalf("displayed %dx%d, picture %d pixels", b.Dx(), b.Dy(), v.Picture().Pixels())
	}
}

func TestImageWindowCorruptFileRendersEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	a := test.NewTempApp(t)
	v := newImageView(t, path)
	if v.Picture() != nil {
		t.Fatal("no picture expected for a corrupt file")
	}

	w := Build(a, v, config.Default())
	defer w.Close()
	if w.Content() == nil {
		t.Fatal("window should still have content")
	}
	if v.Displayed() != nil {
		t.Fatal("nothing should be displayed")
	}
	w.Canvas().Refresh(w.Content())
}

func TestNewViewRejectsUnknownKind(t *testing.T) {
	if _, err := NewView(media.Kind(0), "x", Options{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestLaunchRejectsUnknownKindBeforeWindow(t *testing.T) {
	if err := Launch("notes.txt", media.Kind(0), Options{Config: config.Default()}); err == nil {
		t.Fatal("expected error for an unknown kind")
	}
}
