// Package picture decodes image files into an immutable RGBA pixel grid
// ready to be uploaded as a texture.
package picture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/biessek/golang-ico"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
)

// DefaultMaxDimension bounds the texture side length.
const DefaultMaxDimension = 8192

// Picture is a decoded image. It is never mutated after Load.
type Picture struct {
	// Width and Height are the source dimensions.
	Width  int
	Height int
	// Format is the decoder name reported by image.Decode.
	Format string

	pixels  *image.NRGBA
	display image.Image
}

// Load decodes path. When maxDim > 0 and the image is larger on either
// side, the display copy is shrunk to fit maxDim×maxDim; the pixel grid
// keeps the source resolution.
func Load(path string, maxDim int) (*Picture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	pixels := toNRGBA(img)
	bounds := pixels.Bounds()
	pic := &Picture{
		Width:   bounds.Dx(),
		Height:  bounds.Dy(),
		Format:  format,
		pixels:  pixels,
		display: pixels,
	}
	if maxDim > 0 && (pic.Width > maxDim || pic.Height > maxDim) {
		pic.display = resize.Thumbnail(uint(maxDim), uint(maxDim), pixels, resize.Lanczos3)
	}
	return pic, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Pixels returns the number of pixels in the grid.
func (p *Picture) Pixels() int {
	return p.Width * p.Height
}

// RGBA returns the non-premultiplied pixel grid at source resolution.
func (p *Picture) RGBA() *image.NRGBA {
	return p.pixels
}

// Image returns the image to put on screen.
func (p *Picture) Image() image.Image {
	return p.display
}
