package gui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/olivierh59500/mediaview/pkg/picture"
)

// ImageView shows a picture decoded once at construction.
type ImageView struct {
	pic     *picture.Picture
	image   *canvas.Image
	content fyne.CanvasObject
}

// NewImageView decodes path. A decode failure leaves the view empty.
func NewImageView(path string, maxDim int, logger *slog.Logger) *ImageView {
	pic, err := picture.Load(path, maxDim)
	if err != nil {
		logger.Warn("image not displayed", "path", path, "error", err)
		return &ImageView{}
	}
	logger.Debug("image decoded", "path", path, "format", pic.Format, "width", pic.Width, "height", pic.Height)
	return &ImageView{pic: pic}
}

func (v *ImageView) Title() string {
	return "Image Viewer"
}

// Content places the heading on top and the image, scaled to fit with its
// aspect ratio kept, in the remaining space.
func (v *ImageView) Content() fyne.CanvasObject {
	if v.content != nil {
		return v.content
	}

	heading := widget.NewLabelWithStyle(v.Title(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	if v.pic == nil {
		v.content = container.NewBorder(heading, nil, nil, nil)
		return v.content
	}

	v.image = canvas.NewImageFromImage(v.pic.Image())
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScaleSmooth
	v.content = container.NewBorder(heading, nil, nil, nil, v.image)
	return v.content
}

func (v *ImageView) Close() {}

// Picture returns the decoded picture, or nil when decoding failed.
func (v *ImageView) Picture() *picture.Picture {
	return v.pic
}

// Displayed returns the canvas image once Content has been built.
func (v *ImageView) Displayed() *canvas.Image {
	return v.image
}
