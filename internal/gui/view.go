// Package gui builds the two windows of the viewer: an audio player with
// four transport buttons and an image viewer.
package gui

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/olivierh59500/mediaview/internal/config"
	"github.com/olivierh59500/mediaview/internal/logging"
	"github.com/olivierh59500/mediaview/pkg/audio"
	"github.com/olivierh59500/mediaview/pkg/media"
)

const appID = "io.github.olivierh59500.mediaview"

// View is one window kind. Content is built once and owned by the window.
type View interface {
	Title() string
	Content() fyne.CanvasObject
	// Close releases resources when the window goes away.
	Close()
}

// Options carries the dependencies shared by both views.
type Options struct {
	Config config.Config
	Logger *slog.Logger
	// Fatal handles unrecoverable playback errors. Defaults to logging
	// the error and exiting with status 1.
	Fatal func(error)
	// Opener and Decoder override the audio backend.
	Opener  audio.Opener
	Decoder audio.DecodeFunc
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.Nop()
	}
	if o.Fatal == nil {
		logger := o.Logger
		o.Fatal = func(err error) {
			logger.Error("fatal playback error", "error", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if o.Opener == nil {
		o.Opener = audio.OpenOto
	}
	if o.Decoder == nil {
		o.Decoder = audio.Decode
	}
	return o
}

// NewView constructs the view for kind.
func NewView(kind media.Kind, path string, opts Options) (View, error) {
	opts = opts.withDefaults()
	switch kind {
	case media.KindAudio:
		player := audio.NewPlayer(path,
			audio.DeviceConfig{
				SampleRate: opts.Config.Audio.SampleRate,
				BufferSize: opts.Config.Audio.BufferSize,
			},
			audio.WithOpener(opts.Opener),
			audio.WithDecoder(opts.Decoder),
			audio.WithResampleQuality(opts.Config.Audio.ResampleQuality),
			audio.WithLogger(opts.Logger),
		)
		return NewAudioView(player, opts.Logger, opts.Fatal), nil
	case media.KindImage:
		return NewImageView(path, opts.Config.Image.MaxTextureSize, opts.Logger), nil
	}
	return nil, fmt.Errorf("no view for %s files", kind)
}

// Build creates the window showing v.
func Build(a fyne.App, v View, cfg config.Config) fyne.Window {
	w := a.NewWindow(v.Title())
	w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	w.SetContent(v.Content())
	w.SetOnClosed(v.Close)
	return w
}

// Launch opens the window for a classified path and runs the event loop
// until the window is closed.
func Launch(path string, kind media.Kind, opts Options) error {
	opts = opts.withDefaults()

	v, err := NewView(kind, path, opts)
	if err != nil {
		return err
	}
	opts.Logger.Info("opening window", "kind", kind.String(), "path", path)

	a := app.NewWithID(appID)
	a.Settings().SetTheme(&viewerTheme{})
	Build(a, v, opts.Config).ShowAndRun()
	return nil
}

var (
	_ View = (*AudioView)(nil)
	_ View = (*ImageView)(nil)
)
