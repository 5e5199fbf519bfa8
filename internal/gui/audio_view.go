package gui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/olivierh59500/mediaview/pkg/audio"
)

// AudioView drives an audio.Player from four buttons.
type AudioView struct {
	player *audio.Player
	logger *slog.Logger
	fatal  func(error)
	track  string

	content      fyne.CanvasObject
	statusLabel  *widget.Label
	playButton   *widget.Button
	pauseButton  *widget.Button
	resumeButton *widget.Button
	stopButton   *widget.Button
}

// NewAudioView wraps player. fatal receives Play failures.
func NewAudioView(player *audio.Player, logger *slog.Logger, fatal func(error)) *AudioView {
	v := &AudioView{
		player: player,
		logger: logger,
		fatal:  fatal,
	}

	info, err := audio.ReadTrackInfo(player.Path())
	if err != nil {
		logger.Debug("no track tags", "path", player.Path(), "error", err)
	}
	v.track = info.Label(player.Path())
	return v
}

func (v *AudioView) Title() string {
	return "Audio Player"
}

// Content lays out the heading, the track line and the transport row.
func (v *AudioView) Content() fyne.CanvasObject {
	if v.content != nil {
		return v.content
	}

	heading := widget.NewLabelWithStyle(v.Title(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	trackLabel := widget.NewLabelWithStyle(v.track, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	trackLabel.Truncation = fyne.TextTruncateEllipsis

	v.playButton = widget.NewButton("PLAY", v.Play)
	v.pauseButton = widget.NewButton("PAUSE", v.Pause)
	v.resumeButton = widget.NewButton("RESUME", v.Resume)
	v.stopButton = widget.NewButton("STOP", v.Stop)

	buttons := container.NewHBox(
		layout.NewSpacer(),
		v.playButton,
		v.pauseButton,
		v.resumeButton,
		v.stopButton,
		layout.NewSpacer(),
	)

	v.statusLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	v.refresh()

	v.content = container.NewPadded(container.NewVBox(
		heading,
		trackLabel,
		widget.NewSeparator(),
		buttons,
		v.statusLabel,
	))
	return v.content
}

// Play starts a session; failures are fatal.
func (v *AudioView) Play() {
	if err := v.player.Play(); err != nil {
		v.fatal(err)
		return
	}
	v.refresh()
}

func (v *AudioView) Pause() {
	v.player.Pause()
	v.refresh()
}

func (v *AudioView) Resume() {
	v.player.Resume()
	v.refresh()
}

func (v *AudioView) Stop() {
	if err := v.player.Stop(); err != nil {
		v.logger.Warn("stopping playback", "error", err)
	}
	v.refresh()
}

// Close stops playback when the window closes.
func (v *AudioView) Close() {
	if err := v.player.Stop(); err != nil {
		v.logger.Warn("stopping playback on close", "error", err)
	}
}

// Player exposes the underlying player.
func (v *AudioView) Player() *audio.Player {
	return v.player
}

func (v *AudioView) refresh() {
	if v.statusLabel == nil {
		return
	}
	v.statusLabel.SetText(v.player.State().String())
}
