package audio

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gopxl/beep/v2"
)

// State is the playback state of a Player.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StatePaused
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	}
	return "Idle"
}

// DefaultResampleQuality is the beep resampler quality used when none is set.
const DefaultResampleQuality = 4

// Option configures a Player.
type Option func(*Player)

// WithOpener replaces the device opener (defaults to OpenOto).
func WithOpener(open Opener) Option {
	return func(p *Player) { p.open = open }
}

// WithDecoder replaces the file decoder (defaults to Decode).
func WithDecoder(decode DecodeFunc) Option {
	return func(p *Player) { p.decode = decode }
}

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Player) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithResampleQuality sets the beep resampler quality (1-64).
func WithResampleQuality(quality int) Option {
	return func(p *Player) {
		if quality > 0 {
			p.quality = quality
		}
	}
}

// Player owns at most one playback session for a single file.
// The session's output and sink are created together on Play and
// released together on Stop.
type Player struct {
	path    string
	device  DeviceConfig
	open    Opener
	decode  DecodeFunc
	quality int
	logger  *slog.Logger

	mu      sync.Mutex
	output  Output
	sink    Sink
	reader  *pcmReader
	source  beep.StreamCloser
	playing bool
	paused  bool
}

// NewPlayer creates an idle player for path.
func NewPlayer(path string, device DeviceConfig, opts ...Option) *Player {
	p := &Player{
		path:    path,
		device:  device,
		open:    OpenOto,
		decode:  Decode,
		quality: DefaultResampleQuality,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Path returns the file the player is bound to.
func (p *Player) Path() string {
	return p.path
}

// Play starts a new session. It is a no-op while a session exists.
// On error nothing stays acquired and the player remains idle.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playing {
		return nil
	}

	output, err := p.open(p.device)
	if err != nil {
		return fmt.Errorf("open audio output: %w", err)
	}

	source, format, err := p.decode(p.path)
	if err != nil {
		return errors.Join(err, output.Close())
	}

	var stream beep.Streamer = source
	deviceRate := beep.SampleRate(output.SampleRate())
	if deviceRate != format.SampleRate {
		stream = beep.Resample(p.quality, format.SampleRate, deviceRate, source)
	}

	reader := newPCMReader(stream)
	sink, err := output.NewSink(reader)
	if err != nil {
		return errors.Join(
			fmt.Errorf("create sink: %w", err),
			source.Close(),
			output.Close(),
		)
	}
	sink.Play()

	p.output = output
	p.sink = sink
	p.reader = reader
	p.source = source
	p.playing = true
	p.paused = false

	p.logger.Info("playback started",
		"path", p.path,
		"source_rate", int(format.SampleRate),
		"device_rate", int(deviceRate),
	)
	return nil
}

// Pause suspends the current session, if any.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink == nil {
		return
	}
	p.sink.Pause()
	p.paused = true
	p.logger.Debug("playback paused", "path", p.path)
}

// Resume continues the current session, if any.
func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sink == nil {
		return
	}
	p.sink.Play()
	p.paused = false
	p.logger.Debug("playback resumed", "path", p.path)
}

// Stop halts playback and releases the sink, the decoder and the device
// handle. A later Play starts from a fresh device handle.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
	p.paused = false
	if p.sink == nil {
		return nil
	}

	// Fence the reader first so the output goroutine is out of the
	// decoder before the source closes.
	err := errors.Join(
		p.reader.Close(),
		p.sink.Stop(),
		p.source.Close(),
		p.output.Close(),
	)
	p.sink = nil
	p.reader = nil
	p.source = nil
	p.output = nil

	p.logger.Info("playback stopped", "path", p.path)
	if err != nil {
		return fmt.Errorf("release audio session: %w", err)
	}
	return nil
}

// State reports Idle, Playing or Paused.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.sink == nil:
		return StateIdle
	case p.paused:
		return StatePaused
	}
	return StatePlaying
}

// Active reports whether a session (output + sink) is held.
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sink != nil
}
